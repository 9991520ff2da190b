package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodia/internal/api/controllers"
	"melodia/internal/models/request_models"
	"melodia/internal/models/response_models"
	"melodia/pkg/utils"
)

type stubAuthService struct {
	loginUser       func(request_models.LoginRequest) (*response_models.UserLoginResponse, error)
	activateProfile func(email, profileID string) (*response_models.TokenResponse, error)
}

func (s *stubAuthService) LoginUser(_ context.Context, req request_models.LoginRequest) (*response_models.UserLoginResponse, error) {
	return s.loginUser(req)
}

func (s *stubAuthService) LoginAdmin(_ context.Context, _ request_models.LoginRequest) (*response_models.AdminLoginResponse, error) {
	return nil, utils.ErrInvalidCredentials
}

func (s *stubAuthService) LoginArtist(_ context.Context, _ request_models.LoginRequest) (*response_models.ArtistLoginResponse, error) {
	return nil, utils.ErrInvalidCredentials
}

func (s *stubAuthService) ActivateProfile(_ context.Context, email, profileID string) (*response_models.TokenResponse, error) {
	return s.activateProfile(email, profileID)
}

func newAuthRouter(stub *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := controllers.NewAuthController(stub)

	router := gin.New()
	router.POST("/login", controller.LoginUser)
	router.POST("/login/profile", func(c *gin.Context) {
		// Stands in for the auth middleware.
		c.Set("email", "ana@example.com")
		controller.ActivateProfile(c)
	})
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginUserEndpoint(t *testing.T) {
	stub := &stubAuthService{
		loginUser: func(req request_models.LoginRequest) (*response_models.UserLoginResponse, error) {
			if req.Email == "ana@example.com" && req.Password == "secret123" {
				return &response_models.UserLoginResponse{
					Token: "signed.jwt.token",
					User:  response_models.UserView{Name: "Ana", Email: req.Email},
				}, nil
			}
			return nil, utils.ErrInvalidCredentials
		},
	}
	router := newAuthRouter(stub)

	t.Run("success wraps the result in the standard envelope", func(t *testing.T) {
		recorder := postJSON(t, router, "/login", request_models.LoginRequest{
			Email:    "ana@example.com",
			Password: "secret123",
		})

		require.Equal(t, http.StatusOK, recorder.Code)

		var envelope utils.APIResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, "success", envelope.Status)
		assert.Equal(t, http.StatusOK, envelope.Code)

		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "signed.jwt.token", data["token"])
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		recorder := postJSON(t, router, "/login", request_models.LoginRequest{
			Email:    "ana@example.com",
			Password: "wrong",
		})

		require.Equal(t, http.StatusUnauthorized, recorder.Code)

		var envelope utils.APIResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, "error", envelope.Status)
		assert.Nil(t, envelope.Data)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestActivateProfileEndpoint(t *testing.T) {
	stub := &stubAuthService{
		activateProfile: func(email, profileID string) (*response_models.TokenResponse, error) {
			if profileID == "11111111-1111-1111-1111-111111111111" {
				return &response_models.TokenResponse{Token: "profile.scoped.token"}, nil
			}
			return nil, utils.ErrProfileNotFound
		},
	}
	router := newAuthRouter(stub)

	t.Run("activation returns a fresh token", func(t *testing.T) {
		recorder := postJSON(t, router, "/login/profile", request_models.ActivateProfileRequest{
			ProfileID: "11111111-1111-1111-1111-111111111111",
		})

		require.Equal(t, http.StatusOK, recorder.Code)

		var envelope utils.APIResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "profile.scoped.token", data["token"])
	})

	t.Run("unknown profile maps to 404", func(t *testing.T) {
		recorder := postJSON(t, router, "/login/profile", request_models.ActivateProfileRequest{
			ProfileID: "22222222-2222-2222-2222-222222222222",
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
