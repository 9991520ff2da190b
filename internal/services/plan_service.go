package services

import (
	"context"

	"melodia/internal/models/db_models"
	"melodia/internal/models/request_models"
	"melodia/internal/models/response_models"
	"melodia/internal/repositories"
	"melodia/pkg/utils"
)

type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (*response_models.PlanView, error)
	GetAllPlans(ctx context.Context) ([]response_models.PlanView, error)
	GetPlanInfoById(ctx context.Context, planID string) (*response_models.PlanView, error)
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

func (p *PlanService) CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (*response_models.PlanView, error) {

	plan := &db_models.Plan{
		Name:       request.Name,
		Accounts:   request.Accounts,
		PriceMinor: request.PriceMinor,
		Currency:   request.Currency,
		IsActive:   true,
	}
	if request.Description != "" {
		plan.Description = &request.Description
	}

	if err := p.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	view := toPlanView(plan)
	return &view, nil
}

func (p *PlanService) GetAllPlans(ctx context.Context) ([]response_models.PlanView, error) {

	plans, err := p.planRepo.GetAllPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.PlanView, 0, len(plans))
	for i := range plans {
		views = append(views, toPlanView(&plans[i]))
	}

	return views, nil
}

func (p *PlanService) GetPlanInfoById(ctx context.Context, planID string) (*response_models.PlanView, error) {

	plan, err := p.planRepo.GetPlanInfoById(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}

	view := toPlanView(plan)
	return &view, nil
}

func toPlanView(plan *db_models.Plan) response_models.PlanView {
	return response_models.PlanView{
		ID:          plan.ID,
		Name:        plan.Name,
		Description: plan.Description,
		Accounts:    plan.Accounts,
		PriceMinor:  plan.PriceMinor,
		Currency:    plan.Currency,
		IsActive:    plan.IsActive,
		Features:    plan.Features,
	}
}
