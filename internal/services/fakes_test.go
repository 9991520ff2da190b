package services_test

import (
	"context"

	"github.com/google/uuid"

	"melodia/internal/models/db_models"
	"melodia/pkg/utils"
)

// In-memory repository fakes. They implement just enough of the store
// contracts for the service tests: variant-scoped email lookups that return
// (nil, nil) when absent, and a quota-guarded profile insert.

type fakeUserRepo struct {
	users    map[string]*db_models.User // keyed by email
	profiles *fakeProfileRepo
}

func newFakeUserRepo(profiles *fakeProfileRepo) *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[string]*db_models.User),
		profiles: profiles,
	}
}

func (f *fakeUserRepo) add(user *db_models.User) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.Email] = user
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) FindById(_ context.Context, id string) (*db_models.User, error) {
	for _, user := range f.users {
		if user.ID.String() == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmailWithPlanAndProfiles(_ context.Context, email string) (*db_models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	loaded := *user
	if f.profiles != nil {
		loaded.Profiles = f.profiles.ownedBy(user.ID)
	}
	return &loaded, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *db_models.User) error {
	f.users[user.Email] = user
	return nil
}

// Delete mirrors the cascading foreign key: removing a user takes the owned
// profiles with it.
func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	for email, user := range f.users {
		if user.ID.String() == id {
			delete(f.users, email)
			if f.profiles != nil {
				f.profiles.deleteOwnedBy(user.ID)
			}
		}
	}
	return nil
}

type fakeAdminRepo struct {
	admins map[string]*db_models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*db_models.Admin)}
}

func (f *fakeAdminRepo) Insert(_ context.Context, admin *db_models.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	f.admins[admin.Email] = admin
	return nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*db_models.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, nil
	}
	return admin, nil
}

func (f *fakeAdminRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.admins[email]
	return ok, nil
}

type fakeArtistRepo struct {
	artists map[string]*db_models.Artist
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{artists: make(map[string]*db_models.Artist)}
}

func (f *fakeArtistRepo) Insert(_ context.Context, artist *db_models.Artist) error {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	f.artists[artist.Email] = artist
	return nil
}

func (f *fakeArtistRepo) FindByEmail(_ context.Context, email string) (*db_models.Artist, error) {
	artist, ok := f.artists[email]
	if !ok {
		return nil, nil
	}
	return artist, nil
}

func (f *fakeArtistRepo) FindById(_ context.Context, id string) (*db_models.Artist, error) {
	for _, artist := range f.artists {
		if artist.ID.String() == id {
			return artist, nil
		}
	}
	return nil, nil
}

func (f *fakeArtistRepo) FindAll(_ context.Context) ([]db_models.Artist, error) {
	all := make([]db_models.Artist, 0, len(f.artists))
	for _, artist := range f.artists {
		all = append(all, *artist)
	}
	return all, nil
}

func (f *fakeArtistRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.artists[email]
	return ok, nil
}

func (f *fakeArtistRepo) Update(_ context.Context, artist *db_models.Artist) error {
	f.artists[artist.Email] = artist
	return nil
}

func (f *fakeArtistRepo) Delete(_ context.Context, id string) error {
	for email, artist := range f.artists {
		if artist.ID.String() == id {
			delete(f.artists, email)
		}
	}
	return nil
}

type fakeProfileRepo struct {
	profiles  []db_models.Profile
	playlists map[string]*db_models.Playlist
	favorites map[uuid.UUID][]db_models.Playlist
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		playlists: make(map[string]*db_models.Playlist),
		favorites: make(map[uuid.UUID][]db_models.Playlist),
	}
}

func (f *fakeProfileRepo) addPlaylist(playlist *db_models.Playlist) {
	if playlist.ID == uuid.Nil {
		playlist.ID = uuid.New()
	}
	f.playlists[playlist.ID.String()] = playlist
}

func (f *fakeProfileRepo) deleteOwnedBy(userID uuid.UUID) {
	kept := f.profiles[:0]
	for _, profile := range f.profiles {
		if profile.UserID != userID {
			kept = append(kept, profile)
		}
	}
	f.profiles = kept
}

func (f *fakeProfileRepo) ownedBy(userID uuid.UUID) []db_models.Profile {
	var owned []db_models.Profile
	for _, profile := range f.profiles {
		if profile.UserID == userID {
			owned = append(owned, profile)
		}
	}
	return owned
}

func (f *fakeProfileRepo) CreateWithinQuota(_ context.Context, profile *db_models.Profile, limit int) error {
	if len(f.ownedBy(profile.UserID)) >= limit {
		return utils.ErrProfileLimitReached
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.profiles = append(f.profiles, *profile)
	return nil
}

func (f *fakeProfileRepo) FindAllByUser(_ context.Context, userID string) ([]db_models.Profile, error) {
	var owned []db_models.Profile
	for _, profile := range f.profiles {
		if profile.UserID.String() == userID {
			owned = append(owned, profile)
		}
	}
	return owned, nil
}

func (f *fakeProfileRepo) FindOneInUser(_ context.Context, userID, profileID string) (*db_models.Profile, error) {
	for i := range f.profiles {
		if f.profiles[i].UserID.String() == userID && f.profiles[i].ID.String() == profileID {
			found := f.profiles[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *db_models.Profile) error {
	for i := range f.profiles {
		if f.profiles[i].ID == profile.ID {
			f.profiles[i] = *profile
			return nil
		}
	}
	return utils.ErrProfileNotFound
}

func (f *fakeProfileRepo) Delete(_ context.Context, userID, profileID string) error {
	for i := range f.profiles {
		if f.profiles[i].UserID.String() == userID && f.profiles[i].ID.String() == profileID {
			f.profiles = append(f.profiles[:i], f.profiles[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeProfileRepo) AddFavorite(_ context.Context, profile *db_models.Profile, playlistID string) error {
	playlist, ok := f.playlists[playlistID]
	if !ok {
		return utils.ErrRecordNotFound
	}
	for _, existing := range f.favorites[profile.ID] {
		if existing.ID == playlist.ID {
			return nil
		}
	}
	f.favorites[profile.ID] = append(f.favorites[profile.ID], *playlist)
	return nil
}

func (f *fakeProfileRepo) RemoveFavorite(_ context.Context, profile *db_models.Profile, playlistID string) error {
	playlist, ok := f.playlists[playlistID]
	if !ok {
		return utils.ErrRecordNotFound
	}
	list := f.favorites[profile.ID]
	for i := range list {
		if list[i].ID == playlist.ID {
			f.favorites[profile.ID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeProfileRepo) FindFavorites(_ context.Context, profileID string) ([]db_models.Playlist, error) {
	for id, list := range f.favorites {
		if id.String() == profileID {
			return list, nil
		}
	}
	return nil, nil
}

type fakePlanRepo struct {
	plans map[string]*db_models.Plan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]*db_models.Plan)}
}

func (f *fakePlanRepo) Insert(_ context.Context, plan *db_models.Plan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans[plan.ID.String()] = plan
	return nil
}

func (f *fakePlanRepo) GetPlanInfoById(_ context.Context, planID string) (*db_models.Plan, error) {
	plan, ok := f.plans[planID]
	if !ok {
		return nil, nil
	}
	return plan, nil
}

func (f *fakePlanRepo) GetAllPlans(_ context.Context) ([]db_models.Plan, error) {
	all := make([]db_models.Plan, 0, len(f.plans))
	for _, plan := range f.plans {
		all = append(all, *plan)
	}
	return all, nil
}

type fakeCategoryRepo struct {
	categories map[string]*db_models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*db_models.Category)}
}

func (f *fakeCategoryRepo) Insert(_ context.Context, category *db_models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories[category.ID.String()] = category
	return nil
}

func (f *fakeCategoryRepo) FindById(_ context.Context, id string) (*db_models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return category, nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*db_models.Category, error) {
	for _, category := range f.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]db_models.Category, error) {
	all := make([]db_models.Category, 0, len(f.categories))
	for _, category := range f.categories {
		all = append(all, *category)
	}
	return all, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *db_models.Category) error {
	f.categories[category.ID.String()] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(f.categories, id)
	return nil
}
