package graphql

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/creatorhub/socialgraph/dto"
	"github.com/creatorhub/socialgraph/internal/enum"
	"github.com/creatorhub/socialgraph/internal/models"
	"github.com/creatorhub/socialgraph/internal/repository"
)

// In-memory repositories backing schema execution tests. They mirror the
// store contract: reads return nil on miss, writes fail with the repository
// sentinel errors.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	calls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		users = append(users, &clone)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	clone := *user
	r.users[user.ID] = &clone
	return user, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id string, input *dto.ChangeUserInput) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Balance != nil {
		user.Balance = *input.Balance
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*models.Profile{}}
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	clone := *profile
	return &clone, nil
}

func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, profile := range r.profiles {
		if profile.UserID == userID {
			clone := *profile
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) GetAll(ctx context.Context) ([]*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profiles := make([]*models.Profile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		clone := *profile
		profiles = append(profiles, &clone)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles, nil
}

func (r *fakeProfileRepo) ListByMemberTier(ctx context.Context, memberTypeID enum.MemberTierID) ([]*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var profiles []*models.Profile
	for _, profile := range r.profiles {
		if profile.MemberTypeID == memberTypeID {
			clone := *profile
			profiles = append(profiles, &clone)
		}
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles, nil
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.profiles {
		if existing.UserID == profile.UserID {
			return nil, repository.ErrProfileAlreadyExists
		}
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	clone := *profile
	r.profiles[profile.ID] = &clone
	return profile, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, id string, input *dto.ChangeProfileInput) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	if input.IsMale != nil {
		profile.IsMale = *input.IsMale
	}
	if input.YearOfBirth != nil {
		profile.YearOfBirth = *input.YearOfBirth
	}
	if input.MemberTypeID != nil {
		profile.MemberTypeID = *input.MemberTypeID
	}
	clone := *profile
	return &clone, nil
}

func (r *fakeProfileRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[id]; !ok {
		return repository.ErrProfileNotFound
	}
	delete(r.profiles, id)
	return nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*models.Post{}}
}

func (r *fakePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	clone := *post
	return &clone, nil
}

func (r *fakePostRepo) GetAll(ctx context.Context) ([]*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := make([]*models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		clone := *post
		posts = append(posts, &clone)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (r *fakePostRepo) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var posts []*models.Post
	for _, post := range r.posts {
		if post.AuthorID == authorID {
			clone := *post
			posts = append(posts, &clone)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (r *fakePostRepo) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	clone := *post
	r.posts[post.ID] = &clone
	return post, nil
}

func (r *fakePostRepo) Update(ctx context.Context, id string, input *dto.ChangePostInput) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	clone := *post
	return &clone, nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type fakeMemberTierRepo struct {
	tiers map[enum.MemberTierID]*models.MemberTier
}

func newFakeMemberTierRepo() *fakeMemberTierRepo {
	return &fakeMemberTierRepo{tiers: map[enum.MemberTierID]*models.MemberTier{
		enum.MemberTierBasic:    {ID: enum.MemberTierBasic, Discount: 2.5, PostsLimitPerMonth: 20},
		enum.MemberTierBusiness: {ID: enum.MemberTierBusiness, Discount: 7.5, PostsLimitPerMonth: 100},
	}}
}

func (r *fakeMemberTierRepo) GetByID(ctx context.Context, id enum.MemberTierID) (*models.MemberTier, error) {
	tier, ok := r.tiers[id]
	if !ok {
		return nil, nil
	}
	clone := *tier
	return &clone, nil
}

func (r *fakeMemberTierRepo) GetAll(ctx context.Context) ([]*models.MemberTier, error) {
	tiers := make([]*models.MemberTier, 0, len(r.tiers))
	for _, tier := range r.tiers {
		clone := *tier
		tiers = append(tiers, &clone)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].ID < tiers[j].ID })
	return tiers, nil
}

type edge struct {
	subscriberID string
	authorID     string
}

type fakeSubscriptionRepo struct {
	mu    sync.Mutex
	edges []edge
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{}
}

func (r *fakeSubscriptionRepo) ListAuthorIDs(ctx context.Context, subscriberID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, e := range r.edges {
		if e.subscriberID == subscriberID {
			ids = append(ids, e.authorID)
		}
	}
	return ids, nil
}

func (r *fakeSubscriptionRepo) ListSubscriberIDs(ctx context.Context, authorID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, e := range r.edges {
		if e.authorID == authorID {
			ids = append(ids, e.subscriberID)
		}
	}
	return ids, nil
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, subscriberID, authorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.edges {
		if e.subscriberID == subscriberID && e.authorID == authorID {
			return repository.ErrSubscriptionExists
		}
	}
	r.edges = append(r.edges, edge{subscriberID: subscriberID, authorID: authorID})
	return nil
}

func (r *fakeSubscriptionRepo) Delete(ctx context.Context, subscriberID, authorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.edges {
		if e.subscriberID == subscriberID && e.authorID == authorID {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return nil
		}
	}
	return repository.ErrSubscriptionNotFound
}

type fixtures struct {
	users         *fakeUserRepo
	profiles      *fakeProfileRepo
	posts         *fakePostRepo
	tiers         *fakeMemberTierRepo
	subscriptions *fakeSubscriptionRepo
}

func newFixtures() (*repository.Repositories, *fixtures) {
	f := &fixtures{
		users:         newFakeUserRepo(),
		profiles:      newFakeProfileRepo(),
		posts:         newFakePostRepo(),
		tiers:         newFakeMemberTierRepo(),
		subscriptions: newFakeSubscriptionRepo(),
	}
	repos := &repository.Repositories{
		UserRepository:         f.users,
		ProfileRepository:      f.profiles,
		PostRepository:         f.posts,
		MemberTierRepository:   f.tiers,
		SubscriptionRepository: f.subscriptions,
	}
	return repos, f
}
