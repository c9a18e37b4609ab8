package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/malik-shaik/DevHub/models"
	"github.com/malik-shaik/DevHub/store"
)

// In-memory stands-ins for the Firestore stores, matching the store
// interfaces declared in this package.

type fakeUserStore struct {
	mu    sync.Mutex
	seq   int
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	user := u
	return &user, nil
}

type fakePostStore struct {
	mu    sync.Mutex
	seq   int
	order []string
	posts map[string]models.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[string]models.Post{}}
}

func (f *fakePostStore) Create(ctx context.Context, post *models.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	post.ID = fmt.Sprintf("post-%d", f.seq)
	f.posts[post.ID] = *post
	f.order = append(f.order, post.ID)
	return nil
}

func (f *fakePostStore) All(ctx context.Context) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	posts := make([]models.Post, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		if p, ok := f.posts[f.order[i]]; ok {
			posts = append(posts, p)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].Date.After(posts[j].Date) })
	return posts, nil
}

func (f *fakePostStore) FindByID(ctx context.Context, id string) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	post := p
	return &post, nil
}

func (f *fakePostStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.posts, id)
	return nil
}

func (f *fakePostStore) Mutate(ctx context.Context, id string, fn func(*models.Post) error) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if err := fn(&p); err != nil {
		return nil, err
	}
	f.posts[id] = p
	post := p
	return &post, nil
}

type fakeProfileStore struct {
	mu           sync.Mutex
	seq          int
	profiles     map[string]models.Profile // keyed by profile id
	deletedUsers []string
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[string]models.Profile{}}
}

func (f *fakeProfileStore) Create(ctx context.Context, profile *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	profile.ID = fmt.Sprintf("profile-%d", f.seq)
	f.profiles[profile.ID] = *profile
	return nil
}

func (f *fakeProfileStore) All(ctx context.Context) ([]models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profiles := make([]models.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (f *fakeProfileStore) FindByUser(ctx context.Context, userID string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.User == userID {
			profile := p
			return &profile, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeProfileStore) MutateByUser(ctx context.Context, userID string, fn func(*models.Profile) error) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.profiles {
		if p.User == userID {
			if err := fn(&p); err != nil {
				return nil, err
			}
			f.profiles[id] = p
			profile := p
			return &profile, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeProfileStore) DeleteWithUser(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.profiles {
		if p.User == userID {
			delete(f.profiles, id)
		}
	}
	f.deletedUsers = append(f.deletedUsers, userID)
	return nil
}
