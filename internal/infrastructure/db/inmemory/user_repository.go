package inmemory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/entities"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/repositories"
)

// UserRepository is a map-backed credential store used by tests. It enforces
// the same email uniqueness guarantee as the Mongo implementation.
type UserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]entities.User
}

func NewUserRepository() repositories.UserRepository {
	return &UserRepository{
		users: make(map[primitive.ObjectID]entities.User),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := user.GetUser()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, entities.ErrUserAlreadyExists
		}
	}

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.ID] = *u
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[id]; ok {
		found := u
		return &found, nil
	}
	return nil, nil
}

// ConsumeVerificationToken matches and clears the token under one lock, so
// concurrent presentations behave like the Mongo FindOneAndUpdate: one wins.
func (r *UserRepository) ConsumeVerificationToken(ctx context.Context, token string, now time.Time) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token == "" {
		return nil, nil
	}
	for id, u := range r.users {
		if u.VerificationToken == token && u.VerificationTokenExpires.After(now) {
			u.MarkAsVerified()
			u.UpdatedAt = now
			r.users[id] = u
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := user.GetUser()
	if _, ok := r.users[u.ID]; !ok {
		return nil, entities.ErrUserNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return nil, entities.ErrUserAlreadyExists
		}
	}
	r.users[u.ID] = *u
	return u, nil
}
