package jsonstore

import (
	"context"

	"github.com/showcasehub/showcase-system/internal/core/domain"
)

const usersFile = "users.json"

// UserRepository stores the user collection in users.json.
type UserRepository struct {
	coll *collection
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{coll: s.collection(usersFile)}
}

func (r *UserRepository) Create(_ context.Context, user domain.User) error {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var users []domain.User
	if err := r.coll.load(&users); err != nil {
		return err
	}
	for i := range users {
		if users[i].Username == user.Username {
			return domain.ErrUserExists
		}
	}
	users = append(users, user)
	return r.coll.save(users)
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var users []domain.User
	if err := r.coll.load(&users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Exists(_ context.Context, username string) (bool, error) {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var users []domain.User
	if err := r.coll.load(&users); err != nil {
		return false, err
	}
	for i := range users {
		if users[i].Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) Update(_ context.Context, username string, fn func(*domain.User) error) (*domain.User, error) {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var users []domain.User
	if err := r.coll.load(&users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username != username {
			continue
		}
		if err := fn(&users[i]); err != nil {
			return nil, err
		}
		if err := r.coll.save(users); err != nil {
			return nil, err
		}
		u := users[i]
		return &u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Delete(_ context.Context, username string) error {
	r.coll.mu.Lock()
	defer r.coll.mu.Unlock()

	var users []domain.User
	if err := r.coll.load(&users); err != nil {
		return err
	}
	kept := users[:0]
	for i := range users {
		if users[i].Username != username {
			kept = append(kept, users[i])
		}
	}
	if len(kept) == len(users) {
		return domain.ErrUserNotFound
	}
	return r.coll.save(kept)
}
