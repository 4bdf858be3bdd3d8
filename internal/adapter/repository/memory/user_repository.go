package memory

import (
	"context"
	"strings"
	"time"

	"localmarket/internal/domain/entity"
	"localmarket/pkg/errors"
)

type userRepository struct {
	store *Store
}

func userCreatedAt(v interface{}) time.Time {
	return v.(*entity.User).CreatedAt
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.get(usersCollection, user.UID); exists {
		return errors.Conflict("User already exists")
	}
	if r.emailTaken(user.Email, user.UID) {
		return errors.Conflict("Email already in use")
	}

	if user.Role == "" {
		user.Role = entity.RoleUser
		if len(r.store.collection(usersCollection)) == 0 {
			user.Role = entity.RoleAdmin
		}
	}

	user.ID = user.UID
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.store.put(usersCollection, user.UID, user)
	return nil
}

func (r *userRepository) GetByUID(ctx context.Context, uid string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	v, ok := r.store.get(usersCollection, uid)
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return v.(*entity.User), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.FindByField(ctx, "email", email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, errors.NotFound("User", nil)
	}
	return users[0], nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.emailTaken(user.Email, user.UID) {
		return errors.Conflict("Email already in use")
	}

	user.UpdatedAt = time.Now()
	r.store.put(usersCollection, user.UID, user)
	return nil
}

// emailTaken reports whether a user other than uid holds email. The caller
// must hold the store lock.
func (r *userRepository) emailTaken(email, uid string) bool {
	if email == "" {
		return false
	}
	for id, doc := range r.store.collection(usersCollection) {
		if id != uid && strings.EqualFold(doc.data.(*entity.User).Email, email) {
			return true
		}
	}
	return false
}

func (r *userRepository) AnyExists(ctx context.Context) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return len(r.store.collection(usersCollection)) > 0, nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs := r.store.query(usersCollection, nil, userCreatedAt, false)
	total := int64(len(docs))

	if offset > len(docs) {
		offset = len(docs)
	}
	docs = docs[offset:]
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}

	users := make([]*entity.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.(*entity.User))
	}
	return users, total, nil
}

func (r *userRepository) FindByField(ctx context.Context, field string, value interface{}) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	docs := r.store.query(usersCollection, map[string]interface{}{field: value}, userCreatedAt, false)
	users := make([]*entity.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.(*entity.User))
	}
	return users, nil
}
