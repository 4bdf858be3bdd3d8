package repository

import (
	"context"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

// Create writes the user together with its email reservation in one
// transaction, so two accounts can never claim the same address and only
// the very first account is promoted to admin.
func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	user.ID = user.UID
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	users := r.client.Collection(usersCollection)
	userRef := users.Doc(user.UID)
	emailRef := r.emailRef(user.Email)
	sentinelRef := r.client.Collection(metaCollection).Doc(usersSentinelDoc)
	requestedRole := user.Role

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		user.Role = requestedRole

		if _, err := tx.Get(userRef); err == nil {
			return errors.Conflict("User already exists")
		} else if !IsNotFound(err) {
			return errors.Internal("Failed to get user", err)
		}

		if emailRef != nil {
			if err := r.checkEmailFree(tx, emailRef, user.Email, user.UID); err != nil {
				return err
			}
		}

		seeded := true
		if _, err := tx.Get(sentinelRef); err != nil {
			if !IsNotFound(err) {
				return errors.Internal("Failed to read user registry", err)
			}
			seeded = false
		}

		if user.Role == "" {
			user.Role = entity.RoleUser
			if !seeded {
				// stores populated before the sentinel existed
				existing, err := tx.Documents(users.Limit(1)).GetAll()
				if err != nil {
					return errors.Internal("Failed to count users", err)
				}
				if len(existing) == 0 {
					user.Role = entity.RoleAdmin
				}
			}
		}

		if err := tx.Create(userRef, user); err != nil {
			return errors.Internal("Failed to create user", err)
		}
		if emailRef != nil {
			if err := tx.Set(emailRef, map[string]interface{}{"uid": user.UID}); err != nil {
				return errors.Internal("Failed to reserve email", err)
			}
		}
		if !seeded {
			if err := tx.Set(sentinelRef, map[string]interface{}{"seededAt": now}); err != nil {
				return errors.Internal("Failed to update user registry", err)
			}
		}
		return nil
	})
	if err != nil {
		if IsAlreadyExists(err) {
			return errors.Conflict("User already exists")
		}
		return errors.Wrap(err, "Failed to create user")
	}
	return nil
}

// emailRef returns the reservation document of email, or nil when email is
// empty.
func (r *firestoreUserRepository) emailRef(email string) *firestore.DocumentRef {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" {
		return nil
	}
	return r.client.Collection(userEmailsCollection).Doc(url.PathEscape(key))
}

func (r *firestoreUserRepository) checkEmailFree(tx *firestore.Transaction, emailRef *firestore.DocumentRef, email, uid string) error {
	doc, err := tx.Get(emailRef)
	switch {
	case err == nil:
		if owner, _ := doc.Data()["uid"].(string); owner != uid {
			return errors.Conflict("Email already in use")
		}
		return nil
	case !IsNotFound(err):
		return errors.Internal("Failed to check email", err)
	}

	// users written before reservations existed
	query := r.client.Collection(usersCollection).Where("email", "==", email).Limit(1)
	legacy, err := tx.Documents(query).GetAll()
	if err != nil {
		return errors.Internal("Failed to check email", err)
	}
	if len(legacy) > 0 && legacy[0].Ref.ID != uid {
		return errors.Conflict("Email already in use")
	}
	return nil
}

func (r *firestoreUserRepository) GetByUID(ctx context.Context, uid string) (*entity.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := r.client.Collection(usersCollection).Where("email", "==", email).Limit(1)
	users, err := collect[entity.User](query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to get user by email", err)
	}
	if len(users) == 0 {
		return nil, errors.NotFound("User", nil)
	}
	return users[0], nil
}

// Update moves the email reservation along with the user when the address
// changes.
func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	userRef := r.client.Collection(usersCollection).Doc(user.UID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var previous string
		doc, err := tx.Get(userRef)
		switch {
		case err == nil:
			var current entity.User
			if err := doc.DataTo(&current); err == nil {
				previous = current.Email
			}
		case !IsNotFound(err):
			return errors.Internal("Failed to get user", err)
		}

		moved := !strings.EqualFold(previous, user.Email)
		newRef := r.emailRef(user.Email)
		if moved && newRef != nil {
			if err := r.checkEmailFree(tx, newRef, user.Email, user.UID); err != nil {
				return err
			}
		}

		if err := tx.Set(userRef, user); err != nil {
			return errors.Internal("Failed to update user", err)
		}
		if !moved {
			return nil
		}
		if oldRef := r.emailRef(previous); oldRef != nil {
			if err := tx.Delete(oldRef); err != nil {
				return errors.Internal("Failed to release email", err)
			}
		}
		if newRef != nil {
			if err := tx.Set(newRef, map[string]interface{}{"uid": user.UID}); err != nil {
				return errors.Internal("Failed to reserve email", err)
			}
		}
		return nil
	})
	return errors.Wrap(err, "Failed to update user")
}

func (r *firestoreUserRepository) AnyExists(ctx context.Context) (bool, error) {
	docs, err := r.client.Collection(usersCollection).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return false, errors.Internal("Failed to count users", err)
	}
	return len(docs) > 0, nil
}

func (r *firestoreUserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	query := r.client.Collection(usersCollection).OrderBy("createdAt", firestore.Asc)

	counted, err := r.client.Collection(usersCollection).NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count users", err)
	}
	var total int64
	if v, ok := counted["total"].(*firestorepb.Value); ok {
		total = v.GetIntegerValue()
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	users, err := collect[entity.User](query.Documents(ctx))
	if err != nil {
		return nil, 0, errors.Internal("Failed to list users", err)
	}
	return users, total, nil
}

func (r *firestoreUserRepository) FindByField(ctx context.Context, field string, value interface{}) ([]*entity.User, error) {
	query := r.client.Collection(usersCollection).Where(field, "==", value)

	users, err := collect[entity.User](query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to query users", err)
	}
	return users, nil
}
