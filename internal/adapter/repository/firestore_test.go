package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"localmarket/internal/domain/entity"
	"localmarket/pkg/errors"
)

func TestStatusHelpers(t *testing.T) {
	assert.True(t, IsNotFound(status.Error(codes.NotFound, "missing")))
	assert.False(t, IsNotFound(status.Error(codes.Internal, "boom")))
	assert.True(t, IsAlreadyExists(status.Error(codes.AlreadyExists, "dup")))
	assert.False(t, IsAlreadyExists(nil))
}

// emulatorClient connects to the Firestore emulator named by
// FIRESTORE_EMULATOR_HOST and skips the test when none is running.
func emulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "localmarket-test")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestFirestoreProductRepository_ConcurrentMutate(t *testing.T) {
	client := emulatorClient(t)
	repo := NewFirestoreProductRepository(client)
	ctx := context.Background()

	product := &entity.Product{ID: uuid.NewString(), Name: "Rice", Reviews: []entity.Review{}}
	require.NoError(t, repo.Create(ctx, product))

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Mutate(ctx, product.ID, func(p *entity.Product) error {
				p.Reviews = append(p.Reviews, entity.Review{ID: fmt.Sprint(i), Rating: 5})
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, got.Reviews, writers)
}

func TestFirestoreProductRepository_MutateMissing(t *testing.T) {
	repo := NewFirestoreProductRepository(emulatorClient(t))

	_, err := repo.Mutate(context.Background(), uuid.NewString(), func(p *entity.Product) error {
		return nil
	})
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestFirestoreProductRepository_GetManyBatches(t *testing.T) {
	client := emulatorClient(t)
	repo := NewFirestoreProductRepository(client)
	ctx := context.Background()

	ids := make([]string, 0, getAllBatchSize+5)
	for i := 0; i < getAllBatchSize+5; i++ {
		p := &entity.Product{ID: uuid.NewString(), Name: fmt.Sprintf("item-%d", i)}
		require.NoError(t, repo.Create(ctx, p))
		ids = append(ids, p.ID)
	}
	ids = append(ids, "does-not-exist")

	got, err := repo.GetMany(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, got, getAllBatchSize+5)
}

func TestFirestoreUserRepository_ConcurrentCreateSameEmail(t *testing.T) {
	repo := NewFirestoreUserRepository(emulatorClient(t))
	ctx := context.Background()
	email := uuid.NewString() + "@market.test"

	const writers = 5
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, &entity.User{UID: uuid.NewString(), Email: email, Role: entity.RoleUser})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.True(t, errors.Is(err, errors.CodeConflict), err.Error())
	}
	assert.Equal(t, 1, created)

	stored, err := repo.FindByField(ctx, "email", email)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestFirestoreUserRepository_UpdateMovesEmail(t *testing.T) {
	repo := NewFirestoreUserRepository(emulatorClient(t))
	ctx := context.Background()
	oldEmail := uuid.NewString() + "@market.test"
	newEmail := uuid.NewString() + "@market.test"

	user := &entity.User{UID: uuid.NewString(), Email: oldEmail, Role: entity.RoleUser}
	require.NoError(t, repo.Create(ctx, user))

	other := &entity.User{UID: uuid.NewString(), Email: newEmail, Role: entity.RoleUser}
	require.NoError(t, repo.Create(ctx, other))

	user.Email = newEmail
	assert.True(t, errors.Is(repo.Update(ctx, user), errors.CodeConflict))

	user.Email = uuid.NewString() + "@market.test"
	require.NoError(t, repo.Update(ctx, user))

	// the released address is free again
	require.NoError(t, repo.Create(ctx, &entity.User{UID: uuid.NewString(), Email: oldEmail, Role: entity.RoleUser}))
}

func TestFirestoreUserRepository_ListCountsAll(t *testing.T) {
	repo := NewFirestoreUserRepository(emulatorClient(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{UID: uuid.NewString(), Email: uuid.NewString() + "@market.test", Role: entity.RoleUser}))

	page, total, err := repo.List(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.GreaterOrEqual(t, total, int64(1))
}
