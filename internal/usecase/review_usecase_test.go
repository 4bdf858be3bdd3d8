package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localmarket/internal/adapter/repository/memory"
	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

func seedReviews(t *testing.T, products repository.ProductRepository, reviews ...entity.Review) string {
	t.Helper()
	p := &entity.Product{Name: "Potato", MarketName: "Karwan Bazar", VendorUID: "vendor-1", Reviews: reviews}
	require.NoError(t, products.Create(context.Background(), p))
	return p.ID
}

func addInput(uid string, rating int) AddReviewInput {
	return AddReviewInput{UserName: uid, UserUID: uid, Email: uid + "@market.test", Rating: rating, Comment: "fresh"}
}

func TestReviewUseCase_AddAppendsAtEnd(t *testing.T) {
	ctx := context.Background()
	products := memory.NewStore().Products()
	uc := NewReviewUseCase(products, nil)

	id := seedReviews(t, products, entity.Review{UserUID: "a", Rating: 5}, entity.Review{UserUID: "b", Rating: 3})

	review, err := uc.AddReview(ctx, "c", id, addInput("c", 2))
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.False(t, review.CreatedAt.IsZero())

	reviews, err := uc.ListReviews(ctx, id)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "c", reviews[2].UserUID)
	assert.Equal(t, review.ID, reviews[2].ID)
}

func TestReviewUseCase_AddValidation(t *testing.T) {
	ctx := context.Background()
	products := memory.NewStore().Products()
	uc := NewReviewUseCase(products, nil)
	id := seedReviews(t, products)

	missing := addInput("a", 4)
	missing.Email = ""
	_, err := uc.AddReview(ctx, "a", id, missing)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = uc.AddReview(ctx, "a", id, addInput("a", 0))
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = uc.AddReview(ctx, "a", id, addInput("a", 6))
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = uc.AddReview(ctx, "a", id, addInput("someone-else", 4))
	assert.True(t, errors.Is(err, errors.CodePermissionDenied))

	_, err = uc.AddReview(ctx, "a", "missing-product", addInput("a", 4))
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestReviewUseCase_DeleteThenUpdateShiftedIndex(t *testing.T) {
	ctx := context.Background()
	products := memory.NewStore().Products()
	uc := NewReviewUseCase(products, nil)

	id := seedReviews(t, products, entity.Review{UserUID: "a", Rating: 5}, entity.Review{UserUID: "b", Rating: 3})

	require.NoError(t, uc.DeleteReview(ctx, "a", id, "0"))

	reviews, err := uc.ListReviews(ctx, id)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "b", reviews[0].UserUID)
	assert.Equal(t, 3, reviews[0].Rating)

	rating := 4
	updated, err := uc.UpdateReview(ctx, "b", id, "0", ReviewPatch{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
}

func TestReviewUseCase_OwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	products := memory.NewStore().Products()
	uc := NewReviewUseCase(products, nil)

	id := seedReviews(t, products, entity.Review{UserUID: "a", Rating: 5}, entity.Review{UserUID: "b", Rating: 3})

	rating := 1
	_, err := uc.UpdateReview(ctx, "c", id, "0", ReviewPatch{Rating: &rating})
	assert.True(t, errors.Is(err, errors.CodePermissionDenied))

	err = uc.DeleteReview(ctx, "c", id, "1")
	assert.True(t, errors.Is(err, errors.CodePermissionDenied))

	reviews, err := uc.ListReviews(ctx, id)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestReviewUseCase_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	products := memory.NewStore().Products()
	uc := NewReviewUseCase(products, nil)

	id := seedReviews(t, products, entity.Review{UserUID: "a", Rating: 5, Comment: "good"})

	comment := "great"
	updated, err := uc.UpdateReview(ctx, "a", id, "0", ReviewPatch{Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, "great", updated.Comment)
	assert.Equal(t, 5, updated.Rating)
	require.NotNil(t, updated.UpdatedAt)

	first := *updated.UpdatedAt
	again, err := uc.UpdateReview(ctx, "a", id, "0", ReviewPatch{})
	require.NoError(t, err)
	require.NotNil(t, again.UpdatedAt)
	assert.False(t, again.UpdatedAt.Before(first))
	assert.Equal(t, "great", again.Comment)
}

func TestReviewUseCase_ReferenceResolution(t *testing.T) {
	ctx := context.Background()
	products := memory.NewStore().Products()
	uc := NewReviewUseCase(products, nil)

	id := seedReviews(t, products, entity.Review{ID: "r-a", UserUID: "a", Rating: 5}, entity.Review{UserUID: "b", Rating: 3})

	for _, ref := range []string{"2", "-1", "nope", "0abc", " 0"} {
		_, err := uc.UpdateReview(ctx, "a", id, ref, ReviewPatch{})
		assert.True(t, errors.Is(err, errors.CodeNotFound), "ref %q", ref)
	}

	rating := 2
	updated, err := uc.UpdateReview(ctx, "a", id, "r-a", ReviewPatch{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)

	reviews, err := uc.ListReviews(ctx, id)
	require.NoError(t, err)
	assert.NotEmpty(t, reviews[1].ID, "reviews stored without an ID receive one on first write")
}

func TestReviewUseCase_PublishesEvents(t *testing.T) {
	ctx := context.Background()
	products := memory.NewStore().Products()
	publisher := new(MockPublisher)
	uc := NewReviewUseCase(products, publisher)

	id := seedReviews(t, products)

	publisher.On("Publish", mock.Anything, EventReviewCreated, mock.AnythingOfType("ReviewEvent")).Return(nil).Once()
	publisher.On("Publish", mock.Anything, EventReviewDeleted, mock.AnythingOfType("ReviewEvent")).Return(assert.AnError).Once()

	review, err := uc.AddReview(ctx, "a", id, addInput("a", 5))
	require.NoError(t, err)

	// a broker failure does not fail the request
	require.NoError(t, uc.DeleteReview(ctx, "a", id, review.ID))

	publisher.AssertExpectations(t)
}
