package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type ReviewUseCase struct {
	productRepo repository.ProductRepository
	publisher   EventPublisher
}

func NewReviewUseCase(productRepo repository.ProductRepository, publisher EventPublisher) *ReviewUseCase {
	return &ReviewUseCase{
		productRepo: productRepo,
		publisher:   publisher,
	}
}

type AddReviewInput struct {
	UserName string
	UserUID  string
	Email    string
	Rating   int
	Comment  string
}

// ReviewPatch is a partial update; nil fields are left as they are.
type ReviewPatch struct {
	Comment *string
	Rating  *int
}

type ReviewEvent struct {
	ProductID string         `json:"productId"`
	Review    *entity.Review `json:"review,omitempty"`
	ReviewID  string         `json:"reviewId"`
	UserUID   string         `json:"userUid"`
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, productID string) ([]entity.Review, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Reviews == nil {
		return []entity.Review{}, nil
	}
	return product.Reviews, nil
}

// AddReview appends a review authored by callerUID to the end of the
// product's review sequence.
func (uc *ReviewUseCase) AddReview(ctx context.Context, callerUID, productID string, input AddReviewInput) (*entity.Review, error) {
	if input.Rating == 0 || strings.TrimSpace(input.UserName) == "" || input.UserUID == "" || strings.TrimSpace(input.Email) == "" {
		return nil, errors.Validation("Missing fields", nil)
	}
	if !entity.ValidRating(input.Rating) {
		return nil, errors.Validation("Rating must be between 1 and 5", nil)
	}
	if input.UserUID != callerUID {
		return nil, errors.PermissionDenied("Permission denied")
	}

	review := entity.Review{
		ID:        uuid.New().String(),
		UserName:  input.UserName,
		UserUID:   input.UserUID,
		Email:     input.Email,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	_, err := uc.productRepo.Mutate(ctx, productID, func(product *entity.Product) error {
		assignReviewIDs(product.Reviews)
		product.Reviews = append(product.Reviews, review)
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, uc.publisher, EventReviewCreated, ReviewEvent{
		ProductID: productID,
		Review:    &review,
		ReviewID:  review.ID,
		UserUID:   callerUID,
	})
	return &review, nil
}

// UpdateReview applies patch to the review addressed by ref. Only the
// review's author may edit it; updatedAt is refreshed on every success.
func (uc *ReviewUseCase) UpdateReview(ctx context.Context, callerUID, productID, ref string, patch ReviewPatch) (*entity.Review, error) {
	if patch.Rating != nil && !entity.ValidRating(*patch.Rating) {
		return nil, errors.Validation("Rating must be between 1 and 5", nil)
	}

	var updated entity.Review
	_, err := uc.productRepo.Mutate(ctx, productID, func(product *entity.Product) error {
		assignReviewIDs(product.Reviews)

		idx, err := resolveReview(product.Reviews, ref)
		if err != nil {
			return err
		}

		review := &product.Reviews[idx]
		if review.UserUID != callerUID {
			return errors.PermissionDenied("Permission denied")
		}

		if patch.Comment != nil {
			review.Comment = *patch.Comment
		}
		if patch.Rating != nil {
			review.Rating = *patch.Rating
		}
		now := time.Now()
		review.UpdatedAt = &now

		updated = *review
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, uc.publisher, EventReviewUpdated, ReviewEvent{
		ProductID: productID,
		Review:    &updated,
		ReviewID:  updated.ID,
		UserUID:   callerUID,
	})
	return &updated, nil
}

// DeleteReview removes the review addressed by ref; later reviews shift down
// by one position.
func (uc *ReviewUseCase) DeleteReview(ctx context.Context, callerUID, productID, ref string) error {
	var removedID string
	_, err := uc.productRepo.Mutate(ctx, productID, func(product *entity.Product) error {
		assignReviewIDs(product.Reviews)

		idx, err := resolveReview(product.Reviews, ref)
		if err != nil {
			return err
		}

		if product.Reviews[idx].UserUID != callerUID {
			return errors.PermissionDenied("Permission denied")
		}

		removedID = product.Reviews[idx].ID
		product.Reviews = append(product.Reviews[:idx], product.Reviews[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, uc.publisher, EventReviewDeleted, ReviewEvent{
		ProductID: productID,
		ReviewID:  removedID,
		UserUID:   callerUID,
	})
	return nil
}

// resolveReview treats an integer ref as a position in the sequence and
// anything else as a review ID.
func resolveReview(reviews []entity.Review, ref string) (int, error) {
	if idx, err := strconv.Atoi(ref); err == nil {
		if idx < 0 || idx >= len(reviews) {
			return -1, errors.NotFound("Review", nil)
		}
		return idx, nil
	}

	for i := range reviews {
		if reviews[i].ID == ref {
			return i, nil
		}
	}
	return -1, errors.NotFound("Review", nil)
}

// assignReviewIDs gives reviews stored before IDs existed a stable ID.
func assignReviewIDs(reviews []entity.Review) {
	for i := range reviews {
		if reviews[i].ID == "" {
			reviews[i].ID = uuid.New().String()
		}
	}
}
