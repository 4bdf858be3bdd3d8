package usecase

import (
	"context"
	"strings"
	"time"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
)

const MinPasswordLength = 6

type UserUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type SyncUserInput struct {
	UID   string
	Email string
	Name  string
	Photo string
}

type UpdateProfileInput struct {
	DisplayName *string
	Phone       *string
	Address     *string
}

// AdminUpdateUserInput carries the fields an admin may overwrite. Nil fields
// are left untouched.
type AdminUpdateUserInput struct {
	Role          *string
	Name          *string
	DisplayName   *string
	Phone         *string
	Address       *string
	Photo         *string
	VendorRequest *string
	AdminRequest  *string
}

type RequestAction string

const (
	ActionAccept RequestAction = "accept"
	ActionReject RequestAction = "reject"
)

// SyncUser mirrors an identity-provider account into the user store. An
// existing user keeps its role. A new user becomes admin only when the
// store holds no user at all.
func (uc *UserUseCase) SyncUser(ctx context.Context, input SyncUserInput) (*entity.User, error) {
	input.UID = strings.TrimSpace(input.UID)
	input.Email = strings.TrimSpace(input.Email)
	if input.UID == "" || input.Email == "" {
		return nil, errors.Validation("uid and email required", nil)
	}

	user, err := uc.userRepo.GetByUID(ctx, input.UID)
	switch {
	case err == nil:
		if !strings.EqualFold(user.Email, input.Email) {
			if err := uc.ensureEmailFree(ctx, input.Email, input.UID); err != nil {
				return nil, err
			}
		}
		user.Email = input.Email
		user.Name = input.Name
		user.Photo = input.Photo
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "Failed to sync user")
		}
		return user, nil

	case errors.Is(err, errors.CodeNotFound):
		// fall through to creation

	default:
		return nil, errors.Wrap(err, "Failed to sync user")
	}

	// The store enforces email uniqueness and picks the first-user role
	// atomically with the write.
	user = &entity.User{
		UID:           input.UID,
		Email:         input.Email,
		Name:          input.Name,
		Photo:         input.Photo,
		VendorRequest: entity.RequestNone,
		AdminRequest:  entity.RequestNone,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errors.CodeConflict) {
			// a concurrent sync of the same account won the race
			if existing, getErr := uc.userRepo.GetByUID(ctx, input.UID); getErr == nil {
				return existing, nil
			}
		}
		return nil, errors.Wrap(err, "Failed to sync user")
	}
	if user.IsAdmin() {
		logger.Info("Promoting first user %s to admin", input.UID)
	}

	return user, nil
}

func (uc *UserUseCase) ensureEmailFree(ctx context.Context, email, uid string) error {
	other, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil
		}
		return errors.Wrap(err, "Failed to check email")
	}
	if other.UID != uid {
		return errors.Conflict("Email already in use")
	}
	return nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByUID(ctx, uid)
}

func (uc *UserUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, limit, offset)
}

func (uc *UserUseCase) AdminUpdateUser(ctx context.Context, uid string, input AdminUpdateUserInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		role, ok := entity.ParseRole(*input.Role)
		if !ok {
			return nil, errors.Validation("Invalid role", nil)
		}
		user.Role = role
	}
	if input.VendorRequest != nil {
		status := entity.RequestStatus(*input.VendorRequest)
		if !status.Valid() {
			return nil, errors.Validation("Invalid vendorRequest", nil)
		}
		user.VendorRequest = status
	}
	if input.AdminRequest != nil {
		status := entity.RequestStatus(*input.AdminRequest)
		if !status.Valid() {
			return nil, errors.Validation("Invalid adminRequest", nil)
		}
		user.AdminRequest = status
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.Photo != nil {
		user.Photo = *input.Photo
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "Update failed")
	}
	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*input.DisplayName)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		user.Address = strings.TrimSpace(*input.Address)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "Profile update failed")
	}
	return user, nil
}

func (uc *UserUseCase) RequestVendor(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.VendorRequest = entity.RequestPending
	user.VendorRequestDate = &now

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "Failed to send vendor request")
	}
	return user, nil
}

func (uc *UserUseCase) RequestAdmin(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.AdminRequest = entity.RequestPending
	user.AdminRequestDate = &now

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "Failed to send admin request")
	}
	return user, nil
}

func (uc *UserUseCase) ListVendorRequests(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.FindByField(ctx, "vendorRequest", string(entity.RequestPending))
}

func (uc *UserUseCase) ListAdminRequests(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.FindByField(ctx, "adminRequest", string(entity.RequestPending))
}

// ProcessVendorRequest accepts or rejects a pending vendor application.
// Accepting grants the vendor role.
func (uc *UserUseCase) ProcessVendorRequest(ctx context.Context, uid string, action RequestAction) (*entity.User, error) {
	return uc.processRequest(ctx, uid, action, func(user *entity.User, accept bool) {
		if accept {
			user.Role = entity.RoleVendor
			user.VendorRequest = entity.RequestAccepted
			return
		}
		user.VendorRequest = entity.RequestRejected
	})
}

func (uc *UserUseCase) ProcessAdminRequest(ctx context.Context, uid string, action RequestAction) (*entity.User, error) {
	return uc.processRequest(ctx, uid, action, func(user *entity.User, accept bool) {
		if accept {
			user.Role = entity.RoleAdmin
			user.AdminRequest = entity.RequestAccepted
			return
		}
		user.AdminRequest = entity.RequestRejected
	})
}

func (uc *UserUseCase) processRequest(ctx context.Context, uid string, action RequestAction, apply func(*entity.User, bool)) (*entity.User, error) {
	if action != ActionAccept && action != ActionReject {
		return nil, errors.BadRequest("Invalid action", nil)
	}

	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	apply(user, action == ActionAccept)

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "Failed to process request")
	}
	return user, nil
}

func (uc *UserUseCase) ChangePassword(ctx context.Context, uid, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return errors.Validation("Password must be at least 6 characters long", nil)
	}

	if err := uc.firebaseAuth.UpdateUserPassword(ctx, uid, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}
	return nil
}

func (uc *UserUseCase) PromoteToAdmin(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	user.Role = entity.RoleAdmin
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "Promotion failed")
	}
	return user, nil
}
