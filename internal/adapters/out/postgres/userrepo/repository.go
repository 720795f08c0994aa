package userrepo

import (
	"context"
	"errors"

	"eats/internal/adapters/out/postgres/pgerrs"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormUserRepository tracks every user it writes on tracker.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{db: db, tracker: tracker}
}

func (r *GormUserRepository) Add(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("email", err)
		}
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = u.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(u.ID(), u)
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(u)
	result := r.db.WithContext(ctx).Model(&UserDTO{ID: dto.ID}).Select(
		"Email", "PasswordHash", "Role", "Verified", "UpdatedAt",
	).Updates(&dto)
	if result.Error != nil {
		if pgerrs.IsUniqueViolation(result.Error) {
			return errs.NewConflictErrorWithCause("email", result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", u.ID().String())
	}

	r.tracker.TrackAggregate(u.ID(), u)
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "user", id.String(), "id = ?", id.Int64())
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "user", email, "email = ?", email)
}

func (r *GormUserRepository) first(ctx context.Context, param string, key any, query string, args ...any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}
	return userToDomain(dto)
}

// GormVerificationRepository implements ports.VerificationRepository using GORM.
type GormVerificationRepository struct {
	db *gorm.DB
}

func NewGormVerificationRepository(db *gorm.DB) *GormVerificationRepository {
	return &GormVerificationRepository{db: db}
}

// Add stores the code, replacing any code previously issued to the same user.
func (r *GormVerificationRepository) Add(ctx context.Context, v *user.Verification) error {
	if err := v.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ?", v.UserID().Int64()).Delete(&VerificationDTO{}).Error; err != nil {
		return err
	}

	dto := VerificationDTO{Code: v.Code(), UserID: v.UserID().Int64()}
	if err := db.Omit("User").Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	return v.AssignID(id)
}

func (r *GormVerificationRepository) GetByCode(ctx context.Context, code string) (*user.Verification, error) {
	var dto VerificationDTO
	if err := r.db.WithContext(ctx).Where("code = ?", code).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("verification", code)
		}
		return nil, err
	}
	return verificationToDomain(dto)
}

func (r *GormVerificationRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&VerificationDTO{}, id.Int64()).Error
}
