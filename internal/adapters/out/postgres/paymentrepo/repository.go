package paymentrepo

import (
	"context"

	"eats/internal/adapters/out/postgres/pgerrs"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/payment"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Add records a payment. A transaction id can be recorded only once.
func (r *GormPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("transaction id", err)
		}
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	return p.AssignID(id)
}

// FindByUser returns the payments of a user, newest first.
func (r *GormPaymentRepository) FindByUser(ctx context.Context, userID kernel.ID) ([]*payment.Payment, error) {
	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Int64()).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		payments = append(payments, p)
	}
	return payments, nil
}
