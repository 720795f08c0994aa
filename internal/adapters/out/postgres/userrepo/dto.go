// Package userrepo persists user accounts and their email verifications.
package userrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
)

// UserDTO represents the database structure for user accounts.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"size:320;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:16;not null"`
	Verified     bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

// VerificationDTO is a pending verification code. It disappears with its user.
type VerificationDTO struct {
	ID     int64    `gorm:"primaryKey"`
	Code   string   `gorm:"size:64;not null;uniqueIndex"`
	UserID int64    `gorm:"not null;uniqueIndex"`
	User   *UserDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (VerificationDTO) TableName() string {
	return "verifications"
}

func userFromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Int64(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Verified:     u.Verified(),
	}
}

func userToDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.Email, dto.PasswordHash, role, dto.Verified)
}

func verificationToDomain(dto VerificationDTO) (*user.Verification, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}
	return user.RestoreVerification(id, dto.Code, userID)
}
