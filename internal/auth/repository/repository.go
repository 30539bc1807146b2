// Package repository provides data access for the admin allowlist.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/veterans_league/internal/auth/model"
)

// Repository defines the admin allowlist operations.
type Repository interface {
	// IsAdmin reports whether email is on the allowlist.
	IsAdmin(ctx context.Context, email string) (bool, error)

	// AddAdmin adds email to the allowlist. Existing entries are kept.
	AddAdmin(ctx context.Context, email string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new admin repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) IsAdmin(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Admin{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("admin lookup failed", "error", err)
		return false, err
	}
	return count > 0, nil
}

func (r *repository) AddAdmin(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Admin{Email: email}).Error
}
