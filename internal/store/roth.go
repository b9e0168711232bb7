package store

import (
	"context"

	"retirement_planner/internal/domain"

	"gorm.io/gorm"
)

// RothStore persists Roth conversion analyses.
type RothStore struct {
	db *gorm.DB
}

func NewRothStore(db *gorm.DB) *RothStore {
	return &RothStore{db: db}
}

func (s *RothStore) Create(ctx context.Context, rc *domain.RothConversion) error {
	return translate("create roth conversion", s.db.WithContext(ctx).Create(rc).Error)
}

// ListByUser returns the user's analyses, newest first.
func (s *RothStore) ListByUser(ctx context.Context, userID uint, page Page) ([]domain.RothConversion, int64, error) {
	query := s.db.WithContext(ctx).Model(&domain.RothConversion{}).Where("user_id = ?", userID).Session(&gorm.Session{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate("count roth conversions", err)
	}
	rows := []domain.RothConversion{}
	if err := query.Order("created_at desc").Order("id desc").Scopes(page.scope).Find(&rows).Error; err != nil {
		return nil, 0, translate("list roth conversions", err)
	}
	return rows, total, nil
}
