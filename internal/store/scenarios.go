package store

import (
	"context"

	"retirement_planner/internal/domain"

	"gorm.io/gorm"
)

// ScenarioStore persists retirement scenarios.
type ScenarioStore struct {
	db *gorm.DB
}

func NewScenarioStore(db *gorm.DB) *ScenarioStore {
	return &ScenarioStore{db: db}
}

func (s *ScenarioStore) Create(ctx context.Context, sc *domain.Scenario) error {
	return translate("create scenario", s.db.WithContext(ctx).Create(sc).Error)
}

// ListByUser returns one page of the user's scenarios, most recently updated
// first, and the user's total scenario count.
func (s *ScenarioStore) ListByUser(ctx context.Context, userID uint, page Page) ([]domain.Scenario, int64, error) {
	query := s.db.WithContext(ctx).Model(&domain.Scenario{}).Where("user_id = ?", userID).Session(&gorm.Session{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate("count scenarios", err)
	}
	scenarios := []domain.Scenario{}
	err := query.Order("updated_at desc").Order("id desc").Scopes(page.scope).Find(&scenarios).Error
	if err != nil {
		return nil, 0, translate("list scenarios", err)
	}
	return scenarios, total, nil
}

// Get loads a scenario owned by userID.
func (s *ScenarioStore) Get(ctx context.Context, id, userID uint) (*domain.Scenario, error) {
	var sc domain.Scenario
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&sc).Error; err != nil {
		return nil, translate("get scenario", err)
	}
	return &sc, nil
}

// Update overwrites every column of sc after confirming userID owns it.
// The owner and creation time cannot be changed through sc.
func (s *ScenarioStore) Update(ctx context.Context, userID uint, sc *domain.Scenario) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Scenario
		if err := tx.Select("id", "user_id", "created_at").Where("id = ? AND user_id = ?", sc.ID, userID).First(&existing).Error; err != nil {
			return translate("update scenario", err)
		}
		sc.UserID = existing.UserID
		sc.CreatedAt = existing.CreatedAt
		return translate("update scenario", tx.Save(sc).Error)
	})
}

// Delete removes a scenario owned by userID.
func (s *ScenarioStore) Delete(ctx context.Context, id, userID uint) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Scenario{})
	if res.Error != nil {
		return translate("delete scenario", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Compare returns the scenarios among ids that exist and belong to userID,
// following the order of ids. Unknown and foreign ids are dropped.
func (s *ScenarioStore) Compare(ctx context.Context, userID uint, ids []uint) ([]domain.Scenario, error) {
	out := []domain.Scenario{}
	if len(ids) == 0 {
		return out, nil
	}
	var rows []domain.Scenario
	if err := s.db.WithContext(ctx).Where("user_id = ? AND id IN ?", userID, ids).Find(&rows).Error; err != nil {
		return nil, translate("compare scenarios", err)
	}
	byID := make(map[uint]domain.Scenario, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	for _, id := range ids {
		if sc, ok := byID[id]; ok {
			out = append(out, sc)
		}
	}
	return out, nil
}
