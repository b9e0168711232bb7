package store

import (
	"context"
	"strings"
	"time"

	"retirement_planner/internal/domain"

	"gorm.io/gorm"
)

// UserStore persists accounts.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts u. A taken email or open id yields ErrDuplicate.
func (s *UserStore) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(u.Email)
	return translate("create user", s.db.WithContext(ctx).Create(u).Error)
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&u).Error; err != nil {
		return nil, translate("find user", err)
	}
	return &u, nil
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate("find user", err)
	}
	return &u, nil
}

// TouchLastSignedIn records a successful login.
func (s *UserStore) TouchLastSignedIn(ctx context.Context, id uint, at time.Time) error {
	return translate("touch user", s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Update("last_signed_in", at).Error)
}

// List returns one page of users ordered by id.
func (s *UserStore) List(ctx context.Context, page Page) ([]domain.User, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, translate("count users", err)
	}
	users := []domain.User{}
	if err := s.db.WithContext(ctx).Order("id").Scopes(page.scope).Find(&users).Error; err != nil {
		return nil, 0, translate("list users", err)
	}
	return users, total, nil
}
