package repository

import (
	"context"

	"gorm.io/gorm"

	"saldoamigo/internal/model"
	"saldoamigo/internal/pagination"
)

// UserRepository defines persistence operations for users. It is the
// credential store of the authentication flow: FindByEmail backs login and
// the duplicate check on registration.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context, p pagination.Params) ([]model.User, int64, error)
	FindByUsernamePrefix(ctx context.Context, prefix string, p pagination.Params) ([]model.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Delete(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail matches case-insensitively under MySQL's default collation;
// callers additionally lowercase emails before store and lookup.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context, p pagination.Params) ([]model.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.User{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	if err := p.Scope(q).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) FindByUsernamePrefix(ctx context.Context, prefix string, p pagination.Params) ([]model.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.User{}).Where("username LIKE ?", prefix+"%")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	if err := p.Scope(q).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
