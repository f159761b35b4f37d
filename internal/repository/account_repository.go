package repository

import (
	"context"

	"gorm.io/gorm"

	"saldoamigo/internal/model"
	"saldoamigo/internal/pagination"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	Update(ctx context.Context, account *model.Account) error
	Delete(ctx context.Context, account *model.Account) error
	FindByID(ctx context.Context, id uint) (*model.Account, error)
	FindAll(ctx context.Context, p pagination.Params) ([]model.Account, int64, error)
	FindByNameLike(ctx context.Context, name string, p pagination.Params) ([]model.Account, int64, error)
	FindByCityLike(ctx context.Context, city string, p pagination.Params) ([]model.Account, int64, error)
	FindByPixKeyLike(ctx context.Context, pixKey string, p pagination.Params) ([]model.Account, int64, error)
	FindByUserID(ctx context.Context, userID uint, p pagination.Params) ([]model.Account, int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository builds a GORM-backed repository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) Update(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *accountRepository) Delete(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Delete(account).Error
}

func (r *accountRepository) FindByID(ctx context.Context, id uint) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Preload("User").First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindAll(ctx context.Context, p pagination.Params) ([]model.Account, int64, error) {
	return r.findPage(ctx, p, "", nil)
}

func (r *accountRepository) FindByNameLike(ctx context.Context, name string, p pagination.Params) ([]model.Account, int64, error) {
	return r.findPage(ctx, p, "name LIKE ?", "%"+name+"%")
}

func (r *accountRepository) FindByCityLike(ctx context.Context, city string, p pagination.Params) ([]model.Account, int64, error) {
	return r.findPage(ctx, p, "city LIKE ?", "%"+city+"%")
}

func (r *accountRepository) FindByPixKeyLike(ctx context.Context, pixKey string, p pagination.Params) ([]model.Account, int64, error) {
	return r.findPage(ctx, p, "pix_key LIKE ?", "%"+pixKey+"%")
}

func (r *accountRepository) FindByUserID(ctx context.Context, userID uint, p pagination.Params) ([]model.Account, int64, error) {
	return r.findPage(ctx, p, "user_id = ?", userID)
}

func (r *accountRepository) findPage(ctx context.Context, p pagination.Params, where string, arg interface{}) ([]model.Account, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Account{})
	if where != "" {
		q = q.Where(where, arg)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var accounts []model.Account
	if err := p.Scope(q).Preload("User").Find(&accounts).Error; err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}
