package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"saldoamigo/internal/model"
	"saldoamigo/internal/pagination"
)

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *model.Transaction) error
	Update(ctx context.Context, transaction *model.Transaction) error
	Delete(ctx context.Context, transaction *model.Transaction) error
	FindByID(ctx context.Context, id uint) (*model.Transaction, error)
	FindAll(ctx context.Context, p pagination.Params) ([]model.Transaction, int64, error)
	FindByDate(ctx context.Context, date time.Time, p pagination.Params) ([]model.Transaction, int64, error)
	FindByAccountID(ctx context.Context, accountID uint, p pagination.Params) ([]model.Transaction, int64, error)
	FindByGroupID(ctx context.Context, groupID uint, p pagination.Params) ([]model.Transaction, int64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository builds a GORM-backed repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *model.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *transactionRepository) Update(ctx context.Context, transaction *model.Transaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}

func (r *transactionRepository) Delete(ctx context.Context, transaction *model.Transaction) error {
	return r.db.WithContext(ctx).Delete(transaction).Error
}

func (r *transactionRepository) FindByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.db.WithContext(ctx).Preload("Account").Preload("Group").First(&transaction, id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepository) FindAll(ctx context.Context, p pagination.Params) ([]model.Transaction, int64, error) {
	return r.findPage(ctx, p, "", nil)
}

// FindByDate matches on the calendar day, ignoring the time of day.
func (r *transactionRepository) FindByDate(ctx context.Context, date time.Time, p pagination.Params) ([]model.Transaction, int64, error) {
	return r.findPage(ctx, p, "DATE(date) = ?", date.Format("2006-01-02"))
}

func (r *transactionRepository) FindByAccountID(ctx context.Context, accountID uint, p pagination.Params) ([]model.Transaction, int64, error) {
	return r.findPage(ctx, p, "account_id = ?", accountID)
}

func (r *transactionRepository) FindByGroupID(ctx context.Context, groupID uint, p pagination.Params) ([]model.Transaction, int64, error) {
	return r.findPage(ctx, p, "group_id = ?", groupID)
}

func (r *transactionRepository) findPage(ctx context.Context, p pagination.Params, where string, arg interface{}) ([]model.Transaction, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Transaction{})
	if where != "" {
		q = q.Where(where, arg)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []model.Transaction
	if err := p.Scope(q).Preload("Account").Preload("Group").Find(&transactions).Error; err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}
