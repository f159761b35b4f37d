package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"saldoamigo/internal/errors"
	"saldoamigo/internal/model"
	"saldoamigo/internal/pagination"
	"saldoamigo/internal/repository"
)

// TransactionService exposes transaction operations.
type TransactionService interface {
	Create(ctx context.Context, transaction *model.Transaction) (*model.Transaction, error)
	Get(ctx context.Context, id uint) (*model.Transaction, error)
	Update(ctx context.Context, transaction *model.Transaction) (*model.Transaction, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, p pagination.Params) ([]model.Transaction, int64, error)
	FindByDate(ctx context.Context, date time.Time, p pagination.Params) ([]model.Transaction, int64, error)
	FindByAccount(ctx context.Context, accountID uint, p pagination.Params) ([]model.Transaction, int64, error)
	FindByGroup(ctx context.Context, groupID uint, p pagination.Params) ([]model.Transaction, int64, error)
}

type transactionService struct {
	repo     repository.TransactionRepository
	accounts repository.AccountRepository
	groups   repository.GroupRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo repository.TransactionRepository, accounts repository.AccountRepository, groups repository.GroupRepository) TransactionService {
	return &transactionService{repo: repo, accounts: accounts, groups: groups}
}

// Create persists a transaction after checking that the referenced account
// and group exist. The date is stamped server-side when absent.
func (s *transactionService) Create(ctx context.Context, transaction *model.Transaction) (*model.Transaction, error) {
	if _, err := s.accounts.FindByID(ctx, transaction.AccountID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrAccountNotFound
		}
		return nil, err
	}
	if _, err := s.groups.FindByID(ctx, transaction.GroupID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrGroupNotFound
		}
		return nil, err
	}

	if err := s.repo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return transaction, nil
}

func (s *transactionService) Get(ctx context.Context, id uint) (*model.Transaction, error) {
	transaction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// Update rewrites the value and the account/group references; the original
// date is kept.
func (s *transactionService) Update(ctx context.Context, transaction *model.Transaction) (*model.Transaction, error) {
	found, err := s.repo.FindByID(ctx, transaction.ID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrTransactionNotFound
		}
		return nil, err
	}

	found.Value = transaction.Value
	if transaction.AccountID != 0 {
		found.AccountID = transaction.AccountID
		found.Account = nil
	}
	if transaction.GroupID != 0 {
		found.GroupID = transaction.GroupID
		found.Group = nil
	}

	if err := s.repo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return found, nil
}

func (s *transactionService) Delete(ctx context.Context, id uint) error {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrTransactionNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, found); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (s *transactionService) List(ctx context.Context, p pagination.Params) ([]model.Transaction, int64, error) {
	return s.repo.FindAll(ctx, p)
}

func (s *transactionService) FindByDate(ctx context.Context, date time.Time, p pagination.Params) ([]model.Transaction, int64, error) {
	return s.repo.FindByDate(ctx, date, p)
}

func (s *transactionService) FindByAccount(ctx context.Context, accountID uint, p pagination.Params) ([]model.Transaction, int64, error) {
	return s.repo.FindByAccountID(ctx, accountID, p)
}

func (s *transactionService) FindByGroup(ctx context.Context, groupID uint, p pagination.Params) ([]model.Transaction, int64, error) {
	return s.repo.FindByGroupID(ctx, groupID, p)
}
