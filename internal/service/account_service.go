package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"saldoamigo/internal/cache"
	"saldoamigo/internal/errors"
	"saldoamigo/internal/model"
	"saldoamigo/internal/pagination"
	"saldoamigo/internal/repository"
)

const accountCacheTTL = 5 * time.Minute

// AccountService exposes account operations.
type AccountService interface {
	Create(ctx context.Context, account *model.Account) (*model.Account, error)
	Get(ctx context.Context, id uint) (*model.Account, error)
	Update(ctx context.Context, account *model.Account) (*model.Account, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, p pagination.Params) ([]model.Account, int64, error)
	FindByName(ctx context.Context, name string, p pagination.Params) ([]model.Account, int64, error)
	FindByCity(ctx context.Context, city string, p pagination.Params) ([]model.Account, int64, error)
	FindByPixKey(ctx context.Context, pixKey string, p pagination.Params) ([]model.Account, int64, error)
	FindByUser(ctx context.Context, userID uint, p pagination.Params) ([]model.Account, int64, error)
}

type accountService struct {
	repo  repository.AccountRepository
	cache *cache.Client
}

// NewAccountService creates a new account service.
func NewAccountService(repo repository.AccountRepository, cache *cache.Client) AccountService {
	return &accountService{repo: repo, cache: cache}
}

func (s *accountService) cacheKey(id uint) string {
	return fmt.Sprintf("account:%d", id)
}

func (s *accountService) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// Get retrieves an account by ID with read-through caching.
func (s *accountService) Get(ctx context.Context, id uint) (*model.Account, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Account
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrAccountNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(account); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, accountCacheTTL)
	}
	return account, nil
}

// Update rewrites name, pix key and city. Ownership never moves between
// users through this path.
func (s *accountService) Update(ctx context.Context, account *model.Account) (*model.Account, error) {
	found, err := s.repo.FindByID(ctx, account.ID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrAccountNotFound
		}
		return nil, err
	}

	found.Name = account.Name
	found.PixKey = account.PixKey
	found.City = account.City

	if err := s.repo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(found.ID))
	return found, nil
}

func (s *accountService) Delete(ctx context.Context, id uint) error {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrAccountNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, found); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *accountService) List(ctx context.Context, p pagination.Params) ([]model.Account, int64, error) {
	return s.repo.FindAll(ctx, p)
}

func (s *accountService) FindByName(ctx context.Context, name string, p pagination.Params) ([]model.Account, int64, error) {
	return s.repo.FindByNameLike(ctx, name, p)
}

func (s *accountService) FindByCity(ctx context.Context, city string, p pagination.Params) ([]model.Account, int64, error) {
	return s.repo.FindByCityLike(ctx, city, p)
}

func (s *accountService) FindByPixKey(ctx context.Context, pixKey string, p pagination.Params) ([]model.Account, int64, error) {
	return s.repo.FindByPixKeyLike(ctx, pixKey, p)
}

func (s *accountService) FindByUser(ctx context.Context, userID uint, p pagination.Params) ([]model.Account, int64, error) {
	return s.repo.FindByUserID(ctx, userID, p)
}
