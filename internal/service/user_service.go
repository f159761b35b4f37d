package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"saldoamigo/internal/cache"
	"saldoamigo/internal/errors"
	"saldoamigo/internal/model"
	"saldoamigo/internal/pagination"
	"saldoamigo/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateUserInput carries the mutable user fields. Password is an optional
// new plaintext password; when empty the stored hash is left untouched.
type UpdateUserInput struct {
	ID       uint
	Username string
	Email    string
	Phone    string
	Password string
	Role     model.Role
}

// UserService exposes user administration operations.
type UserService interface {
	Create(ctx context.Context, user *model.User, password string) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, p pagination.Params) ([]model.User, int64, error)
	FindByUsername(ctx context.Context, prefix string, p pagination.Params) ([]model.User, int64, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) Create(ctx context.Context, user *model.User, password string) (*model.User, error) {
	user.Email = normalizeEmail(user.Email)
	if !user.Role.Valid() {
		return nil, errors.ErrInvalidRole
	}

	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailAlreadyRegistered
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashed)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// Update rewrites the mutable fields. A freshly supplied plaintext password
// is always re-hashed; an absent password keeps the stored hash as is.
func (s *userService) Update(ctx context.Context, in UpdateUserInput) (*model.User, error) {
	found, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		found.PasswordHash = string(hashed)
	}

	found.Username = in.Username
	found.Email = normalizeEmail(in.Email)
	found.Phone = in.Phone
	if in.Role != "" {
		if !in.Role.Valid() {
			return nil, errors.ErrInvalidRole
		}
		found.Role = in.Role
	}

	if err := s.repo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(found.ID))
	return found, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrUserNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, found); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *userService) List(ctx context.Context, p pagination.Params) ([]model.User, int64, error) {
	return s.repo.FindAll(ctx, p)
}

func (s *userService) FindByUsername(ctx context.Context, prefix string, p pagination.Params) ([]model.User, int64, error) {
	return s.repo.FindByUsernamePrefix(ctx, prefix, p)
}
