package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"saldoamigo/internal/errors"
	"saldoamigo/internal/model"
	"saldoamigo/internal/pagination"
	"saldoamigo/internal/repository"
)

// GroupService exposes group operations.
type GroupService interface {
	Create(ctx context.Context, group *model.Group) (*model.Group, error)
	Get(ctx context.Context, id uint) (*model.Group, error)
	Update(ctx context.Context, group *model.Group) (*model.Group, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, p pagination.Params) ([]model.Group, int64, error)
	FindByName(ctx context.Context, name string, p pagination.Params) ([]model.Group, int64, error)
	FindByUser(ctx context.Context, userID uint, p pagination.Params) ([]model.Group, int64, error)
}

type groupService struct {
	repo repository.GroupRepository
}

// NewGroupService creates a new group service.
func NewGroupService(repo repository.GroupRepository) GroupService {
	return &groupService{repo: repo}
}

func (s *groupService) Create(ctx context.Context, group *model.Group) (*model.Group, error) {
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

func (s *groupService) Get(ctx context.Context, id uint) (*model.Group, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

// Update rewrites name and description; ownership stays with the creator.
func (s *groupService) Update(ctx context.Context, group *model.Group) (*model.Group, error) {
	found, err := s.repo.FindByID(ctx, group.ID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrGroupNotFound
		}
		return nil, err
	}

	found.Name = group.Name
	found.Description = group.Description

	if err := s.repo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("update group: %w", err)
	}
	return found, nil
}

func (s *groupService) Delete(ctx context.Context, id uint) error {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrGroupNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, found); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

func (s *groupService) List(ctx context.Context, p pagination.Params) ([]model.Group, int64, error) {
	return s.repo.FindAll(ctx, p)
}

func (s *groupService) FindByName(ctx context.Context, name string, p pagination.Params) ([]model.Group, int64, error) {
	return s.repo.FindByNameLike(ctx, name, p)
}

func (s *groupService) FindByUser(ctx context.Context, userID uint, p pagination.Params) ([]model.Group, int64, error) {
	return s.repo.FindByUserID(ctx, userID, p)
}
