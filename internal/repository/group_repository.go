package repository

import (
	"context"

	"gorm.io/gorm"

	"saldoamigo/internal/model"
	"saldoamigo/internal/pagination"
)

// GroupRepository defines persistence operations for groups.
type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	Update(ctx context.Context, group *model.Group) error
	Delete(ctx context.Context, group *model.Group) error
	FindByID(ctx context.Context, id uint) (*model.Group, error)
	FindAll(ctx context.Context, p pagination.Params) ([]model.Group, int64, error)
	FindByNameLike(ctx context.Context, name string, p pagination.Params) ([]model.Group, int64, error)
	FindByUserID(ctx context.Context, userID uint, p pagination.Params) ([]model.Group, int64, error)
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository builds a GORM-backed repository.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepository) Update(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *groupRepository) Delete(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Delete(group).Error
}

func (r *groupRepository) FindByID(ctx context.Context, id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).Preload("User").First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) FindAll(ctx context.Context, p pagination.Params) ([]model.Group, int64, error) {
	return r.findPage(ctx, p, "", nil)
}

func (r *groupRepository) FindByNameLike(ctx context.Context, name string, p pagination.Params) ([]model.Group, int64, error) {
	return r.findPage(ctx, p, "name LIKE ?", "%"+name+"%")
}

func (r *groupRepository) FindByUserID(ctx context.Context, userID uint, p pagination.Params) ([]model.Group, int64, error) {
	return r.findPage(ctx, p, "user_id = ?", userID)
}

func (r *groupRepository) findPage(ctx context.Context, p pagination.Params, where string, arg interface{}) ([]model.Group, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Group{})
	if where != "" {
		q = q.Where(where, arg)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var groups []model.Group
	if err := p.Scope(q).Preload("User").Find(&groups).Error; err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}
