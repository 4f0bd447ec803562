package designation

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=designation_repo.go -destination=mock/designation_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Designation, error)
	FindByID(ctx context.Context, id string) (*Designation, error)
	FindByGroup(ctx context.Context, group string) ([]Designation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Designation, error) {
	var designations []Designation
	err := r.db.WithContext(ctx).
		Order("\"group\" ASC, rank DESC").
		Find(&designations).Error
	return designations, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Designation, error) {
	var d Designation
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) FindByGroup(ctx context.Context, group string) ([]Designation, error) {
	var designations []Designation
	err := r.db.WithContext(ctx).
		Where("\"group\" = ?", group).
		Order("rank DESC").
		Find(&designations).Error
	return designations, err
}
