package transfer

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=transfer_repo.go -destination=mock/transfer_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Transfer) error
	FindByID(ctx context.Context, id string) (*Transfer, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Transfer, error)
	List(ctx context.Context, filter ListFilter) ([]Transfer, int64, error)
	FindAll(ctx context.Context) ([]Transfer, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db = db.Session(&gorm.Session{NewDB: true, Context: ctx})
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, t *Transfer) error {
	return r.conn(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Transfer, error) {
	var t Transfer
	err := r.conn(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]Transfer, error) {
	var transfers []Transfer
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_from DESC").
		Find(&transfers).Error
	return transfers, err
}

func (r *repository) FindAll(ctx context.Context) ([]Transfer, error) {
	var transfers []Transfer
	err := r.conn(ctx).
		Order("effective_from DESC").
		Find(&transfers).Error
	return transfers, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Transfer, int64, error) {
	query := r.conn(ctx).Model(&Transfer{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transfers []Transfer
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order("effective_from DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&transfers).Error

	return transfers, total, err
}
