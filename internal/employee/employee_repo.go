package employee

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByKGID(ctx context.Context, kgid string) (*Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	FindAllWithHistory(ctx context.Context) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	ReplacePastServices(ctx context.Context, empl *Employee, services []PastService) error
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

// conn binds queries to the active transaction when one is set.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db = db.Session(&gorm.Session{NewDB: true, Context: ctx})
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Create(empl).Error
}

// Update persists only the employee row. Service history is rewritten
// separately via ReplacePastServices.
func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).
		Omit("PastServices").
		Save(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		Preload("PastServices", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByKGID(ctx context.Context, kgid string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		Preload("PastServices", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		First(&empl, "kgid = ?", kgid).Error
	return &empl, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Employee, int64, error) {
	query := r.conn(ctx).Model(&Employee{})

	if filter.Category != "" {
		query = query.Where("designation_group = ?", filter.Category)
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		switch filter.SearchMode {
		case "kgid":
			query = query.Where("kgid ILIKE ?", q+"%")
		default:
			query = query.Where("full_name ILIKE ?", "%"+q+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []Employee
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order("full_name ASC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&employees).Error

	return employees, total, err
}

func (r *repository) FindAllWithHistory(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).
		Preload("PastServices", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.conn(ctx).
		Select("id", "kgid", "full_name").
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

// ReplacePastServices swaps the full service history of an employee. Used by
// the transfer flow when the current posting is folded into history.
func (r *repository) ReplacePastServices(ctx context.Context, empl *Employee, services []PastService) error {
	if err := r.conn(ctx).
		Where("employee_id = ?", empl.ID).
		Delete(&PastService{}).Error; err != nil {
		return err
	}
	if len(services) == 0 {
		return nil
	}
	return r.conn(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&services).Error
}
