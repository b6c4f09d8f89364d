package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"custdesk/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Init creates the customers table if it does not exist yet. Safe to call
// on every start; existing rows are untouched.
func (r *CustomerRepo) Init(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&domain.Customer{}); err != nil {
		return fmt.Errorf("%w: migrate customers: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Insert appends exactly one row; the backend assigns id and created_at.
// The insert runs in its own implicit transaction, so a failure leaves
// the table unchanged.
func (r *CustomerRepo) Insert(ctx context.Context, c *domain.Customer) (int64, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isConstraintErr(err) {
			return 0, fmt.Errorf("%w: %v", domain.ErrConstraintViolation, err)
		}
		return 0, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return c.ID, nil
}

func isConstraintErr(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrConstraint
	}
	return false
}
