package customers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reader is the lookup surface the booking flow needs: customer details
// for enriching post-commit notification payloads.
type Reader interface {
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*Customer, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Reader {
	return &repository{db: db}
}

func (r *repository) GetCustomerByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	var customer Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repository) GetCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	var customer Customer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
