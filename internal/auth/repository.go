package auth

import (
	"context"
	"errors"

	"cricverse/internal/customers"

	"gorm.io/gorm"
)

type Repository interface {
	CreateCustomer(ctx context.Context, customer *customers.Customer) error
	GetCustomerByID(ctx context.Context, id string) (*customers.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*customers.Customer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdatePasswordHash(ctx context.Context, customerID, passwordHash string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateCustomer(ctx context.Context, customer *customers.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *repository) GetCustomerByID(ctx context.Context, id string) (*customers.Customer, error) {
	var customer customers.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *repository) GetCustomerByEmail(ctx context.Context, email string) (*customers.Customer, error) {
	var customer customers.Customer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&customers.Customer{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdatePasswordHash(ctx context.Context, customerID, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&customers.Customer{}).
		Where("id = ?", customerID).
		Update("password_hash", passwordHash).Error
}
