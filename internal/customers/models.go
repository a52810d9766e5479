package customers

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// Customer defines a registered account that can hold bookings
type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);default:'CUSTOMER'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the table name for Customer
func (Customer) TableName() string {
	return "customers"
}

// SetPassword hashes and stores the given plaintext password
func (c *Customer) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (c *Customer) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(plaintext)) == nil
}

func (c *Customer) IsAdmin() bool {
	return c.Role == RoleAdmin
}
