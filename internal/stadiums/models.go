package stadiums

import (
	"time"

	"github.com/google/uuid"
)

// Stadium defines a venue that owns seats and hosts events
type Stadium struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	City      string    `gorm:"not null" json:"city"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Stadium
func (Stadium) TableName() string {
	return "stadiums"
}
