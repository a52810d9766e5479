package events

import (
	"time"

	"cricverse/internal/stadiums"

	"github.com/google/uuid"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusLive      Status = "LIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Event defines a league fixture hosted at a stadium
type Event struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StadiumID uuid.UUID `gorm:"type:uuid;index;not null" json:"stadium_id"`
	Name      string    `gorm:"not null" json:"name"`
	HomeTeam  string    `gorm:"not null" json:"home_team"`
	AwayTeam  string    `gorm:"not null" json:"away_team"`
	EventDate time.Time `gorm:"index;not null" json:"event_date"`
	Status    Status    `gorm:"type:varchar(20);default:'SCHEDULED'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Stadium *stadiums.Stadium `json:"stadium,omitempty" gorm:"foreignKey:StadiumID"`
}

// TableName sets the table name for Event
func (Event) TableName() string {
	return "events"
}

func (s Status) IsBookable() bool {
	return s == StatusScheduled
}
