package database

import (
	"cricverse/internal/bookings"
	"cricverse/internal/customers"
	"cricverse/internal/events"
	"cricverse/internal/seats"
	"cricverse/internal/stadiums"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customers.Customer{},
		&stadiums.Stadium{},
		&events.Event{},
		&seats.Seat{},
		&bookings.Booking{},
		&bookings.Ticket{},
		&bookings.Payment{},
	)
}
