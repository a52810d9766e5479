package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cricverse/internal/customers"
	"cricverse/internal/events"
	"cricverse/internal/seats"
	"cricverse/internal/shared/config"
	"cricverse/internal/shared/database"
	"cricverse/internal/stadiums"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting CricVerse Database Seeder...")

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"payments",
		"tickets",
		"bookings",
		"seats",
		"events",
		"stadiums",
		"customers",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	// Customers first (no dependencies)
	if err := s.SeedCustomers(); err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}

	// Stadiums with their seat maps
	stadiumIDs, err := s.SeedStadiums()
	if err != nil {
		return fmt.Errorf("failed to seed stadiums: %w", err)
	}

	if err := s.SeedSeats(stadiumIDs); err != nil {
		return fmt.Errorf("failed to seed seats: %w", err)
	}

	// League fixtures
	if err := s.SeedEvents(stadiumIDs); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	// Clear Redis so stale availability caches and pending orders
	// from a previous run cannot leak in
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedCustomers creates 3 accounts: 1 admin and 2 customers
func (s *Seeder) SeedCustomers() error {
	fmt.Println("  👤 Seeding customers...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	customersData := []struct {
		name  string
		email string
		phone string
		role  customers.Role
	}{
		{"Admin User", "admin@cricverse.com", "+61400000001", customers.RoleAdmin},
		{"Ravi Sharma", "ravi.sharma@example.com", "+61400000002", customers.RoleCustomer},
		{"Priya Patel", "priya.patel@example.com", "+61400000003", customers.RoleCustomer},
	}

	for _, data := range customersData {
		customer := customers.Customer{
			ID:           uuid.New(),
			Name:         data.name,
			Email:        data.email,
			Phone:        data.phone,
			PasswordHash: string(hashedPassword),
			Role:         data.role,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&customer).Error; err != nil {
			return fmt.Errorf("failed to create customer %s: %w", data.email, err)
		}
		fmt.Printf("    ✅ Created customer: %s (%s)\n", customer.Email, customer.Role)
	}

	return nil
}

// SeedStadiums creates the league venues
func (s *Seeder) SeedStadiums() (map[string]uuid.UUID, error) {
	fmt.Println("  🏟️  Seeding stadiums...")

	stadiumIDs := make(map[string]uuid.UUID)

	stadiumsData := []struct {
		key      string
		name     string
		city     string
		capacity int
	}{
		{"mcg", "Melbourne Cricket Ground", "Melbourne", 100024},
		{"scg", "Sydney Cricket Ground", "Sydney", 48000},
	}

	for _, data := range stadiumsData {
		stadium := stadiums.Stadium{
			ID:        uuid.New(),
			Name:      data.name,
			City:      data.city,
			Capacity:  data.capacity,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&stadium).Error; err != nil {
			return nil, fmt.Errorf("failed to create stadium %s: %w", data.name, err)
		}

		stadiumIDs[data.key] = stadium.ID
		fmt.Printf("    ✅ Created stadium: %s\n", stadium.Name)
	}

	return stadiumIDs, nil
}

// SeedSeats creates a small priced seat map per stadium: enough rows
// to exercise multi-seat orders and contention without drowning local
// databases
func (s *Seeder) SeedSeats(stadiumIDs map[string]uuid.UUID) error {
	fmt.Println("  💺 Seeding seats...")

	sections := []struct {
		name     string
		seatType string
		price    float64
		rows     int
		perRow   int
	}{
		{"Premium", "Premium", 150.00, 2, 10},
		{"Members", "Standard", 90.00, 3, 10},
		{"General", "Standard", 45.00, 5, 10},
	}

	for key, stadiumID := range stadiumIDs {
		var batch []seats.Seat
		for _, section := range sections {
			for row := 1; row <= section.rows; row++ {
				for num := 1; num <= section.perRow; num++ {
					batch = append(batch, seats.Seat{
						ID:          uuid.New(),
						StadiumID:   stadiumID,
						Section:     section.name,
						RowNumber:   fmt.Sprintf("%d", row),
						SeatNumber:  fmt.Sprintf("%d", num),
						SeatType:    section.seatType,
						Price:       section.price,
						IsAvailable: true,
						CreatedAt:   time.Now(),
						UpdatedAt:   time.Now(),
					})
				}
			}
		}

		if err := s.db.PostgreSQL.Create(&batch).Error; err != nil {
			return fmt.Errorf("failed to create seats for stadium %s: %w", key, err)
		}
		fmt.Printf("    ✅ Created %d seats for %s\n", len(batch), key)
	}

	return nil
}

// SeedEvents creates upcoming fixtures at each stadium
func (s *Seeder) SeedEvents(stadiumIDs map[string]uuid.UUID) error {
	fmt.Println("  🏏 Seeding events...")

	eventsData := []struct {
		stadiumKey string
		name       string
		homeTeam   string
		awayTeam   string
		daysAhead  int
	}{
		{"mcg", "Melbourne Stars vs Sydney Sixers", "Melbourne Stars", "Sydney Sixers", 7},
		{"mcg", "Melbourne Stars vs Perth Scorchers", "Melbourne Stars", "Perth Scorchers", 14},
		{"scg", "Sydney Sixers vs Brisbane Heat", "Sydney Sixers", "Brisbane Heat", 10},
	}

	for _, data := range eventsData {
		event := events.Event{
			ID:        uuid.New(),
			StadiumID: stadiumIDs[data.stadiumKey],
			Name:      data.name,
			HomeTeam:  data.homeTeam,
			AwayTeam:  data.awayTeam,
			EventDate: time.Now().AddDate(0, 0, data.daysAhead),
			Status:    events.StatusScheduled,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create event %s: %w", data.name, err)
		}
		fmt.Printf("    ✅ Created event: %s\n", event.Name)
	}

	return nil
}
