package stadiums

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reader provides stadium lookups for notification enrichment and
// the browse endpoints.
type Reader interface {
	GetStadiumByID(ctx context.Context, id uuid.UUID) (*Stadium, error)
	ListStadiums(ctx context.Context) ([]Stadium, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Reader {
	return &repository{db: db}
}

func (r *repository) GetStadiumByID(ctx context.Context, id uuid.UUID) (*Stadium, error) {
	var stadium Stadium
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&stadium).Error
	if err != nil {
		return nil, err
	}
	return &stadium, nil
}

func (r *repository) ListStadiums(ctx context.Context) ([]Stadium, error) {
	var stadiums []Stadium
	err := r.db.WithContext(ctx).Order("name ASC").Find(&stadiums).Error
	return stadiums, err
}
