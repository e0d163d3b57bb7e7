package repository

import (
	"context"

	"github.com/avisoslab/avisos-api/internal/domain/entity"
)

// ListingRepository defines the interface for job listing persistence.
type ListingRepository interface {
	Create(ctx context.Context, l *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	List(ctx context.Context) ([]*entity.Listing, error)
	Update(ctx context.Context, l *entity.Listing) error
	Delete(ctx context.Context, id string) error
}
