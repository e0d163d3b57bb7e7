package repository

import (
	"context"

	"github.com/avisoslab/avisos-api/internal/domain/entity"
)

// CompanyRepository defines the interface for company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, c *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	Update(ctx context.Context, c *entity.Company) error
	Delete(ctx context.Context, id string) error
}
