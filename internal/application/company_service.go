package application

import (
	"context"

	"github.com/avisoslab/avisos-api/internal/domain/entity"
	"github.com/avisoslab/avisos-api/internal/domain/repository"
)

// CompanyService exposes company CRUD to the HTTP layer.
type CompanyService struct {
	Companies repository.CompanyRepository
}

func NewCompanyService(companies repository.CompanyRepository) *CompanyService {
	return &CompanyService{Companies: companies}
}

type CompanyInput struct {
	Name        string
	Description string
	Website     string
}

func (s *CompanyService) Create(ctx context.Context, in CompanyInput) (*entity.Company, error) {
	c := &entity.Company{
		Name:        in.Name,
		Description: in.Description,
		Website:     in.Website,
	}
	if err := s.Companies.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*entity.Company, error) {
	return s.Companies.GetByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context) ([]*entity.Company, error) {
	return s.Companies.List(ctx)
}

func (s *CompanyService) Update(ctx context.Context, id string, in CompanyInput) (*entity.Company, error) {
	c, err := s.Companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Description = in.Description
	c.Website = in.Website
	if err := s.Companies.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	return s.Companies.Delete(ctx, id)
}
