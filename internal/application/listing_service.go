package application

import (
	"context"

	"github.com/avisoslab/avisos-api/internal/domain/entity"
	"github.com/avisoslab/avisos-api/internal/domain/repository"
)

// ListingService exposes job listing CRUD to the HTTP layer.
type ListingService struct {
	Listings repository.ListingRepository
}

func NewListingService(listings repository.ListingRepository) *ListingService {
	return &ListingService{Listings: listings}
}

type ListingInput struct {
	Title       string
	Description string
	CompanyID   string
	Location    string
	Salary      string
}

func (s *ListingService) Create(ctx context.Context, in ListingInput) (*entity.Listing, error) {
	l := &entity.Listing{
		Title:       in.Title,
		Description: in.Description,
		CompanyID:   in.CompanyID,
		Location:    in.Location,
		Salary:      in.Salary,
	}
	if err := s.Listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*entity.Listing, error) {
	return s.Listings.GetByID(ctx, id)
}

func (s *ListingService) List(ctx context.Context) ([]*entity.Listing, error) {
	return s.Listings.List(ctx)
}

func (s *ListingService) Update(ctx context.Context, id string, in ListingInput) (*entity.Listing, error) {
	l, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Title = in.Title
	l.Description = in.Description
	l.CompanyID = in.CompanyID
	l.Location = in.Location
	l.Salary = in.Salary
	if err := s.Listings.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *ListingService) Delete(ctx context.Context, id string) error {
	return s.Listings.Delete(ctx, id)
}
