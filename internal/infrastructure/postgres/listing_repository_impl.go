package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/avisoslab/avisos-api/internal/domain/entity"
	"github.com/avisoslab/avisos-api/internal/domain/repository"
)

type ListingRepository struct {
	db DB
}

func NewListingRepository(db DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, l *entity.Listing) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO listings (title, description, company_id, location, salary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, l.Title, l.Description, l.CompanyID, l.Location, l.Salary)

	return row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	l := &entity.Listing{}

	row := r.db.QueryRow(ctx, `
		SELECT id, title, description, company_id, location, salary, created_at, updated_at
		FROM listings
		WHERE id = $1
	`, id)

	if err := row.Scan(&l.ID, &l.Title, &l.Description, &l.CompanyID, &l.Location,
		&l.Salary, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return l, nil
}

func (r *ListingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, company_id, location, salary, created_at, updated_at
		FROM listings
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Listing, 0)
	for rows.Next() {
		l := &entity.Listing{}
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.CompanyID, &l.Location,
			&l.Salary, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *ListingRepository) Update(ctx context.Context, l *entity.Listing) error {
	l.UpdatedAt = time.Now()

	res, err := r.db.Exec(ctx, `
		UPDATE listings
		SET title = $1, description = $2, company_id = $3, location = $4, salary = $5, updated_at = $6
		WHERE id = $7
	`, l.Title, l.Description, l.CompanyID, l.Location, l.Salary, l.UpdatedAt, l.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ListingRepository = (*ListingRepository)(nil)
