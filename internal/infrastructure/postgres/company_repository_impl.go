package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/avisoslab/avisos-api/internal/domain/entity"
	"github.com/avisoslab/avisos-api/internal/domain/repository"
)

type CompanyRepository struct {
	db DB
}

func NewCompanyRepository(db DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO companies (name, description, website)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Description, c.Website)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	c := &entity.Company{}

	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, website, created_at, updated_at
		FROM companies
		WHERE id = $1
	`, id)

	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Website,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, website, created_at, updated_at
		FROM companies
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Company, 0)
	for rows.Next() {
		c := &entity.Company{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Website,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CompanyRepository) Update(ctx context.Context, c *entity.Company) error {
	c.UpdatedAt = time.Now()

	res, err := r.db.Exec(ctx, `
		UPDATE companies
		SET name = $1, description = $2, website = $3, updated_at = $4
		WHERE id = $5
	`, c.Name, c.Description, c.Website, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
