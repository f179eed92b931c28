package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core/studio"
)

type studioRow struct {
	Name        string `db:"name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	Address     string `db:"address"`
	Website     string `db:"website"`
	Description string `db:"description"`
}

type studioRepository struct {
	db *sqlx.DB
}

var _ studio.Repository = (*studioRepository)(nil) // interface compliance check

func NewStudioRepository(db *sqlx.DB) studio.Repository {
	return &studioRepository{db: db}
}

func (repo *studioRepository) GetProfile(ctx context.Context) (studio.Profile, error) {
	var row studioRow
	err := repo.db.GetContext(ctx, &row,
		`SELECT name, email, phone, address, website, description FROM studio_profile WHERE singleton`)
	if err == sql.ErrNoRows {
		return studio.Profile{}, nil // not yet configured
	}
	if err != nil {
		return studio.Profile{}, errors.Wrap(err, "getting studio profile")
	}
	return studio.Profile(row), nil
}

func (repo *studioRepository) ReplaceProfile(ctx context.Context, p studio.Profile) (studio.Profile, error) {
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO studio_profile (singleton, name, email, phone, address, website, description)
		VALUES (TRUE, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (singleton) DO UPDATE SET
			name = EXCLUDED.name, email = EXCLUDED.email, phone = EXCLUDED.phone,
			address = EXCLUDED.address, website = EXCLUDED.website, description = EXCLUDED.description`,
		p.Name, p.Email, p.Phone, p.Address, p.Website, p.Description)
	if err != nil {
		return studio.Profile{}, errors.Wrap(err, "replacing studio profile")
	}
	return p, nil
}
