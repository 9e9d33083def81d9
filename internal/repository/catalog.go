package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CatalogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCatalogRepo(db *dbpg.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CatalogRepository) CreateCity(ctx context.Context, c *domain.City, hoods []*domain.Neighborhood) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `INSERT INTO cities (id, name) VALUES ($1, $2)`, c.ID, c.Name); err != nil {
		if pgCode(err) == pgUniqueViolation {
			return domain.ErrCityExists
		}
		return fmt.Errorf("insert city: %w", err)
	}

	for _, n := range hoods {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO neighborhoods (id, city_id, name) VALUES ($1, $2, $3)`,
			n.ID, c.ID, n.Name,
		); err != nil {
			return fmt.Errorf("insert neighborhood %q: %w", n.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit city: %w", err)
	}
	return nil
}

func (r *CatalogRepository) ListCities(ctx context.Context) ([]*domain.City, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `SELECT id, name FROM cities ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var res []*domain.City
	for rows.Next() {
		var c domain.City
		if err = rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CatalogRepository) GetCity(ctx context.Context, id string) (*domain.City, error) {
	return r.getCity(ctx, `SELECT id, name FROM cities WHERE id::text = $1`, id)
}

func (r *CatalogRepository) FindCity(ctx context.Context, name string) (*domain.City, error) {
	return r.getCity(ctx, `SELECT id, name FROM cities WHERE lower(trim(name)) = lower(trim($1))`, name)
}

func (r *CatalogRepository) getCity(ctx context.Context, query string, arg string) (*domain.City, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get city: %w", err)
	}

	var c domain.City
	if err = row.Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCityNotFound
		}
		return nil, fmt.Errorf("scan city: %w", err)
	}
	return &c, nil
}

func (r *CatalogRepository) ListNeighborhoods(ctx context.Context, cityID string) ([]*domain.Neighborhood, error) {
	if _, err := r.GetCity(ctx, cityID); err != nil {
		return nil, err
	}

	query := `SELECT id, city_id, name
			  FROM neighborhoods
			  WHERE city_id::text = $1
			  ORDER BY name, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, cityID)
	if err != nil {
		return nil, fmt.Errorf("list neighborhoods: %w", err)
	}
	defer rows.Close()

	var res []*domain.Neighborhood
	for rows.Next() {
		var n domain.Neighborhood
		if err = rows.Scan(&n.ID, &n.CityID, &n.Name); err != nil {
			return nil, fmt.Errorf("scan neighborhood: %w", err)
		}
		res = append(res, &n)
	}

	return res, rows.Err()
}

func (r *CatalogRepository) CreateCommunityStyle(ctx context.Context, s *domain.CommunityStyle) error {
	_, err := r.db.ExecWithRetry(ctx, r.strategy,
		`INSERT INTO community_styles (id, label, description) VALUES ($1, $2, $3)`,
		s.ID, s.Label, s.Description,
	)
	if err != nil {
		return fmt.Errorf("insert community style: %w", err)
	}
	return nil
}

func (r *CatalogRepository) ListCommunityStyles(ctx context.Context) ([]*domain.CommunityStyle, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT id, label, description FROM community_styles ORDER BY label, id`)
	if err != nil {
		return nil, fmt.Errorf("list community styles: %w", err)
	}
	defer rows.Close()

	var res []*domain.CommunityStyle
	for rows.Next() {
		var s domain.CommunityStyle
		if err = rows.Scan(&s.ID, &s.Label, &s.Description); err != nil {
			return nil, fmt.Errorf("scan community style: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *CatalogRepository) GetCommunityStyle(ctx context.Context, id string) (*domain.CommunityStyle, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT id, label, description FROM community_styles WHERE id::text = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get community style: %w", err)
	}

	var s domain.CommunityStyle
	if err = row.Scan(&s.ID, &s.Label, &s.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStyleNotFound
		}
		return nil, fmt.Errorf("scan community style: %w", err)
	}
	return &s, nil
}
