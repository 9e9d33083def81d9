package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const babysitterColumns = `id, full_name, phone, age, city, neighborhood, service_areas,
	guardian_required_approval, guardian_phone, guardian_telegram_chat_id,
	community_style_id, telegram_chat_id, created_at`

type ProfileRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProfileRepo(db *dbpg.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProfileRepository) CreateParent(ctx context.Context, p *domain.ParentProfile) error {
	query := `INSERT INTO parents (id, full_name, phone, city, neighborhood, address, children_ages, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.FullName, p.Phone, p.City, p.Neighborhood, p.Address,
		toInt64s(p.ChildrenAges), p.TelegramChatID, p.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return domain.ErrPhoneTaken
		}
		return fmt.Errorf("insert parent: %w", err)
	}

	return nil
}

func (r *ProfileRepository) GetParent(ctx context.Context, id string) (*domain.ParentProfile, error) {
	query := `SELECT id, full_name, phone, city, neighborhood, address, children_ages, telegram_chat_id, created_at
			  FROM parents
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get parent: %w", err)
	}

	var (
		p    domain.ParentProfile
		ages pq.Int64Array
	)
	if err = row.Scan(
		&p.ID, &p.FullName, &p.Phone, &p.City, &p.Neighborhood, &p.Address,
		&ages, &p.TelegramChatID, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParentNotFound
		}
		return nil, fmt.Errorf("scan parent: %w", err)
	}
	p.ChildrenAges = toInts(ages)

	return &p, nil
}

func (r *ProfileRepository) CreateBabysitter(ctx context.Context, b *domain.BabysitterProfile) error {
	query := `INSERT INTO babysitters (` + babysitterColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.FullName, b.Phone, b.Age, b.City, b.Neighborhood, pq.Array(b.ServiceAreas),
		b.GuardianRequiredApproval, b.GuardianPhone, b.GuardianTelegramChatID,
		b.CommunityStyleID, b.TelegramChatID, b.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return domain.ErrPhoneTaken
		}
		return fmt.Errorf("insert babysitter: %w", err)
	}

	return nil
}

func (r *ProfileRepository) GetBabysitter(ctx context.Context, id string) (*domain.BabysitterProfile, error) {
	query := `SELECT ` + babysitterColumns + ` FROM babysitters WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get babysitter: %w", err)
	}

	b, err := scanBabysitter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBabysitterNotFound
		}
		return nil, fmt.Errorf("scan babysitter: %w", err)
	}

	return b, nil
}

// ListBabysittersByCity pre-filters the matching pool with the same
// normalization the matcher applies.
func (r *ProfileRepository) ListBabysittersByCity(ctx context.Context, city string) ([]*domain.BabysitterProfile, error) {
	query := `SELECT ` + babysitterColumns + `
			  FROM babysitters
			  WHERE lower(trim(city)) = lower(trim($1))
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, city)
	if err != nil {
		return nil, fmt.Errorf("list babysitters: %w", err)
	}
	defer rows.Close()

	var res []*domain.BabysitterProfile
	for rows.Next() {
		b, err := scanBabysitter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan babysitter: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *ProfileRepository) GetBabysitters(ctx context.Context, ids []string) (map[string]*domain.BabysitterProfile, error) {
	res := make(map[string]*domain.BabysitterProfile, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	query := `SELECT ` + babysitterColumns + ` FROM babysitters WHERE id = ANY($1::uuid[])`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("get babysitters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		b, err := scanBabysitter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan babysitter: %w", err)
		}
		res[b.ID] = b
	}

	return res, rows.Err()
}

func scanBabysitter(s rowScanner) (*domain.BabysitterProfile, error) {
	var (
		b     domain.BabysitterProfile
		areas pq.StringArray
	)
	if err := s.Scan(
		&b.ID, &b.FullName, &b.Phone, &b.Age, &b.City, &b.Neighborhood, &areas,
		&b.GuardianRequiredApproval, &b.GuardianPhone, &b.GuardianTelegramChatID,
		&b.CommunityStyleID, &b.TelegramChatID, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	b.ServiceAreas = []string(areas)
	return &b, nil
}
