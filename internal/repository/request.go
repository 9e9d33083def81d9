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

const requestColumns = `id, parent_id, datetime_start, datetime_end, area, address,
	children_ages, requirements, min_babysitter_age, max_babysitter_age,
	community_style_id, status, created_at, updated_at`

var terminalRequestStatuses = []domain.RequestStatus{
	domain.RequestStatusCompleted,
	domain.RequestStatusCancelled,
}

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.Request, candidates []*domain.Candidate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO requests (` + requestColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(
		ctx, query,
		req.ID, req.ParentID, req.Start, req.End, req.Area, req.Address,
		toInt64s(req.ChildrenAges), req.Requirements, req.MinBabysitterAge, req.MaxBabysitterAge,
		req.CommunityStyleID, req.Status, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrParentNotFound
		}
		return fmt.Errorf("insert request: %w", err)
	}

	for _, c := range candidates {
		if err = insertCandidate(ctx, tx, c); err != nil {
			if pgCode(err) == pgUniqueViolation {
				return fmt.Errorf("%w: babysitter %s", domain.ErrDuplicateCandidate, c.BabysitterID)
			}
			return fmt.Errorf("insert candidate: %w", err)
		}
	}

	return tx.Commit()
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return req, nil
}

func (r *RequestRepository) ListByParent(ctx context.Context, parentID string) ([]*domain.Request, error) {
	query := `SELECT ` + requestColumns + `
			  FROM requests
			  WHERE parent_id = $1
			  ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, parentID)
}

func (r *RequestRepository) Update(ctx context.Context, req *domain.Request) error {
	query := `UPDATE requests
			  SET address = $2, requirements = $3, children_ages = $4, updated_at = $5
			  WHERE id = $1 AND status <> ALL($6)`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		req.ID, req.Address, req.Requirements, toInt64s(req.ChildrenAges), req.UpdatedAt,
		pq.Array(terminalRequestStatuses),
	)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("request rows affected: %w", err)
	}
	if rows == 0 {
		return r.diagnose(ctx, req.ID, "update")
	}

	return nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, from, to domain.RequestStatus) error {
	if !from.CanMoveTo(to) {
		return &domain.StateError{Entity: "request", ID: id, Current: string(from), Attempted: "move to " + string(to)}
	}

	query := `UPDATE requests
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("request rows affected: %w", err)
	}
	if rows == 0 {
		return r.diagnose(ctx, id, "move to "+string(to))
	}

	return nil
}

func (r *RequestRepository) ListLapsed(ctx context.Context, now time.Time) ([]*domain.Request, error) {
	query := `SELECT ` + requestColumns + `
			  FROM requests
			  WHERE status = ANY($1) AND datetime_start < $2
			  ORDER BY datetime_start, id`

	return r.list(ctx, query, pq.Array(domain.OpenRequestStatuses), now)
}

func (r *RequestRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Request, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, req)
	}

	return res, rows.Err()
}

// diagnose explains why a guarded update touched no rows.
func (r *RequestRepository) diagnose(ctx context.Context, id, attempted string) error {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("get request status: %w", err)
	}

	var status string
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRequestNotFound
		}
		return fmt.Errorf("scan request status: %w", err)
	}

	return &domain.StateError{Entity: "request", ID: id, Current: status, Attempted: attempted}
}

func scanRequest(s rowScanner) (*domain.Request, error) {
	var (
		req  domain.Request
		ages pq.Int64Array
	)
	if err := s.Scan(
		&req.ID, &req.ParentID, &req.Start, &req.End, &req.Area, &req.Address,
		&ages, &req.Requirements, &req.MinBabysitterAge, &req.MaxBabysitterAge,
		&req.CommunityStyleID, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	req.ChildrenAges = toInts(ages)
	return &req, nil
}
