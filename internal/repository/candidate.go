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

const candidateColumns = `c.id, c.request_id, c.babysitter_id, c.call_status, c.call_attempts,
	c.response, c.babysitter_responded_at, c.guardian_responded_at, c.created_at`

type CandidateRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCandidateRepo(db *dbpg.DB) *CandidateRepository {
	return &CandidateRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CandidateRepository) InsertMissing(ctx context.Context, candidates []*domain.Candidate) ([]*domain.Candidate, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO candidates (id, request_id, babysitter_id, call_status, call_attempts, response, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (request_id, babysitter_id) DO NOTHING`

	inserted := make([]*domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		res, err := tx.ExecContext(
			ctx, query,
			c.ID, c.RequestID, c.BabysitterID, c.CallStatus, c.CallAttempts, c.Response, c.CreatedAt,
		)
		if err != nil {
			if pgCode(err) == pgForeignKeyViolation {
				return nil, domain.ErrRequestNotFound
			}
			return nil, fmt.Errorf("insert candidate: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("candidate rows affected: %w", err)
		}
		if n == 1 {
			inserted = append(inserted, c)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return inserted, nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates c WHERE c.id = $1`

	return r.get(ctx, query, id)
}

func (r *CandidateRepository) GetByRequestAndBabysitter(ctx context.Context, requestID, babysitterID string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + `
			  FROM candidates c
			  WHERE c.request_id = $1 AND c.babysitter_id = $2`

	return r.get(ctx, query, requestID, babysitterID)
}

func (r *CandidateRepository) ListByRequest(ctx context.Context, requestID string) ([]*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + `
			  FROM candidates c
			  WHERE c.request_id = $1
			  ORDER BY c.created_at, c.id`

	return r.list(ctx, query, requestID)
}

func (r *CandidateRepository) ListPendingByBabysitter(ctx context.Context, babysitterID string) ([]*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + `
			  FROM candidates c
			  JOIN requests r ON r.id = c.request_id
			  WHERE c.babysitter_id = $1 AND c.response = $2 AND r.status = ANY($3)
			  ORDER BY c.created_at, c.id`

	return r.list(ctx, query, babysitterID, domain.ResponsePending, pq.Array(domain.OpenRequestStatuses))
}

// UpdateResponse writes ch only while the candidate still holds ch.From and
// its request is open, in a single statement.
func (r *CandidateRepository) UpdateResponse(ctx context.Context, ch domain.ResponseChange) error {
	query := `UPDATE candidates c
			  SET response = $3,
			      babysitter_responded_at = CASE WHEN $4::boolean THEN c.babysitter_responded_at ELSE $5::timestamptz END,
			      guardian_responded_at = CASE WHEN $4::boolean THEN $5::timestamptz ELSE c.guardian_responded_at END
			  FROM requests r
			  WHERE c.id = $1
			    AND c.response = $2
			    AND r.id = c.request_id
			    AND r.status = ANY($6)`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		ch.CandidateID, ch.From, ch.To, ch.ByGuardian, ch.At,
		pq.Array(domain.OpenRequestStatuses),
	)
	if err != nil {
		return fmt.Errorf("update response: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("candidate rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Определяем причину: кандидат не найден, ответ уже изменён или заявка закрыта
	check := `SELECT c.response, r.id, r.status
			  FROM candidates c
			  JOIN requests r ON r.id = c.request_id
			  WHERE c.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, check, ch.CandidateID)
	if err != nil {
		return fmt.Errorf("get candidate state: %w", err)
	}

	var response, requestID, requestStatus string
	if err = row.Scan(&response, &requestID, &requestStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCandidateNotFound
		}
		return fmt.Errorf("scan candidate state: %w", err)
	}
	if !domain.RequestStatus(requestStatus).IsOpen() {
		return &domain.StateError{
			Entity:    "request",
			ID:        requestID,
			Current:   requestStatus,
			Attempted: "respond to candidate " + ch.CandidateID,
		}
	}

	return &domain.StateError{
		Entity:    "candidate",
		ID:        ch.CandidateID,
		Current:   response,
		Attempted: "move to " + string(ch.To),
	}
}

// UpdateCall writes ch only while the candidate still holds ch.From and its
// request is open or it is the babysitter booked on that request.
func (r *CandidateRepository) UpdateCall(ctx context.Context, ch domain.CallChange) error {
	query := `UPDATE candidates c
			  SET call_status = $3,
			      call_attempts = c.call_attempts + CASE WHEN $4::boolean THEN 1 ELSE 0 END
			  FROM requests r
			  WHERE c.id = $1
			    AND c.call_status = $2
			    AND r.id = c.request_id
			    AND (r.status = ANY($5) OR EXISTS (
			        SELECT 1 FROM bookings b
			        WHERE b.request_id = r.id AND b.babysitter_id = c.babysitter_id))`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		ch.CandidateID, ch.From, ch.To, ch.AddAttempt,
		pq.Array(domain.OpenRequestStatuses),
	)
	if err != nil {
		return fmt.Errorf("update call: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("candidate rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	check := `SELECT c.call_status, r.id, r.status,
			         EXISTS (SELECT 1 FROM bookings b
			                 WHERE b.request_id = r.id AND b.babysitter_id = c.babysitter_id)
			  FROM candidates c
			  JOIN requests r ON r.id = c.request_id
			  WHERE c.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, check, ch.CandidateID)
	if err != nil {
		return fmt.Errorf("get candidate call state: %w", err)
	}

	var (
		callStatus, requestID, requestStatus string
		booked                               bool
	)
	if err = row.Scan(&callStatus, &requestID, &requestStatus, &booked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCandidateNotFound
		}
		return fmt.Errorf("scan candidate call state: %w", err)
	}
	if !domain.RequestStatus(requestStatus).IsOpen() && !booked {
		return &domain.StateError{
			Entity:    "request",
			ID:        requestID,
			Current:   requestStatus,
			Attempted: "update call for candidate " + ch.CandidateID,
		}
	}

	return &domain.StateError{
		Entity:    "call for candidate",
		ID:        ch.CandidateID,
		Current:   callStatus,
		Attempted: "move to " + string(ch.To),
	}
}

func (r *CandidateRepository) get(ctx context.Context, query string, args ...any) (*domain.Candidate, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("scan candidate: %w", err)
	}

	return c, nil
}

func (r *CandidateRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Candidate, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var res []*domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func insertCandidate(ctx context.Context, tx *sql.Tx, c *domain.Candidate) error {
	query := `INSERT INTO candidates (id, request_id, babysitter_id, call_status, call_attempts, response, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := tx.ExecContext(
		ctx, query,
		c.ID, c.RequestID, c.BabysitterID, c.CallStatus, c.CallAttempts, c.Response, c.CreatedAt,
	)
	return err
}

func scanCandidate(s rowScanner) (*domain.Candidate, error) {
	var c domain.Candidate
	if err := s.Scan(
		&c.ID, &c.RequestID, &c.BabysitterID, &c.CallStatus, &c.CallAttempts,
		&c.Response, &c.BabysitterRespondedAt, &c.GuardianRespondedAt, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
