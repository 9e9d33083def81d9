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

const bookingColumns = `id, request_id, parent_id, babysitter_id, datetime_start, datetime_end, address,
	status, payment_status, confirmed_at, started_at, completed_at, cancelled_at, cancel_reason,
	parent_rating, parent_review, babysitter_rating, created_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) CreateForSelection(ctx context.Context, b *domain.Booking, candidateID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем заявку: параллельный выбор ждёт здесь и видит уже CONFIRMED
	var status domain.RequestStatus
	reqQuery := `SELECT status, parent_id, datetime_start, datetime_end, address
				 FROM requests WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, reqQuery, b.RequestID).
		Scan(&status, &b.ParentID, &b.Start, &b.End, &b.Address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRequestNotFound
		}
		return fmt.Errorf("lock request: %w", err)
	}
	switch {
	case status == domain.RequestStatusConfirmed, status == domain.RequestStatusCompleted:
		return fmt.Errorf("%w: request %s", domain.ErrAlreadyConfirmed, b.RequestID)
	case !status.IsOpen():
		return &domain.StateError{Entity: "request", ID: b.RequestID, Current: string(status), Attempted: "select a babysitter"}
	}

	var requestID, babysitterID string
	var response domain.CandidateResponse
	candQuery := `SELECT request_id, babysitter_id, response FROM candidates WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, candQuery, candidateID).Scan(&requestID, &babysitterID, &response); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCandidateNotFound
		}
		return fmt.Errorf("lock candidate: %w", err)
	}
	if requestID != b.RequestID || babysitterID != b.BabysitterID {
		return domain.ErrCandidateNotFound
	}
	if !response.IsAvailable() {
		return &domain.StateError{Entity: "candidate", ID: candidateID, Current: string(response), Attempted: "select"}
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.RequestID, b.ParentID, b.BabysitterID, b.Start, b.End, b.Address,
		b.Status, b.PaymentStatus, b.ConfirmedAt, b.StartedAt, b.CompletedAt, b.CancelledAt, b.CancelReason,
		b.ParentRating, b.ParentReview, b.BabysitterRating, b.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: request %s", domain.ErrAlreadyConfirmed, b.RequestID)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	confirm := `UPDATE requests SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, confirm, b.RequestID, domain.RequestStatusConfirmed, b.ConfirmedAt); err != nil {
		return fmt.Errorf("confirm request: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByParent(ctx context.Context, parentID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE parent_id = $1
			  ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, parentID)
}

func (r *BookingRepository) ListByBabysitter(ctx context.Context, babysitterID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE babysitter_id = $1
			  ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, babysitterID)
}

// UpdateStatus applies ch and, when ch carries a request status, moves the
// owning request in the same transaction.
func (r *BookingRepository) UpdateStatus(ctx context.Context, ch domain.BookingChange) error {
	var set string
	switch ch.To {
	case domain.BookingStatusInProgress:
		set = "started_at = $4"
	case domain.BookingStatusCompleted:
		set = "completed_at = $4"
	case domain.BookingStatusCancelled:
		set = "cancelled_at = $4, cancel_reason = $5"
	default:
		return fmt.Errorf("%w: unsupported booking status %s", domain.ErrValidation, ch.To)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	args := []any{ch.BookingID, ch.From, ch.To, ch.At}
	if ch.To == domain.BookingStatusCancelled {
		args = append(args, ch.Reason)
	}

	query := `UPDATE bookings SET status = $3, ` + set + `
			  WHERE id = $1 AND status = $2
			  RETURNING request_id`

	var requestID string
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.diagnose(ctx, tx, ch.BookingID, "move to "+string(ch.To))
		}
		return fmt.Errorf("update booking: %w", err)
	}

	if ch.RequestStatus != "" {
		reqQuery := `UPDATE requests SET status = $2, updated_at = $3
					 WHERE id = $1 AND status <> ALL($4)`
		if _, err = tx.ExecContext(
			ctx, reqQuery, requestID, ch.RequestStatus, ch.At,
			pq.Array(terminalRequestStatuses),
		); err != nil {
			return fmt.Errorf("update request status: %w", err)
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) SaveRating(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings
			  SET parent_rating = $2, parent_review = $3, babysitter_rating = $4
			  WHERE id = $1 AND status = $5`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.ParentRating, b.ParentReview, b.BabysitterRating, domain.BookingStatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("save rating: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		current, err := r.GetByID(ctx, b.ID)
		if err != nil {
			return err
		}
		return &domain.StateError{Entity: "booking", ID: b.ID, Current: string(current.Status), Attempted: "rate"}
	}

	return nil
}

func (r *BookingRepository) diagnose(ctx context.Context, tx *sql.Tx, id, attempted string) error {
	var status string
	if err := tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("get booking status: %w", err)
	}
	return &domain.StateError{Entity: "booking", ID: id, Current: status, Attempted: attempted}
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(s rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := s.Scan(
		&b.ID, &b.RequestID, &b.ParentID, &b.BabysitterID, &b.Start, &b.End, &b.Address,
		&b.Status, &b.PaymentStatus, &b.ConfirmedAt, &b.StartedAt, &b.CompletedAt, &b.CancelledAt, &b.CancelReason,
		&b.ParentRating, &b.ParentReview, &b.BabysitterRating, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
