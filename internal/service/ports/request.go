package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

type RequestRepo interface {
	// Create stores r and its initial candidates in one transaction.
	Create(ctx context.Context, r *domain.Request, candidates []*domain.Candidate) error
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	ListByParent(ctx context.Context, parentID string) ([]*domain.Request, error)
	// Update writes the parent-editable fields while the request is not terminal.
	Update(ctx context.Context, r *domain.Request) error
	// UpdateStatus moves the request from -> to only if it still holds from.
	UpdateStatus(ctx context.Context, id string, from, to domain.RequestStatus) error
	ListLapsed(ctx context.Context, now time.Time) ([]*domain.Request, error)
}
