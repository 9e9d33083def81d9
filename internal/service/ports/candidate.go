package ports

import (
	"context"

	"github.com/stpnv0/SitterMatch/internal/domain"
)

type CandidateRepo interface {
	// InsertMissing stores the candidates whose (request, babysitter) pair is
	// not taken yet, all in one transaction, and returns the ones inserted.
	InsertMissing(ctx context.Context, candidates []*domain.Candidate) ([]*domain.Candidate, error)
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)
	GetByRequestAndBabysitter(ctx context.Context, requestID, babysitterID string) (*domain.Candidate, error)
	ListByRequest(ctx context.Context, requestID string) ([]*domain.Candidate, error)
	ListPendingByBabysitter(ctx context.Context, babysitterID string) ([]*domain.Candidate, error)
	// UpdateResponse applies ch only if the candidate still holds ch.From.
	UpdateResponse(ctx context.Context, ch domain.ResponseChange) error
	// UpdateCall applies ch only if the candidate still holds ch.From and its
	// request is open. The candidate booked on a closed request stays writable.
	UpdateCall(ctx context.Context, ch domain.CallChange) error
}
