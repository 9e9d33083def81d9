package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RequestService struct {
	requests   ports.RequestRepo
	candidates ports.CandidateRepo
	profiles   ports.ProfileRepo
	catalog    ports.CatalogRepo
	matcher    *Matcher
	events     ports.EventPublisher
	logger     logger.Logger
}

func NewRequestService(
	requests ports.RequestRepo,
	candidates ports.CandidateRepo,
	profiles ports.ProfileRepo,
	catalog ports.CatalogRepo,
	matcher *Matcher,
	events ports.EventPublisher,
	logger logger.Logger,
) *RequestService {
	return &RequestService{
		requests:   requests,
		candidates: candidates,
		profiles:   profiles,
		catalog:    catalog,
		matcher:    matcher,
		events:     events,
		logger:     logger,
	}
}

func (s *RequestService) Create(ctx context.Context, input domain.CreateRequestInput) (*domain.Request, error) {
	now := time.Now().UTC()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	parent, err := s.profiles.GetParent(ctx, input.ParentID)
	if err != nil {
		return nil, fmt.Errorf("get parent: %w", err)
	}
	// the area has to be a neighborhood of the parent's city
	if err = checkLocation(ctx, s.catalog, parent.City, input.Area); err != nil {
		return nil, err
	}
	if err = checkStyle(ctx, s.catalog, input.CommunityStyleID); err != nil {
		return nil, err
	}

	req := &domain.Request{
		ID:               uuid.New().String(),
		ParentID:         input.ParentID,
		Start:            input.Start.UTC(),
		End:              input.End.UTC(),
		Area:             input.Area,
		Address:          input.Address,
		ChildrenAges:     append([]int(nil), input.ChildrenAges...),
		Requirements:     input.Requirements,
		MinBabysitterAge: input.MinBabysitterAge,
		MaxBabysitterAge: input.MaxBabysitterAge,
		CommunityStyleID: input.CommunityStyleID,
		Status:           domain.RequestStatusNew,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err = req.MoveTo(domain.RequestStatusMatching); err != nil {
		return nil, err
	}
	candidates, err := s.matcher.Match(ctx, parent, req)
	if err != nil {
		return nil, fmt.Errorf("match babysitters: %w", err)
	}
	if err = req.MoveTo(domain.RequestStatusPendingResponses); err != nil {
		return nil, err
	}

	if err = s.requests.Create(ctx, req, candidates); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("request created",
		logger.String("request_id", req.ID),
		logger.String("parent_id", req.ParentID),
		logger.Int("candidates", len(candidates)),
	)

	go s.publishMatched(context.WithoutCancel(ctx), req, candidates, true)

	return req, nil
}

// Match re-runs the matcher for an open request. Babysitters that are already
// candidates are skipped, so repeated calls never duplicate them.
func (s *RequestService) Match(ctx context.Context, requestID string) ([]*domain.Candidate, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if !req.Status.IsOpen() {
		return nil, req.StateError("match")
	}

	parent, err := s.profiles.GetParent(ctx, req.ParentID)
	if err != nil {
		return nil, fmt.Errorf("get parent: %w", err)
	}

	candidates, err := s.matcher.Match(ctx, parent, req)
	if err != nil {
		return nil, fmt.Errorf("match babysitters: %w", err)
	}

	inserted, err := s.candidates.InsertMissing(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("insert candidates: %w", err)
	}

	if req.Status == domain.RequestStatusNew || req.Status == domain.RequestStatusMatching {
		err = s.requests.UpdateStatus(ctx, req.ID, req.Status, domain.RequestStatusPendingResponses)
		if err != nil && !errors.Is(err, domain.ErrInvalidState) {
			return nil, fmt.Errorf("advance request: %w", err)
		}
	}

	s.logger.Info("request rematched",
		logger.String("request_id", req.ID),
		logger.Int("eligible", len(candidates)),
		logger.Int("added", len(inserted)),
	)

	go s.publishMatched(context.WithoutCancel(ctx), req, inserted, false)

	return inserted, nil
}

func (s *RequestService) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	return s.requests.GetByID(ctx, id)
}

func (s *RequestService) ListByParent(ctx context.Context, parentID string) ([]*domain.Request, error) {
	return s.requests.ListByParent(ctx, parentID)
}

// Candidates lists the request's candidates with their babysitter profiles.
// Seeing an available candidate moves the request to PENDING_SELECTION.
func (s *RequestService) Candidates(ctx context.Context, requestID string) ([]*domain.CandidateWithBabysitter, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	candidates, err := s.candidates.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	ids := make([]string, 0, len(candidates))
	available := false
	for _, c := range candidates {
		ids = append(ids, c.BabysitterID)
		if c.Response.IsAvailable() {
			available = true
		}
	}

	babysitters, err := s.profiles.GetBabysitters(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get babysitters: %w", err)
	}

	res := make([]*domain.CandidateWithBabysitter, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, &domain.CandidateWithBabysitter{
			Candidate:  *c,
			Babysitter: babysitters[c.BabysitterID],
		})
	}

	if available && req.Status == domain.RequestStatusPendingResponses {
		err = s.requests.UpdateStatus(ctx, req.ID, req.Status, domain.RequestStatusPendingSelection)
		if err != nil && !errors.Is(err, domain.ErrInvalidState) {
			s.logger.Error("failed to advance request to selection",
				logger.String("request_id", req.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return res, nil
}

func (s *RequestService) Update(ctx context.Context, id string, input domain.UpdateRequestInput) (*domain.Request, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if req.Status.IsTerminal() {
		return nil, req.StateError("update")
	}

	input.Apply(req)
	req.UpdatedAt = time.Now().UTC()

	if err = s.requests.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}

	return req, nil
}

// Cancel withdraws a request that has not been confirmed. Confirmed requests
// are cancelled through their booking.
func (s *RequestService) Cancel(ctx context.Context, id string) (*domain.Request, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if !req.Status.IsOpen() {
		return nil, req.StateError("cancel")
	}

	from := req.Status
	if err = req.MoveTo(domain.RequestStatusCancelled); err != nil {
		return nil, err
	}
	if err = s.requests.UpdateStatus(ctx, req.ID, from, req.Status); err != nil {
		return nil, fmt.Errorf("cancel request: %w", err)
	}

	s.logger.Info("request cancelled",
		logger.String("request_id", req.ID),
		logger.String("previous_status", string(from)),
	)

	go s.events.Publish(context.WithoutCancel(ctx), requestEvent(domain.EventRequestCancelled, req))

	return req, nil
}

// ExpireLapsed cancels open requests whose start time has already passed.
func (s *RequestService) ExpireLapsed(ctx context.Context) ([]*domain.Request, error) {
	lapsed, err := s.requests.ListLapsed(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list lapsed: %w", err)
	}

	cancelled := make([]*domain.Request, 0, len(lapsed))
	for _, r := range lapsed {
		from := r.Status
		if err = r.MoveTo(domain.RequestStatusCancelled); err != nil {
			continue
		}
		if err = s.requests.UpdateStatus(ctx, r.ID, from, r.Status); err != nil {
			if errors.Is(err, domain.ErrInvalidState) {
				continue
			}
			return cancelled, fmt.Errorf("cancel lapsed request: %w", err)
		}
		cancelled = append(cancelled, r)
	}

	if len(cancelled) > 0 {
		s.logger.Info("lapsed requests cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.publishCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *RequestService) publishMatched(ctx context.Context, req *domain.Request, candidates []*domain.Candidate, created bool) {
	if created {
		s.events.Publish(ctx, requestEvent(domain.EventRequestCreated, req))
	}
	for _, c := range candidates {
		s.events.Publish(ctx, candidateEvent(domain.EventCandidateCreated, req.ParentID, c))
	}
}

func (s *RequestService) publishCancelled(ctx context.Context, requests []*domain.Request) {
	for _, r := range requests {
		s.events.Publish(ctx, requestEvent(domain.EventRequestCancelled, r))
	}
}
