package notification

import (
	"context"

	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/stpnv0/SitterMatch/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Bus carries raw domain events to external subscribers.
type Bus interface {
	Publish(ctx context.Context, e domain.Event) error
}

// CallQueue accepts IVR call jobs.
type CallQueue interface {
	EnqueueCall(ctx context.Context, job domain.CallJob) error
}

// Messenger delivers human-readable notices.
type Messenger interface {
	NotifyNewOffer(ctx context.Context, b *domain.BabysitterProfile, r *domain.Request)
	NotifyGuardianApproval(ctx context.Context, b *domain.BabysitterProfile, r *domain.Request)
	NotifyCandidateResponse(ctx context.Context, p *domain.ParentProfile, b *domain.BabysitterProfile, r *domain.Request, response domain.CandidateResponse)
	NotifyRequestCancelled(ctx context.Context, p *domain.ParentProfile, r *domain.Request)
	NotifyBooking(ctx context.Context, chatID *int64, e domain.Event, r *domain.Request)
}

type Option func(*Dispatcher)

func WithBus(b Bus) Option {
	return func(d *Dispatcher) { d.bus = b }
}

func WithCallQueue(q CallQueue) Option {
	return func(d *Dispatcher) { d.calls = q }
}

// Dispatcher fans one domain event out to the event bus, the messenger and
// the call queue. Every failure is logged and dropped.
type Dispatcher struct {
	profiles  ports.ProfileRepo
	requests  ports.RequestRepo
	messenger Messenger
	bus       Bus
	calls     CallQueue
	logger    logger.Logger
}

func NewDispatcher(
	profiles ports.ProfileRepo,
	requests ports.RequestRepo,
	messenger Messenger,
	logger logger.Logger,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		profiles:  profiles,
		requests:  requests,
		messenger: messenger,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Publish(ctx context.Context, e domain.Event) {
	if d.bus != nil {
		if err := d.bus.Publish(ctx, e); err != nil {
			d.logger.Error("failed to publish event",
				logger.String("type", string(e.Type)),
				logger.String("request_id", e.RequestID),
				logger.String("error", err.Error()),
			)
		}
	} else {
		d.logger.Debug("event bus disabled", logger.String("type", string(e.Type)))
	}

	switch e.Type {
	case domain.EventCandidateCreated:
		d.offer(ctx, e, true)
	case domain.EventCallRequested:
		d.offer(ctx, e, false)
	case domain.EventGuardianRequested:
		d.guardianRequested(ctx, e)
	case domain.EventCandidateResponse:
		d.responded(ctx, e)
	case domain.EventRequestCancelled:
		d.requestCancelled(ctx, e)
	case domain.EventBookingConfirmed, domain.EventBookingStarted,
		domain.EventBookingCompleted, domain.EventBookingCancelled:
		d.bookingChanged(ctx, e)
	}
}

// offer tells the babysitter about a new candidate and queues the IVR call.
func (d *Dispatcher) offer(ctx context.Context, e domain.Event, notify bool) {
	b, r, ok := d.babysitterAndRequest(ctx, e)
	if !ok {
		return
	}

	if notify {
		d.messenger.NotifyNewOffer(ctx, b, r)
	}

	if d.calls == nil {
		d.logger.Debug("call queue disabled", logger.String("candidate_id", e.CandidateID))
		return
	}
	job := domain.CallJob{
		CandidateID:   e.CandidateID,
		RequestID:     r.ID,
		BabysitterID:  b.ID,
		Phone:         b.Phone,
		FullName:      b.FullName,
		Area:          r.Area,
		DatetimeStart: r.Start,
		DatetimeEnd:   r.End,
	}
	if err := d.calls.EnqueueCall(ctx, job); err != nil {
		d.logger.Error("failed to enqueue call",
			logger.String("candidate_id", e.CandidateID),
			logger.String("error", err.Error()),
		)
	}
}

func (d *Dispatcher) guardianRequested(ctx context.Context, e domain.Event) {
	b, r, ok := d.babysitterAndRequest(ctx, e)
	if !ok {
		return
	}
	d.messenger.NotifyGuardianApproval(ctx, b, r)

	if p, ok := d.parent(ctx, e.ParentID); ok {
		d.messenger.NotifyCandidateResponse(ctx, p, b, r, domain.ResponseGuardianPending)
	}
}

func (d *Dispatcher) responded(ctx context.Context, e domain.Event) {
	b, r, ok := d.babysitterAndRequest(ctx, e)
	if !ok {
		return
	}
	if p, ok := d.parent(ctx, e.ParentID); ok {
		d.messenger.NotifyCandidateResponse(ctx, p, b, r, domain.CandidateResponse(e.Status))
	}
}

func (d *Dispatcher) requestCancelled(ctx context.Context, e domain.Event) {
	r, ok := d.request(ctx, e.RequestID)
	if !ok {
		return
	}
	if p, ok := d.parent(ctx, e.ParentID); ok {
		d.messenger.NotifyRequestCancelled(ctx, p, r)
	}
}

func (d *Dispatcher) bookingChanged(ctx context.Context, e domain.Event) {
	r, ok := d.request(ctx, e.RequestID)
	if !ok {
		return
	}
	if p, ok := d.parent(ctx, e.ParentID); ok {
		d.messenger.NotifyBooking(ctx, p.TelegramChatID, e, r)
	}
	if b, ok := d.babysitter(ctx, e.BabysitterID); ok {
		d.messenger.NotifyBooking(ctx, b.TelegramChatID, e, r)
	}
}

func (d *Dispatcher) babysitterAndRequest(ctx context.Context, e domain.Event) (*domain.BabysitterProfile, *domain.Request, bool) {
	b, ok := d.babysitter(ctx, e.BabysitterID)
	if !ok {
		return nil, nil, false
	}
	r, ok := d.request(ctx, e.RequestID)
	if !ok {
		return nil, nil, false
	}
	return b, r, true
}

func (d *Dispatcher) request(ctx context.Context, id string) (*domain.Request, bool) {
	r, err := d.requests.GetByID(ctx, id)
	if err != nil {
		d.logger.Error("failed to get request for notification",
			logger.String("request_id", id),
			logger.String("error", err.Error()),
		)
		return nil, false
	}
	return r, true
}

func (d *Dispatcher) parent(ctx context.Context, id string) (*domain.ParentProfile, bool) {
	p, err := d.profiles.GetParent(ctx, id)
	if err != nil {
		d.logger.Error("failed to get parent for notification",
			logger.String("parent_id", id),
			logger.String("error", err.Error()),
		)
		return nil, false
	}
	return p, true
}

func (d *Dispatcher) babysitter(ctx context.Context, id string) (*domain.BabysitterProfile, bool) {
	b, err := d.profiles.GetBabysitter(ctx, id)
	if err != nil {
		d.logger.Error("failed to get babysitter for notification",
			logger.String("babysitter_id", id),
			logger.String("error", err.Error()),
		)
		return nil, false
	}
	return b, true
}
