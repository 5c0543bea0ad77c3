// internal/application/terminal_service.go
package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/ports"
)

var (
	ErrTerminalNotFound = errors.New("terminal not found")
	ErrTooManyTerminals = errors.New("too many open terminals")
)

const (
	TopicOrders  = "orders"
	TopicContact = "contact"
)

// OrderPlacedEvent is published after a successful order.
type OrderPlacedEvent struct {
	TerminalID string       `json:"terminal_id"`
	Order      domain.Order `json:"order"`
}

// ContactEvent is published for every contact form submission.
type ContactEvent struct {
	TerminalID string              `json:"terminal_id"`
	Entry      domain.DisplayEntry `json:"entry"`
	SentAt     time.Time           `json:"sent_at"`
}

type terminal struct {
	mu        sync.Mutex
	store     *SessionCartStore
	messages  []domain.DisplayEntry
	expiresAt time.Time
}

func (t *terminal) expired(now time.Time) bool {
	return !t.expiresAt.IsZero() && !now.Before(t.expiresAt)
}

// TerminalLimits bound how long terminals live and how many may be open.
// Zero values mean no limit.
type TerminalLimits struct {
	TTL     time.Duration
	MaxOpen int
}

// TerminalService hosts one SessionCartStore per open terminal and runs each
// terminal's events one at a time. Terminals past their TTL are evicted
// lazily.
type TerminalService struct {
	mu        sync.Mutex
	terminals map[string]*terminal

	newStore  StoreFactory
	limits    TerminalLimits
	publisher ports.PublisherPort
	logger    *zap.Logger
	now       func() time.Time
}

func NewTerminalService(newStore StoreFactory, limits TerminalLimits, publisher ports.PublisherPort, logger *zap.Logger) *TerminalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TerminalService{
		terminals: make(map[string]*terminal),
		newStore:  newStore,
		limits:    limits,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *TerminalService) Open(ctx context.Context) (string, error) {
	store, err := s.newStore(ctx)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	t := &terminal{store: store}
	now := s.now()
	if s.limits.TTL > 0 {
		t.expiresAt = now.Add(s.limits.TTL)
	}

	s.mu.Lock()
	s.evictExpiredLocked(now)
	if s.limits.MaxOpen > 0 && len(s.terminals) >= s.limits.MaxOpen {
		s.mu.Unlock()
		return "", ErrTooManyTerminals
	}
	s.terminals[id] = t
	open := len(s.terminals)
	s.mu.Unlock()

	s.logger.Info("terminal opened", zap.String("terminal", id), zap.Int("open", open))
	return id, nil
}

func (s *TerminalService) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.terminals[id]; !ok {
		return ErrTerminalNotFound
	}
	delete(s.terminals, id)
	s.logger.Info("terminal closed", zap.String("terminal", id), zap.Int("open", len(s.terminals)))
	return nil
}

// Dispatch hands ev to the terminal's store. Domain failures come back
// unchanged; publish failures are logged and never fail the event.
func (s *TerminalService) Dispatch(ctx context.Context, id string, ev Event) (*domain.Result, error) {
	t, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	res, err := t.store.Handle(ctx, ev)
	if err != nil {
		return nil, err
	}
	if res.Contact != nil {
		t.messages = append(t.messages, *res.Contact)
		s.publish(ctx, TopicContact, ContactEvent{TerminalID: id, Entry: *res.Contact, SentAt: time.Now()})
	}
	if res.Order != nil {
		s.publish(ctx, TopicOrders, OrderPlacedEvent{TerminalID: id, Order: *res.Order})
	}
	return res, nil
}

// Messages returns the terminal's contact entries in submission order.
func (s *TerminalService) Messages(ctx context.Context, id string) ([]domain.DisplayEntry, error) {
	t, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.DisplayEntry, len(t.messages))
	copy(out, t.messages)
	return out, nil
}

// Count reports open, unexpired terminals.
func (s *TerminalService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpiredLocked(s.now())
	return len(s.terminals)
}

func (s *TerminalService) lookup(id string) (*terminal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.terminals[id]
	if !ok {
		return nil, ErrTerminalNotFound
	}
	if t.expired(s.now()) {
		delete(s.terminals, id)
		s.logger.Info("terminal expired", zap.String("terminal", id))
		return nil, ErrTerminalNotFound
	}
	return t, nil
}

func (s *TerminalService) evictExpiredLocked(now time.Time) {
	for id, t := range s.terminals {
		if t.expired(now) {
			delete(s.terminals, id)
			s.logger.Info("terminal expired", zap.String("terminal", id))
		}
	}
}

func (s *TerminalService) publish(ctx context.Context, topic string, value interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, value); err != nil {
		s.logger.Warn("publish failed", zap.String("topic", topic), zap.Error(err))
	}
}
