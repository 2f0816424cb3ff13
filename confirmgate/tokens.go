package confirmgate

import (
	"cmp"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTicketTTL = time.Hour
	// per owner; the least recently issued ticket is evicted first
	defaultTicketCap = 64
)

// Ticket identifies one activation of a guarded element for one owner
type Ticket struct {
	Token     string
	Owner     string
	ElementID string
	Target    string
	IssuedAt  time.Time

	seq uint64
}

// Control names one guarded control of a page
type Control struct {
	ElementID string
	Target    string
}

// TokenStore issues single-use activation tickets
type TokenStore interface {
	Issue(owner, elementID, target string) (string, error)
	// IssueAll issues tickets for every control of one page. None of them
	// is evicted to make room for another one of the same call.
	IssueAll(owner string, controls []Control) ([]string, error)
	// Redeem consumes the ticket. It returns true at most once per issued token.
	Redeem(token, owner, elementID, target string) bool
}

type controlKey struct {
	owner     string
	elementID string
	target    string
}

// MemoryTokenStore keeps tickets in process memory
type MemoryTokenStore struct {
	mu        sync.Mutex
	tickets   map[string]Ticket
	byControl map[controlKey]string
	seq       uint64
	ttl       time.Duration
	cap       int
	now       func() time.Time
}

// StoreOption configures a MemoryTokenStore
type StoreOption func(*MemoryTokenStore)

// WithClock replaces the store's time source
func WithClock(now func() time.Time) StoreOption {
	return func(s *MemoryTokenStore) {
		s.now = now
	}
}

// WithCapacity limits the outstanding tickets per owner
func WithCapacity(n int) StoreOption {
	return func(s *MemoryTokenStore) {
		if n > 0 {
			s.cap = n
		}
	}
}

// NewMemoryTokenStore creates a store whose tickets expire after ttl.
// A non-positive ttl uses the default of one hour.
func NewMemoryTokenStore(ttl time.Duration, opts ...StoreOption) *MemoryTokenStore {
	if ttl <= 0 {
		ttl = defaultTicketTTL
	}
	s := &MemoryTokenStore{
		tickets:   make(map[string]Ticket),
		byControl: make(map[controlKey]string),
		ttl:       ttl,
		cap:       defaultTicketCap,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue creates a ticket for owner activating elementID against target.
// An outstanding ticket for the same control is renewed and returned.
func (s *MemoryTokenStore) Issue(owner, elementID, target string) (string, error) {
	tokens, err := s.IssueAll(owner, []Control{{ElementID: elementID, Target: target}})
	if err != nil {
		return "", err
	}
	return tokens[0], nil
}

// IssueAll issues one ticket per control, in order
func (s *MemoryTokenStore) IssueAll(owner string, controls []Control) ([]string, error) {
	if owner == "" {
		return nil, ErrPromptUnavailable
	}
	for _, c := range controls {
		if c.ElementID == "" || c.Target == "" {
			return nil, errors.New("element ID and target are required")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	tokens := make([]string, len(controls))
	issued := make(map[string]bool, len(controls))
	for i, c := range controls {
		key := controlKey{owner: owner, elementID: c.ElementID, target: c.Target}
		token, ok := s.byControl[key]
		if !ok {
			token = uuid.NewString()
		}

		s.seq++
		s.tickets[token] = Ticket{
			Token:     token,
			Owner:     owner,
			ElementID: c.ElementID,
			Target:    c.Target,
			IssuedAt:  now,
			seq:       s.seq,
		}
		s.byControl[key] = token
		tokens[i] = token
		issued[token] = true
	}

	s.evictOverflowLocked(owner, issued)
	return tokens, nil
}

// Redeem consumes a ticket that matches owner, elementID and target
func (s *MemoryTokenStore) Redeem(token, owner, elementID, target string) bool {
	if token == "" || owner == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets[token]
	if !ok {
		return false
	}
	if ticket.Owner != owner || ticket.ElementID != elementID || ticket.Target != target {
		return false
	}

	s.removeLocked(ticket)
	return s.now().Sub(ticket.IssuedAt) <= s.ttl
}

// Len returns the number of outstanding tickets
func (s *MemoryTokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}

func (s *MemoryTokenStore) removeLocked(ticket Ticket) {
	delete(s.tickets, ticket.Token)
	key := controlKey{owner: ticket.Owner, elementID: ticket.ElementID, target: ticket.Target}
	if s.byControl[key] == ticket.Token {
		delete(s.byControl, key)
	}
}

func (s *MemoryTokenStore) sweepLocked(now time.Time) {
	for _, ticket := range s.tickets {
		if now.Sub(ticket.IssuedAt) > s.ttl {
			s.removeLocked(ticket)
		}
	}
}

// evictOverflowLocked drops the owner's oldest tickets beyond the cap,
// never one of keep. A page with more controls than the cap keeps them all.
func (s *MemoryTokenStore) evictOverflowLocked(owner string, keep map[string]bool) {
	limit := max(s.cap, len(keep))

	owned := 0
	var evictable []Ticket
	for _, ticket := range s.tickets {
		if ticket.Owner != owner {
			continue
		}
		owned++
		if !keep[ticket.Token] {
			evictable = append(evictable, ticket)
		}
	}
	if owned <= limit {
		return
	}

	slices.SortFunc(evictable, func(a, b Ticket) int { return cmp.Compare(a.seq, b.seq) })
	for _, ticket := range evictable[:owned-limit] {
		s.removeLocked(ticket)
	}
}
