package sandbox

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	statusQueued    = "002"
	statusCancelled = "006"

	messageCharge = 1.0
)

type Message struct {
	ID     string
	To     string
	Text   string
	Status string
	Charge float64
}

// Store holds the emulator's account balance and accepted messages. All
// methods are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	balance  float64
	messages map[string]Message
}

func NewStore(balance float64) *Store {
	return &Store{balance: balance, messages: make(map[string]Message)}
}

func newMessageID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Accept charges the account and queues one message. It reports false when
// the balance cannot cover the charge.
func (s *Store) Accept(to, text string) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.balance < messageCharge {
		return Message{}, false
	}
	s.balance -= messageCharge

	m := Message{
		ID:     newMessageID(),
		To:     to,
		Text:   text,
		Status: statusQueued,
		Charge: messageCharge,
	}
	s.messages[m.ID] = m
	return m, true
}

func (s *Store) Get(id string) (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[id]
	return m, ok
}

// Stop cancels a queued message. Messages in any other state are returned
// unchanged.
func (s *Store) Stop(id string) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return Message{}, false
	}
	if m.Status == statusQueued {
		m.Status = statusCancelled
		s.messages[id] = m
	}
	return m, true
}

func (s *Store) Balance() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.balance
}

// Routable mimics the gateway's coverage check: a destination is routable
// when it is all digits and of international length.
func Routable(msisdn string) bool {
	if len(msisdn) < 10 || len(msisdn) > 15 {
		return false
	}
	for i := 0; i < len(msisdn); i++ {
		if msisdn[i] < '0' || msisdn[i] > '9' {
			return false
		}
	}
	return true
}
