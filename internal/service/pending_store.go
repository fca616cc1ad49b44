package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/securinets-fst/securiquiz/internal/apperror"
)

// Pending-signup defaults; overridable through config.
const (
	DefaultCodeTTL           = 10 * time.Minute
	DefaultMaxVerifyAttempts = 5
	DefaultLockout           = 15 * time.Minute
)

// PendingSignup is what Verify hands back for persistent user creation.
type PendingSignup struct {
	FullName     string
	PasswordHash string
}

type pendingEntry struct {
	fullName     string
	passwordHash string
	codeHash     []byte
	expiresAt    time.Time
	attempts     int
	blockedUntil time.Time
}

// PendingSignupStore holds unverified registrations in memory, keyed by
// email. Entries are short-lived and resendable, so loss on restart is
// accepted. The mutex guards against a verify-attempt increment racing the
// opportunistic cleanup; there is no background sweeper — expired entries are
// collected at the start of every call.
type PendingSignupStore struct {
	mu      sync.Mutex
	entries map[string]*pendingEntry

	clock       Clock
	codeTTL     time.Duration
	maxAttempts int
	lockout     time.Duration
}

type PendingStoreOption func(*PendingSignupStore)

func WithClock(clock Clock) PendingStoreOption {
	return func(s *PendingSignupStore) { s.clock = clock }
}

func WithCodeTTL(ttl time.Duration) PendingStoreOption {
	return func(s *PendingSignupStore) { s.codeTTL = ttl }
}

func WithMaxVerifyAttempts(n int) PendingStoreOption {
	return func(s *PendingSignupStore) { s.maxAttempts = n }
}

func WithLockout(d time.Duration) PendingStoreOption {
	return func(s *PendingSignupStore) { s.lockout = d }
}

func NewPendingSignupStore(opts ...PendingStoreOption) *PendingSignupStore {
	s := &PendingSignupStore{
		entries:     make(map[string]*pendingEntry),
		clock:       NewSystemClock(),
		codeTTL:     DefaultCodeTTL,
		maxAttempts: DefaultMaxVerifyAttempts,
		lockout:     DefaultLockout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrReplace registers a pending signup, unconditionally overwriting any
// prior entry for the email, and returns the plaintext 5-digit code for mail
// delivery. Only the bcrypt hash of the code is retained.
func (s *PendingSignupStore) CreateOrReplace(email, fullName, passwordHash string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("generating verification code: %w", err)
	}
	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing verification code: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanupLocked()

	s.entries[email] = &pendingEntry{
		fullName:     fullName,
		passwordHash: passwordHash,
		codeHash:     codeHash,
		expiresAt:    s.clock.Now().Add(s.codeTTL),
	}
	return code, nil
}

// Verify checks the code for a pending signup. On success the entry is
// consumed and the registration data returned. Wrong codes count toward the
// lockout; once locked, even the correct code is refused until the window
// ends.
func (s *PendingSignupStore) Verify(email, code string) (*PendingSignup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanupLocked()

	now := s.clock.Now()
	entry, ok := s.entries[email]
	if !ok {
		return nil, apperror.NotFound("no pending signup for this email")
	}
	if !entry.expiresAt.After(now) {
		delete(s.entries, email)
		return nil, apperror.NotFound("verification code expired, sign up again")
	}
	if now.Before(entry.blockedUntil) {
		return nil, apperror.Conflict("too many wrong codes, try again later")
	}

	if bcrypt.CompareHashAndPassword(entry.codeHash, []byte(code)) != nil {
		entry.attempts++
		if entry.attempts >= s.maxAttempts {
			entry.blockedUntil = now.Add(s.lockout)
		}
		return nil, apperror.Unauthenticated("invalid verification code")
	}

	pending := &PendingSignup{FullName: entry.fullName, PasswordHash: entry.passwordHash}
	delete(s.entries, email)
	return pending, nil
}

// cleanupLocked drops every expired entry. Callers hold s.mu.
func (s *PendingSignupStore) cleanupLocked() {
	now := s.clock.Now()
	for email, entry := range s.entries {
		if !entry.expiresAt.After(now) {
			delete(s.entries, email)
		}
	}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", n.Int64()), nil
}
