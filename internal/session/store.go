// Package session holds the authenticated identity for the whole client:
// the {user, token} pair in memory, mirrored into the vault. The store is
// the only writer of persisted session state; the API layer reads the token
// through Token and nothing else.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"stayfront/internal/adapters/observability"
	"stayfront/internal/domain"
)

// AuthAPI is the slice of the reservation API the store needs.
type AuthAPI interface {
	Register(ctx context.Context, u domain.UserCreate) (domain.User, error)
	Login(ctx context.Context, c domain.Credentials) (domain.User, string, error)
	CurrentUser(ctx context.Context) (domain.User, error)
	UpdateProfile(ctx context.Context, u domain.UserUpdate) (domain.User, error)
	ChangePassword(ctx context.Context, p domain.PasswordChange) error
}

type Store struct {
	api   AuthAPI
	vault domain.SessionVault
	log   zerolog.Logger
	now   func() time.Time

	mu       sync.RWMutex
	cur      domain.Session
	onChange func(domain.Session)
}

func NewStore(api AuthAPI, v domain.SessionVault, log zerolog.Logger) *Store {
	return &Store{api: api, vault: v, log: log, now: time.Now}
}

// OnChange registers a listener for session transitions (login, logout,
// profile replace). Called outside the store lock.
func (s *Store) OnChange(fn func(domain.Session)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Token implements resapi.TokenFunc.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token
}

func (s *Store) IsAuthenticated() bool { return s.Current().Authenticated() }
func (s *Store) IsAdmin() bool         { return s.Current().Admin() }

// Login sets the pair directly: memory and vault together.
func (s *Store) Login(user domain.User, token string) {
	s.set(domain.Session{User: &user, Token: token})
	observability.ObserveSession("login")
}

// LoginWithCredentials exchanges credentials for a session. On failure the
// prior state, authenticated or not, is left untouched.
func (s *Store) LoginWithCredentials(ctx context.Context, c domain.Credentials) error {
	user, token, err := s.api.Login(ctx, c)
	if err != nil {
		return err
	}
	s.Login(user, token)
	return nil
}

// Register creates the account, then performs the implicit login with the
// same credentials. A failure on either leg leaves no session behind; when
// the create succeeds but the login does not, the login error is what the
// caller sees.
func (s *Store) Register(ctx context.Context, u domain.UserCreate) error {
	if _, err := s.api.Register(ctx, u); err != nil {
		return err
	}
	return s.LoginWithCredentials(ctx, domain.Credentials{Username: u.Username, Password: u.Password})
}

// Logout clears memory and vault unconditionally.
func (s *Store) Logout() {
	s.set(domain.Session{})
	observability.ObserveSession("logout")
}

// UpdateProfile replaces the stored user on success and leaves the session
// untouched on failure.
func (s *Store) UpdateProfile(ctx context.Context, u domain.UserUpdate) error {
	updated, err := s.api.UpdateProfile(ctx, u)
	if err != nil {
		return err
	}
	s.mu.Lock()
	tok := s.cur.Token
	s.mu.Unlock()
	s.set(domain.Session{User: &updated, Token: tok})
	return nil
}

func (s *Store) ChangePassword(ctx context.Context, p domain.PasswordChange) error {
	return s.api.ChangePassword(ctx, p)
}

// Init rehydrates the session at startup. A persisted token is only trusted
// after the profile fetch confirms it; any failure there discards the pair
// and the client starts unauthenticated. This is the one place errors are
// swallowed on purpose: invalidation is the recovery.
func (s *Store) Init(ctx context.Context) {
	user, token, ok, err := s.vault.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("session vault unreadable, starting unauthenticated")
		return
	}
	if !ok {
		return
	}

	if expired(token, s.now()) {
		s.log.Info().Msg("persisted token expired, discarding session")
		_ = s.vault.Clear()
		observability.ObserveSession("invalidated")
		return
	}

	// Adopt the pair so the profile fetch carries the token, then confirm.
	s.mu.Lock()
	s.cur = domain.Session{User: &user, Token: token}
	s.mu.Unlock()

	fresh, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.log.Info().Err(err).Msg("token revalidation failed, discarding session")
		s.set(domain.Session{})
		observability.ObserveSession("invalidated")
		return
	}
	s.set(domain.Session{User: &fresh, Token: token})
	observability.ObserveSession("revalidated")
}

// set is the single write path: memory and vault move together, then the
// change listener runs.
func (s *Store) set(next domain.Session) {
	s.mu.Lock()
	s.cur = next
	fn := s.onChange
	s.mu.Unlock()

	if next.Authenticated() {
		if err := s.vault.Save(*next.User, next.Token); err != nil {
			s.log.Error().Err(err).Msg("persisting session failed")
		}
	} else {
		if err := s.vault.Clear(); err != nil {
			s.log.Error().Err(err).Msg("clearing session vault failed")
		}
	}
	if fn != nil {
		fn(next)
	}
}

// expired reports whether tok is a JWT whose exp claim is in the past.
// Claims are decoded without signature verification; only the server can
// verify, this just skips a revalidation round-trip that is certain to 401.
// Opaque tokens report false and go to the server as usual.
func expired(tok string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
