package idle

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
)

const sessionTokenPrefix = "session:"

// CookieSource is a toolkit-level inhibit call bound to a window. Inhibit
// returns 0 when the session refuses.
type CookieSource interface {
	InhibitSleep(reason string) uint
	UninhibitSleep(cookie uint)
}

var _ port.SleepInhibitor = (*SessionInhibitor)(nil)

// SessionInhibitor inhibits idle and suspend through the toolkit's session
// integration. The token carries the session cookie.
type SessionInhibitor struct {
	mu      syncutil.Mutex
	source  CookieSource
	cookies map[entity.SleepToken]uint
}

// NewSessionInhibitor wraps source.
func NewSessionInhibitor(source CookieSource) *SessionInhibitor {
	return &SessionInhibitor{
		source:  source,
		cookies: make(map[entity.SleepToken]uint),
	}
}

func (s *SessionInhibitor) Inhibit(ctx context.Context, reason string) (entity.SleepToken, error) {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.source == nil {
		return "", fmt.Errorf("session inhibit: %w", ErrUnavailable)
	}
	cookie := s.source.InhibitSleep(reason)
	if cookie == 0 {
		return "", fmt.Errorf("session inhibit refused: %w", ErrUnavailable)
	}

	token := entity.SleepToken(sessionTokenPrefix + strconv.FormatUint(uint64(cookie), 10))
	s.cookies[token] = cookie
	log.Info().Uint("cookie", cookie).Str("reason", reason).Msg("idle inhibitor: session inhibit activated")
	return token, nil
}

// Uninhibit drops the session cookie behind token. Unknown tokens are ignored.
func (s *SessionInhibitor) Uninhibit(ctx context.Context, token entity.SleepToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookie, ok := s.cookies[token]
	if !ok {
		return nil
	}
	delete(s.cookies, token)
	s.source.UninhibitSleep(cookie)
	logging.FromContext(ctx).Info().Uint("cookie", cookie).Msg("idle inhibitor: session inhibit deactivated")
	return nil
}

// Close releases every cookie still held.
func (s *SessionInhibitor) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, cookie := range s.cookies {
		s.source.UninhibitSleep(cookie)
		delete(s.cookies, token)
	}
	return nil
}
