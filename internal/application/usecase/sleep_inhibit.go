// Package usecase contains the application logic that sits between the
// fullscreen controller and the platform ports.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/logging"
	"github.com/bnema/glide/internal/syncutil"
)

var (
	// ErrTokenAlreadyLive is returned by Acquire while a token is held.
	ErrTokenAlreadyLive = errors.New("sleep inhibition already held")
	// ErrEmptyToken is returned when the platform grants inhibition without a handle.
	ErrEmptyToken = errors.New("sleep inhibitor returned an empty token")
)

// SleepInhibitUseCase tracks the single live display-sleep token of a
// fullscreen session. It guarantees at most one outstanding Inhibit and
// that Uninhibit is only ever called with the token Inhibit returned.
type SleepInhibitUseCase struct {
	inhibitor port.SleepInhibitor

	mu       syncutil.Mutex
	token    entity.SleepToken
	acquired int
	released int
}

// NewSleepInhibitUseCase creates the coordinator around a platform inhibitor.
func NewSleepInhibitUseCase(inhibitor port.SleepInhibitor) *SleepInhibitUseCase {
	return &SleepInhibitUseCase{inhibitor: inhibitor}
}

// Acquire asks the platform to keep the display awake and stores the token.
func (uc *SleepInhibitUseCase) Acquire(ctx context.Context, reason string) error {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.token.IsZero() {
		return ErrTokenAlreadyLive
	}

	token, err := uc.inhibitor.Inhibit(ctx, reason)
	if err != nil {
		return fmt.Errorf("inhibit display sleep: %w", err)
	}
	if token.IsZero() {
		return ErrEmptyToken
	}

	uc.token = token
	uc.acquired++
	log.Debug().
		Str("token", string(token)).
		Str("reason", reason).
		Msg("sleep inhibition acquired")
	return nil
}

// Release hands the live token back to the platform. Without a live token
// it does nothing. The token is dropped even if the platform reports an
// error, so a failed release is never retried with a stale handle.
func (uc *SleepInhibitUseCase) Release(ctx context.Context) error {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.token.IsZero() {
		return nil
	}

	token := uc.token
	uc.token = ""
	uc.released++

	if err := uc.inhibitor.Uninhibit(ctx, token); err != nil {
		log.Warn().Err(err).Str("token", string(token)).Msg("sleep inhibition release failed")
		return fmt.Errorf("uninhibit display sleep: %w", err)
	}

	log.Debug().Str("token", string(token)).Msg("sleep inhibition released")
	return nil
}

// IsLive reports whether a token is currently held.
func (uc *SleepInhibitUseCase) IsLive() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return !uc.token.IsZero()
}

// Token returns the live token, or the zero token.
func (uc *SleepInhibitUseCase) Token() entity.SleepToken {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.token
}

// Outstanding returns acquisitions minus releases. It is always 0 or 1.
func (uc *SleepInhibitUseCase) Outstanding() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.acquired - uc.released
}
