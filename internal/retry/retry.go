package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wrestler_elo/internal/config"

	"github.com/rs/zerolog/log"
)

// permanentError marks an error that retrying cannot fix
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so Execute returns it without further attempts
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was wrapped with Permanent
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// Policy handles retry logic with exponential backoff
type Policy struct {
	config config.RetryConfig
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewPolicy creates a retry policy from a retry profile
func NewPolicy(cfg config.RetryConfig) *Policy {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 1
	}
	return &Policy{config: cfg, sleep: sleepContext}
}

// Execute runs fn until it succeeds, returns a permanent error, the context
// ends or the attempts run out. Each attempt gets its own timeout when the
// profile sets one.
func (p *Policy) Execute(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var lastErr error
	wait := p.config.InitialWait

	for attempt := 1; attempt <= p.config.MaxAttempts; attempt++ {
		err := p.attempt(ctx, fn)
		if err == nil {
			if attempt > 1 {
				log.Debug().
					Str("operation", operation).
					Int("attempt", attempt).
					Msg("Operation succeeded after retry")
			}
			return nil
		}

		lastErr = err
		if IsPermanent(err) {
			return err
		}
		if ctx.Err() != nil {
			return fmt.Errorf("%s cancelled: %w", operation, ctx.Err())
		}

		// Don't sleep after last attempt
		if attempt == p.config.MaxAttempts {
			break
		}

		log.Warn().
			Err(err).
			Str("operation", operation).
			Int("attempt", attempt).
			Int("max_attempts", p.config.MaxAttempts).
			Dur("wait", wait).
			Msg("Operation failed, retrying")

		if err := p.sleep(ctx, wait); err != nil {
			return fmt.Errorf("%s cancelled: %w", operation, err)
		}

		wait = time.Duration(float64(wait) * p.config.Multiplier)
		if p.config.MaxWait > 0 && wait > p.config.MaxWait {
			wait = p.config.MaxWait
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operation, p.config.MaxAttempts, lastErr)
}

func (p *Policy) attempt(ctx context.Context, fn func(ctx context.Context) error) error {
	if p.config.Timeout <= 0 {
		return fn(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()
	return fn(attemptCtx)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
