package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofrs/flock"

	"marquee/internal/logging"
)

const lockRetryDelay = 50 * time.Millisecond

// withReadLock runs fn while holding a shared lock on path+".lock". When the
// lock cannot be taken within timeout the failure is logged and fn runs
// anyway.
func withReadLock(ctx context.Context, path string, timeout time.Duration, logger *slog.Logger, fn func() error) error {
	lock := flock.New(path + ".lock")

	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := lock.TryRLockContext(lockCtx, lockRetryDelay)
	if err != nil || !locked {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		attrs := []logging.Attr{
			logging.String(logging.FieldSource, path),
			logging.String(logging.FieldImpact, "dataset read without a lock; a concurrent rewrite may be observed"),
			logging.String(logging.FieldErrorHint, "check permissions on the dataset directory"),
		}
		if err != nil {
			attrs = append(attrs, logging.Error(err))
		}
		logging.WarnWithContext(logger, "source lock unavailable", "source_lock_failed", attrs...)
		return fn()
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Debug("release source lock failed", logging.Error(err))
		}
	}()
	return fn()
}
