package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kolpakovda/go-journal-client/internal/logger"
	"github.com/kolpakovda/go-journal-client/internal/service"
)

// BadgeJob keeps the pending friend-request counter fresh while the client
// shell is running. The counter is refreshed on a fixed timer; pages may
// decrement it optimistically after accepting or rejecting a request, and
// the next timer tick overwrites whatever they left behind.
type BadgeJob interface {
	// Start launches the background refresh goroutine. A non-positive
	// interval defaults to 30 seconds. A previously running job is stopped
	// before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has terminated.
	Stop()

	// Count returns the last known pending request count.
	Count() int

	// Decrement lowers the counter optimistically, never below zero.
	Decrement()

	// RefreshNow fetches the count once, outside the timer schedule.
	RefreshNow(ctx context.Context)
}

type badgeJob struct {
	friendService service.ClientFriendService
	logger        *logger.Logger

	count atomic.Int64

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewBadgeJob(friendService service.ClientFriendService, log *logger.Logger) BadgeJob {
	return &badgeJob{friendService: friendService, logger: log}
}

func (j *badgeJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		// fill the badge right away instead of waiting out the first tick
		j.RefreshNow(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.RefreshNow(jobCtx)
			}
		}
	}()
}

func (j *badgeJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *badgeJob) Count() int {
	return int(j.count.Load())
}

func (j *badgeJob) Decrement() {
	for {
		current := j.count.Load()
		if current <= 0 {
			return
		}
		if j.count.CompareAndSwap(current, current-1) {
			return
		}
	}
}

// RefreshNow is last-write-wins against optimistic decrements: a fetch that
// races a decrement simply becomes authoritative on the next render.
func (j *badgeJob) RefreshNow(ctx context.Context) {
	count, err := j.friendService.PendingCount(ctx)
	if err != nil {
		j.logger.Debug().Err(err).Msg("badge refresh failed, keeping previous count")
		return
	}
	j.count.Store(int64(count))
}
