package usecase

import (
	"context"
	"sync"
	"time"

	"skidmo-client/internal/core/domain"
	"skidmo-client/internal/core/port"
)

// DefaultCountDebounce is how long the live count waits after the last filter
// change before issuing a request.
const DefaultCountDebounce = 500 * time.Millisecond

// LiveCount backs the "Show N Listings" affordance. Every filter change
// schedules one combined count round trip after a debounce window; a newer
// request supersedes anything still in flight, so stale counts are dropped
// instead of delivered out of order.
type LiveCount struct {
	reader port.ListingReaderPort
	logger port.LoggerPort
	delay  time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewLiveCount builds the use case. delay <= 0 selects the default debounce;
// tests inject a short one.
func NewLiveCount(reader port.ListingReaderPort, logger port.LoggerPort, delay time.Duration) *LiveCount {
	if delay <= 0 {
		delay = DefaultCountDebounce
	}
	return &LiveCount{
		reader: reader,
		logger: logger.WithFields(port.Fields{"component": "LiveCountUseCase"}),
		delay:  delay,
	}
}

// Request schedules a count for the given criteria. deliver runs at most once
// per request, on the debounce goroutine, and only if no newer request has
// been made since.
func (uc *LiveCount) Request(ctx context.Context, criteria domain.FilterCriteria, deliver func(domain.CountResult)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.seq++
	seq := uc.seq
	if uc.timer != nil {
		uc.timer.Stop()
	}
	uc.timer = time.AfterFunc(uc.delay, func() {
		uc.run(ctx, seq, criteria, deliver)
	})
}

func (uc *LiveCount) run(ctx context.Context, seq uint64, criteria domain.FilterCriteria, deliver func(domain.CountResult)) {
	if ctx.Err() != nil {
		return
	}

	count, err := uc.reader.Count(ctx, criteria)

	uc.mu.Lock()
	stale := seq != uc.seq
	uc.mu.Unlock()
	if stale {
		return
	}

	if err != nil {
		uc.logger.Warn("Count request failed", port.Fields{"error": err.Error()})
		deliver(domain.CountResult{Known: false})
		return
	}
	deliver(domain.CountResult{Count: count, Known: true})
}
