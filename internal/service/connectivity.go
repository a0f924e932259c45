package service

import (
	"sync"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// Connectivity owns the process-wide SyncStatus.
//
//	online  → offline  on connectivity loss
//	offline → syncing  on restoration
//	syncing → online   once the outbox is empty
//	syncing → offline  when connectivity is lost mid-drain
//
// A periodic drain that finds work moves online → syncing as well.
type Connectivity struct {
	mu        sync.Mutex
	status    models.SyncStatus
	listeners []func(prev, next models.SyncStatus)

	logger *logger.Logger
}

// NewConnectivity starts in initial. The client starts offline and lets the
// first probe decide.
func NewConnectivity(initial models.SyncStatus, logger *logger.Logger) *Connectivity {
	return &Connectivity{status: initial, logger: logger}
}

// OnChange registers fn to be called after every transition. Listeners run
// synchronously, outside the lock, in registration order.
func (c *Connectivity) OnChange(fn func(prev, next models.SyncStatus)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Connectivity) Status() models.SyncStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Online reports whether a remote write may be attempted.
func (c *Connectivity) Online() bool {
	return c.Status() != models.SyncOffline
}

// Lost records a connectivity loss.
func (c *Connectivity) Lost() {
	c.transition(func(s models.SyncStatus) models.SyncStatus {
		return models.SyncOffline
	})
}

// Restored records that the server answered again. It reports whether this
// ended an offline period, which is when the outbox must be drained.
func (c *Connectivity) Restored() bool {
	prev, _ := c.transition(func(s models.SyncStatus) models.SyncStatus {
		if s == models.SyncOffline {
			return models.SyncSyncing
		}
		return s
	})
	return prev == models.SyncOffline
}

// BeginSync marks the start of a drain that has work to do.
func (c *Connectivity) BeginSync() {
	c.transition(func(s models.SyncStatus) models.SyncStatus {
		if s == models.SyncOnline {
			return models.SyncSyncing
		}
		return s
	})
}

// Drained ends a drain. The status only returns to online once nothing is
// pending; otherwise it stays syncing until a later drain empties the outbox.
func (c *Connectivity) Drained(pending int) {
	c.transition(func(s models.SyncStatus) models.SyncStatus {
		if s == models.SyncSyncing && pending == 0 {
			return models.SyncOnline
		}
		return s
	})
}

// Report inspects a failed remote call and records a loss when the server
// could not be reached at all.
func (c *Connectivity) Report(err error) {
	if err != nil && isConnectivityLoss(err) {
		c.Lost()
	}
}

func (c *Connectivity) transition(next func(models.SyncStatus) models.SyncStatus) (prev, cur models.SyncStatus) {
	c.mu.Lock()
	prev = c.status
	cur = next(prev)
	c.status = cur
	listeners := append([]func(prev, next models.SyncStatus){}, c.listeners...)
	c.mu.Unlock()

	if prev == cur {
		return prev, cur
	}

	c.logger.Info().Str("from", string(prev)).Str("to", string(cur)).Msg("sync status changed")
	for _, fn := range listeners {
		fn(prev, cur)
	}
	return prev, cur
}
