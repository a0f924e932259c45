// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/internal/backoff"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/validators"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// Scheduler turns edits into persistence calls. One instance belongs to one
// edit session and owns all of its timers and in-flight contexts.
//
// Every document has its own stream. A stream holds at most one pending save
// (edits arriving while it waits are merged into it) and at most one call in
// flight, so two calls for the same document never overlap. Different
// documents save independently.
type Scheduler struct {
	strategy     StorageStrategy
	registry     *IDRegistry
	queue        *outboxQueue
	connectivity *Connectivity
	policy       *backoff.Policy
	validator    validators.Validator
	sink         ResultSink

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	idle    *sync.Cond
	streams map[string]*saveStream
	aliases map[string]string
	expired bool
	closed  bool

	// requestDrain asks the replay worker to run; set by SetDrainRequester.
	requestDrain func()

	logger *logger.Logger
}

type saveStream struct {
	key      string
	timer    *time.Timer
	gen      uint64
	pending  *pendingSave
	inFlight bool
	cancel   context.CancelFunc
}

// pendingSave is the next call a stream will make. backend is selected when
// the edit arrives and used unchanged when the call fires.
type pendingSave struct {
	op      models.OperationKind
	doc     models.Document
	patch   models.DocumentPatch
	backend Backend
}

func NewScheduler(
	strategy StorageStrategy,
	registry *IDRegistry,
	queue *outboxQueue,
	connectivity *Connectivity,
	policy *backoff.Policy,
	validator validators.Validator,
	sink ResultSink,
	logger *logger.Logger,
) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		strategy:     strategy,
		registry:     registry,
		queue:        queue,
		connectivity: connectivity,
		policy:       policy,
		validator:    validator,
		sink:         sink,
		ctx:          ctx,
		cancel:       cancel,
		streams:      make(map[string]*saveStream),
		aliases:      make(map[string]string),
		requestDrain: func() {},
		logger:       logger,
	}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// SetDrainRequester sets what the scheduler calls after queueing a write
// while online.
func (s *Scheduler) SetDrainRequester(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn == nil {
		fn = func() {}
	}
	s.requestDrain = fn
}

// Acquire implements [DocumentGuard]. It waits until nothing is in flight for
// the document known by any of ids and holds its slot: saves arriving
// meanwhile stay pending and fire once the slot is released.
func (s *Scheduler) Acquire(ids ...string) (release func(aliases ...string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(ids) == 0 {
		return func(...string) {}
	}

	st := s.streamForLocked(ids)
	for st.inFlight {
		s.idle.Wait()
		// the stream may have been dropped while waiting
		st = s.streamForLocked(ids)
	}
	st.inFlight = true
	s.wg.Add(1)

	return func(aliases ...string) {
		s.mu.Lock()
		defer s.mu.Unlock()
		defer s.wg.Done()

		s.aliasLocked(st, aliases)
		s.settleLocked(st)
	}
}

// Schedule implements [Saver]. With a debounced backend the stream's timer is
// reset and the pending payload replaced; otherwise the save fires at once.
func (s *Scheduler) Schedule(doc models.Document, patch models.DocumentPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	backend := s.strategy.Select()
	st := s.streamLocked(doc.ID)
	if st.pending != nil && st.pending.op == models.OperationUpdate {
		patch = st.pending.patch.Merge(patch)
	}
	st.pending = &pendingSave{op: models.OperationUpdate, doc: doc.Clone(), patch: patch, backend: backend}

	if d := backend.Debounce(); d > 0 {
		s.resetTimerLocked(st, d)
		return
	}
	s.stopTimerLocked(st)
	s.fireLocked(st)
}

// SaveNow implements [Saver]: any pending timer is cancelled and doc is sent
// immediately, or right after the call already in flight.
func (s *Scheduler) SaveNow(doc models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	st := s.streamLocked(doc.ID)
	patch := doc.Patch()
	if st.pending != nil && st.pending.op == models.OperationUpdate {
		patch = st.pending.patch.Merge(patch)
	}
	st.pending = &pendingSave{op: models.OperationUpdate, doc: doc.Clone(), patch: patch, backend: s.strategy.Select()}

	s.stopTimerLocked(st)
	s.fireLocked(st)
}

// Delete implements [Saver]. A pending save for doc is dropped.
func (s *Scheduler) Delete(doc models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	st := s.streamLocked(doc.ID)
	st.pending = &pendingSave{op: models.OperationDelete, doc: doc.Clone(), backend: s.strategy.Select()}

	s.stopTimerLocked(st)
	s.fireLocked(st)
}

// Resume lifts the block on remote saves set by a 401.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expired = false
}

func (s *Scheduler) sessionExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expired
}

func (s *Scheduler) markExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expired = true
}

// Flush fires every pending save without waiting for its debounce and
// blocks until nothing is in flight.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	for _, st := range s.streams {
		if st.pending != nil {
			s.stopTimerLocked(st)
			s.fireLocked(st)
		}
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Close stops all timers and cancels in-flight calls. Writes cancelled this
// way are queued in the outbox rather than dropped.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for _, st := range s.streams {
		s.stopTimerLocked(st)
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) streamLocked(id string) *saveStream {
	key := id
	if k, ok := s.aliases[id]; ok {
		key = k
	}

	st, ok := s.streams[key]
	if !ok {
		st = &saveStream{key: key}
		s.streams[key] = st
	}
	return st
}

func (s *Scheduler) resetTimerLocked(st *saveStream, d time.Duration) {
	s.stopTimerLocked(st)

	gen := st.gen
	st.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if st.gen != gen || s.closed {
			return
		}
		st.timer = nil
		s.fireLocked(st)
	})
}

func (s *Scheduler) stopTimerLocked(st *saveStream) {
	st.gen++
	if st.timer != nil {
		st.timer.Stop()
		st.timer = nil
	}
}

// fireLocked starts the pending save unless a call is already in flight; in
// that case the save starts when the in-flight call returns.
func (s *Scheduler) fireLocked(st *saveStream) {
	if st.pending == nil || st.inFlight {
		return
	}

	p := st.pending
	st.pending = nil
	st.inFlight = true

	ctx, cancel := context.WithCancel(s.ctx)
	st.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx, st, p)
}

func (s *Scheduler) run(ctx context.Context, st *saveStream, p *pendingSave) {
	defer s.wg.Done()

	result := s.persist(ctx, p)
	s.sink.Confirm(result)

	s.mu.Lock()
	defer s.mu.Unlock()

	st.cancel()
	st.cancel = nil

	if result.Record != nil {
		s.aliasLocked(st, []string{result.Record.ID})
	}
	s.settleLocked(st)
}

// settleLocked frees st's slot and starts its pending save, if any.
func (s *Scheduler) settleLocked(st *saveStream) {
	st.inFlight = false
	s.idle.Broadcast()

	if st.pending != nil && st.timer == nil && !s.closed {
		s.fireLocked(st)
		return
	}
	if st.pending == nil && st.timer == nil {
		s.dropStreamLocked(st)
	}
}

// streamForLocked finds the stream of the document known by any of ids,
// creating one keyed by ids[0] when there is none.
func (s *Scheduler) streamForLocked(ids []string) *saveStream {
	for _, id := range ids {
		key := id
		if k, ok := s.aliases[id]; ok {
			key = k
		}
		if st, ok := s.streams[key]; ok {
			s.aliasLocked(st, ids)
			return st
		}
	}

	st := s.streamLocked(ids[0])
	s.aliasLocked(st, ids)
	return st
}

// aliasLocked routes ids to st unless they already name another stream.
func (s *Scheduler) aliasLocked(st *saveStream, ids []string) {
	for _, id := range ids {
		if id == "" || id == st.key {
			continue
		}
		if _, ok := s.aliases[id]; ok {
			continue
		}
		if _, ok := s.streams[id]; ok {
			continue
		}
		s.aliases[id] = st.key
	}
}

func (s *Scheduler) dropStreamLocked(st *saveStream) {
	delete(s.streams, st.key)
	for alias, key := range s.aliases {
		if key == st.key {
			delete(s.aliases, alias)
		}
	}
}
