// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// Session is the edit session: the open document, every known document and
// the save status the UI renders.
//
// Edits are applied optimistically before any I/O and handed to a [Saver].
// Outcomes come back through Confirm. Every change to the known list goes
// through apply, so UI edits, backend confirmations and migration never race.
type Session struct {
	mu    sync.Mutex
	state sessionState

	saver Saver
	ids   utils.IDGenerator
	clock func() time.Time

	subMu  sync.Mutex
	subs   map[int]chan models.SaveStatus
	nextID int

	logger *logger.Logger
}

type sessionState struct {
	owner     string
	currentID string
	known     []models.Document
	deleted   map[string]deletedEntry
	save      saveState
}

// deletedEntry keeps an optimistically removed document until its delete is
// confirmed, so it can be put back where it was.
type deletedEntry struct {
	doc   models.Document
	index int
}

func NewSession(ids utils.IDGenerator, logger *logger.Logger) *Session {
	return &Session{
		state: sessionState{
			owner:   models.AnonymousOwner,
			known:   []models.Document{},
			deleted: make(map[string]deletedEntry),
			save:    saveState{status: models.SaveStatus{SyncStatus: models.SyncOffline}},
		},
		ids:    ids,
		clock:  time.Now,
		subs:   make(map[int]chan models.SaveStatus),
		logger: logger,
	}
}

// SetSaver attaches the scheduler. It must be called before the first edit.
func (s *Session) SetSaver(saver Saver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saver = saver
}

// apply is the single state-update function. fn runs under the lock;
// subscribers are notified afterwards if the status changed.
func (s *Session) apply(fn func(st *sessionState)) {
	s.mu.Lock()
	before := s.state.save.status
	fn(&s.state)
	after := s.state.save.status
	s.mu.Unlock()

	if !sameStatus(before, after) {
		s.publish()
	}
}

// read runs fn under the lock without touching the status.
func (s *Session) read(fn func(st *sessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// stamp returns a timestamp strictly after prev so optimistic snapshots of
// one document always order.
func (s *Session) stamp(prev time.Time) time.Time {
	now := s.clock().UTC()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}

// NewDocument creates an empty document with a temporary id, adds it to the
// known list and opens it. Nothing is persisted until the first edit.
func (s *Session) NewDocument(title string) models.Document {
	var doc models.Document
	s.apply(func(st *sessionState) {
		now := s.clock().UTC()
		doc = models.Document{
			ID:        models.TemporaryIDPrefix + s.ids.Generate(),
			Owner:     st.owner,
			Title:     title,
			Content:   []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		st.known = append(st.known, doc)
		st.currentID = doc.ID
	})
	return doc.Clone()
}

// SetCurrent opens doc, adding it to the known list if it is not there yet.
func (s *Session) SetCurrent(doc models.Document) {
	s.apply(func(st *sessionState) {
		if idx := st.index(doc.ID); idx < 0 {
			st.known = append(st.known, doc.Clone())
		}
		st.currentID = doc.ID
	})
}

// Open makes the known document id current.
func (s *Session) Open(id string) error {
	var err error
	s.apply(func(st *sessionState) {
		if st.index(id) < 0 {
			err = ErrUnknownDocument
			return
		}
		st.currentID = id
	})
	return err
}

// Current returns the open document.
func (s *Session) Current() (doc models.Document, ok bool) {
	s.read(func(st *sessionState) {
		if idx := st.index(st.currentID); idx >= 0 {
			doc, ok = st.known[idx].Clone(), true
		}
	})
	return doc, ok
}

// Known returns a copy of the known list.
func (s *Session) Known() []models.Document {
	var out []models.Document
	s.read(func(st *sessionState) {
		out = make([]models.Document, 0, len(st.known))
		for _, d := range st.known {
			out = append(out, d.Clone())
		}
	})
	return out
}

// Mutate replaces the content of the open document.
func (s *Session) Mutate(content []string) (models.Document, error) {
	return s.mutate(models.NewDocumentPatch().WithContent(content))
}

// MutateTitle renames the open document.
func (s *Session) MutateTitle(title string) (models.Document, error) {
	return s.mutate(models.NewDocumentPatch().WithTitle(title))
}

// mutate produces the next optimistic snapshot: same id, patch applied, new
// UpdatedAt. The known list is updated before the saver sees the edit.
func (s *Session) mutate(patch models.DocumentPatch) (models.Document, error) {
	var (
		next  models.Document
		saver Saver
		err   error
	)
	s.apply(func(st *sessionState) {
		idx := st.index(st.currentID)
		if idx < 0 {
			err = ErrNoCurrentDocument
			return
		}
		next = patch.Apply(st.known[idx])
		next.UpdatedAt = s.stamp(st.known[idx].UpdatedAt)
		st.known[idx] = next
		saver = s.saver
	})
	if err != nil {
		return models.Document{}, err
	}

	if saver != nil {
		saver.Schedule(next.Clone(), patch)
	}
	return next.Clone(), nil
}

// SaveNow saves the open document immediately.
func (s *Session) SaveNow() error {
	doc, ok := s.Current()
	if !ok {
		return ErrNoCurrentDocument
	}

	var saver Saver
	s.read(func(*sessionState) { saver = s.saver })

	if saver != nil {
		saver.SaveNow(doc)
	}
	return nil
}

// Delete removes id from the known list right away. A permanent backend
// failure puts it back and surfaces an error.
func (s *Session) Delete(id string) error {
	var (
		doc   models.Document
		saver Saver
		err   error
	)
	s.apply(func(st *sessionState) {
		idx := st.index(id)
		if idx < 0 {
			err = ErrUnknownDocument
			return
		}
		doc = st.known[idx]
		st.deleted[id] = deletedEntry{doc: doc, index: idx}
		st.known = slices.Delete(st.known, idx, idx+1)
		if st.currentID == id {
			st.currentID = ""
		}
		saver = s.saver
	})
	if err != nil {
		return err
	}

	if saver != nil {
		saver.Delete(doc.Clone())
	}
	return nil
}

// Confirm implements [ResultSink]. The result is reduced into the status and,
// for a save carrying a record, applied to the known list unless a newer
// optimistic snapshot exists. In that case only the id transition is kept.
func (s *Session) Confirm(result models.SaveResult) {
	s.apply(func(st *sessionState) {
		if result.Operation == models.OperationDelete {
			st.confirmDelete(result)
		} else if result.Kind == models.ResultSaved && result.Record != nil {
			if superseded := st.confirmRecord(result); superseded {
				result.Kind = models.ResultSuperseded
			}
		}
		st.save = statusReducer(st.save, result, s.clock())
	})
}

func (st *sessionState) confirmDelete(result models.SaveResult) {
	entry, ok := st.deleted[result.DocumentID]
	if !ok {
		return
	}

	switch result.Kind {
	case models.ResultSaved, models.ResultQueued:
		delete(st.deleted, result.DocumentID)
	case models.ResultFailed, models.ResultSessionExpired:
		delete(st.deleted, result.DocumentID)
		idx := min(entry.index, len(st.known))
		st.known = slices.Insert(st.known, idx, entry.doc)
	}
}

func (st *sessionState) confirmRecord(result models.SaveResult) (superseded bool) {
	rec := *result.Record

	idx := st.index(result.DocumentID)
	if idx < 0 {
		idx = st.index(rec.ID)
	}
	if idx < 0 {
		// deleted while the save was in flight; keep the durable id for a rollback
		if entry, ok := st.deleted[result.DocumentID]; ok {
			delete(st.deleted, result.DocumentID)
			entry.doc.ID, entry.doc.Durable = rec.ID, true
			st.deleted[rec.ID] = entry
		}
		return false
	}

	cur := st.known[idx]
	if cur.UpdatedAt.After(result.At) {
		cur.ID = rec.ID
		cur.Durable = true
		cur.Owner = rec.Owner
		cur.CreatedAt = rec.CreatedAt
		superseded = true
	} else {
		updatedAt := cur.UpdatedAt
		cur = rec.Clone()
		cur.Durable = true
		if updatedAt.After(cur.UpdatedAt) {
			cur.UpdatedAt = updatedAt
		}
	}
	st.known[idx] = cur

	if st.currentID == result.DocumentID {
		st.currentID = rec.ID
	}
	return superseded
}

// ReplaceKnown swaps the known list for docs, used after loading or migrating.
// renamed maps old ids to new ones so the open document stays open. Documents
// that exist only in memory are kept.
func (s *Session) ReplaceKnown(docs []models.Document, renamed map[string]string) {
	s.apply(func(st *sessionState) {
		if to, ok := renamed[st.currentID]; ok {
			st.currentID = to
		}

		known := make([]models.Document, 0, len(docs))
		for _, d := range docs {
			known = append(known, d.Clone())
		}
		for _, d := range st.known {
			if models.IsTemporaryID(d.ID) && !slices.ContainsFunc(known, func(k models.Document) bool { return k.ID == d.ID }) {
				known = append(known, d)
			}
		}
		st.known = known
	})
}

// SetIdentity switches the owner of documents created from now on and lifts
// a session-expired state.
func (s *Session) SetIdentity(owner string) {
	s.apply(func(st *sessionState) {
		if owner == "" {
			owner = models.AnonymousOwner
		}
		st.owner = owner
		if st.save.status.IsSessionExpired {
			st.save.status.IsSessionExpired = false
			st.save.status.SaveError = ""
		}
	})
}

func (s *Session) Owner() (owner string) {
	s.read(func(st *sessionState) { owner = st.owner })
	return owner
}

// SetSyncStatus mirrors the connectivity state into the status surface.
func (s *Session) SetSyncStatus(status models.SyncStatus) {
	s.apply(func(st *sessionState) {
		st.save.status.SyncStatus = status
	})
}

// Dismiss clears a surfaced save error. Session expiry stays until sign-in.
func (s *Session) Dismiss() {
	s.Confirm(models.SaveResult{Kind: models.ResultDismissed})
}

// Status returns the current status surface.
func (s *Session) Status() (status models.SaveStatus) {
	s.read(func(st *sessionState) { status = copyStatus(st.save.status) })
	return status
}

// Subscribe returns a channel receiving the latest status after every change
// and a function that unsubscribes. Slow readers only miss intermediate
// values, never the latest one.
func (s *Session) Subscribe() (<-chan models.SaveStatus, func()) {
	ch := make(chan models.SaveStatus, 1)

	s.subMu.Lock()
	ch <- s.Status()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

// publish sends the status as it is now, so concurrent publishers can only
// ever deliver the latest value.
func (s *Session) publish() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	status := s.Status()
	for _, ch := range s.subs {
		st := copyStatus(status)
		select {
		case ch <- st:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}

func (st *sessionState) index(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(st.known, func(d models.Document) bool { return d.ID == id })
}

func copyStatus(s models.SaveStatus) models.SaveStatus {
	if s.LastSaved != nil {
		t := *s.LastSaved
		s.LastSaved = &t
	}
	return s
}

func sameStatus(a, b models.SaveStatus) bool {
	if (a.LastSaved == nil) != (b.LastSaved == nil) {
		return false
	}
	if a.LastSaved != nil && !a.LastSaved.Equal(*b.LastSaved) {
		return false
	}
	return a.IsAutoSaving == b.IsAutoSaving &&
		a.SaveError == b.SaveError &&
		a.IsSessionExpired == b.IsSessionExpired &&
		a.SyncStatus == b.SyncStatus
}
