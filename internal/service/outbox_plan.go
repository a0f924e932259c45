// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-pattern-keeper/models"

// ReplayStep is the one effective write left for a document after its
// outbox entries are coalesced. An empty Kind means there is nothing to send
// and the entries only need to be marked synced.
type ReplayStep struct {
	TargetID string
	Kind     models.OperationKind
	Request  models.DocumentRequest
	Base     models.Document
	EntryIDs []string
}

// Noop reports whether the step sends nothing.
func (s ReplayStep) Noop() bool {
	return s.Kind == ""
}

// Document returns Base with the request applied, the state the step writes.
func (s ReplayStep) Document() models.Document {
	d := s.Base.Clone()
	d.Title = s.Request.Title
	d.Content = append([]string{}, s.Request.Content...)
	return d
}

// Coalesce groups unsynced entries by target document, in the order each
// document first appears, and keeps one effective write per group:
//
//   - a group whose last entry is a delete becomes a delete, or nothing at
//     all when the document never reached the server;
//   - a group for a server id becomes an update carrying every queued change;
//   - a group for a temporary or local id becomes a single create carrying
//     every queued change, which keeps create ahead of any later update.
//
// resolve maps ids through recorded transitions; nil leaves them as is.
// entries must be in enqueue order.
func Coalesce(entries []models.PendingMutation, resolve func(string) string) []ReplayStep {
	var order []string
	groups := make(map[string][]models.PendingMutation)

	for _, e := range entries {
		if e.Synced {
			continue
		}
		target := e.TargetDocumentID
		if resolve != nil {
			target = resolve(target)
		}
		if _, ok := groups[target]; !ok {
			order = append(order, target)
		}
		groups[target] = append(groups[target], e)
	}

	steps := make([]ReplayStep, 0, len(order))
	for _, target := range order {
		steps = append(steps, coalesceGroup(target, groups[target]))
	}
	return steps
}

func coalesceGroup(target string, group []models.PendingMutation) ReplayStep {
	last := group[len(group)-1]

	step := ReplayStep{
		TargetID: target,
		Base:     last.Base.Clone(),
		EntryIDs: make([]string, 0, len(group)),
	}

	payload := models.NewDocumentPatch()
	for _, e := range group {
		step.EntryIDs = append(step.EntryIDs, e.ID)
		if e.Kind != models.OperationDelete {
			payload = payload.Merge(e.Payload)
		}
	}

	remote := models.IsRemoteID(target)
	switch {
	case last.Kind == models.OperationDelete:
		if remote {
			step.Kind = models.OperationDelete
		}
	case remote:
		step.Kind = models.OperationUpdate
	default:
		step.Kind = models.OperationCreate
	}

	if step.Kind == models.OperationCreate || step.Kind == models.OperationUpdate {
		step.Request = payload.Request(last.Base)
	}
	return step
}
