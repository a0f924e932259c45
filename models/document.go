package models

import (
	"slices"
	"strings"
	"time"
)

// AnonymousOwner is the owner sentinel of documents created before sign-in.
const AnonymousOwner = "anonymous"

// Id prefixes. Temporary ids are minted in memory, local ids by the local
// store. Anything else was assigned by the document server.
const (
	TemporaryIDPrefix = "tmp-"
	LocalIDPrefix     = "local-"
)

// IsTemporaryID reports whether id was minted in memory and never persisted.
func IsTemporaryID(id string) bool {
	return strings.HasPrefix(id, TemporaryIDPrefix)
}

// IsLocalID reports whether id was assigned by the local store.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

// IsRemoteID reports whether id was assigned by the document server.
func IsRemoteID(id string) bool {
	return id != "" && !IsTemporaryID(id) && !IsLocalID(id)
}

// Document is a user-owned emoji pattern.
//
// ID is either temporary (minted on the client, never seen by a backend) or
// durable (assigned by a backend on the first successful create). Durable
// reports which one it is. The transition happens exactly once.
type Document struct {
	ID        string    `json:"id"`
	Durable   bool      `json:"-"`
	Owner     string    `json:"ownerId"`
	Title     string    `json:"title"`
	Content   []string  `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of d. Content is never shared between snapshots.
func (d Document) Clone() Document {
	d.Content = slices.Clone(d.Content)
	return d
}

// IsAnonymous reports whether d belongs to the local-only identity.
func (d Document) IsAnonymous() bool {
	return d.Owner == "" || d.Owner == AnonymousOwner
}

// NewerThan reports whether d carries a more recent optimistic state than other.
func (d Document) NewerThan(other Document) bool {
	return d.UpdatedAt.After(other.UpdatedAt)
}

// Patch returns the full patch (title and content) describing d.
func (d Document) Patch() DocumentPatch {
	return NewDocumentPatch().WithTitle(d.Title).WithContent(d.Content)
}

// DocumentPatch names exactly which fields of a document changed. A nil
// Title means the title is untouched; Content is only applied when
// ContentSet is true, so an empty pattern can still be written.
type DocumentPatch struct {
	Title      *string  `json:"title,omitempty"`
	Content    []string `json:"content,omitempty"`
	ContentSet bool     `json:"contentSet,omitempty"`
}

// NewDocumentPatch returns an empty patch.
func NewDocumentPatch() DocumentPatch {
	return DocumentPatch{}
}

// WithTitle returns a copy of p that sets the title.
func (p DocumentPatch) WithTitle(title string) DocumentPatch {
	p.Title = &title
	return p
}

// WithContent returns a copy of p that replaces the content.
func (p DocumentPatch) WithContent(content []string) DocumentPatch {
	p.Content = slices.Clone(content)
	p.ContentSet = true
	return p
}

// IsEmpty reports whether p changes nothing.
func (p DocumentPatch) IsEmpty() bool {
	return p.Title == nil && !p.ContentSet
}

// Merge folds next on top of p: fields named by next win, the rest of p is kept.
func (p DocumentPatch) Merge(next DocumentPatch) DocumentPatch {
	if next.Title != nil {
		p = p.WithTitle(*next.Title)
	}
	if next.ContentSet {
		p = p.WithContent(next.Content)
	}
	return p
}

// Apply returns d with the fields named by p replaced.
func (p DocumentPatch) Apply(d Document) Document {
	d = d.Clone()
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.ContentSet {
		d.Content = slices.Clone(p.Content)
	}
	return d
}

// Request converts p into the wire body of POST/PUT /documents using base
// for every field p leaves untouched.
func (p DocumentPatch) Request(base Document) DocumentRequest {
	d := p.Apply(base)
	content := d.Content
	if content == nil {
		content = []string{}
	}
	return DocumentRequest{Title: d.Title, Content: content}
}
