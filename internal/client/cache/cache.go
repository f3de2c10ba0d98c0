// Package cache keeps locally stored, possibly-stale copies of
// backend-fetched resources so views stay consistent after mutations
// without refetching everything.
//
// Entries are keyed by (resource kind, resource id, filter). A successful
// mutation marks every entry it could affect stale before the mutation's
// caller observes completion; the refetch itself happens lazily on the
// next read. Failed mutations touch nothing.
package cache

import (
	"context"
	"time"
)

// Resource kinds used as the first key component.
const (
	// KindBlogList holds list results; ID is always zero and Filter is the
	// category ("" for the unfiltered list).
	KindBlogList = "blogs"
	// KindBlog holds a single blog detail keyed by id.
	KindBlog = "blog"
	// KindUser holds a user profile keyed by id.
	KindUser = "user"
)

// Key identifies one cache entry.
type Key struct {
	Kind   string
	ID     int64
	Filter string
}

// ListKey builds the key for a blogs list with the given category filter.
func ListKey(category string) Key {
	return Key{Kind: KindBlogList, Filter: category}
}

// BlogKey builds the key for a single blog detail.
func BlogKey(id int64) Key {
	return Key{Kind: KindBlog, ID: id}
}

// UserKey builds the key for a user profile.
func UserKey(id int64) Key {
	return Key{Kind: KindUser, ID: id}
}

// Entry is one stored resource copy plus its staleness state.
type Entry struct {
	Key       Key
	Payload   []byte
	Stale     bool
	FetchedAt time.Time
}

// Usable reports whether the entry may be served instead of refetching:
// not marked stale and younger than ttl.
func (e *Entry) Usable(ttl time.Duration, now time.Time) bool {
	if e == nil || e.Stale {
		return false
	}
	return now.Sub(e.FetchedAt) < ttl
}

// Store is the persistence interface for cache entries.
type Store interface {
	// Get returns the entry for key, or nil if none is stored.
	Get(ctx context.Context, key Key) (*Entry, error)

	// Put stores payload under key as a fresh entry fetched now,
	// replacing any previous entry.
	Put(ctx context.Context, key Key, payload []byte) error

	// MarkStale flags every entry with the given kind and id, across all
	// filters. For list kinds id is zero, so one call covers every filter
	// variant of the list.
	MarkStale(ctx context.Context, kind string, id int64) error

	// Clear drops all entries.
	Clear(ctx context.Context) error
}

// InvalidateBlog applies the invalidation rule for any successful blog
// mutation (create, update, delete, like, comment): the blog's own detail
// entry, every list entry whose filter could include or exclude it, and
// the author's profile (its blog count and recent list embed the blog).
func InvalidateBlog(ctx context.Context, s Store, blogID, authorID int64) error {
	if err := s.MarkStale(ctx, KindBlog, blogID); err != nil {
		return err
	}
	if err := s.MarkStale(ctx, KindBlogList, 0); err != nil {
		return err
	}
	if authorID != 0 {
		return s.MarkStale(ctx, KindUser, authorID)
	}
	return nil
}
