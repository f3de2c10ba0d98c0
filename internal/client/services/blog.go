// Package services contains application services for the BlogIt client:
// cache-aware wrappers over the API gateway client, plus the client-side
// form validation the views run before submitting.
package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blogit-app/blogit-cli/internal/client/api"
	"github.com/blogit-app/blogit-cli/internal/client/cache"
	"github.com/blogit-app/blogit-cli/internal/client/models"
	"github.com/blogit-app/blogit-cli/internal/logging"
)

// BlogService layers the read-through cache and the invalidation contract
// over the raw blog operations. Reads serve a usable cache entry without a
// network call; mutations go straight to the backend and, on success, mark
// the affected entries stale before returning. A failed mutation leaves
// every cache entry intact.
type BlogService struct {
	client api.Client
	cache  cache.Store
	ttl    time.Duration
	log    logging.Logger
}

func NewBlogService(client api.Client, store cache.Store, ttl time.Duration, log logging.Logger) *BlogService {
	return &BlogService{client: client, cache: store, ttl: ttl, log: log}
}

// cachedInto loads the entry for key into out if it is usable.
// Cache failures are logged and treated as a miss, never surfaced.
func (s *BlogService) cachedInto(ctx context.Context, key cache.Key, out any) bool {
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "cache read failed", "key", key, "error", err)
		return false
	}
	if !entry.Usable(s.ttl, time.Now()) {
		return false
	}
	if err := json.Unmarshal(entry.Payload, out); err != nil {
		s.log.Warn(ctx, "cache entry is corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// storeEntry writes a freshly fetched value under key. Failures only
// degrade caching, so they are logged and swallowed.
func (s *BlogService) storeEntry(ctx context.Context, key cache.Key, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.log.Warn(ctx, "cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Put(ctx, key, payload); err != nil {
		s.log.Warn(ctx, "cache write failed", "key", key, "error", err)
	}
}

// List returns blog summaries for the given category filter ("" for all),
// from cache when possible. An unknown category is an empty list, not an
// error.
func (s *BlogService) List(ctx context.Context, category string) ([]models.BlogSummary, error) {
	key := cache.ListKey(category)

	var blogs []models.BlogSummary
	if s.cachedInto(ctx, key, &blogs) {
		return blogs, nil
	}

	blogs, err := s.client.ListBlogs(ctx, category)
	if err != nil {
		return nil, err
	}
	s.storeEntry(ctx, key, blogs)
	return blogs, nil
}

// Categories derives the distinct category set from the unfiltered list,
// for the filter chips of the list view.
func (s *BlogService) Categories(ctx context.Context) ([]string, error) {
	blogs, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var categories []string
	for _, b := range blogs {
		if b.Category == "" {
			continue
		}
		if _, ok := seen[b.Category]; ok {
			continue
		}
		seen[b.Category] = struct{}{}
		categories = append(categories, b.Category)
	}
	return categories, nil
}

// Get returns one blog detail, from cache when possible.
func (s *BlogService) Get(ctx context.Context, id int64) (*models.BlogDetail, error) {
	key := cache.BlogKey(id)

	var blog models.BlogDetail
	if s.cachedInto(ctx, key, &blog) {
		return &blog, nil
	}

	fetched, err := s.client.GetBlog(ctx, id)
	if err != nil {
		return nil, err
	}
	s.storeEntry(ctx, key, fetched)
	return fetched, nil
}

// Create publishes a new blog and invalidates every entry the new post
// could appear in.
func (s *BlogService) Create(ctx context.Context, payload models.BlogPayload) (*models.BlogDetail, error) {
	blog, err := s.client.CreateBlog(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.invalidateBlog(ctx, blog.ID, blog.Author.ID)
	return blog, nil
}

// Update edits an existing blog. Non-owners get the backend's
// authorization error and no cache entry changes.
func (s *BlogService) Update(ctx context.Context, id int64, payload models.BlogPayload) (*models.BlogDetail, error) {
	blog, err := s.client.UpdateBlog(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.invalidateBlog(ctx, id, blog.Author.ID)
	return blog, nil
}

// Delete removes a blog. authorID is the owning author, known to the
// caller from the detail view it is deleting from; it routes the
// invalidation to the author's profile entry as well.
func (s *BlogService) Delete(ctx context.Context, id, authorID int64) error {
	if err := s.client.DeleteBlog(ctx, id); err != nil {
		return err
	}
	s.invalidateBlog(ctx, id, authorID)
	return nil
}

// ToggleLike flips the current user's like and returns the state the
// backend reports. Rapid repeated calls each hit the network; the last
// response wins.
func (s *BlogService) ToggleLike(ctx context.Context, id int64) (*models.LikeState, error) {
	state, err := s.client.ToggleLike(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.MarkStale(ctx, cache.KindBlog, id); err != nil {
		s.log.Warn(ctx, "cache invalidation failed", "blog", id, "error", err)
	}
	return state, nil
}

// Comment posts a comment on a blog and invalidates its detail entry.
func (s *BlogService) Comment(ctx context.Context, id int64, content string) (*models.Comment, error) {
	comment, err := s.client.AddComment(ctx, id, content)
	if err != nil {
		return nil, err
	}
	if err := s.cache.MarkStale(ctx, cache.KindBlog, id); err != nil {
		s.log.Warn(ctx, "cache invalidation failed", "blog", id, "error", err)
	}
	return comment, nil
}

func (s *BlogService) invalidateBlog(ctx context.Context, blogID, authorID int64) {
	if err := cache.InvalidateBlog(ctx, s.cache, blogID, authorID); err != nil {
		s.log.Warn(ctx, "cache invalidation failed", "blog", blogID, "error", err)
	}
}
