package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blogit-app/blogit-cli/internal/client/api"
	"github.com/blogit-app/blogit-cli/internal/client/cache"
	"github.com/blogit-app/blogit-cli/internal/client/models"
	"github.com/blogit-app/blogit-cli/internal/client/session"
	"github.com/blogit-app/blogit-cli/internal/logging"
)

// ProfileService serves user profiles through the cache and keeps the
// stored session user projection in step when the current user edits
// their own profile.
type ProfileService struct {
	client api.Client
	cache  cache.Store
	gate   *session.Gate
	ttl    time.Duration
	log    logging.Logger
}

func NewProfileService(client api.Client, store cache.Store, gate *session.Gate, ttl time.Duration, log logging.Logger) *ProfileService {
	return &ProfileService{client: client, cache: store, gate: gate, ttl: ttl, log: log}
}

// Me fetches the authenticated user's own profile. Always a live call:
// the result drives the profile-edit form, which must not start from
// stale data.
func (s *ProfileService) Me(ctx context.Context) (*models.UserProfile, error) {
	return s.client.GetProfile(ctx)
}

// Get returns a user's public profile, from cache when possible.
func (s *ProfileService) Get(ctx context.Context, id int64) (*models.UserProfile, error) {
	key := cache.UserKey(id)

	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "cache read failed", "key", key, "error", err)
	} else if entry.Usable(s.ttl, time.Now()) {
		var profile models.UserProfile
		if err := json.Unmarshal(entry.Payload, &profile); err == nil {
			return &profile, nil
		}
		s.log.Warn(ctx, "cache entry is corrupt", "key", key)
	}

	profile, err := s.client.GetUserProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(profile); err == nil {
		if err := s.cache.Put(ctx, key, payload); err != nil {
			s.log.Warn(ctx, "cache write failed", "key", key, "error", err)
		}
	}
	return profile, nil
}

// Update edits a profile. On success it runs the ordered post-mutation
// sequence: invalidate the profile's cache entry, then refresh the stored
// session user when the edited profile is the current user's. On failure
// neither step runs.
func (s *ProfileService) Update(ctx context.Context, id int64, payload models.ProfilePayload) (*models.UserProfile, error) {
	profile, err := s.client.UpdateUserProfile(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	if err := s.cache.MarkStale(ctx, cache.KindUser, id); err != nil {
		s.log.Warn(ctx, "cache invalidation failed", "user", id, "error", err)
	}

	if s.gate.IsOwner(ctx, id) {
		summary := &models.UserSummary{
			ID:        profile.ID,
			Username:  profile.Username,
			Email:     profile.Email,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
		}
		if err := s.gate.RefreshUser(ctx, summary); err != nil {
			s.log.Warn(ctx, "session user refresh failed", "error", err)
		}
	}
	return profile, nil
}
