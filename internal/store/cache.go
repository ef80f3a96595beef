// internal/store/cache.go
package store

import (
	"context"
	"encoding/json"

	"sow-engine/internal/models"
)

func projectCacheKey(id string) string {
	return "project:" + id
}

func (s *Store) cachedProject(ctx context.Context, id string) (*models.Project, bool) {
	if s.cache == nil {
		return nil, false
	}

	val, err := s.cache.Get(ctx, projectCacheKey(id)).Result()
	if err != nil {
		return nil, false
	}

	var p models.Project
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		// Stale or corrupt entry; drop it and fall through to the database.
		s.cache.Del(ctx, projectCacheKey(id))
		return nil, false
	}

	s.logger.Debug("Project cache hit", map[string]interface{}{"project_id": id})
	return &p, true
}

func (s *Store) cacheProject(ctx context.Context, p *models.Project) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	s.cache.Set(ctx, projectCacheKey(p.ID), data, s.cacheTTL)
}

func (s *Store) invalidateProject(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	s.cache.Del(ctx, projectCacheKey(id))
}
