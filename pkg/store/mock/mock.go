// Package mock provides an in-memory implementation of the pkg/store
// contracts for handler tests. Safe for concurrent use.
package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-api/internal/models"
	"portfolio-api/pkg/store"
)

type Store struct {
	mu          sync.RWMutex
	skills      map[string]models.Skill
	experiences map[string]models.Experience
	posts       map[string]models.BlogPost

	// Error hooks for diagnostics tests.
	PingErr        error
	CollectionsErr error
}

func NewStore() *Store {
	return &Store{
		skills:      make(map[string]models.Skill),
		experiences: make(map[string]models.Experience),
		posts:       make(map[string]models.BlogPost),
	}
}

func (m *Store) Ping(ctx context.Context) error {
	return m.PingErr
}

func (m *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if m.CollectionsErr != nil {
		return nil, m.CollectionsErr
	}

	return []string{"skill", "experience", "blogpost"}, nil
}

func (m *Store) CreateSkill(ctx context.Context, s *models.Skill) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = primitive.NewObjectID()
	m.skills[s.ID.Hex()] = *s

	return s.ID.Hex(), nil
}

func (m *Store) ListSkills(ctx context.Context, limit int64) ([]models.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Skill, 0, len(m.skills))
	for _, s := range m.skills {
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	if int64(len(out)) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (m *Store) GetSkillBySlug(ctx context.Context, slug string) (*models.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.skills {
		if s.Slug == slug {
			s := s
			return &s, nil
		}
	}

	return nil, store.ErrNotFound
}

func (m *Store) UpdateSkill(ctx context.Context, id string, s *models.Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.skills[id]
	if !ok {
		return store.ErrNotFound
	}

	now := time.Now().UTC()
	s.ID = cur.ID
	s.UpdatedAt = &now
	m.skills[id] = *s

	return nil
}

func (m *Store) DeleteSkill(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.skills[id]; !ok {
		return 0, nil
	}
	delete(m.skills, id)

	return 1, nil
}

func (m *Store) CreateExperience(ctx context.Context, e *models.Experience) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = primitive.NewObjectID()
	m.experiences[e.ID.Hex()] = *e

	return e.ID.Hex(), nil
}

func (m *Store) ListExperiences(ctx context.Context, limit int64) ([]models.Experience, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Experience, 0, len(m.experiences))
	for _, e := range m.experiences {
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	if int64(len(out)) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (m *Store) UpdateExperience(ctx context.Context, id string, e *models.Experience) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.experiences[id]
	if !ok {
		return store.ErrNotFound
	}

	now := time.Now().UTC()
	e.ID = cur.ID
	e.UpdatedAt = &now
	m.experiences[id] = *e

	return nil
}

func (m *Store) DeleteExperience(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.experiences[id]; !ok {
		return 0, nil
	}
	delete(m.experiences, id)

	return 1, nil
}

func (m *Store) CreateBlogPost(ctx context.Context, p *models.BlogPost) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = primitive.NewObjectID()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	m.posts[p.ID.Hex()] = *p

	return p.ID.Hex(), nil
}

func (m *Store) ListPublishedPosts(ctx context.Context, limit int64) ([]models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.BlogPost{}
	for _, p := range m.posts {
		if p.Published {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (m *Store) GetPublishedPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.posts {
		if p.Slug == slug && p.Published {
			p := p
			return &p, nil
		}
	}

	return nil, store.ErrNotFound
}

func (m *Store) UpdateBlogPost(ctx context.Context, id string, p *models.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.posts[id]
	if !ok {
		return store.ErrNotFound
	}

	now := time.Now().UTC()
	p.ID = cur.ID
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = &now
	m.posts[id] = *p

	return nil
}

func (m *Store) DeleteBlogPost(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return 0, nil
	}
	delete(m.posts, id)

	return 1, nil
}
