package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-api/internal/models"
)

// Repository contracts for the three portfolio collections. These are the
// public interfaces handlers depend on; the mongo implementation lives under
// internal/, and pkg/store/mock provides an in-memory double for tests.

// ErrNotFound is returned when no document matches the given id or slug.
var ErrNotFound = errors.New("document not found")

type SkillRepo interface {
	CreateSkill(ctx context.Context, s *models.Skill) (string, error)
	ListSkills(ctx context.Context, limit int64) ([]models.Skill, error)
	GetSkillBySlug(ctx context.Context, slug string) (*models.Skill, error)
	UpdateSkill(ctx context.Context, id string, s *models.Skill) error
	DeleteSkill(ctx context.Context, id string) (int64, error)
}

type ExperienceRepo interface {
	CreateExperience(ctx context.Context, e *models.Experience) (string, error)
	ListExperiences(ctx context.Context, limit int64) ([]models.Experience, error)
	UpdateExperience(ctx context.Context, id string, e *models.Experience) error
	DeleteExperience(ctx context.Context, id string) (int64, error)
}

type BlogRepo interface {
	CreateBlogPost(ctx context.Context, p *models.BlogPost) (string, error)
	ListPublishedPosts(ctx context.Context, limit int64) ([]models.BlogPost, error)
	GetPublishedPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id string, p *models.BlogPost) error
	DeleteBlogPost(ctx context.Context, id string) (int64, error)
}

// Diagnostics is the surface the /test probe uses; both methods are
// best-effort and never required for serving traffic.
type Diagnostics interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

// ValidID reports whether id is a well-formed document identifier (24 hex
// characters). Handlers check this before touching the store.
func ValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
