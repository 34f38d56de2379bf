package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-api/internal/models"
	"portfolio-api/pkg/store"
)

func (s *Store) CreateBlogPost(ctx context.Context, p *models.BlogPost) (string, error) {
	if p == nil {
		return "", fmt.Errorf("blog post is nil")
	}

	// Every stored post carries a creation timestamp; it is the public sort key.
	p.CreatedAt = time.Now().UTC()

	return s.insert(ctx, collBlogPosts, p)
}

func (s *Store) ListPublishedPosts(ctx context.Context, limit int64) ([]models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cur, err := s.db.Collection(collBlogPosts).Find(ctx, bson.M{"published": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}

	posts := []models.BlogPost{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode blog posts: %w", err)
	}

	return posts, nil
}

func (s *Store) GetPublishedPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	filter := bson.M{"slug": slug, "published": true}
	err := s.db.Collection(collBlogPosts).FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blog post by slug: %w", err)
	}

	return &p, nil
}

func (s *Store) UpdateBlogPost(ctx context.Context, id string, p *models.BlogPost) error {
	// created_at is deliberately absent: it is set once at creation.
	matched, err := s.setByID(ctx, collBlogPosts, id, bson.M{
		"title":      p.Title,
		"slug":       p.Slug,
		"excerpt":    p.Excerpt,
		"content":    p.Content,
		"coverImage": p.CoverImage,
		"tags":       p.Tags,
		"published":  p.Published,
	})
	if err != nil {
		return err
	}
	if !matched {
		return store.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteBlogPost(ctx context.Context, id string) (int64, error) {
	return s.deleteByID(ctx, collBlogPosts, id)
}
