package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-api/internal/models"
	"portfolio-api/pkg/store"
)

func (s *Store) CreateSkill(ctx context.Context, sk *models.Skill) (string, error) {
	if sk == nil {
		return "", fmt.Errorf("skill is nil")
	}

	return s.insert(ctx, collSkills, sk)
}

func (s *Store) ListSkills(ctx context.Context, limit int64) ([]models.Skill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}}).SetLimit(limit)
	cur, err := s.db.Collection(collSkills).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	skills := []models.Skill{}
	if err := cur.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}

	return skills, nil
}

func (s *Store) GetSkillBySlug(ctx context.Context, slug string) (*models.Skill, error) {
	var sk models.Skill
	err := s.db.Collection(collSkills).FindOne(ctx, bson.M{"slug": slug}).Decode(&sk)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get skill by slug: %w", err)
	}

	return &sk, nil
}

func (s *Store) UpdateSkill(ctx context.Context, id string, sk *models.Skill) error {
	matched, err := s.setByID(ctx, collSkills, id, bson.M{
		"title":   sk.Title,
		"slug":    sk.Slug,
		"icon":    sk.Icon,
		"summary": sk.Summary,
		"link":    sk.Link,
		"tags":    sk.Tags,
		"order":   sk.Order,
	})
	if err != nil {
		return err
	}
	if !matched {
		return store.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteSkill(ctx context.Context, id string) (int64, error) {
	return s.deleteByID(ctx, collSkills, id)
}
