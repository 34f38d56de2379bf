package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-api/internal/models"
	"portfolio-api/pkg/store"
)

func (s *Store) CreateExperience(ctx context.Context, e *models.Experience) (string, error) {
	if e == nil {
		return "", fmt.Errorf("experience is nil")
	}

	return s.insert(ctx, collExperiences, e)
}

func (s *Store) ListExperiences(ctx context.Context, limit int64) ([]models.Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}}).SetLimit(limit)
	cur, err := s.db.Collection(collExperiences).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	exps := []models.Experience{}
	if err := cur.All(ctx, &exps); err != nil {
		return nil, fmt.Errorf("decode experiences: %w", err)
	}

	return exps, nil
}

func (s *Store) UpdateExperience(ctx context.Context, id string, e *models.Experience) error {
	matched, err := s.setByID(ctx, collExperiences, id, bson.M{
		"company":   e.Company,
		"role":      e.Role,
		"startDate": e.StartDate,
		"endDate":   e.EndDate,
		"summary":   e.Summary,
		"image":     e.Image,
		"order":     e.Order,
	})
	if err != nil {
		return err
	}
	if !matched {
		return store.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteExperience(ctx context.Context, id string) (int64, error) {
	return s.deleteByID(ctx, collExperiences, id)
}
