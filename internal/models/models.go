package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill is one entry on the public skills grid, sorted by Order ascending.
type Skill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Slug      string             `bson:"slug" json:"slug"`
	Icon      *string            `bson:"icon" json:"icon"`
	Summary   *string            `bson:"summary" json:"summary"`
	Link      *string            `bson:"link" json:"link"`
	Tags      []string           `bson:"tags" json:"tags"`
	Order     int                `bson:"order" json:"order"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Experience is one work-history entry. Dates are ISO "YYYY-MM-DD" strings;
// EndDate is nil for a current position.
type Experience struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Company   string             `bson:"company" json:"company"`
	Role      string             `bson:"role" json:"role"`
	StartDate string             `bson:"startDate" json:"startDate"`
	EndDate   *string            `bson:"endDate" json:"endDate"`
	Summary   *string            `bson:"summary" json:"summary"`
	Image     *string            `bson:"image" json:"image"`
	Order     int                `bson:"order" json:"order"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// BlogPost is a long-form post. Only documents with Published set are visible
// on public routes; public listing sorts by CreatedAt descending.
type BlogPost struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Slug       string             `bson:"slug" json:"slug"`
	Excerpt    *string            `bson:"excerpt" json:"excerpt"`
	Content    string             `bson:"content" json:"content"`
	CoverImage *string            `bson:"coverImage" json:"coverImage"`
	Tags       []string           `bson:"tags" json:"tags"`
	Published  bool               `bson:"published" json:"published"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
