package entities

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Citation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Text      string             `bson:"text" json:"text"`
	Author    string             `bson:"author" json:"author"`
	Source    string             `bson:"source,omitempty" json:"source,omitempty"`
	Year      int                `bson:"year,omitempty" json:"year,omitempty"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

func NewCitation(title, text, author, source string, year int, userID primitive.ObjectID) *Citation {
	now := time.Now()
	return &Citation{
		Title:     title,
		Text:      text,
		Author:    author,
		Source:    source,
		Year:      year,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Citation) Validate() error {
	if c.Text == "" {
		return errors.New("text must not be empty")
	}
	if c.Author == "" {
		return errors.New("author must not be empty")
	}
	if c.UserID.IsZero() {
		return errors.New("user must not be empty")
	}
	return nil
}
