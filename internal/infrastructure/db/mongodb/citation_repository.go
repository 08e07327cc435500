package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/entities"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/repositories"
)

type CitationRepository struct {
	collection *mongo.Collection
}

func NewCitationRepository(db *mongo.Database) repositories.CitationRepository {
	return &CitationRepository{
		collection: db.Collection("citations"),
	}
}

func (r *CitationRepository) Create(ctx context.Context, citation *entities.Citation) (*entities.Citation, error) {
	if citation.ID.IsZero() {
		citation.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, citation)
	if err != nil {
		return nil, err
	}
	return citation, nil
}

func (r *CitationRepository) FindAll(ctx context.Context) ([]*entities.Citation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	citations := make([]*entities.Citation, 0)
	for cursor.Next(ctx) {
		var citation entities.Citation
		if err := cursor.Decode(&citation); err != nil {
			return nil, err
		}
		citations = append(citations, &citation)
	}
	return citations, cursor.Err()
}

func (r *CitationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Citation, error) {
	var citation entities.Citation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&citation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &citation, nil
}

func (r *CitationRepository) Update(ctx context.Context, citation *entities.Citation) (*entities.Citation, error) {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": citation.ID}, citation)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, entities.ErrCitationNotFound
	}
	return citation, nil
}

func (r *CitationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return entities.ErrCitationNotFound
	}
	return nil
}
