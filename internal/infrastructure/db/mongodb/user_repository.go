package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/entities"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/repositories"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repositories.UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	u := user.GetUser()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, entities.ErrUserAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// ConsumeVerificationToken is a single FindOneAndUpdate, so concurrent
// presentations of the same token race down to exactly one winner.
func (r *UserRepository) ConsumeVerificationToken(ctx context.Context, token string, now time.Time) (*entities.User, error) {
	filter := bson.M{
		"verification_token":         token,
		"verification_token_expires": bson.M{"$gt": now},
	}
	update := bson.M{
		"$set":   bson.M{"active": true, "updated_at": now},
		"$unset": bson.M{"verification_token": "", "verification_token_expires": ""},
	}

	var user entities.User
	err := r.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	u := user.GetUser()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, entities.ErrUserAlreadyExists
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, entities.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entities.User, error) {
	var user entities.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
