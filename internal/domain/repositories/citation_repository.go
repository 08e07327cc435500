package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/entities"
)

type CitationRepository interface {
	Create(ctx context.Context, citation *entities.Citation) (*entities.Citation, error)
	FindAll(ctx context.Context) ([]*entities.Citation, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Citation, error)
	Update(ctx context.Context, citation *entities.Citation) (*entities.Citation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
