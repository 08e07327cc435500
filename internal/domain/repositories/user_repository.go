package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/entities"
)

// UserRepository is the credential store. Lookups return (nil, nil) when no
// record matches; Create returns entities.ErrUserAlreadyExists when the email
// is already taken.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entities.User, error)
	// ConsumeVerificationToken looks up a pending token that has not
	// expired at the given instant and, in the same step, activates the
	// account and clears the token. At most one caller can win a given
	// token; everyone else gets (nil, nil).
	ConsumeVerificationToken(ctx context.Context, token string, now time.Time) (*entities.User, error)
	Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
}
