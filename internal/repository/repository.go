package repository

import (
	"context"

	"github.com/mentab/exercise-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// ReplaceExercises overwrites the user's whole exercise array. Callers
	// do a GetByID, append, then ReplaceExercises; there is no isolation
	// between the two steps, so concurrent appends to the same user can
	// lose an update (last write wins on the array).
	ReplaceExercises(ctx context.Context, id primitive.ObjectID, exercises []domain.Exercise) error
}
