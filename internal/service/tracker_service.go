package service

import (
	"context"
	"errors"
	"time"

	"github.com/mentab/exercise-tracker/internal/domain"
	"github.com/mentab/exercise-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUserNotFound     = errors.New("user not found")
)

// LogQuery carries the optional filters for GetLog. Nil fields mean
// "no constraint".
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit *int
}

// TrackerService exposes the exercise-tracking operations.
type TrackerService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	AddExercise(ctx context.Context, userID, description string, duration float64, date string) (*domain.User, *domain.Exercise, error)
	GetLog(ctx context.Context, userID string, query LogQuery) (*domain.User, []domain.Exercise, error)
}

// trackerService implements the TrackerService interface.
type trackerService struct {
	userRepo repository.UserRepository
}

// NewTrackerService creates a new instance of trackerService.
func NewTrackerService(userRepo repository.UserRepository) TrackerService {
	return &trackerService{
		userRepo: userRepo,
	}
}

// CreateUser persists a new user with an empty exercise log.
func (s *trackerService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, ErrValidationFailed
	}

	user := &domain.User{
		Username:  username,
		Exercises: []domain.Exercise{},
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID
	return user, nil
}

// ListUsers returns every persisted user. Ordering is the store's natural
// retrieval order and is not guaranteed.
func (s *trackerService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAll(ctx)
}

// AddExercise appends one exercise to the referenced user's log and returns
// the user together with the entry just added.
//
// The append is a read-modify-write over the whole embedded array with no
// isolation between the load and the save; concurrent appends against the
// same user can lose an update (last write wins).
func (s *trackerService) AddExercise(ctx context.Context, userID, description string, duration float64, date string) (*domain.User, *domain.Exercise, error) {
	if description == "" {
		return nil, nil, ErrValidationFailed
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil, ErrValidationFailed
	}

	if date == "" {
		// Default is computed per call, not once per process.
		date = time.Now().UTC().Format(domain.DateLayout)
	} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, nil, ErrValidationFailed
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	exercise := domain.Exercise{
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	user.Exercises = append(user.Exercises, exercise)

	if err := s.userRepo.ReplaceExercises(ctx, id, user.Exercises); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	return user, &exercise, nil
}

// GetLog returns the user's exercise log, filtered by the optional
// date-range bounds and truncated to the optional limit.
func (s *trackerService) GetLog(ctx context.Context, userID string, query LogQuery) (*domain.User, []domain.Exercise, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil, ErrValidationFailed
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	return user, filterLog(user.Exercises, query), nil
}

// filterLog applies the date-range filter and limit truncation.
//
// The range bounds are strict-exclusive: an exercise dated exactly on From
// or exactly on To is dropped, not kept. This boundary policy is part of
// the API contract and must not be "corrected" to an inclusive range.
func filterLog(exercises []domain.Exercise, query LogQuery) []domain.Exercise {
	filtered := make([]domain.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if query.From != nil || query.To != nil {
			date, err := time.Parse(domain.DateLayout, ex.Date)
			if err != nil {
				// An unparsable stored date cannot satisfy a bound.
				continue
			}
			if query.From != nil && !date.After(*query.From) {
				continue
			}
			if query.To != nil && !date.Before(*query.To) {
				continue
			}
		}
		filtered = append(filtered, ex)
	}

	if query.Limit != nil && *query.Limit >= 0 && len(filtered) > *query.Limit {
		filtered = filtered[:*query.Limit]
	}

	return filtered
}
