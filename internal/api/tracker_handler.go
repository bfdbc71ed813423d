package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mentab/exercise-tracker/internal/domain"
	"github.com/mentab/exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// TrackerHandler holds the tracker service dependency.
type TrackerHandler struct {
	trackerService service.TrackerService
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(trackerService service.TrackerService) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateUserRequest accepts either form-encoded or JSON bodies.
type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
}

// AddExerciseRequest accepts either form-encoded or JSON bodies.
// Duration is a pointer so a genuinely absent duration can be told apart
// from an explicit zero.
type AddExerciseRequest struct {
	UserID      string   `form:"userId" json:"userId"`
	Description string   `form:"description" json:"description"`
	Duration    *float64 `form:"duration" json:"duration"`
	Date        string   `form:"date" json:"date"`
}

// UserResponse is the id+username projection used by new-user and the
// users listing; the exercise log is deliberately omitted.
type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// AddExerciseResponse echoes the user and the single exercise just added.
// The entry rides under the "exercises" key; that quirk is part of the
// wire contract.
type AddExerciseResponse struct {
	ID        string          `json:"_id"`
	Username  string          `json:"username"`
	Exercises domain.Exercise `json:"exercises"`
}

// LogResponse is the filtered exercise log plus its length.
type LogResponse struct {
	ID        string            `json:"_id"`
	Username  string            `json:"username"`
	Exercises []domain.Exercise `json:"exercises"`
	Count     int               `json:"count"`
}

// MapUserToResponse converts a domain.User to the UserResponse projection.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
	}
}

// MapUsersToResponse converts a slice of domain.User to UserResponse DTOs.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = MapUserToResponse(&u)
	}
	return responses
}

// softError reports a handler-level failure as HTTP 200 with an error body.
// Clients must inspect the body for an "error" key; a 200 status alone does
// not imply success. Hard failures go through the fallback middleware
// instead and do carry real status codes.
func softError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"error": message})
}

// --- Handler Methods ---

// CreateUser handles POST /api/exercise/new-user.
func (h *TrackerHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil || req.Username == "" {
		softError(c, "Invalid User")
		return
	}

	user, err := h.trackerService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		softError(c, "Invalid User")
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ListUsers handles GET /api/exercise/users.
func (h *TrackerHandler) ListUsers(c *gin.Context) {
	users, err := h.trackerService.ListUsers(c.Request.Context())
	if err != nil {
		softError(c, "Invalid Users")
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(users))
}

// AddExercise handles POST /api/exercise/add.
func (h *TrackerHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		softError(c, "Invalid Exercise")
		return
	}
	if req.UserID == "" || req.Description == "" || req.Duration == nil {
		softError(c, "Invalid Exercise")
		return
	}

	// Not-found and store failures are deliberately indistinguishable here.
	user, exercise, err := h.trackerService.AddExercise(
		c.Request.Context(),
		req.UserID,
		req.Description,
		*req.Duration,
		req.Date,
	)
	if err != nil {
		softError(c, "Invalid Exercise")
		return
	}

	c.JSON(http.StatusOK, AddExerciseResponse{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Exercises: *exercise,
	})
}

// GetLog handles GET /api/exercise/log.
func (h *TrackerHandler) GetLog(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		// Fails before any store round-trip.
		softError(c, "Invalid userId")
		return
	}

	var query service.LogQuery

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(domain.DateLayout, from)
		if err != nil {
			softError(c, "Invalid Date")
			return
		}
		query.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(domain.DateLayout, to)
		if err != nil {
			softError(c, "Invalid Date")
			return
		}
		query.To = &t
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			softError(c, "Invalid Limit")
			return
		}
		query.Limit = &n
	}

	user, exercises, err := h.trackerService.GetLog(c.Request.Context(), userID, query)
	if err != nil {
		softError(c, "Invalid Users")
		return
	}

	c.JSON(http.StatusOK, LogResponse{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Exercises: exercises,
		Count:     len(exercises),
	})
}
