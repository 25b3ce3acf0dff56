package tasks

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mubashirjatoi/todo-api/internal/pkg/response"
	apperrors "github.com/mubashirjatoi/todo-api/pkg/errors"
)

// Store is the persistence surface the handlers need. The Mongo Repository
// implements it; tests use an in-memory fake.
type Store interface {
	ListByUser(ctx context.Context, userID string) ([]Task, error)
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id, userID string) (*Task, error)
	Update(ctx context.Context, id, userID string, update bson.M) error
	Delete(ctx context.Context, id, userID string) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List godoc
// @Summary List tasks
// @Description Get the authenticated user's tasks with optional filtering and sorting
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring match on title, description and category"
// @Param status query string false "pending or completed"
// @Param priority query string false "Exact priority match" Enums(low, medium, high)
// @Param category query string false "Case-insensitive substring match on category"
// @Param sort query string false "title, priority or due_date; default is newest first"
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /tasks/ [get]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.store.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.DatabaseError(c, "Failed to get tasks")
		return
	}

	items = ApplyFilters(items, ListQuery{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
	})
	SortTasks(items, c.Query("sort"))

	response.Success(c, gin.H{"tasks": items})
}

// Create godoc
// @Summary Create a new task
// @Description Create a new task owned by the authenticated user
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTaskRequest true "Task creation data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /tasks/ [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateTask(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	task := &Task{
		UserID:            userID,
		Title:             req.Title,
		Description:       req.Description,
		Priority:          req.Priority,
		Category:          req.Category,
		DueDate:           req.DueDate,
		RecurrencePattern: req.RecurrencePattern,
	}

	if err := h.store.Create(c.Request.Context(), task); err != nil {
		response.DatabaseError(c, "Failed to create task")
		return
	}

	response.Created(c, task)
}

// Get godoc
// @Summary Get a task by ID
// @Description Get a specific task owned by the authenticated user
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.store.GetByID(c.Request.Context(), taskID, userID)
	if err != nil {
		writeTaskError(c, err)
		return
	}

	response.Success(c, task)
}

// Update godoc
// @Summary Update a task
// @Description Merge the supplied fields into an existing task; omitted fields are left unchanged
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body UpdateTaskRequest true "Task update data"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateTask(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	update := bson.M{}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Completed != nil {
		update["completed"] = *req.Completed
	}
	if req.Priority != nil {
		update["priority"] = *req.Priority
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.DueDate != nil {
		update["dueDate"] = req.DueDate
	}
	if req.RecurrencePattern != nil {
		update["recurrencePattern"] = *req.RecurrencePattern
	}

	if err := h.store.Update(c.Request.Context(), taskID, userID, update); err != nil {
		writeTaskError(c, err)
		return
	}

	task, err := h.store.GetByID(c.Request.Context(), taskID, userID)
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve updated task")
		return
	}

	response.Success(c, task)
}

// Delete godoc
// @Summary Delete a task
// @Description Delete a task owned by the authenticated user
// @Tags tasks
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), taskID, userID); err != nil {
		writeTaskError(c, err)
		return
	}

	response.NoContent(c)
}

// Complete godoc
// @Summary Set a task's completion state
// @Description Set the completed flag to an explicit value; the field is required
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body CompleteTaskRequest true "Completion state"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id}/complete [patch]
func (h *Handler) Complete(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, "Completed field required")
		return
	}

	update := bson.M{"completed": *req.Completed}
	if err := h.store.Update(c.Request.Context(), taskID, userID, update); err != nil {
		writeTaskError(c, err)
		return
	}

	task, err := h.store.GetByID(c.Request.Context(), taskID, userID)
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve updated task")
		return
	}

	response.Success(c, task)
}

// writeTaskError maps store errors onto HTTP responses. Ownership misses and
// true non-existence both come back as ErrNotFound, so callers cannot tell
// them apart.
func writeTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, "Task not found")
	case errors.Is(err, apperrors.ErrInvalidID):
		response.BadRequest(c, "Invalid task ID")
	default:
		response.DatabaseError(c, "Database operation failed")
	}
}
