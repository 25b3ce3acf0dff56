package tasks

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task represents one user's to-do item
// @Description Task item with all its properties
type Task struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	UserID            string             `bson:"userId" json:"user_id" example:"507f1f77bcf86cd799439011"`
	Title             string             `bson:"title" json:"title" example:"Buy groceries"`
	Description       string             `bson:"description" json:"description" example:"Get milk, bread, and eggs"`
	Completed         bool               `bson:"completed" json:"completed" example:"false"`
	Priority          string             `bson:"priority" json:"priority" example:"medium" enums:"low,medium,high"`
	Category          string             `bson:"category" json:"category" example:"home"`
	DueDate           *time.Time         `bson:"dueDate,omitempty" json:"due_date,omitempty" example:"2023-12-31T23:59:59Z"`
	RecurrencePattern string             `bson:"recurrencePattern,omitempty" json:"recurrence_pattern,omitempty" example:"weekly"`
	CreatedAt         time.Time          `bson:"createdAt" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updated_at" example:"2023-01-01T00:00:00Z"`
}

// CreateTaskRequest represents task creation data
// @Description Data required to create a new task
type CreateTaskRequest struct {
	Title             string     `json:"title" example:"Buy groceries"`
	Description       string     `json:"description" example:"Get milk, bread, and eggs"`
	Priority          string     `json:"priority" example:"medium" enums:"low,medium,high"`
	Category          string     `json:"category" example:"home"`
	DueDate           *time.Time `json:"due_date" example:"2023-12-31T23:59:59Z"`
	RecurrencePattern string     `json:"recurrence_pattern" example:"weekly"`
}

// UpdateTaskRequest represents a partial task update. Nil fields are left
// untouched; only fields present in the payload are merged.
// @Description Data for updating an existing task
type UpdateTaskRequest struct {
	Title             *string    `json:"title" example:"Buy groceries"`
	Description       *string    `json:"description" example:"Get milk, bread, and eggs"`
	Completed         *bool      `json:"completed" example:"true"`
	Priority          *string    `json:"priority" example:"high" enums:"low,medium,high"`
	Category          *string    `json:"category" example:"work"`
	DueDate           *time.Time `json:"due_date" example:"2023-12-31T23:59:59Z"`
	RecurrencePattern *string    `json:"recurrence_pattern" example:"weekly"`
}

// CompleteTaskRequest sets the completed flag to an explicit value
// @Description Completion state for a task
type CompleteTaskRequest struct {
	Completed *bool `json:"completed" binding:"required" example:"true"`
}
