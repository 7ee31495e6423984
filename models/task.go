package models

import "time"

// Task statuses accepted in request payloads. Anything other than
// "completed" maps onto completed=false.
const StatusCompleted = "completed"

// Task represents a todo item owned by exactly one user.
type Task struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTaskRequest is the body of POST /api/tasks. Status, when present,
// overrides Completed.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Status      string `json:"status"`
}

// UpdateTaskRequest is the body of PUT/PATCH /api/tasks/:id. Nil fields are
// left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Status      *string `json:"status"`
}
