package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aidriven/todo-backend/models"
)

// TaskStore persists task records. Every method takes the owner's user id
// and touches only that owner's rows.
type TaskStore struct {
	db *sql.DB
}

func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

// TaskFilter narrows List results.
type TaskFilter struct {
	Completed *bool
}

// TaskChanges holds the fields an update may touch. Nil fields are left as
// they are.
type TaskChanges struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Create inserts a task owned by ownerID and returns it with its assigned id.
func (s *TaskStore) Create(ctx context.Context, ownerID, title, description string, completed bool) (models.Task, error) {
	created := now()
	task := models.Task{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Completed:   completed,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO tasks (user_id, title, description, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		task.UserID, task.Title, task.Description, task.Completed, toMillis(task.CreatedAt), toMillis(task.UpdatedAt),
	).Scan(&task.ID)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

// List returns the owner's tasks in creation order.
func (s *TaskStore) List(ctx context.Context, ownerID string, filter TaskFilter) ([]models.Task, error) {
	query := "SELECT id, user_id, title, description, completed, created_at, updated_at FROM tasks WHERE user_id = $1"
	args := []interface{}{ownerID}
	if filter.Completed != nil {
		query += " AND completed = $2"
		args = append(args, *filter.Completed)
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns the task only if ownerID owns it.
func (s *TaskStore) Get(ctx context.Context, ownerID string, taskID int64) (models.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, description, completed, created_at, updated_at
		 FROM tasks WHERE id = $1 AND user_id = $2`,
		taskID, ownerID,
	)
	task, err := scanTask(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrNotFound
	}
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Update merges changes into the owner's task and bumps updated_at.
func (s *TaskStore) Update(ctx context.Context, ownerID string, taskID int64, changes TaskChanges) (models.Task, error) {
	task, err := s.Get(ctx, ownerID, taskID)
	if err != nil {
		return models.Task{}, err
	}

	if changes.Title != nil {
		task.Title = *changes.Title
	}
	if changes.Description != nil {
		task.Description = *changes.Description
	}
	if changes.Completed != nil {
		task.Completed = *changes.Completed
	}
	task.UpdatedAt = now()

	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = $1, description = $2, completed = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6`,
		task.Title, task.Description, task.Completed, toMillis(task.UpdatedAt), task.ID, task.UserID,
	)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task: %w", err)
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return models.Task{}, ErrNotFound
	}
	return task, nil
}

// Delete removes the owner's task.
func (s *TaskStore) Delete(ctx context.Context, ownerID string, taskID int64) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = $1 AND user_id = $2", taskID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleComplete flips the owner's task between complete and incomplete.
func (s *TaskStore) ToggleComplete(ctx context.Context, ownerID string, taskID int64) (models.Task, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET completed = NOT completed, updated_at = $1 WHERE id = $2 AND user_id = $3",
		toMillis(now()), taskID, ownerID,
	)
	if err != nil {
		return models.Task{}, fmt.Errorf("toggle task: %w", err)
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return models.Task{}, ErrNotFound
	}
	return s.Get(ctx, ownerID, taskID)
}

func scanTask(scan func(dest ...interface{}) error) (models.Task, error) {
	var task models.Task
	var createdAt, updatedAt int64
	err := scan(&task.ID, &task.UserID, &task.Title, &task.Description, &task.Completed, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, err
		}
		return models.Task{}, fmt.Errorf("scan task: %w", err)
	}
	task.CreatedAt = fromMillis(createdAt)
	task.UpdatedAt = fromMillis(updatedAt)
	return task, nil
}
