package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aidriven/todo-backend/middleware"
	"github.com/aidriven/todo-backend/models"
	"github.com/aidriven/todo-backend/store"
)

// TaskHandler serves the task CRUD surface. Every handler runs behind the
// auth guard and scopes its store call to the resolved user.
type TaskHandler struct {
	tasks *store.TaskStore
}

func NewTaskHandler(tasks *store.TaskStore) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List returns the caller's tasks, optionally filtered by ?status=.
// "completed" selects finished tasks; any other value selects the rest.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	filter := store.TaskFilter{}
	if status := c.Query("status"); status != "" {
		done := status == models.StatusCompleted
		filter.Completed = &done
	}

	tasks, err := h.tasks.List(c.UserContext(), middleware.UserID(c), filter)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(tasks)
}

// Create persists a new task owned by the caller.
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req models.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "The 'title' field is required"})
	}

	completed := req.Completed
	if req.Status != "" {
		completed = req.Status == models.StatusCompleted
	}

	task, err := h.tasks.Create(c.UserContext(), middleware.UserID(c), req.Title, req.Description, completed)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// Get returns one of the caller's tasks.
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	taskID, ok := taskIDParam(c)
	if !ok {
		return invalidTaskID(c)
	}

	task, err := h.tasks.Get(c.UserContext(), middleware.UserID(c), taskID)
	if errors.Is(err, store.ErrNotFound) {
		return taskNotFound(c)
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(task)
}

// Update merges the provided fields into the caller's task. PUT and PATCH
// share these semantics; absent fields stay as they were.
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	taskID, ok := taskIDParam(c)
	if !ok {
		return invalidTaskID(c)
	}

	var req models.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	changes := store.TaskChanges{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Status != nil {
		done := *req.Status == models.StatusCompleted
		changes.Completed = &done
	}

	task, err := h.tasks.Update(c.UserContext(), middleware.UserID(c), taskID, changes)
	if errors.Is(err, store.ErrNotFound) {
		return taskNotFound(c)
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(task)
}

// Delete removes the caller's task.
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	taskID, ok := taskIDParam(c)
	if !ok {
		return invalidTaskID(c)
	}

	err := h.tasks.Delete(c.UserContext(), middleware.UserID(c), taskID)
	if errors.Is(err, store.ErrNotFound) {
		return taskNotFound(c)
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleComplete flips the completion flag on the caller's task.
func (h *TaskHandler) ToggleComplete(c *fiber.Ctx) error {
	taskID, ok := taskIDParam(c)
	if !ok {
		return invalidTaskID(c)
	}

	task, err := h.tasks.ToggleComplete(c.UserContext(), middleware.UserID(c), taskID)
	if errors.Is(err, store.ErrNotFound) {
		return taskNotFound(c)
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(task)
}

func taskIDParam(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, false
	}
	return int64(id), true
}

func invalidTaskID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
}
