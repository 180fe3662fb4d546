package repository

import (
	"context"

	"github.com/akulov/healthmate/internal/models"
	"github.com/akulov/healthmate/internal/storage"
)

// TaskRepository persists per-user task lists.
type TaskRepository struct {
	store storage.Store
}

// NewTaskRepository creates a TaskRepository backed by the given store.
func NewTaskRepository(store storage.Store) *TaskRepository {
	return &TaskRepository{store: store}
}

// Tasks returns the user's stored task list, or an empty slice when the list
// has never been seeded.
func (r *TaskRepository) Tasks(ctx context.Context, username string) ([]models.Task, error) {
	var tasks []models.Task
	if _, err := r.store.Get(ctx, tasksKey(username), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveTasks replaces the user's stored task list.
func (r *TaskRepository) SaveTasks(ctx context.Context, username string, tasks []models.Task) error {
	return r.store.Set(ctx, tasksKey(username), tasks)
}
