package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/akulov/healthmate/internal/models"
)

// doctorTaskID is the task whose title tracks the current appointment's
// doctor.
const doctorTaskID = "4"

// TaskRepository defines the persistence operations required by TaskService.
type TaskRepository interface {
	// Tasks returns the user's stored task list, empty when never seeded.
	Tasks(ctx context.Context, username string) ([]models.Task, error)
	// SaveTasks replaces the user's stored task list.
	SaveTasks(ctx context.Context, username string, tasks []models.Task) error
}

// TaskService manages per-user to-do lists.
type TaskService struct {
	repo TaskRepository
	log  *zap.Logger
}

// NewTaskService constructs a TaskService using the provided repository.
func NewTaskService(repo TaskRepository, log *zap.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

func defaultTasks(doctorName string) []models.Task {
	return []models.Task{
		{ID: "1", Title: "Achieve 30k steps every week for blood sugar"},
		{ID: "2", Title: "Take up health coaching"},
		{ID: "3", Title: "Go to a nearby gym and workout for 30 mins"},
		{ID: doctorTaskID, Title: doctorCourseTitle(doctorName)},
	}
}

func doctorCourseTitle(doctorName string) string {
	if doctorName == "" {
		doctorName = "your doctor"
	}
	return "Complete 2 courses of " + doctorName
}

// TasksForUser returns the user's task list. On first access it seeds and
// persists the four default tasks. On later accesses, the doctor task's title
// is rewritten in memory to name the current appointment's doctor; that
// rewrite is never persisted.
func (s *TaskService) TasksForUser(ctx context.Context, username string, appointment *models.Appointment) ([]models.Task, error) {
	tasks, err := s.repo.Tasks(ctx, username)
	if err != nil {
		return nil, err
	}
	doctorName := ""
	if appointment != nil {
		doctorName = appointment.DoctorName
	}
	if len(tasks) == 0 {
		tasks = defaultTasks(doctorName)
		if err := s.repo.SaveTasks(ctx, username, tasks); err != nil {
			return nil, err
		}
		s.log.Info("seeded default tasks", zap.String("username", username))
		return tasks, nil
	}
	if doctorName != "" {
		for i := range tasks {
			if tasks[i].ID == doctorTaskID {
				tasks[i].Title = doctorCourseTitle(doctorName)
			}
		}
	}
	return tasks, nil
}

// Toggle flips the done flag of the task with the given id and persists the
// full list. An unknown id leaves the list unchanged but still rewrites it.
func (s *TaskService) Toggle(ctx context.Context, username, taskID string) ([]models.Task, error) {
	tasks, err := s.repo.Tasks(ctx, username)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Done = !tasks[i].Done
		}
	}
	if err := s.repo.SaveTasks(ctx, username, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
