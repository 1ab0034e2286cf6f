package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/BuzzLyutic/task-list-api/internal/model"
	"github.com/BuzzLyutic/task-list-api/internal/repo"
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Create(ctx context.Context, in model.CreateTaskInput) (model.Task, error) {
	title, err := s.validateTitle(in.Title) // В БД попадает уже обрезанный заголовок
	if err != nil {
		return model.Task{}, err
	}
	return s.repo.Create(ctx, title)
}

// SetCompleted и Delete ждут id, уже прошедший ParseID
func (s *TaskService) SetCompleted(ctx context.Context, id int64, in model.UpdateTaskInput) (model.Task, error) {
	if in.Completed == nil {
		return model.Task{}, ErrCompletedNotBool
	}
	return s.repo.SetCompleted(ctx, id, *in.Completed)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Healthy пингует БД простым запросом, ничего не меняя
func (s *TaskService) Healthy(ctx context.Context) (bool, error) {
	if err := s.repo.Ping(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// ParseID разбирает идентификатор из пути запроса
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func (s *TaskService) validateTitle(title *string) (string, error) {
	if title == nil {
		return "", ErrTitleRequired
	}
	clean := strings.TrimSpace(*title)
	if clean == "" {
		return "", ErrTitleEmpty
	}
	return clean, nil
}
