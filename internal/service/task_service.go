package service

import (
	"context"
	"strings"
	"time"

	"github.com/Alden-Crist/Planzee/internal/domain"
)

// TaskStore is the persistence boundary for task records. Every read and
// write is scoped to an owner; the store must not return another user's task.
type TaskStore interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, ownerID, taskID int64) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, ownerID, taskID int64) error
}

// TaskInput carries the fields a caller may set when creating a task.
type TaskInput struct {
	Title       string
	Description string
	Priority    string
	Completed   bool
	DueDate     *time.Time
}

// TaskUpdate carries a partial update; nil fields are left unchanged.
// Owner, id and creation time are not part of the shape at all, so attempts
// to set them are ignored rather than rejected.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *string
	Completed   *bool
	DueDate     *time.Time
}

type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) Create(ctx context.Context, ownerID int64, in TaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.NewValidationError("title is required")
	}

	priority, ok := domain.ParsePriority(in.Priority)
	if !ok {
		return nil, domain.NewValidationError("priority must be low, medium or high")
	}

	t := &domain.Task{
		UserID:      ownerID,
		Title:       title,
		Description: in.Description,
		Priority:    priority,
		Completed:   in.Completed,
		DueDate:     in.DueDate,
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) GetByID(ctx context.Context, ownerID, taskID int64) (*domain.Task, error) {
	return s.store.GetByID(ctx, ownerID, taskID)
}

func (s *TaskService) List(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// Update applies the provided fields onto the stored record and persists the
// result in one statement, so a partial update is all-or-nothing.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, upd TaskUpdate) (*domain.Task, error) {
	t, err := s.store.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, domain.NewValidationError("title is required")
		}
		t.Title = title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Priority != nil {
		priority, ok := domain.ParsePriority(*upd.Priority)
		if !ok {
			return nil, domain.NewValidationError("priority must be low, medium or high")
		}
		t.Priority = priority
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
	if upd.DueDate != nil {
		t.DueDate = upd.DueDate
	}

	if err := s.store.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete hard-deletes. Deleting an already-deleted task yields ErrNotFound.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	return s.store.Delete(ctx, ownerID, taskID)
}
