package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Alden-Crist/Planzee/internal/domain"
)

func newTaskService() *TaskService {
	return NewTaskService(newMemTaskStore())
}

func mustCreate(t *testing.T, s *TaskService, ownerID int64, in TaskInput) *domain.Task {
	t.Helper()
	task, err := s.Create(context.Background(), ownerID, in)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func TestCreateTaskDefaults(t *testing.T) {
	s := newTaskService()

	task := mustCreate(t, s, 1, TaskInput{Title: "  Write report  "})
	if task.Title != "Write report" {
		t.Errorf("title = %q, want trimmed", task.Title)
	}
	if task.Priority != domain.PriorityMedium {
		t.Errorf("priority = %q, want default Medium", task.Priority)
	}
	if task.UserID != 1 {
		t.Errorf("owner = %d, want caller identity", task.UserID)
	}
	if task.Completed {
		t.Error("new task must start incomplete unless requested")
	}
}

func TestCreateTaskEmptyTitle(t *testing.T) {
	s := newTaskService()

	var validationErr *domain.ValidationError
	_, err := s.Create(context.Background(), 1, TaskInput{Title: "   "})
	if !errors.As(err, &validationErr) {
		t.Fatalf("create with blank title = %v, want ValidationError", err)
	}
}

func TestCreateTaskBadPriority(t *testing.T) {
	s := newTaskService()

	var validationErr *domain.ValidationError
	_, err := s.Create(context.Background(), 1, TaskInput{Title: "x", Priority: "urgent"})
	if !errors.As(err, &validationErr) {
		t.Fatalf("create with bad priority = %v, want ValidationError", err)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()

	aliceTask := mustCreate(t, s, 1, TaskInput{Title: "alice's task"})

	// Bob can neither see, change nor delete it; every path reports NotFound.
	if _, err := s.GetByID(ctx, 2, aliceTask.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get as other user = %v, want ErrNotFound", err)
	}

	title := "stolen"
	if _, err := s.Update(ctx, 2, aliceTask.ID, TaskUpdate{Title: &title}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("update as other user = %v, want ErrNotFound", err)
	}

	if err := s.Delete(ctx, 2, aliceTask.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("delete as other user = %v, want ErrNotFound", err)
	}

	// The owner still sees the record untouched.
	got, err := s.GetByID(ctx, 1, aliceTask.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Title != "alice's task" {
		t.Errorf("title changed to %q", got.Title)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()

	due := time.Now().Add(48 * time.Hour)
	task := mustCreate(t, s, 1, TaskInput{Title: "original", Description: "desc", Priority: "high", DueDate: &due})

	completed := true
	updated, err := s.Update(ctx, 1, task.ID, TaskUpdate{Completed: &completed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if !updated.Completed {
		t.Error("completed not applied")
	}
	if updated.Title != "original" || updated.Description != "desc" || updated.Priority != domain.PriorityHigh {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.UserID != 1 || updated.ID != task.ID || !updated.CreatedAt.Equal(task.CreatedAt) {
		t.Error("immutable fields changed")
	}
}

func TestUpdateBlankTitleRejected(t *testing.T) {
	s := newTaskService()
	task := mustCreate(t, s, 1, TaskInput{Title: "keep me"})

	blank := " "
	var validationErr *domain.ValidationError
	_, err := s.Update(context.Background(), 1, task.ID, TaskUpdate{Title: &blank})
	if !errors.As(err, &validationErr) {
		t.Fatalf("update with blank title = %v, want ValidationError", err)
	}
}

func TestDeleteTwice(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()
	task := mustCreate(t, s, 1, TaskInput{Title: "short-lived"})

	if err := s.Delete(ctx, 1, task.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := s.Delete(ctx, 1, task.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}

func TestListScopedToOwner(t *testing.T) {
	s := newTaskService()
	ctx := context.Background()

	mustCreate(t, s, 1, TaskInput{Title: "a1"})
	mustCreate(t, s, 2, TaskInput{Title: "b1"})
	mustCreate(t, s, 1, TaskInput{Title: "a2"})

	tasks, err := s.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("list returned %d tasks, want 2", len(tasks))
	}
	for _, task := range tasks {
		if task.UserID != 1 {
			t.Errorf("list leaked task owned by %d", task.UserID)
		}
	}
}
