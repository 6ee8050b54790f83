package database

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/thenoetrevino/cofre/internal/models"
)

func TestCreateTask_AssignsIncreasingIDs(t *testing.T) {
	_, repo := setupTestRepo(t)
	ctx := context.Background()

	inputs := []struct{ title, description string }{
		{"T1", "D1"},
		{"T2", "D2"},
		{"T3", "D3"},
	}
	for _, in := range inputs {
		if _, err := repo.CreateTask(ctx, in.title, in.description); err != nil {
			t.Fatalf("Failed to create task %q: %v", in.title, err)
		}
	}

	tasks, err := repo.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(tasks))
	}

	for i, task := range tasks {
		if task.Title != inputs[i].title || task.Description != inputs[i].description {
			t.Errorf("Task %d = (%q, %q), want (%q, %q)",
				i, task.Title, task.Description, inputs[i].title, inputs[i].description)
		}
		if i > 0 && task.ID <= tasks[i-1].ID {
			t.Errorf("Expected increasing ids, got %d after %d", task.ID, tasks[i-1].ID)
		}
	}
}

func TestCreateTask_ReturnsStoredRow(t *testing.T) {
	_, repo := setupTestRepo(t)

	task, err := repo.CreateTask(context.Background(), "Buy milk", "2L whole milk")
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	want := &models.Task{ID: 1, Title: "Buy milk", Description: "2L whole milk"}
	if !reflect.DeepEqual(task, want) {
		t.Errorf("CreateTask() = %+v, want %+v", task, want)
	}
}

func TestGetAllTasks_EmptyTable(t *testing.T) {
	_, repo := setupTestRepo(t)

	tasks, err := repo.GetAllTasks(context.Background())
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if tasks == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Errorf("Expected no tasks, got %d", len(tasks))
	}
}

func TestDeleteTask_RemovesOnlyTarget(t *testing.T) {
	_, repo := setupTestRepo(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		if _, err := repo.CreateTask(ctx, title, "desc"); err != nil {
			t.Fatalf("Failed to create task: %v", err)
		}
	}

	if err := repo.DeleteTask(ctx, 2); err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}

	tasks, err := repo.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if got := taskIDs(tasks); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Expected ids [1 3], got %v", got)
	}

	// second delete of the same id changes nothing
	if err := repo.DeleteTask(ctx, 2); err != nil {
		t.Errorf("Deleting a missing id should be a no-op, got %v", err)
	}
	tasks, err = repo.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if got := taskIDs(tasks); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Expected ids [1 3] after repeated delete, got %v", got)
	}
}

func TestDeleteTask_IDsNotReused(t *testing.T) {
	_, repo := setupTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateTask(ctx, "first", "desc")
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if err := repo.DeleteTask(ctx, first.ID); err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}

	second, err := repo.CreateTask(ctx, "second", "desc")
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("Expected new id greater than %d, got %d", first.ID, second.ID)
	}
}

func TestBuyMilkScenario(t *testing.T) {
	_, repo := setupTestRepo(t)
	ctx := context.Background()

	if _, err := repo.CreateTask(ctx, "Buy milk", "2L whole milk"); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	tasks, err := repo.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	want := []*models.Task{{ID: 1, Title: "Buy milk", Description: "2L whole milk"}}
	if !reflect.DeepEqual(tasks, want) {
		t.Fatalf("GetAllTasks() = %+v, want %+v", tasks, want)
	}

	if err := repo.DeleteTask(ctx, 1); err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}

	tasks, err = repo.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected empty list, got %+v", tasks)
	}
}

func TestTaskRepo_PanicsBeforeEnsureSchema(t *testing.T) {
	repo := NewTaskRepo(openTestDB(t))

	if repo.Ready() {
		t.Fatal("New repo should not be ready")
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic when listing before EnsureSchema")
		}
	}()
	_, _ = repo.GetAllTasks(context.Background())
}

func TestTaskRepo_StorageErrorOnClosedDB(t *testing.T) {
	db, repo := setupTestRepo(t)
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close db: %v", err)
	}
	ctx := context.Background()

	_, err := repo.CreateTask(ctx, "title", "desc")
	assertStorageError(t, "CreateTask", err)

	_, err = repo.GetAllTasks(ctx)
	assertStorageError(t, "GetAllTasks", err)

	err = repo.DeleteTask(ctx, 1)
	assertStorageError(t, "DeleteTask", err)
}

func assertStorageError(t *testing.T, op string, err error) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected error on closed database", op)
		return
	}
	var se *models.StorageError
	if !errors.As(err, &se) {
		t.Errorf("%s: expected *models.StorageError, got %T: %v", op, err, err)
	}
}
