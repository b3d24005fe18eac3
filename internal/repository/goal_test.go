package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/db"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return database
}

func newTestGoal(t *testing.T, repo GoalRepository, userEmail, targetDate, status string) *model.Goal {
	t.Helper()

	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserEmail:   userEmail,
		Description: "Read a book",
		TargetDate:  targetDate,
		Status:      status,
		CreatedAt:   time.Now(),
	}

	err := repo.Create(goal)
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	return goal
}

func TestGoalCreateAndByID(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	goal := newTestGoal(t, repo, "alice@example.com", "2030-01-15", model.GoalStatusPending)

	got, err := repo.ByID(goal.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}

	if got.UserEmail != "alice@example.com" {
		t.Errorf("got user email %q, want %q", got.UserEmail, "alice@example.com")
	}
	if got.Description != "Read a book" {
		t.Errorf("got description %q, want %q", got.Description, "Read a book")
	}
	if got.TargetDate != "2030-01-15" {
		t.Errorf("got target date %q, want %q", got.TargetDate, "2030-01-15")
	}
	if got.Status != model.GoalStatusPending {
		t.Errorf("got status %q, want %q", got.Status, model.GoalStatusPending)
	}
}

func TestGoalByIDNotFound(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	_, err := repo.ByID(uuid.New().String())
	if !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("got error %v, want ErrGoalNotFound", err)
	}
}

func TestGoalsScopedToOwnerNewestFirst(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	base := time.Now()
	for i, description := range []string{"first", "second", "third"} {
		err := repo.Create(&model.Goal{
			ID:          uuid.New().String(),
			UserEmail:   "alice@example.com",
			Description: description,
			TargetDate:  "2030-01-15",
			Status:      model.GoalStatusPending,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("failed to create goal: %v", err)
		}
	}
	newTestGoal(t, repo, "bob@example.com", "2030-01-15", model.GoalStatusPending)

	goals, err := repo.Goals("alice@example.com")
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}

	if len(goals) != 3 {
		t.Fatalf("got %d goals, want 3", len(goals))
	}
	for i, want := range []string{"third", "second", "first"} {
		if goals[i].Description != want {
			t.Errorf("goals[%d] = %q, want %q", i, goals[i].Description, want)
		}
	}
}

func TestGoalsEmptyForUnknownUser(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	goals, err := repo.Goals("nobody@example.com")
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("got %d goals, want 0", len(goals))
	}
}

func TestGoalUpdateStatus(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	goal := newTestGoal(t, repo, "alice@example.com", "2030-01-15", model.GoalStatusPending)

	err := repo.UpdateStatus("alice@example.com", goal.ID, model.GoalStatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := repo.ByID(goal.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.Status != model.GoalStatusCompleted {
		t.Errorf("got status %q, want %q", got.Status, model.GoalStatusCompleted)
	}

	// Setting the same status again succeeds and changes nothing
	err = repo.UpdateStatus("alice@example.com", goal.ID, model.GoalStatusCompleted)
	if err != nil {
		t.Fatalf("repeated UpdateStatus: %v", err)
	}
}

func TestGoalUpdateStatusWrongOwner(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	goal := newTestGoal(t, repo, "alice@example.com", "2030-01-15", model.GoalStatusPending)

	err := repo.UpdateStatus("bob@example.com", goal.ID, model.GoalStatusCompleted)
	if !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("got error %v, want ErrGoalNotFound", err)
	}

	got, err := repo.ByID(goal.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.Status != model.GoalStatusPending {
		t.Errorf("goal status changed to %q, want %q", got.Status, model.GoalStatusPending)
	}
}

func TestGoalUpdateStatusByID(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	goal := newTestGoal(t, repo, "alice@example.com", "2030-01-15", model.GoalStatusPending)

	err := repo.UpdateStatusByID(goal.ID, model.GoalStatusIncomplete)
	if err != nil {
		t.Fatalf("UpdateStatusByID: %v", err)
	}

	got, err := repo.ByID(goal.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.Status != model.GoalStatusIncomplete {
		t.Errorf("got status %q, want %q", got.Status, model.GoalStatusIncomplete)
	}

	err = repo.UpdateStatusByID(uuid.New().String(), model.GoalStatusCompleted)
	if !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("got error %v, want ErrGoalNotFound", err)
	}
}

func TestGoalDelete(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	goal := newTestGoal(t, repo, "alice@example.com", "2030-01-15", model.GoalStatusPending)

	err := repo.Delete("alice@example.com", goal.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err = repo.ByID(goal.ID)
	if !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("got error %v, want ErrGoalNotFound", err)
	}
}

func TestGoalDeleteWrongOwnerIsNoOp(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	goal := newTestGoal(t, repo, "alice@example.com", "2030-01-15", model.GoalStatusPending)

	err := repo.Delete("bob@example.com", goal.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// The goal must survive a delete attempt by a non-owner
	got, err := repo.ByID(goal.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.ID != goal.ID {
		t.Errorf("got goal %q, want %q", got.ID, goal.ID)
	}
}

func TestGoalDueOn(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	today := time.Now().Format(model.TargetDateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(model.TargetDateLayout)

	duePending := newTestGoal(t, repo, "alice@example.com", today, model.GoalStatusPending)
	dueIncomplete := newTestGoal(t, repo, "bob@example.com", today, model.GoalStatusIncomplete)
	newTestGoal(t, repo, "alice@example.com", today, model.GoalStatusCompleted)
	newTestGoal(t, repo, "alice@example.com", tomorrow, model.GoalStatusPending)

	goals, err := repo.DueOn(today)
	if err != nil {
		t.Fatalf("DueOn: %v", err)
	}

	if len(goals) != 2 {
		t.Fatalf("got %d due goals, want 2", len(goals))
	}

	ids := map[string]bool{}
	for _, g := range goals {
		ids[g.ID] = true
	}
	if !ids[duePending.ID] || !ids[dueIncomplete.ID] {
		t.Errorf("due goals %v missing expected ids %q and %q", ids, duePending.ID, dueIncomplete.ID)
	}
}
