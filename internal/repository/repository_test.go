package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/akulov/healthmate/internal/models"
	"github.com/akulov/healthmate/internal/storage"
)

func newTestStore(t *testing.T) *storage.FileStore {
	t.Helper()
	s, err := storage.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return s
}

func TestUserRepository_UsersEmptyByDefault(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	users, err := repo.Users(context.Background())
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}
}

func TestUserRepository_SaveAndLoad(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	want := []models.User{{Username: "bob", Password: "pw", Name: "Bob"}}
	if err := repo.SaveUsers(ctx, want); err != nil {
		t.Fatalf("SaveUsers failed: %v", err)
	}

	got, err := repo.Users(ctx)
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Users = %+v; want %+v", got, want)
	}
}

func TestUserRepository_Session(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	username, err := repo.CurrentUsername(ctx)
	if err != nil {
		t.Fatalf("CurrentUsername failed: %v", err)
	}
	if username != "" {
		t.Errorf("CurrentUsername = %q; want empty before login", username)
	}

	if err := repo.SetSession(ctx, "alice"); err != nil {
		t.Fatalf("SetSession failed: %v", err)
	}
	username, err = repo.CurrentUsername(ctx)
	if err != nil {
		t.Fatalf("CurrentUsername failed: %v", err)
	}
	if username != "alice" {
		t.Errorf("CurrentUsername = %q; want %q", username, "alice")
	}

	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("ClearSession failed: %v", err)
	}
	username, err = repo.CurrentUsername(ctx)
	if err != nil {
		t.Fatalf("CurrentUsername failed: %v", err)
	}
	if username != "" {
		t.Errorf("CurrentUsername = %q; want empty after logout", username)
	}
}

func TestAppointmentRepository_PerUserKeys(t *testing.T) {
	repo := NewAppointmentRepository(newTestStore(t))
	ctx := context.Background()

	a := models.Appointment{ID: "1", DoctorName: "Dr. James Allen", Status: models.AppointmentStatusUpcoming}
	if err := repo.Set(ctx, "alice", a); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := repo.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.ID != "1" {
		t.Errorf("Get = %+v; want appointment with ID 1", got)
	}

	other, err := repo.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if other != nil {
		t.Errorf("expected no appointment for bob, got %+v", other)
	}
}

func TestAppointmentRepository_Overwrite(t *testing.T) {
	repo := NewAppointmentRepository(newTestStore(t))
	ctx := context.Background()

	first := models.Appointment{ID: "1", DoctorName: "Dr. Laurie Simons", MeetLink: "https://meet.example/1", Status: "UPCOMING"}
	if err := repo.Set(ctx, "alice", first); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	second := models.Appointment{ID: "2", DoctorName: "Dr. Sarah Johnson", Status: "UPCOMING"}
	if err := repo.Set(ctx, "alice", second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := repo.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != "2" {
		t.Errorf("ID = %q; want %q", got.ID, "2")
	}
	// The old record must be gone entirely, meetLink included.
	if got.MeetLink != "" {
		t.Errorf("MeetLink = %q; want empty after overwrite", got.MeetLink)
	}
}

func TestNotificationRepository_ClearEmptiesLedger(t *testing.T) {
	repo := NewNotificationRepository(newTestStore(t))
	ctx := context.Background()

	if err := repo.Save(ctx, []models.Notification{{ID: "1", Title: "t", Message: "m"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty ledger, got %d entries", len(list))
	}
}

func TestTaskRepository_PerUserKeys(t *testing.T) {
	repo := NewTaskRepository(newTestStore(t))
	ctx := context.Background()

	if err := repo.SaveTasks(ctx, "alice", []models.Task{{ID: "1", Title: "walk"}}); err != nil {
		t.Fatalf("SaveTasks failed: %v", err)
	}

	tasks, err := repo.Tasks(ctx, "bob")
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks for bob, got %d", len(tasks))
	}
}

func TestMetricsRepository_FoundFlags(t *testing.T) {
	repo := NewMetricsRepository(newTestStore(t))
	ctx := context.Background()

	if _, ok, err := repo.BMI(ctx); err != nil || ok {
		t.Errorf("BMI before set: ok = %v, err = %v; want false, nil", ok, err)
	}

	if err := repo.SetBMI(ctx, 21.3); err != nil {
		t.Fatalf("SetBMI failed: %v", err)
	}
	v, ok, err := repo.BMI(ctx)
	if err != nil {
		t.Fatalf("BMI failed: %v", err)
	}
	if !ok || v != 21.3 {
		t.Errorf("BMI = %v, %v; want 21.3, true", v, ok)
	}
}

func TestDeviceRepository_TokenOverwrite(t *testing.T) {
	repo := NewDeviceRepository(newTestStore(t))
	ctx := context.Background()

	if err := repo.SavePushToken(ctx, "ExponentPushToken[aaa]"); err != nil {
		t.Fatalf("SavePushToken failed: %v", err)
	}
	if err := repo.SavePushToken(ctx, "ExponentPushToken[bbb]"); err != nil {
		t.Fatalf("SavePushToken failed: %v", err)
	}

	token, err := repo.PushToken(ctx)
	if err != nil {
		t.Fatalf("PushToken failed: %v", err)
	}
	if token != "ExponentPushToken[bbb]" {
		t.Errorf("PushToken = %q; want the re-registered token", token)
	}
}
