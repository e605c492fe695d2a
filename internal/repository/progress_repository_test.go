package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"lingua_edu_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	record, created, err := repo.Upsert(1, "lesson-1", 40, false, 40)
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if !created {
		t.Error("first upsert should report created")
	}
	if record.Score != 40 || record.Completed || record.CompletedAt != nil {
		t.Errorf("unexpected record after create: %+v", record)
	}

	record, created, err = repo.Upsert(1, "lesson-1", 80, true, 100)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if created {
		t.Error("second upsert should report updated, not created")
	}
	if record.Score != 80 || !record.Completed || record.Progress != 100 {
		t.Errorf("unexpected record after update: %+v", record)
	}
	if record.CompletedAt == nil {
		t.Error("completedAt should be set on first completing write")
	}

	var count int64
	repo.DB.Table("progress").Where("user_id = ? AND lesson_id = ?", 1, "lesson-1").Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one record, got %d", count)
	}
}

func TestUpsertCompletedAtSetExactlyOnce(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	if _, _, err := repo.Upsert(1, "lesson-2", 30, false, 30); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	first, _, err := repo.Upsert(1, "lesson-2", 70, true, 100)
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if first.CompletedAt == nil {
		t.Fatal("completedAt should be set on first completion")
	}
	firstCompletion := *first.CompletedAt

	time.Sleep(20 * time.Millisecond)

	second, _, err := repo.Upsert(1, "lesson-2", 90, true, 100)
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if second.CompletedAt == nil {
		t.Fatal("completedAt should survive later completions")
	}
	if !second.CompletedAt.Equal(firstCompletion) {
		t.Errorf("completedAt changed on re-completion: %v -> %v", firstCompletion, *second.CompletedAt)
	}
	if second.Score != 90 {
		t.Errorf("score should still update, got %d", second.Score)
	}
}

func TestUpsertDistinctPairsAreIndependent(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	pairs := []struct {
		userID   uint
		lessonID string
	}{
		{1, "lesson-1"},
		{1, "lesson-2"},
		{2, "lesson-1"},
	}
	for _, p := range pairs {
		_, created, err := repo.Upsert(p.userID, p.lessonID, 60, true, 100)
		if err != nil {
			t.Fatalf("upsert(%d, %s) failed: %v", p.userID, p.lessonID, err)
		}
		if !created {
			t.Errorf("upsert(%d, %s) should create a fresh record", p.userID, p.lessonID)
		}
	}

	var count int64
	repo.DB.Table("progress").Count(&count)
	if count != 3 {
		t.Errorf("expected 3 records, got %d", count)
	}
}

func TestListByUserOrdering(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	for _, lessonID := range []string{"lesson-1", "lesson-2", "lesson-3"} {
		if _, _, err := repo.Upsert(1, lessonID, 50, true, 100); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	// Touching lesson-1 again moves it to the front.
	if _, _, err := repo.Upsert(1, "lesson-1", 95, true, 100); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	records, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}

	want := []string{"lesson-1", "lesson-3", "lesson-2"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, lessonID := range want {
		if records[i].LessonID != lessonID {
			t.Errorf("records[%d] = %s, want %s", i, records[i].LessonID, lessonID)
		}
	}
}

func TestListByUserScopedToUser(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	repo.Upsert(1, "lesson-1", 80, true, 100)
	repo.Upsert(2, "lesson-1", 60, true, 100)
	repo.Upsert(2, "lesson-2", 40, false, 40)

	records, err := repo.ListByUser(2)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records for user 2, got %d", len(records))
	}
	for _, r := range records {
		if r.UserID != 2 {
			t.Errorf("record for wrong user: %+v", r)
		}
	}
}

func TestGetByUserAndLessonNotFound(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	_, err := repo.GetByUserAndLesson(1, "lesson-1")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUniqueIndexRejectsRawDuplicate(t *testing.T) {
	db := newTestDB(t)

	if err := db.Exec(
		"INSERT INTO progress (user_id, lesson_id, score, progress, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		1, "lesson-1", 50, 50, time.Now(), time.Now(),
	).Error; err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	err := db.Exec(
		"INSERT INTO progress (user_id, lesson_id, score, progress, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		1, "lesson-1", 60, 60, time.Now(), time.Now(),
	).Error
	if err == nil {
		t.Fatal("duplicate (user_id, lesson_id) insert should fail")
	}
}
