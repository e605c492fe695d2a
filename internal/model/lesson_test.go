package model

import "testing"

func TestValidLessonID(t *testing.T) {
	valid := []string{"lesson-1", "lesson-2", "lesson-3", "lesson-4", "lesson-5", "lesson-6"}
	for _, id := range valid {
		if !ValidLessonID(id) {
			t.Errorf("ValidLessonID(%q) = false, want true", id)
		}
	}

	invalid := []string{"", "lesson-0", "lesson-7", "lesson-12", "lesson-", "Lesson-1", " lesson-1", "lesson-1 ", "lektion-1"}
	for _, id := range invalid {
		if ValidLessonID(id) {
			t.Errorf("ValidLessonID(%q) = true, want false", id)
		}
	}
}

func TestLessonByID(t *testing.T) {
	lesson, ok := LessonByID("lesson-3")
	if !ok {
		t.Fatal("lesson-3 missing from catalog")
	}
	if lesson.ID != "lesson-3" {
		t.Errorf("ID = %s", lesson.ID)
	}

	if _, ok := LessonByID("lesson-7"); ok {
		t.Error("lesson-7 should not resolve")
	}
}

// Every catalog question must carry exactly one answer key, matching
// its type, and every listed key must be materializable from the
// question's own options.
func TestCatalogIntegrity(t *testing.T) {
	if len(LessonCatalog) != 6 {
		t.Fatalf("catalog has %d lessons, want 6", len(LessonCatalog))
	}

	seen := map[string]bool{}
	for _, lesson := range LessonCatalog {
		if seen[lesson.ID] {
			t.Errorf("duplicate lesson id %s", lesson.ID)
		}
		seen[lesson.ID] = true

		if !ValidLessonID(lesson.ID) {
			t.Errorf("catalog lesson %q fails its own id pattern", lesson.ID)
		}
		if lesson.Duration <= 0 {
			t.Errorf("%s: non-positive duration %d", lesson.ID, lesson.Duration)
		}
		if len(lesson.Quiz.Questions) == 0 {
			t.Errorf("%s: quiz has no questions", lesson.ID)
		}

		for _, q := range lesson.Quiz.Questions {
			switch q.Type {
			case MultipleCorrect:
				if len(q.CorrectAnswers) == 0 || q.CorrectAnswer != "" {
					t.Errorf("%s/%s: multiple-correct must use CorrectAnswers only", lesson.ID, q.ID)
				}
				options := map[string]bool{}
				for _, opt := range q.Options {
					options[opt] = true
				}
				for _, key := range q.CorrectAnswers {
					if !options[key] {
						t.Errorf("%s/%s: key %q not among options", lesson.ID, q.ID, key)
					}
				}
			case MultipleChoice:
				if q.CorrectAnswer == "" || len(q.CorrectAnswers) != 0 {
					t.Errorf("%s/%s: multiple-choice must use CorrectAnswer only", lesson.ID, q.ID)
				}
				found := false
				for _, opt := range q.Options {
					if opt == q.CorrectAnswer {
						found = true
					}
				}
				if !found {
					t.Errorf("%s/%s: key %q not among options", lesson.ID, q.ID, q.CorrectAnswer)
				}
			case BinaryChoice:
				if q.CorrectAnswer != q.Option1 && q.CorrectAnswer != q.Option2 {
					t.Errorf("%s/%s: key %q is neither option", lesson.ID, q.ID, q.CorrectAnswer)
				}
			case FillInBlank:
				if q.CorrectAnswer == "" {
					t.Errorf("%s/%s: fill-in-blank has no key", lesson.ID, q.ID)
				}
			default:
				t.Errorf("%s/%s: unknown question type %q", lesson.ID, q.ID, q.Type)
			}
		}
	}
}
