package todo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "todo.json")

	now := time.Now().UTC().Truncate(time.Second)
	original := &File{
		SchemaVersion: 1,
		NextID:        3,
		Tasks: []Task{
			{
				ID:        1,
				Title:     "Buy milk",
				Done:      false,
				Priority:  PriorityLow,
				DueDate:   "2026-09-01",
				CreatedAt: &now,
				UpdatedAt: &now,
			},
			{
				ID:        2,
				Title:     "Pay bills",
				Done:      true,
				Priority:  PriorityHigh,
				CreatedAt: &now,
				UpdatedAt: &now,
			},
		},
	}

	// Save
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip fidelity
	if loaded.SchemaVersion != original.SchemaVersion {
		t.Errorf("SchemaVersion: got %d, want %d", loaded.SchemaVersion, original.SchemaVersion)
	}
	if loaded.NextID != original.NextID {
		t.Errorf("NextID: got %d, want %d", loaded.NextID, original.NextID)
	}
	if len(loaded.Tasks) != len(original.Tasks) {
		t.Fatalf("Tasks count: got %d, want %d", len(loaded.Tasks), len(original.Tasks))
	}
	for i := range original.Tasks {
		got, want := loaded.Tasks[i], original.Tasks[i]
		if got.ID != want.ID {
			t.Errorf("Tasks[%d].ID: got %d, want %d", i, got.ID, want.ID)
		}
		if got.Title != want.Title {
			t.Errorf("Tasks[%d].Title: got %q, want %q", i, got.Title, want.Title)
		}
		if got.Done != want.Done {
			t.Errorf("Tasks[%d].Done: got %v, want %v", i, got.Done, want.Done)
		}
		if got.Priority != want.Priority {
			t.Errorf("Tasks[%d].Priority: got %q, want %q", i, got.Priority, want.Priority)
		}
		if got.DueDate != want.DueDate {
			t.Errorf("Tasks[%d].DueDate: got %q, want %q", i, got.DueDate, want.DueDate)
		}
		if !got.CreatedAt.Equal(*want.CreatedAt) {
			t.Errorf("Tasks[%d].CreatedAt: got %v, want %v", i, got.CreatedAt, want.CreatedAt)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load of missing file should succeed, got %v", err)
	}
	if f.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion: got %d, want %d", f.SchemaVersion, SchemaVersion)
	}
	if f.NextID != 1 {
		t.Errorf("NextID: got %d, want 1", f.NextID)
	}
	if len(f.Tasks) != 0 {
		t.Errorf("Tasks: got %d entries, want 0", len(f.Tasks))
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load of invalid JSON should fail")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("error type: got %T, want *ParseError", err)
	}
}

func TestLoadHealsNextID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")
	content := []byte(`{
  "schema_version": 1,
  "next_id": 1,
  "tasks": [
    {"id": 4, "title": "Hand-edited", "done": false, "priority": "medium"}
  ]
}
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.NextID != 5 {
		t.Errorf("NextID: got %d, want 5", f.NextID)
	}

	task, err := f.Add("New task", PriorityMedium, "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if task.ID != 5 {
		t.Errorf("new id: got %d, want 5", task.ID)
	}
}

func TestAddAssignsDistinctIncreasingIDs(t *testing.T) {
	f := NewFile()

	titles := []string{"one", "two", "three", "four", "five"}
	seen := make(map[int]bool)
	prev := 0
	for _, title := range titles {
		task, err := f.Add(title, PriorityMedium, "")
		if err != nil {
			t.Fatalf("Add(%q) failed: %v", title, err)
		}
		if task.ID <= prev {
			t.Errorf("id %d not increasing after %d", task.ID, prev)
		}
		if seen[task.ID] {
			t.Errorf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
		prev = task.ID
	}
	if len(f.Tasks) != len(titles) {
		t.Errorf("Tasks: got %d, want %d", len(f.Tasks), len(titles))
	}
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		priority Priority
		dueDate  string
		wantErr  bool
	}{
		{"valid", "Buy milk", PriorityLow, "", false},
		{"valid with due date", "Buy milk", PriorityLow, "2026-09-01", false},
		{"empty title", "", PriorityMedium, "", true},
		{"whitespace title", "   ", PriorityMedium, "", true},
		{"empty priority defaults", "Buy milk", "", "", false},
		{"bad priority", "Buy milk", "urgent", "", true},
		{"bad due date", "Buy milk", PriorityMedium, "tomorrow", true},
		{"partial due date", "Buy milk", PriorityMedium, "2026-09", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFile()
			task, err := f.Add(tt.title, tt.priority, tt.dueDate)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("error type: got %T, want *ValidationError", err)
				}
				if len(f.Tasks) != 0 {
					t.Errorf("failed Add must not append, got %d tasks", len(f.Tasks))
				}
				return
			}
			if err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			if task.Done {
				t.Error("new task should not be done")
			}
			if tt.priority == "" && task.Priority != PriorityMedium {
				t.Errorf("default priority: got %q, want medium", task.Priority)
			}
		})
	}
}

func TestCompleteIdempotent(t *testing.T) {
	f := NewFile()
	task, err := f.Add("Buy milk", PriorityLow, "")
	if err != nil {
		t.Fatal(err)
	}

	if err := f.Complete(task.ID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !f.Get(task.ID).Done {
		t.Error("task should be done")
	}

	// Re-marking an already-done task is a no-op success.
	if err := f.Complete(task.ID); err != nil {
		t.Fatalf("second Complete failed: %v", err)
	}
}

func TestCompleteNotFound(t *testing.T) {
	f := NewFile()
	if _, err := f.Add("Buy milk", PriorityLow, ""); err != nil {
		t.Fatal(err)
	}
	before := len(f.Tasks)

	err := f.Complete(99)
	if err == nil {
		t.Fatal("Complete(99) should fail")
	}
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("error type: got %T, want *NotFoundError", err)
	}
	if nferr.ID != 99 {
		t.Errorf("NotFoundError.ID: got %d, want 99", nferr.ID)
	}
	if len(f.Tasks) != before {
		t.Errorf("failed Complete must not change the list")
	}
	if f.Tasks[0].Done {
		t.Error("existing task must stay pending")
	}
}

func TestRemove(t *testing.T) {
	f := NewFile()
	for _, title := range []string{"one", "two", "three"} {
		if _, err := f.Add(title, PriorityMedium, ""); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.Remove(2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(f.Tasks) != 2 {
		t.Fatalf("Tasks: got %d, want 2", len(f.Tasks))
	}
	if f.Get(2) != nil {
		t.Error("removed id still present")
	}
	// Order of the survivors is preserved.
	if f.Tasks[0].ID != 1 || f.Tasks[1].ID != 3 {
		t.Errorf("order: got [%d %d], want [1 3]", f.Tasks[0].ID, f.Tasks[1].ID)
	}

	err := f.Remove(2)
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("second Remove: got %T, want *NotFoundError", err)
	}
}

func TestFilterPartitions(t *testing.T) {
	f := NewFile()
	for i, title := range []string{"a", "b", "c", "d"} {
		task, err := f.Add(title, PriorityMedium, "")
		if err != nil {
			t.Fatal(err)
		}
		if i%2 == 0 {
			if err := f.Complete(task.ID); err != nil {
				t.Fatal(err)
			}
		}
	}

	done := f.Filter(FilterDone)
	pending := f.Filter(FilterPending)
	all := f.Filter(FilterAll)

	if len(done) != 2 {
		t.Errorf("done: got %d, want 2", len(done))
	}
	for _, task := range done {
		if !task.Done {
			t.Errorf("done filter returned pending task %d", task.ID)
		}
	}
	if len(pending) != 2 {
		t.Errorf("pending: got %d, want 2", len(pending))
	}
	for _, task := range pending {
		if task.Done {
			t.Errorf("pending filter returned done task %d", task.ID)
		}
	}
	if len(all) != len(done)+len(pending) {
		t.Errorf("all: got %d, want %d", len(all), len(done)+len(pending))
	}
	// Insertion order is preserved.
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Errorf("all filter not in insertion order: %d after %d", all[i].ID, all[i-1].ID)
		}
	}
}

// TestWorkedExample follows the add/add/done/list scenario end to end.
func TestWorkedExample(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "todo.json")

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	milk, err := f.Add("Buy milk", PriorityLow, "")
	if err != nil {
		t.Fatal(err)
	}
	if milk.ID != 1 {
		t.Errorf("first id: got %d, want 1", milk.ID)
	}

	bills, err := f.Add("Pay bills", PriorityHigh, "")
	if err != nil {
		t.Fatal(err)
	}
	if bills.ID != 2 {
		t.Errorf("second id: got %d, want 2", bills.ID)
	}

	if err := f.Complete(1); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	all := reloaded.Filter(FilterAll)
	if len(all) != 2 {
		t.Fatalf("all: got %d, want 2", len(all))
	}
	if all[0].ID != 1 || all[0].Title != "Buy milk" || all[0].Priority != PriorityLow || !all[0].Done {
		t.Errorf("first task wrong: %+v", all[0])
	}
	if all[1].ID != 2 || all[1].Title != "Pay bills" || all[1].Priority != PriorityHigh || all[1].Done {
		t.Errorf("second task wrong: %+v", all[1])
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"high", PriorityHigh, false},
		{"medium", PriorityMedium, false},
		{"low", PriorityLow, false},
		{"HIGH", PriorityHigh, false},
		{" low ", PriorityLow, false},
		{"", PriorityMedium, false},
		{"urgent", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePriority(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePriority(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"pending", FilterPending, false},
		{"done", FilterDone, false},
		{"all", FilterAll, false},
		{"ALL", FilterAll, false},
		{"", FilterPending, false},
		{"open", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilter(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFilter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCounts(t *testing.T) {
	f := NewFile()
	for i := 0; i < 5; i++ {
		task, err := f.Add("task", PriorityMedium, "")
		if err != nil {
			t.Fatal(err)
		}
		if i < 2 {
			if err := f.Complete(task.ID); err != nil {
				t.Fatal(err)
			}
		}
	}

	done, pending := f.Counts()
	if done != 2 || pending != 3 {
		t.Errorf("Counts: got (%d, %d), want (2, 3)", done, pending)
	}
}
