package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// SchemaVersion is the store file format version this build understands.
const SchemaVersion = 1

// DueDateLayout is the calendar-date layout used for due dates.
const DueDateLayout = "2006-01-02"

// Priority represents a task priority.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority parses a priority name, case-insensitively.
// An empty string maps to the medium default.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	}
	return "", &ValidationError{
		Path: "priority",
		Err:  fmt.Errorf("invalid priority %q, must be one of: high, medium, low", s),
	}
}

// Filter selects a subset of tasks at list time.
type Filter string

const (
	FilterPending Filter = "pending"
	FilterDone    Filter = "done"
	FilterAll     Filter = "all"
)

// ParseFilter parses a filter name, case-insensitively.
// An empty string maps to the pending default.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FilterPending, nil
	case "pending":
		return FilterPending, nil
	case "done":
		return FilterDone, nil
	case "all":
		return FilterAll, nil
	}
	return "", &ValidationError{
		Path: "filter",
		Err:  fmt.Errorf("invalid filter %q, must be one of: pending, done, all", s),
	}
}

// Task represents a single todo item.
type Task struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Done      bool       `json:"done"`
	Priority  Priority   `json:"priority"`
	DueDate   string     `json:"due_date,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// IsZero returns true if the task is empty (has no ID).
func (t *Task) IsZero() bool {
	return t.ID == 0
}

// File represents the todo store file structure.
type File struct {
	SchemaVersion int    `json:"schema_version"`
	NextID        int    `json:"next_id"`
	Tasks         []Task `json:"tasks"`
}

// NewFile returns an empty store ready for the first task.
func NewFile() *File {
	return &File{
		SchemaVersion: SchemaVersion,
		NextID:        1,
		Tasks:         []Task{},
	}
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path or field name of the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports an id that does not exist in the store.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo #%d not found", e.ID)
}

// ParseError reports a store file that exists but holds invalid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse store file %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads and parses the store file from path.
// A missing file is not an error; it yields an empty store.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewFile(), nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if f.SchemaVersion == 0 {
		f.SchemaVersion = SchemaVersion
	}
	if f.Tasks == nil {
		f.Tasks = []Task{}
	}
	healNextID(&f)

	return &f, nil
}

// healNextID bumps the counter past the highest existing id so that
// hand-edited files keep assigning unique ids.
func healNextID(f *File) {
	maxID := 0
	for i := range f.Tasks {
		if f.Tasks[i].ID > maxID {
			maxID = f.Tasks[i].ID
		}
	}
	if f.NextID <= maxID {
		f.NextID = maxID + 1
	}
	if f.NextID < 1 {
		f.NextID = 1
	}
}

// Save writes the store file to path with 2-space indentation.
func (f *File) Save(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store file: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}

	return nil
}

// Get returns a task by id, or nil if not found.
func (f *File) Get(id int) *Task {
	for i := range f.Tasks {
		if f.Tasks[i].ID == id {
			return &f.Tasks[i]
		}
	}
	return nil
}

// Add validates the input, assigns the next id, and appends a new task.
// The returned pointer refers into the store's task slice.
func (f *File) Add(title string, priority Priority, dueDate string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &ValidationError{
			Path: "title",
			Err:  fmt.Errorf("title must not be empty"),
		}
	}
	if priority == "" {
		priority = PriorityMedium
	}
	switch priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return nil, &ValidationError{
			Path: "priority",
			Err:  fmt.Errorf("invalid priority %q, must be one of: high, medium, low", priority),
		}
	}
	if dueDate != "" {
		if _, err := time.Parse(DueDateLayout, dueDate); err != nil {
			return nil, &ValidationError{
				Path: "due_date",
				Err:  fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", dueDate),
			}
		}
	}

	now := time.Now().UTC()
	task := Task{
		ID:        f.NextID,
		Title:     title,
		Done:      false,
		Priority:  priority,
		DueDate:   dueDate,
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	f.NextID++
	f.Tasks = append(f.Tasks, task)
	return &f.Tasks[len(f.Tasks)-1], nil
}

// Complete marks a task as done and sets updated_at.
// Completing an already-done task is a no-op success.
func (f *File) Complete(id int) error {
	for i := range f.Tasks {
		if f.Tasks[i].ID == id {
			if f.Tasks[i].Done {
				return nil
			}
			now := time.Now().UTC()
			f.Tasks[i].Done = true
			f.Tasks[i].UpdatedAt = &now
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// Remove deletes a task by id, preserving the order of the rest.
func (f *File) Remove(id int) error {
	for i := range f.Tasks {
		if f.Tasks[i].ID == id {
			f.Tasks = append(f.Tasks[:i], f.Tasks[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// Filter returns the tasks matching the filter in insertion order.
// The returned slice is a copy; mutating it does not touch the store.
func (f *File) Filter(filter Filter) []Task {
	out := make([]Task, 0, len(f.Tasks))
	for _, t := range f.Tasks {
		switch filter {
		case FilterDone:
			if !t.Done {
				continue
			}
		case FilterPending:
			if t.Done {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Counts returns how many tasks are done and pending.
func (f *File) Counts() (done, pending int) {
	for i := range f.Tasks {
		if f.Tasks[i].Done {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}
