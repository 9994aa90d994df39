// Package task holds the in-memory task list and the operations that mutate it.
package task

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Filter selects which tasks are shown. It never changes the list itself.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter converts user input into a Filter.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	case "":
		return FilterAll, nil
	default:
		return "", fmt.Errorf("unknown filter %q (want all, active or completed)", s)
	}
}

func (f Filter) String() string {
	return string(f)
}

// Label is the footer caption for the filter.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Next cycles all -> active -> completed -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Matches reports whether t is shown under f.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Task represents a todo item
type Task struct {
	ID        string
	Text      string
	Completed bool
}

// List is the ordered, in-memory task collection. It is not safe for
// concurrent use; the UI event loop is its only owner.
type List struct {
	tasks []Task
	newID func() string
}

// Option configures a List.
type Option func(*List)

// WithIDGenerator replaces the uuid-based identifier source.
func WithIDGenerator(fn func() string) Option {
	return func(l *List) {
		l.newID = fn
	}
}

// NewList returns an empty list.
func NewList(opts ...Option) *List {
	l := &List{
		newID: generateTaskID,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func generateTaskID() string {
	return uuid.New().String()
}

// Add appends a task built from text. Blank text (after trimming) is
// ignored and reported with ok == false.
func (l *List) Add(text string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}

	t := Task{
		ID:   l.newID(),
		Text: text,
	}
	l.tasks = append(l.tasks, t)
	return t, true
}

// Toggle flips the completed flag of the task with id.
func (l *List) Toggle(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	return true
}

// Delete removes the task with id.
func (l *List) Delete(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return true
}

// ClearCompleted drops every completed task, keeping the order of the rest,
// and returns how many were removed.
func (l *List) ClearCompleted() int {
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(l.tasks) - len(kept)
	clear(l.tasks[len(kept):])
	l.tasks = kept
	return removed
}

// Get returns the task with id.
func (l *List) Get(id string) (Task, bool) {
	i := l.index(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Tasks returns a copy of every task in insertion order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Visible returns the tasks matching f in insertion order.
func (l *List) Visible(f Filter) []Task {
	var out []Task
	for _, t := range l.tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Remaining counts incomplete tasks across the whole list.
func (l *List) Remaining() int {
	count := 0
	for _, t := range l.tasks {
		if !t.Completed {
			count++
		}
	}
	return count
}

// Len returns the total number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

func (l *List) index(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
