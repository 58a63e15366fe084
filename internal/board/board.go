package board

import (
	"fmt"
	"slices"

	"trialboard/internal/model"
)

// Board groups a trial's tasks into its ordered columns. Every task whose
// column is configured sits in exactly one position of exactly one column.
type Board struct {
	columns []model.Column
	order   map[string][]string
	tasks   []model.Task
	index   map[string]int
	orphans []string
}

// Lane is one rendered column of the committed board.
type Lane struct {
	Column model.Column
	Tasks  []model.Task
	Count  int
}

// New builds a board from scratch. Within a column, tasks keep the order of
// the task list.
func New(columns []model.Column, tasks []model.Task) *Board {
	b := &Board{
		columns: slices.Clone(columns),
		order:   make(map[string][]string, len(columns)),
		tasks:   slices.Clone(tasks),
		index:   make(map[string]int, len(tasks)),
	}
	for _, c := range b.columns {
		b.order[c.ID] = []string{}
	}
	for i, t := range b.tasks {
		if _, dup := b.index[t.ID]; dup {
			continue
		}
		b.index[t.ID] = i
		ids, ok := b.order[t.ColumnID]
		if !ok {
			b.orphans = append(b.orphans, t.ID)
			continue
		}
		b.order[t.ColumnID] = append(ids, t.ID)
	}
	return b
}

func (b *Board) Columns() []model.Column {
	return slices.Clone(b.columns)
}

func (b *Board) HasColumn(id string) bool {
	_, ok := b.order[id]
	return ok
}

// TaskIDs returns the ordered task ids of a column.
func (b *Board) TaskIDs(columnID string) []string {
	return slices.Clone(b.order[columnID])
}

// Tasks returns the flat task list in its original order, with any
// committed column changes applied.
func (b *Board) Tasks() []model.Task {
	return slices.Clone(b.tasks)
}

func (b *Board) Task(id string) (model.Task, bool) {
	i, ok := b.index[id]
	if !ok {
		return model.Task{}, false
	}
	return b.tasks[i], true
}

// Locate returns the column holding the task and the task's index in it.
func (b *Board) Locate(taskID string) (string, int, bool) {
	for _, c := range b.columns {
		if i := slices.Index(b.order[c.ID], taskID); i >= 0 {
			return c.ID, i, true
		}
	}
	return "", -1, false
}

// Orphans lists tasks whose column is not configured; they are kept out of
// every lane.
func (b *Board) Orphans() []string {
	return slices.Clone(b.orphans)
}

func (b *Board) Counts() map[string]int {
	counts := make(map[string]int, len(b.columns))
	for _, c := range b.columns {
		counts[c.ID] = len(b.order[c.ID])
	}
	return counts
}

func (b *Board) Lanes() []Lane {
	lanes := make([]Lane, 0, len(b.columns))
	for _, c := range b.columns {
		ids := b.order[c.ID]
		lane := Lane{Column: c, Tasks: make([]model.Task, 0, len(ids)), Count: len(ids)}
		for _, id := range ids {
			lane.Tasks = append(lane.Tasks, b.tasks[b.index[id]])
		}
		lanes = append(lanes, lane)
	}
	return lanes
}

// Validate checks the partition invariant: every non-orphan task appears
// once across all columns, and nothing else does.
func (b *Board) Validate() error {
	seen := make(map[string]string, len(b.index))
	for _, c := range b.columns {
		for _, id := range b.order[c.ID] {
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("task %s placed in both %s and %s", id, prev, c.ID)
			}
			if _, known := b.index[id]; !known {
				return fmt.Errorf("column %s holds unknown task %s", c.ID, id)
			}
			seen[id] = c.ID
		}
	}
	if want := len(b.index) - len(b.orphans); len(seen) != want {
		return fmt.Errorf("board places %d tasks, want %d", len(seen), want)
	}
	return nil
}

func (b *Board) clone() *Board {
	c := &Board{
		columns: b.columns,
		order:   make(map[string][]string, len(b.order)),
		tasks:   slices.Clone(b.tasks),
		index:   b.index,
		orphans: b.orphans,
	}
	for k, v := range b.order {
		c.order[k] = slices.Clone(v)
	}
	return c
}

func (b *Board) reorder(columnID string, from, to int) {
	b.order[columnID] = arrayMove(b.order[columnID], from, to)
}

// move reassigns a task to another column at index, clamped to the column
// length. Only the task's ColumnID changes in the flat list.
func (b *Board) move(taskID, from, to string, index int) {
	b.order[from] = slices.DeleteFunc(b.order[from], func(id string) bool { return id == taskID })
	dst := b.order[to]
	index = min(max(index, 0), len(dst))
	b.order[to] = slices.Insert(dst, index, taskID)
	b.tasks[b.index[taskID]].ColumnID = to
}

// arrayMove removes the element at from and reinserts it at to.
func arrayMove[T any](s []T, from, to int) []T {
	out := slices.Clone(s)
	v := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, v)
}
