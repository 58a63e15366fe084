package board

import (
	"testing"

	"trialboard/internal/model"

	"github.com/stretchr/testify/assert"
)

func columns(ids ...string) []model.Column {
	cols := make([]model.Column, len(ids))
	for i, id := range ids {
		cols[i] = model.Column{ID: id, Name: id, Position: i}
	}
	return cols
}

func task(id, column string) model.Task {
	return model.Task{ID: id, ColumnID: column, Title: "Task " + id}
}

func TestNew_GroupsTasksInListOrder(t *testing.T) {
	b := New(columns("A", "B"), []model.Task{task("1", "A"), task("3", "B"), task("2", "A")})

	assert.Equal(t, []string{"1", "2"}, b.TaskIDs("A"))
	assert.Equal(t, []string{"3"}, b.TaskIDs("B"))
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, b.Counts())
	assert.NoError(t, b.Validate())
}

func TestNew_UnknownColumnIsOrphaned(t *testing.T) {
	b := New(columns("A"), []model.Task{task("1", "A"), task("2", "archived")})

	assert.Equal(t, []string{"1"}, b.TaskIDs("A"))
	assert.Equal(t, []string{"2"}, b.Orphans())
	assert.NoError(t, b.Validate())
}

func TestNew_DuplicateIDsPlacedOnce(t *testing.T) {
	b := New(columns("A", "B"), []model.Task{task("1", "A"), task("1", "B")})

	assert.Equal(t, []string{"1"}, b.TaskIDs("A"))
	assert.Empty(t, b.TaskIDs("B"))
	assert.NoError(t, b.Validate())
}

func TestLanes_CarryTasksAndCounts(t *testing.T) {
	b := New(columns("A", "B"), []model.Task{task("1", "A"), task("2", "B")})

	lanes := b.Lanes()
	assert.Len(t, lanes, 2)
	assert.Equal(t, "A", lanes[0].Column.ID)
	assert.Equal(t, 1, lanes[0].Count)
	assert.Equal(t, "Task 1", lanes[0].Tasks[0].Title)
	assert.Equal(t, "2", lanes[1].Tasks[0].ID)
}

func TestArrayMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"down", 0, 2, []string{"b", "c", "a", "d"}},
		{"up", 3, 1, []string{"a", "d", "b", "c"}},
		{"to end", 1, 3, []string{"a", "c", "d", "b"}},
		{"same", 2, 2, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []string{"a", "b", "c", "d"}
			assert.Equal(t, tt.want, arrayMove(in, tt.from, tt.to))
			assert.Equal(t, []string{"a", "b", "c", "d"}, in)
		})
	}
}

func TestMove_ChangesOnlyColumnID(t *testing.T) {
	tasks := []model.Task{task("1", "A"), task("2", "A"), task("3", "B")}
	tasks[0].Progress = 0.5
	b := New(columns("A", "B"), tasks)

	b.move("1", "A", "B", 0)

	got := b.Tasks()
	want := []model.Task{task("1", "B"), task("2", "A"), task("3", "B")}
	want[0].Progress = 0.5
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"1", "3"}, b.TaskIDs("B"))
	assert.NoError(t, b.Validate())
}

func TestClone_IsIndependent(t *testing.T) {
	b := New(columns("A", "B"), []model.Task{task("1", "A"), task("2", "B")})
	c := b.clone()

	b.move("1", "A", "B", 1)

	assert.Equal(t, []string{"1"}, c.TaskIDs("A"))
	assert.Equal(t, "A", c.Tasks()[0].ColumnID)
}
