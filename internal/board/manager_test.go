package board

import (
	"context"
	"testing"

	"trialboard/internal/events"
	"trialboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupManager(tasks ...model.Task) (*Manager, *mockStore, *events.Bus) {
	store := new(mockStore)
	store.On("ListColumns", mock.Anything).Return(columns("A", "B"), nil)
	store.On("ListTasks", mock.Anything, "trial-1").Return(tasks, nil)
	bus := events.NewBus()
	return NewManager(store, PointerSensor{Distance: DefaultActivationDistance}, bus), store, bus
}

func TestManager_LoadsOnceOnMount(t *testing.T) {
	m, store, _ := setupManager(task("1", "A"), task("2", "B"))
	ctx := context.Background()

	lanes, err := m.Lanes(ctx, "trial-1")
	require.NoError(t, err)
	assert.Len(t, lanes, 2)

	_, err = m.Lanes(ctx, "trial-1")
	require.NoError(t, err)

	store.AssertNumberOfCalls(t, "ListTasks", 1)
}

func TestManager_ClickDoesNotStartDrag(t *testing.T) {
	m, _, _ := setupManager(task("1", "A"))
	ctx := context.Background()

	started, err := m.BeginDrag(ctx, "trial-1", "1", 3, 4)
	require.NoError(t, err)
	assert.False(t, started)

	started, err = m.BeginDrag(ctx, "trial-1", "1", 8, 0)
	require.NoError(t, err)
	assert.False(t, started)

	started, err = m.BeginDrag(ctx, "trial-1", "1", 6, 6)
	require.NoError(t, err)
	assert.True(t, started)

	_, err = m.BeginDrag(ctx, "trial-1", "1", 10, 10)
	assert.ErrorIs(t, err, ErrDragInProgress)
}

func TestManager_MovePublishesBoardChanged(t *testing.T) {
	m, store, bus := setupManager(task("1", "A"), task("2", "A"), task("3", "B"))
	store.On("ReplaceTasks", mock.Anything, "trial-1", mock.Anything).Return(nil).Once()
	ctx := context.Background()

	var got []events.Event
	bus.Subscribe(events.TopicBoardChanged, func(e events.Event) { got = append(got, e) })

	_, err := m.BeginDrag(ctx, "trial-1", "1", 20, 0)
	require.NoError(t, err)
	res, err := m.EndDrag(ctx, "trial-1", "3")
	require.NoError(t, err)

	assert.Equal(t, OutcomeMoved, res.Outcome)
	require.Len(t, got, 1)
	assert.Equal(t, "trial-1", got[0].TrialID)
	assert.Equal(t, res, got[0].Payload)
}

func TestManager_ReloadDropsLocalOrder(t *testing.T) {
	m, store, bus := setupManager(task("1", "A"), task("2", "A"))
	ctx := context.Background()

	reloaded := 0
	bus.Subscribe(events.TopicBoardReloaded, func(events.Event) { reloaded++ })

	_, err := m.BeginDrag(ctx, "trial-1", "1", 20, 0)
	require.NoError(t, err)
	res, err := m.EndDrag(ctx, "trial-1", "2")
	require.NoError(t, err)
	require.Equal(t, OutcomeReordered, res.Outcome)

	lanes, _ := m.Lanes(ctx, "trial-1")
	assert.Equal(t, "2", lanes[0].Tasks[0].ID)

	require.NoError(t, m.Reload(ctx, "trial-1"))
	lanes, _ = m.Lanes(ctx, "trial-1")
	assert.Equal(t, "1", lanes[0].Tasks[0].ID)
	assert.Equal(t, 1, reloaded)
	store.AssertNumberOfCalls(t, "ListTasks", 2)
}

func TestManager_LoadError(t *testing.T) {
	store := new(mockStore)
	store.On("ListColumns", mock.Anything).Return(nil, assert.AnError)
	m := NewManager(store, PointerSensor{Distance: DefaultActivationDistance}, events.NewBus())

	_, err := m.Lanes(context.Background(), "trial-1")
	assert.ErrorIs(t, err, assert.AnError)
}
