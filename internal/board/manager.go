package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"trialboard/internal/events"
)

// Manager keeps one board session per trial. A trial's board is loaded from
// the store on first use and rebuilt on Reload; all gestures of a trial are
// serialized.
type Manager struct {
	store  Store
	sensor PointerSensor
	pub    events.Publisher

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	session *Session
}

func NewManager(store Store, sensor PointerSensor, pub events.Publisher) *Manager {
	return &Manager{
		store:    store,
		sensor:   sensor,
		pub:      pub,
		sessions: make(map[string]*entry),
	}
}

// Lanes returns the committed board of a trial.
func (m *Manager) Lanes(ctx context.Context, trialID string) ([]Lane, error) {
	var lanes []Lane
	err := m.with(ctx, trialID, func(s *Session) error {
		lanes = s.Board().Lanes()
		return nil
	})
	return lanes, err
}

// BeginDrag starts a gesture if the pointer travelled past the activation
// distance. It reports false for a click.
func (m *Manager) BeginDrag(ctx context.Context, trialID, taskID string, dx, dy float64) (bool, error) {
	if !m.sensor.Activated(dx, dy) {
		return false, nil
	}
	err := m.with(ctx, trialID, func(s *Session) error {
		return s.BeginDrag(taskID)
	})
	return err == nil, err
}

func (m *Manager) UpdateDragTarget(ctx context.Context, trialID, targetID string) (Preview, error) {
	var p Preview
	err := m.with(ctx, trialID, func(s *Session) error {
		p = s.UpdateDragTarget(targetID)
		return nil
	})
	return p, err
}

func (m *Manager) EndDrag(ctx context.Context, trialID, targetID string) (Result, error) {
	var res Result
	err := m.with(ctx, trialID, func(s *Session) error {
		var err error
		res, err = s.EndDrag(ctx, targetID)
		return err
	})
	if err != nil {
		return res, err
	}

	switch res.Outcome {
	case OutcomeMoved:
		slog.Info("task moved", "trial", trialID, "task", res.TaskID, "from", res.FromColumn, "to", res.ToColumn, "index", res.ToIndex)
		m.pub.Publish(events.Event{Topic: events.TopicBoardChanged, TrialID: trialID, Payload: res})
	case OutcomeReordered:
		slog.Debug("task reordered", "trial", trialID, "task", res.TaskID, "column", res.FromColumn, "index", res.ToIndex)
	}
	return res, nil
}

func (m *Manager) CancelDrag(ctx context.Context, trialID string) error {
	return m.with(ctx, trialID, func(s *Session) error {
		s.CancelDrag()
		return nil
	})
}

// Reload rebuilds a trial's board from the store, dropping any active
// gesture and any session-local ordering.
func (m *Manager) Reload(ctx context.Context, trialID string) error {
	e := m.entry(trialID)
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := m.load(ctx, trialID)
	if err != nil {
		return err
	}
	e.session = s
	m.pub.Publish(events.Event{Topic: events.TopicBoardReloaded, TrialID: trialID})
	return nil
}

func (m *Manager) with(ctx context.Context, trialID string, fn func(*Session) error) error {
	e := m.entry(trialID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		s, err := m.load(ctx, trialID)
		if err != nil {
			return err
		}
		e.session = s
	}
	return fn(e.session)
}

func (m *Manager) entry(trialID string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[trialID]
	if !ok {
		e = &entry{}
		m.sessions[trialID] = e
	}
	return e
}

func (m *Manager) load(ctx context.Context, trialID string) (*Session, error) {
	columns, err := m.store.ListColumns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}
	tasks, err := m.store.ListTasks(ctx, trialID)
	if err != nil {
		return nil, fmt.Errorf("list tasks of trial %s: %w", trialID, err)
	}

	b := New(columns, tasks)
	if orphans := b.Orphans(); len(orphans) > 0 {
		slog.Warn("tasks in unknown columns left off the board", "trial", trialID, "tasks", orphans)
	}
	return NewSession(trialID, b, m.store), nil
}
