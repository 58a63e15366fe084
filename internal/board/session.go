package board

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// PlaceholderID is the pointer target id of the preview slot shown while a
// card is dragged. It never names a real task.
const PlaceholderID = "__placeholder__"

type State int

const (
	Idle State = iota
	Dragging
	DraggingOver
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case DraggingOver:
		return "dragging_over"
	default:
		return "idle"
	}
}

// Target is a resolved drop position.
type Target struct {
	ColumnID string `json:"column_id"`
	Index    int    `json:"index"`
	OnColumn bool   `json:"on_column"`
}

type Outcome string

const (
	OutcomeNoOp      Outcome = "noop"
	OutcomeReordered Outcome = "reordered"
	OutcomeMoved     Outcome = "moved"
)

// Result describes what a drop did to the board.
type Result struct {
	Outcome    Outcome `json:"outcome"`
	TaskID     string  `json:"task_id,omitempty"`
	FromColumn string  `json:"from_column,omitempty"`
	ToColumn   string  `json:"to_column,omitempty"`
	FromIndex  int     `json:"from_index"`
	ToIndex    int     `json:"to_index"`
}

// Item is one rendered slot of a preview lane.
type Item struct {
	TaskID      string `json:"task_id,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

func (i Item) Clickable() bool { return !i.Placeholder }

type PreviewLane struct {
	ColumnID string `json:"column_id"`
	Items    []Item `json:"items"`
	Count    int    `json:"count"`
}

// Preview is the live, uncommitted rendering of the board during a drag.
type Preview struct {
	State  string        `json:"state"`
	Active string        `json:"active,omitempty"`
	Over   *Target       `json:"over,omitempty"`
	Lanes  []PreviewLane `json:"lanes"`
}

// Session runs drag gestures against one board. It is not safe for
// concurrent use; Manager serializes access per trial.
type Session struct {
	trialID string
	board   *Board
	store   Store

	state  State
	active string
	over   *Target
}

func NewSession(trialID string, b *Board, store Store) *Session {
	return &Session{trialID: trialID, board: b, store: store}
}

func (s *Session) Board() *Board  { return s.board }
func (s *Session) State() State   { return s.state }
func (s *Session) Active() string { return s.active }

// BeginDrag starts a gesture on a task.
func (s *Session) BeginDrag(taskID string) error {
	if s.state != Idle {
		return fmt.Errorf("begin %s while dragging %s: %w", taskID, s.active, ErrDragInProgress)
	}
	if _, _, ok := s.board.Locate(taskID); !ok {
		return fmt.Errorf("begin %s: %w", taskID, ErrUnknownTask)
	}
	s.state = Dragging
	s.active = taskID
	s.over = nil
	return nil
}

// UpdateDragTarget records where the pointer currently is. An unresolvable
// target clears the drop position but keeps the gesture alive.
func (s *Session) UpdateDragTarget(targetID string) Preview {
	if s.state == Idle {
		return s.Preview()
	}
	if t, ok := s.resolve(targetID); ok {
		s.over = &t
		s.state = DraggingOver
	} else {
		s.over = nil
		s.state = Dragging
	}
	return s.Preview()
}

// EndDrag commits the gesture. Moves across columns are written through the
// store; a failed write reverts the board and returns the error. Reorders
// inside a column stay local to the session.
func (s *Session) EndDrag(ctx context.Context, targetID string) (Result, error) {
	if s.state == Idle {
		return Result{Outcome: OutcomeNoOp}, nil
	}
	defer s.reset()

	active := s.active
	from, fromIdx, ok := s.board.Locate(active)
	if !ok {
		return Result{Outcome: OutcomeNoOp}, nil
	}
	noop := Result{Outcome: OutcomeNoOp, TaskID: active, FromColumn: from, FromIndex: fromIdx, ToIndex: fromIdx}

	target, ok := s.resolve(targetID)
	if !ok {
		return noop, nil
	}

	if target.ColumnID == from {
		if target.Index < 0 || target.Index == fromIdx {
			return noop, nil
		}
		s.board.reorder(from, fromIdx, target.Index)
		return Result{
			Outcome:    OutcomeReordered,
			TaskID:     active,
			FromColumn: from,
			ToColumn:   from,
			FromIndex:  fromIdx,
			ToIndex:    target.Index,
		}, nil
	}

	prev := s.board.clone()
	s.board.move(active, from, target.ColumnID, target.Index)
	_, toIdx, _ := s.board.Locate(active)

	if err := s.store.ReplaceTasks(ctx, s.trialID, s.board.Tasks()); err != nil {
		s.board = prev
		slog.Warn("move reverted", "trial", s.trialID, "task", active, "error", err)
		return noop, fmt.Errorf("persist move of task %s: %w", active, err)
	}

	return Result{
		Outcome:    OutcomeMoved,
		TaskID:     active,
		FromColumn: from,
		ToColumn:   target.ColumnID,
		FromIndex:  fromIdx,
		ToIndex:    toIdx,
	}, nil
}

// CancelDrag drops any gesture state. Safe to call in any state.
func (s *Session) CancelDrag() {
	s.reset()
}

// Preview renders the board as it should look right now: the dragged card
// is lifted out of its column and a single placeholder marks the drop slot.
func (s *Session) Preview() Preview {
	p := Preview{State: s.state.String(), Active: s.active}
	if s.over != nil {
		over := *s.over
		p.Over = &over
	}
	counts := s.board.Counts()
	for _, c := range s.board.columns {
		ids := s.board.order[c.ID]
		items := make([]Item, 0, len(ids)+1)
		for _, id := range ids {
			if s.state != Idle && id == s.active {
				continue
			}
			items = append(items, Item{TaskID: id})
		}
		if s.over != nil && s.over.ColumnID == c.ID {
			at := min(max(s.over.Index, 0), len(items))
			items = slices.Insert(items, at, Item{Placeholder: true})
		}
		p.Lanes = append(p.Lanes, PreviewLane{ColumnID: c.ID, Items: items, Count: counts[c.ID]})
	}
	return p
}

// resolve maps a pointer target to a drop position: a column id first, then
// the column of a hovered task. The placeholder resolves to wherever it
// already is.
func (s *Session) resolve(targetID string) (Target, bool) {
	switch {
	case targetID == "":
		return Target{}, false
	case targetID == PlaceholderID:
		if s.over == nil {
			return Target{}, false
		}
		return *s.over, true
	case s.board.HasColumn(targetID):
		end := len(s.board.order[targetID])
		if slices.Contains(s.board.order[targetID], s.active) {
			end--
		}
		return Target{ColumnID: targetID, Index: end, OnColumn: true}, true
	}
	if col, idx, ok := s.board.Locate(targetID); ok {
		return Target{ColumnID: col, Index: idx}, true
	}
	return Target{}, false
}

func (s *Session) reset() {
	s.state = Idle
	s.active = ""
	s.over = nil
}
