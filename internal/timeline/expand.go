package timeline

import (
	"slices"
	"sync"
)

// ExpandState tracks which nodes are collapsed. Nodes are open unless
// collapsed; the state never touches task data.
type ExpandState struct {
	mu     sync.RWMutex
	closed map[string]bool
}

func NewExpandState() *ExpandState {
	return &ExpandState{closed: make(map[string]bool)}
}

func (e *ExpandState) IsOpen(id string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return !e.closed[id]
}

func (e *ExpandState) SetOpen(id string, open bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if open {
		delete(e.closed, id)
	} else {
		e.closed[id] = true
	}
}

// Toggle flips a node and returns whether it is now open.
func (e *ExpandState) Toggle(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed[id] {
		delete(e.closed, id)
		return true
	}
	e.closed[id] = true
	return false
}

// Collapsed lists the collapsed node ids in sorted order.
func (e *ExpandState) Collapsed() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := make([]string, 0, len(e.closed))
	for id := range e.closed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// VisibleNodes flattens the forest into rows, hiding the subtree of every
// collapsed node.
func VisibleNodes(roots []*Node, state *ExpandState) []*Node {
	var rows []*Node
	Walk(roots, func(n *Node) bool {
		rows = append(rows, n)
		return state == nil || state.IsOpen(n.Task.ID)
	})
	return rows
}

// Views holds the expand state of each trial's timeline.
type Views struct {
	mu     sync.Mutex
	states map[string]*ExpandState
}

func NewViews() *Views {
	return &Views{states: make(map[string]*ExpandState)}
}

func (v *Views) For(trialID string) *ExpandState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s, ok := v.states[trialID]
	if !ok {
		s = NewExpandState()
		v.states[trialID] = s
	}
	return s
}
