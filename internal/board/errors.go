package board

import "errors"

var (
	// ErrDragInProgress is returned when a gesture starts while another one
	// is still active on the same board.
	ErrDragInProgress = errors.New("drag already in progress")

	// ErrUnknownTask is returned when a gesture starts on a task that is not
	// on the board.
	ErrUnknownTask = errors.New("task not on board")
)
