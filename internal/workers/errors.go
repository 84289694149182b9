package workers

import "errors"

var (
	ErrWorkerPanicked = errors.New("worker panicked")
	ErrWatchOverrides = errors.New("cannot watch override files")
)
