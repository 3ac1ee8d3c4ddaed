package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrTaskNotFound   = fmt.Errorf("task not found")
	ErrTaskExists     = fmt.Errorf("task already registered")
	ErrTaskTerminal   = fmt.Errorf("task already in a terminal status")
	ErrUserNotFound   = fmt.Errorf("user not found")
	ErrNotInRoom      = fmt.Errorf("user has not joined a room")
	ErrQueueSaturated = fmt.Errorf("processing queue saturated")
)
