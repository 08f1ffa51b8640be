package audit

import "errors"

var (
	ErrLogNotFound   = errors.New("audit log not found")
	ErrAlreadyUndone = errors.New("this change has already been reverted")
	ErrNotUndoable   = errors.New("this action cannot be reverted")
)
