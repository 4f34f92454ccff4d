package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrColumnFull       = errors.New("column is full")
	ErrColumnOutOfRange = errors.New("column index out of range")
)
