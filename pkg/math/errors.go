package math

import "errors"

var (
	// ErrArgumentCount is returned when a constructor receives the wrong number of values.
	ErrArgumentCount = errors.New("wrong argument count")
	// ErrIndexOutOfRange is the panic payload of Row and Col for an invalid index.
	ErrIndexOutOfRange = errors.New("index out of range")
)
