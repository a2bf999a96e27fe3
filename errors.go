package entigo

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrClosed is returned when operating on a closed world.
	ErrClosed = errors.New("world is closed")
)

// ErrAlreadyRegistered indicates a component type was registered twice.
// The storage backend binding is fixed at first registration and never
// changes for that type.
type ErrAlreadyRegistered struct {
	Type reflect.Type
}

func (e *ErrAlreadyRegistered) Error() string {
	return fmt.Sprintf("component type already registered: %s", e.Type)
}

// ErrNotRegistered indicates a component type was accessed before being
// registered.
type ErrNotRegistered struct {
	Type reflect.Type
}

func (e *ErrNotRegistered) Error() string {
	return fmt.Sprintf("component type not registered: %s", e.Type)
}
