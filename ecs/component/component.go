package component

import (
	"errors"
	"reflect"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var nextComponentID atomic.Uint32

// Kind is the untyped view of a ComponentKind, used by multi-kind queries.
type Kind interface {
	ID() ComponentID
	Valid() bool
	Name() string
}

// ComponentKind identifies the storage for values of type T. The zero value
// is invalid; kinds come from NewComponent.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// Name is the Go type name of T, for logs and errors.
func (k ComponentKind[T]) Name() string {
	if k.name == "" {
		return "invalid"
	}
	return k.name
}

// ComponentHandle is what each component file exports, for example
// TransformComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers a new kind for T. Every call yields a distinct
// kind, so two handles of the same type never share storage.
func NewComponent[T any]() ComponentHandle[T] {
	id := ComponentID(nextComponentID.Add(1))
	return ComponentHandle[T]{kind: ComponentKind[T]{id: id, name: reflect.TypeFor[T]().String()}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
