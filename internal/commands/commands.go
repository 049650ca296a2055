// Package commands maps the table's user commands to handlers. A handler
// receives the current model, the store and the user's input, and returns the
// next model plus the effects the caller must apply.
package commands

import (
	"context"
	"errors"
	"fmt"

	"gpumanager/internal/entries"
	"gpumanager/internal/events"
	"gpumanager/internal/repositories"
)

type Name string

const (
	Load    Name = "load"
	Refresh Name = "refresh"
	Add     Name = "add"
	Delete  Name = "delete"
	Apply   Name = "apply"
	Select  Name = "select"
	Exit    Name = "exit"
)

var ErrUnknownCommand = errors.New("unknown command")

// NoSelection is the Row value when the user has not selected a row.
const NoSelection = -1

// Input carries what the user supplied with a command.
type Input struct {
	// Path is the executable chosen for Add, empty when the dialog was cancelled.
	Path string
	// Row is the table index for Delete and Select.
	Row int
	// Label is the selector text for Select.
	Label string
}

// Effect is a side effect requested by a handler.
type Effect interface {
	isEffect()
}

// Notify shows a message to the user.
type Notify struct {
	Type    events.EventType
	Title   string
	Message string
}

// Log records a message without bothering the user.
type Log struct {
	Type    events.EventType
	Message string
}

// Quit ends the process.
type Quit struct{}

func (Notify) isEffect() {}
func (Log) isEffect()    {}
func (Quit) isEffect()   {}

type Handler func(ctx context.Context, m entries.Model, store repositories.GpuPreferenceRepository, in Input) (entries.Model, []Effect)

// Dispatcher routes a fixed set of named commands.
type Dispatcher struct {
	handlers map[Name]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: map[Name]Handler{
		Load:    load,
		Refresh: load,
		Add:     add,
		Delete:  remove,
		Apply:   apply,
		Select:  selectPreference,
		Exit:    exit,
	}}
}

// Dispatch runs the handler registered for name.
func (d *Dispatcher) Dispatch(ctx context.Context, name Name, m entries.Model, store repositories.GpuPreferenceRepository, in Input) (entries.Model, []Effect, error) {
	h, ok := d.handlers[name]
	if !ok {
		return m, nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	next, effects := h(ctx, m, store, in)
	return next, effects, nil
}
