// Package collection implements the editable-collection workflow shared by
// every admin surface: one authoritative in-memory list per mounted page, a
// single open draft with copy-on-edit isolation, and mutations mediated
// through a collection client.
//
// A Controller is owned by exactly one caller at a time (the single-operator
// editing model); it is not safe for concurrent use.
package collection

import (
	"context"
	"encoding/json"
	"fmt"

	appErr "github.com/HakimZ78/devhakim-api/pkg/errors"
)

// API is the collection client surface the controller mutates through.
// *client.Collection[T] satisfies it.
type API[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, entity T) (T, error)
	Remove(ctx context.Context, id string) error
}

// OrderSwapper is implemented by clients whose store offers an atomic order
// swap. When absent, Reorder falls back to two updates with a compensating
// rollback.
type OrderSwapper interface {
	SwapOrder(ctx context.Context, a, b string) error
}

// Descriptor parameterizes a Controller over one entity type: its
// empty-value template, identity and order accessors, and required-field
// validator.
type Descriptor[T any] struct {
	// Empty returns the template for a new draft.
	Empty func() T
	// ID returns the identity field; empty string means unsaved.
	ID func(T) string
	// OrderIndex / SetOrderIndex access the display-order field.
	OrderIndex    func(T) int
	SetOrderIndex func(*T, int)
	// Validate enforces required fields before any save is dispatched.
	Validate func(T) error
	// Clone produces the value copy used for copy-on-edit. When nil, a JSON
	// round-trip deep copy is used.
	Clone func(T) T
}

// State is the controller's lifecycle position.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateEditing
)

// StatusKind styles the dismissible banner above the list.
type StatusKind int

const (
	StatusSuccess StatusKind = iota
	StatusError
)

type Status struct {
	Kind    StatusKind
	Message string
}

// Controller owns the authoritative in-memory copy of one collection and
// mediates every mutation through it.
type Controller[T any] struct {
	api  API[T]
	desc Descriptor[T]

	state        State
	items        []T
	draft        *T
	armedDelete  string
	status       *Status
}

func NewController[T any](api API[T], desc Descriptor[T]) (*Controller[T], error) {
	if api == nil {
		return nil, appErr.New(appErr.CodeInvalid, "controller requires an api")
	}
	if desc.Empty == nil || desc.ID == nil || desc.Validate == nil {
		return nil, appErr.New(appErr.CodeInvalid, "descriptor requires Empty, ID and Validate")
	}
	if desc.Clone == nil {
		desc.Clone = jsonClone[T]
	}
	return &Controller[T]{api: api, desc: desc, state: StateIdle}, nil
}

func jsonClone[T any](v T) T {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("collection: clone marshal: %v", err))
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		panic(fmt.Sprintf("collection: clone unmarshal: %v", err))
	}
	return out
}

// State returns the controller's current lifecycle position.
func (c *Controller[T]) State() State { return c.state }

// Items returns the in-memory list. Callers must not mutate entries; edits go
// through StartEdit/Save.
func (c *Controller[T]) Items() []T { return c.items }

// Draft returns the open draft, or nil when none is being edited.
func (c *Controller[T]) Draft() *T { return c.draft }

// Status returns the last banner message, or nil after dismissal.
func (c *Controller[T]) Status() *Status { return c.status }

// DismissStatus clears the banner.
func (c *Controller[T]) DismissStatus() { c.status = nil }

func (c *Controller[T]) fail(format string, args ...any) {
	c.status = &Status{Kind: StatusError, Message: fmt.Sprintf(format, args...)}
}

func (c *Controller[T]) ok(format string, args ...any) {
	c.status = &Status{Kind: StatusSuccess, Message: fmt.Sprintf(format, args...)}
}

// Load fetches the collection. On failure the list is left empty and the
// error surfaces on the banner; the error is also returned for callers that
// want to abort.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.state = StateLoading
	items, err := c.api.List(ctx)
	c.state = StateLoaded
	if err != nil {
		c.items = []T{}
		c.fail("%s", appErr.Message(err))
		return err
	}
	c.items = items
	return nil
}

// StartCreate opens a draft from the empty-value template, with order_index
// defaulted to len+1.
func (c *Controller[T]) StartCreate() *T {
	draft := c.desc.Empty()
	if c.desc.SetOrderIndex != nil {
		c.desc.SetOrderIndex(&draft, len(c.items)+1)
	}
	c.draft = &draft
	c.state = StateEditing
	return c.draft
}

// StartEdit opens a draft that is a value copy of the given entity. Mutating
// the draft never touches the list entry until Save succeeds.
func (c *Controller[T]) StartEdit(entity T) *T {
	draft := c.desc.Clone(entity)
	c.draft = &draft
	c.state = StateEditing
	return c.draft
}

// CancelEdit discards the draft, leaving the list exactly as it was.
func (c *Controller[T]) CancelEdit() {
	c.draft = nil
	if c.state == StateEditing {
		c.state = StateLoaded
	}
}

// Save validates the draft and dispatches create or update based on identity
// presence. Validation failure never reaches the network. The draft closes
// only on success; on failure the list is untouched and the error surfaces
// on the banner.
func (c *Controller[T]) Save(ctx context.Context) error {
	if c.draft == nil {
		return appErr.New(appErr.CodeInvalid, "no draft open")
	}
	if err := c.desc.Validate(*c.draft); err != nil {
		c.fail("%s", appErr.Message(err))
		return err
	}

	if c.desc.ID(*c.draft) == "" {
		saved, err := c.api.Create(ctx, *c.draft)
		if err != nil {
			c.fail("%s", appErr.Message(err))
			return err
		}
		c.items = append(c.items, saved)
		c.draft = nil
		c.state = StateLoaded
		c.ok("created")
		return nil
	}

	saved, err := c.api.Update(ctx, *c.draft)
	if err != nil {
		c.fail("%s", appErr.Message(err))
		return err
	}
	id := c.desc.ID(saved)
	for i := range c.items {
		if c.desc.ID(c.items[i]) == id {
			c.items[i] = saved
			break
		}
	}
	c.draft = nil
	c.state = StateLoaded
	c.ok("saved")
	return nil
}

// ConfirmDelete arms deletion of one id. Delete refuses to dispatch until
// the same id has been armed; this is the explicit confirmation step for an
// irreversible action.
func (c *Controller[T]) ConfirmDelete(id string) { c.armedDelete = id }

// Delete removes the armed entry. On success exactly one entry leaves the
// list and all others keep their relative order; on failure the list is
// untouched.
func (c *Controller[T]) Delete(ctx context.Context, id string) error {
	if c.armedDelete != id {
		return appErr.New(appErr.CodeInvalid, "delete not confirmed")
	}
	c.armedDelete = ""

	if err := c.api.Remove(ctx, id); err != nil {
		c.fail("%s", appErr.Message(err))
		return err
	}
	kept := c.items[:0:0]
	for _, it := range c.items {
		if c.desc.ID(it) != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.ok("deleted")
	return nil
}

// Reorder swaps the entries at positions i and j. When the client offers an
// atomic server-side swap it is used; otherwise two updates are issued and
// the first is compensated if the second fails, so a half-applied swap never
// survives in the store.
func (c *Controller[T]) Reorder(ctx context.Context, i, j int) error {
	if i < 0 || j < 0 || i >= len(c.items) || j >= len(c.items) || i == j {
		return appErr.New(appErr.CodeInvalid, "reorder positions out of range")
	}
	if c.desc.OrderIndex == nil || c.desc.SetOrderIndex == nil {
		return appErr.New(appErr.CodeInvalid, "collection has no display order")
	}

	a, b := c.items[i], c.items[j]

	if swapper, ok := c.api.(OrderSwapper); ok {
		if err := swapper.SwapOrder(ctx, c.desc.ID(a), c.desc.ID(b)); err != nil {
			c.fail("%s", appErr.Message(err))
			return err
		}
		c.commitSwap(i, j)
		return nil
	}

	// No atomic swap available: exchange order_index via two updates.
	aNew, bNew := c.desc.Clone(a), c.desc.Clone(b)
	c.desc.SetOrderIndex(&aNew, c.desc.OrderIndex(b))
	c.desc.SetOrderIndex(&bNew, c.desc.OrderIndex(a))

	if _, err := c.api.Update(ctx, aNew); err != nil {
		c.fail("%s", appErr.Message(err))
		return err
	}
	if _, err := c.api.Update(ctx, bNew); err != nil {
		// Compensate the first write; if the revert itself fails the store
		// stays inconsistent until a refresh, which the banner reports.
		if _, revertErr := c.api.Update(ctx, a); revertErr != nil {
			c.fail("reorder failed and rollback failed; refresh to reconcile")
			return err
		}
		c.fail("%s", appErr.Message(err))
		return err
	}
	c.commitSwap(i, j)
	return nil
}

func (c *Controller[T]) commitSwap(i, j int) {
	oi, oj := c.desc.OrderIndex(c.items[i]), c.desc.OrderIndex(c.items[j])
	c.desc.SetOrderIndex(&c.items[i], oj)
	c.desc.SetOrderIndex(&c.items[j], oi)
	c.items[i], c.items[j] = c.items[j], c.items[i]
}
