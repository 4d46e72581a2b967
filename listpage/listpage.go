// Package listpage implements the lifecycle every entity page shares: load
// the list (plus its parent collection) on mount, open a prefilled or blank
// form, submit create/update, confirm-then-delete, and reload from the
// backend after every mutation. The list in memory is never patched locally;
// the backend stays the source of truth.
package listpage

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mktrading/backoffice/client"
)

type State int

const (
	Loading State = iota
	Ready
	FormOpen
	DeletePending
)

// Choice is one entry of a parent selector: the only way a foreign key can
// be picked, so the form never offers a dangling reference.
type Choice struct {
	ID    int
	Label string
}

type Config[T any, D any] struct {
	// Path is the collection endpoint, e.g. /api/challans.
	Path string
	// LoadParents fetches the parent collection concurrently with the list.
	// Nil for standalone entities.
	LoadParents func(ctx context.Context, api *client.Client) ([]Choice, error)
	// ParentHint is shown instead of the create action while the parent
	// collection is empty.
	ParentHint string
	NewDraft   func(parents []Choice) D
	EditDraft  func(rec T) D
	DraftID    func(d D) int
	// Payload converts the draft to the request body, applying the page's
	// numeric coercion rules.
	Payload func(d D) interface{}
}

type Controller[T any, D any] struct {
	api      *client.Client
	cfg      Config[T, D]
	state    State
	list     []T
	parents  []Choice
	draft    D
	editing  bool
	deleteID int
	errMsg   string
}

func New[T any, D any](api *client.Client, cfg Config[T, D]) *Controller[T, D] {
	return &Controller[T, D]{api: api, cfg: cfg, state: Loading}
}

// Load fetches the list and, when configured, the parent collection
// concurrently. One failure fails the whole load: nothing fetched is applied
// and the previous list stays as it was.
func (c *Controller[T, D]) Load(ctx context.Context) {
	c.state = Loading
	c.errMsg = ""
	var list []T
	var parents []Choice
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.api.Get(gctx, c.cfg.Path, &list)
	})
	if c.cfg.LoadParents != nil {
		g.Go(func() error {
			var err error
			parents, err = c.cfg.LoadParents(gctx, c.api)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		c.setErr(err)
	} else {
		c.list = list
		c.parents = parents
	}
	c.state = Ready
}

// CanCreate reports whether the create action is available. Pages with a
// parent collection keep it disabled while that collection is empty.
func (c *Controller[T, D]) CanCreate() bool {
	return c.cfg.LoadParents == nil || len(c.parents) > 0
}

// Hint is the message shown while CanCreate is false.
func (c *Controller[T, D]) Hint() string {
	if c.CanCreate() {
		return ""
	}
	return c.cfg.ParentHint
}

func (c *Controller[T, D]) OpenCreate() {
	if c.state != Ready || !c.CanCreate() {
		return
	}
	c.draft = c.cfg.NewDraft(c.parents)
	c.editing = false
	c.state = FormOpen
}

func (c *Controller[T, D]) OpenEdit(rec T) {
	if c.state != Ready {
		return
	}
	c.draft = c.cfg.EditDraft(rec)
	c.editing = true
	c.state = FormOpen
}

// Draft exposes the in-flight form state for editing.
func (c *Controller[T, D]) Draft() *D {
	return &c.draft
}

// Save submits the draft: POST in create mode, PUT by id in edit mode. On
// success the form closes and the list reloads; on failure the form stays
// open with the error inline.
func (c *Controller[T, D]) Save(ctx context.Context) error {
	if c.state != FormOpen {
		return nil
	}
	c.errMsg = ""
	var err error
	if c.editing {
		err = c.api.Put(ctx, fmt.Sprintf("%s/%d", c.cfg.Path, c.cfg.DraftID(c.draft)), c.cfg.Payload(c.draft), nil)
	} else {
		err = c.api.Post(ctx, c.cfg.Path, c.cfg.Payload(c.draft), nil)
	}
	if err != nil {
		c.setErr(err)
		return err
	}
	var zero D
	c.draft = zero
	c.editing = false
	c.Load(ctx)
	return nil
}

// RequestDelete opens the confirmation holding the target id. No network
// call happens until ConfirmDelete.
func (c *Controller[T, D]) RequestDelete(id int) {
	if c.state != Ready {
		return
	}
	c.deleteID = id
	c.state = DeletePending
}

// ConfirmDelete performs the delete. On failure the confirmation stays open
// with the error shown.
func (c *Controller[T, D]) ConfirmDelete(ctx context.Context) error {
	if c.state != DeletePending {
		return nil
	}
	c.errMsg = ""
	if err := c.api.Delete(ctx, fmt.Sprintf("%s/%d", c.cfg.Path, c.deleteID)); err != nil {
		c.setErr(err)
		return err
	}
	c.deleteID = 0
	c.Load(ctx)
	return nil
}

// Cancel discards the draft or the pending delete without a network call.
// It is the release path for the open dialog whatever the exit.
func (c *Controller[T, D]) Cancel() {
	var zero D
	c.draft = zero
	c.editing = false
	c.deleteID = 0
	if c.state == FormOpen || c.state == DeletePending {
		c.state = Ready
	}
}

func (c *Controller[T, D]) List() []T { return c.list }

func (c *Controller[T, D]) Parents() []Choice { return c.parents }

func (c *Controller[T, D]) State() State { return c.state }

func (c *Controller[T, D]) Editing() bool { return c.editing }

func (c *Controller[T, D]) PendingDelete() int { return c.deleteID }

func (c *Controller[T, D]) Err() string { return c.errMsg }

// A 401 means the whole page is being torn down, so it surfaces no inline
// message.
func (c *Controller[T, D]) setErr(err error) {
	if errors.Is(err, client.ErrUnauthorized) {
		return
	}
	c.errMsg = err.Error()
}
