package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"booknet/internal/api"
)

// DetailPage is the generic single-entity view. A 404 from the server is
// rendered as a page-level "Not found" state rather than an error banner.
type DetailPage[T any] struct {
	title  string
	id     string
	fetch  func(ctx context.Context, id string) (*T, error)
	render func(w io.Writer, item *T)
	dialog func(existing *T) *EditDialog

	delete func(ctx context.Context, id string) error
	back   func()

	item          *T
	notFound      bool
	errMsg        string
	pendingDelete bool

	activeDialog *EditDialog
}

type DetailOption[T any] func(*DetailPage[T])

// WithDelete wires the entity's delete call and the navigation back to the
// list once the entity is gone.
func WithDelete[T any](del func(ctx context.Context, id string) error, back func()) DetailOption[T] {
	return func(p *DetailPage[T]) {
		p.delete = del
		p.back = back
	}
}

func NewDetailPage[T any](title, id string,
	fetch func(ctx context.Context, id string) (*T, error),
	render func(w io.Writer, item *T),
	dialog func(existing *T) *EditDialog,
	opts ...DetailOption[T],
) *DetailPage[T] {
	p := &DetailPage[T]{title: title, id: id, fetch: fetch, render: render, dialog: dialog}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *DetailPage[T]) Title() string {
	return p.title
}

func (p *DetailPage[T]) Open(ctx context.Context, w io.Writer) {
	p.load(ctx)
	p.Render(w)
}

func (p *DetailPage[T]) Close() {}

func (p *DetailPage[T]) load(ctx context.Context) {
	p.notFound = false
	p.errMsg = ""
	item, err := p.fetch(ctx, p.id)
	if err != nil {
		if api.IsNotFound(err) {
			p.notFound = true
		} else {
			p.errMsg = err.Error()
		}
		p.item = nil
		return
	}
	p.item = item
}

func (p *DetailPage[T]) Render(w io.Writer) {
	fmt.Fprintf(w, "== %s %s ==\n", p.title, p.id)
	switch {
	case p.notFound:
		fmt.Fprintln(w, "Not found.")
	case p.errMsg != "":
		fmt.Fprintf(w, "! %s\n", p.errMsg)
		fmt.Fprintln(w, "Type refresh to retry.")
	case p.item == nil:
		fmt.Fprintln(w, "Loading…")
	default:
		p.render(w, p.item)
	}
}

// ConsumesInput reports whether the edit dialog or a delete confirmation is
// open.
func (p *DetailPage[T]) ConsumesInput() bool {
	if p.activeDialog != nil && p.activeDialog.State() != DialogClosed {
		return true
	}
	return p.pendingDelete
}

func (p *DetailPage[T]) Handle(ctx context.Context, line string, w io.Writer) bool {
	if p.activeDialog != nil && p.activeDialog.State() != DialogClosed {
		p.activeDialog.Feed(ctx, line, w)
		if p.activeDialog.State() == DialogClosed {
			p.activeDialog = nil
		}
		return true
	}
	if p.pendingDelete {
		p.confirmDelete(ctx, line, w)
		return true
	}

	switch strings.TrimSpace(line) {
	case "refresh":
		p.load(ctx)
		p.Render(w)
	case "edit":
		if p.dialog == nil || p.item == nil {
			return false
		}
		p.activeDialog = p.dialog(p.item)
		p.activeDialog.OnSaved(func() {
			p.load(ctx)
		})
		p.activeDialog.Render(w)
	case "del":
		if p.delete == nil || p.item == nil {
			return false
		}
		p.pendingDelete = true
		fmt.Fprintf(w, "Delete %s %q? (y/N): ", strings.ToLower(p.title), p.id)
	default:
		return false
	}
	return true
}

// confirmDelete resolves the confirmation step; on success the page navigates
// back to the entity's list.
func (p *DetailPage[T]) confirmDelete(ctx context.Context, line string, w io.Writer) {
	p.pendingDelete = false
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer != "y" && answer != "yes" {
		fmt.Fprintln(w, "Not deleted.")
		return
	}

	if err := p.delete(ctx, p.id); err != nil {
		fmt.Fprintf(w, "! %s\n", err.Error())
		return
	}
	fmt.Fprintln(w, "✓ Deleted.")
	if p.back != nil {
		p.back()
	}
}

// NotFound reports whether the last fetch answered 404. Used by tests.
func (p *DetailPage[T]) NotFound() bool {
	return p.notFound
}
