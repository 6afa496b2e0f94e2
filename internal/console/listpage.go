package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"booknet/internal/models"
)

// Capabilities is the per-entity operation set a list page is built over.
// DeleteBatch is nil for entities without a bulk-delete endpoint (sources).
type Capabilities[T any] struct {
	FetchPage   func(ctx context.Context, page, size int, filter string) (*models.Page[T], error)
	Delete      func(ctx context.Context, id string) error
	DeleteBatch func(ctx context.Context, ids []string) error
}

// RowSpec describes how rows of T are keyed and printed.
type RowSpec[T any] struct {
	Columns []string
	Row     func(T) []string
	ID      func(T) string
	Name    func(T) string
}

// ListPage is the generic server-paginated table every entity module
// instantiates. Rows are replaced wholesale on every fetch; a response is
// applied only when its fetch generation is the highest seen, so a slow
// earlier request can never overwrite newer data.
type ListPage[T any] struct {
	title    string
	caps     Capabilities[T]
	spec     RowSpec[T]
	dialog   func(existing *T) *EditDialog
	uploader *UploadDialog
	itemPath func(id string) string
	nav      func(path string)

	mu       sync.Mutex
	rows     []T
	rowCount int
	page     int
	pageSize int
	filter   string
	loading  bool
	errMsg   string

	gen      uint64 // next fetch generation
	applied  uint64 // highest generation applied so far
	cancel   context.CancelFunc
	mutating bool

	pendingDelete      string
	pendingDeleteName  string
	pendingDeleteBatch []string

	activeDialog *EditDialog
}

type ListOption[T any] func(*ListPage[T])

// WithDialog wires the create/edit dialog factory. The factory receives the
// row being edited, or nil for create.
func WithDialog[T any](factory func(existing *T) *EditDialog) ListOption[T] {
	return func(p *ListPage[T]) { p.dialog = factory }
}

// WithUploader wires the bulk-import dialog.
func WithUploader[T any](u *UploadDialog) ListOption[T] {
	return func(p *ListPage[T]) { p.uploader = u }
}

// WithItemPath wires the detail route for "open <id>".
func WithItemPath[T any](path func(id string) string, nav func(p string)) ListOption[T] {
	return func(p *ListPage[T]) {
		p.itemPath = path
		p.nav = nav
	}
}

func NewListPage[T any](title string, pageSize int, caps Capabilities[T], spec RowSpec[T], opts ...ListOption[T]) *ListPage[T] {
	p := &ListPage[T]{
		title:    title,
		caps:     caps,
		spec:     spec,
		pageSize: pageSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *ListPage[T]) Title() string {
	return p.title
}

// Open loads the first page and renders it.
func (p *ListPage[T]) Open(ctx context.Context, w io.Writer) {
	p.load(ctx)
	p.Render(w)
}

// Close cancels any in-flight fetch owned by the page.
func (p *ListPage[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// load issues one fetch for the current (page, pageSize, filter). It cancels
// the previous in-flight fetch and tags the new one with a fresh generation.
func (p *ListPage[T]) load(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.gen++
	g := p.gen
	page, size, filter := p.page, p.pageSize, p.filter
	p.loading = true
	p.errMsg = ""
	p.mu.Unlock()

	result, err := p.caps.FetchPage(fetchCtx, page, size, filter)
	p.apply(g, result, err)
}

// apply installs a fetch result, discarding it when a later fetch has already
// been applied.
func (p *ListPage[T]) apply(gen uint64, result *models.Page[T], err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen <= p.applied {
		return
	}
	p.applied = gen
	p.loading = false
	if err != nil {
		p.errMsg = err.Error()
		return
	}
	p.rows = result.Content
	p.rowCount = len(result.Content)
	p.page = result.CurrentPage
	if result.PageSize > 0 {
		p.pageSize = result.PageSize
	}
}

// reload re-fetches the current page after a mutation, stepping back one page
// when the current one came back empty.
func (p *ListPage[T]) reload(ctx context.Context) {
	p.load(ctx)
	p.mu.Lock()
	stepBack := p.errMsg == "" && p.rowCount == 0 && p.page > 0
	if stepBack {
		p.page--
	}
	p.mu.Unlock()
	if stepBack {
		p.load(ctx)
	}
}

// Render prints the loading, error, empty or populated state; each renders
// distinctly, never a silent blank screen.
func (p *ListPage[T]) Render(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(w, "== %s (page %d, size %d", p.title, p.page, p.pageSize)
	if p.filter != "" {
		fmt.Fprintf(w, ", filter %q", p.filter)
	}
	fmt.Fprintln(w, ") ==")

	switch {
	case p.loading:
		fmt.Fprintln(w, "Loading…")
	case p.errMsg != "":
		fmt.Fprintf(w, "! %s\n", p.errMsg)
		fmt.Fprintln(w, "Type refresh to retry.")
	case len(p.rows) == 0:
		fmt.Fprintln(w, "No entries.")
	default:
		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(p.spec.Columns, "\t"))
		for _, row := range p.rows {
			fmt.Fprintln(tw, strings.Join(p.spec.Row(row), "\t"))
		}
		tw.Flush()
		fmt.Fprintf(w, "Total on page: %d\n", p.rowCount)
	}
}

// find returns the row with the given id.
func (p *ListPage[T]) find(id string) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, row := range p.rows {
		if p.spec.ID(row) == id {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// ConsumesInput reports whether a dialog or confirmation is open and must
// see raw input before the shell interprets it.
func (p *ListPage[T]) ConsumesInput() bool {
	if p.activeDialog != nil && p.activeDialog.State() != DialogClosed {
		return true
	}
	if p.uploader != nil && p.uploader.IsOpen() {
		return true
	}
	return p.pendingDelete != "" || p.pendingDeleteBatch != nil
}

// Handle processes one page command. While a dialog is open, input is routed
// to it first.
func (p *ListPage[T]) Handle(ctx context.Context, line string, w io.Writer) bool {
	if p.activeDialog != nil && p.activeDialog.State() != DialogClosed {
		p.activeDialog.Feed(ctx, line, w)
		if p.activeDialog.State() == DialogClosed {
			p.activeDialog = nil
		}
		return true
	}
	if p.uploader != nil && p.uploader.IsOpen() {
		p.uploader.Handle(ctx, line, w)
		return true
	}
	if p.pendingDelete != "" || p.pendingDeleteBatch != nil {
		p.confirmDelete(ctx, line, w)
		return true
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "next":
		p.mu.Lock()
		p.page++
		p.mu.Unlock()
		p.load(ctx)
		p.Render(w)
	case "prev":
		p.mu.Lock()
		if p.page > 0 {
			p.page--
		}
		p.mu.Unlock()
		p.load(ctx)
		p.Render(w)
	case "page":
		n, err := strconv.Atoi(argOr(fields, 1, ""))
		if err != nil || n < 0 {
			fmt.Fprintln(w, "Usage: page <number>")
			return true
		}
		p.mu.Lock()
		p.page = n
		p.mu.Unlock()
		p.load(ctx)
		p.Render(w)
	case "size":
		n, err := strconv.Atoi(argOr(fields, 1, ""))
		if err != nil || n < 1 {
			fmt.Fprintln(w, "Usage: size <number>")
			return true
		}
		p.mu.Lock()
		p.pageSize = n
		p.page = 0
		p.mu.Unlock()
		p.load(ctx)
		p.Render(w)
	case "filter":
		p.mu.Lock()
		p.filter = strings.Join(fields[1:], " ")
		p.page = 0
		p.mu.Unlock()
		p.load(ctx)
		p.Render(w)
	case "refresh":
		p.load(ctx)
		p.Render(w)
	case "add":
		if p.dialog == nil {
			return false
		}
		p.openDialog(ctx, nil, w)
	case "edit":
		if p.dialog == nil {
			return false
		}
		id := argOr(fields, 1, "")
		row, ok := p.find(id)
		if !ok {
			fmt.Fprintf(w, "No row with id %q on this page.\n", id)
			return true
		}
		p.openDialog(ctx, &row, w)
	case "del":
		ids := fields[1:]
		switch {
		case len(ids) == 0:
			fmt.Fprintln(w, "Usage: del <id> [id…]")
		case len(ids) == 1:
			row, ok := p.find(ids[0])
			if !ok {
				fmt.Fprintf(w, "No row with id %q on this page.\n", ids[0])
				return true
			}
			p.pendingDelete = ids[0]
			p.pendingDeleteName = p.spec.Name(row)
			fmt.Fprintf(w, "Delete %q? (y/N): ", p.pendingDeleteName)
		default:
			if p.caps.DeleteBatch == nil {
				fmt.Fprintln(w, "This resource has no batch delete.")
				return true
			}
			p.pendingDeleteBatch = ids
			fmt.Fprintf(w, "Delete %d entries? (y/N): ", len(ids))
		}
	case "open":
		if p.itemPath == nil {
			return false
		}
		id := argOr(fields, 1, "")
		if id == "" {
			fmt.Fprintln(w, "Usage: open <id>")
			return true
		}
		p.nav(p.itemPath(id))
	case "upload":
		if p.uploader == nil {
			return false
		}
		p.uploader.OnUploaded(func() { p.reload(ctx) })
		p.uploader.Open(ctx, w)
	default:
		return false
	}
	return true
}

func (p *ListPage[T]) openDialog(ctx context.Context, existing *T, w io.Writer) {
	p.activeDialog = p.dialog(existing)
	p.activeDialog.OnSaved(func() { p.reload(ctx) })
	p.activeDialog.Render(w)
}

// confirmDelete resolves the interactive confirmation step. Mutations are
// rejected while another one is in flight.
func (p *ListPage[T]) confirmDelete(ctx context.Context, line string, w io.Writer) {
	answer := strings.ToLower(strings.TrimSpace(line))
	id, ids := p.pendingDelete, p.pendingDeleteBatch
	p.pendingDelete = ""
	p.pendingDeleteName = ""
	p.pendingDeleteBatch = nil

	if answer != "y" && answer != "yes" {
		fmt.Fprintln(w, "Not deleted.")
		return
	}

	p.mu.Lock()
	if p.mutating {
		p.mu.Unlock()
		fmt.Fprintln(w, "Another change is still in flight; try again.")
		return
	}
	p.mutating = true
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.mutating = false
		p.mu.Unlock()
	}()

	var err error
	if ids != nil {
		err = p.caps.DeleteBatch(ctx, ids)
	} else {
		err = p.caps.Delete(ctx, id)
	}
	if err != nil {
		fmt.Fprintf(w, "! %s\n", err.Error())
		return
	}
	fmt.Fprintln(w, "✓ Deleted.")
	p.reload(ctx)
	p.Render(w)
}

// Page and PageSize expose the pagination state. Used by tests.
func (p *ListPage[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

func (p *ListPage[T]) PageSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pageSize
}

// RowCount reports the rendered row count.
func (p *ListPage[T]) RowCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rowCount
}

// Err returns the page-level error banner text.
func (p *ListPage[T]) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

func argOr(fields []string, i int, fallback string) string {
	if i < len(fields) {
		return fields[i]
	}
	return fallback
}
