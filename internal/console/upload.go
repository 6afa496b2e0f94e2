package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"booknet/internal/models"
)

// UploadFunc issues the multipart import request for one source and file.
type UploadFunc func(ctx context.Context, sourceID, filename string, file io.Reader) (string, error)

// UploadDialog is the generic bulk-import dialog. It is parameterized over
// its title, the label used for the source selector, the accepted file
// extensions and the upload function, so the author and genre pages share it.
type UploadDialog struct {
	title       string
	sourceLabel string
	accept      []string

	fetchSources func(ctx context.Context) ([]models.Source, error)
	upload       UploadFunc
	onUploaded   func()

	open     bool
	sources  []models.Source
	selected *models.Source
	filePath string
	busy     bool
	errMsg   string

	// openFile is a seam for tests; defaults to os.Open.
	openFile func(name string) (io.ReadCloser, error)
}

func NewUploadDialog(title, sourceLabel string, accept []string, fetchSources func(ctx context.Context) ([]models.Source, error), upload UploadFunc) *UploadDialog {
	return &UploadDialog{
		title:        title,
		sourceLabel:  sourceLabel,
		accept:       accept,
		fetchSources: fetchSources,
		upload:       upload,
		openFile: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

func (d *UploadDialog) OnUploaded(fn func()) {
	d.onUploaded = fn
}

// Open resets the dialog and fetches the source list.
func (d *UploadDialog) Open(ctx context.Context, w io.Writer) {
	d.open = true
	d.selected = nil
	d.filePath = ""
	d.busy = false
	d.errMsg = ""

	sources, err := d.fetchSources(ctx)
	if err != nil {
		d.errMsg = fmt.Sprintf("failed to load %ss: %v", strings.ToLower(d.sourceLabel), err)
		d.sources = nil
	} else {
		d.sources = sources
	}
	d.Render(w)
}

func (d *UploadDialog) IsOpen() bool {
	return d.open
}

// CanSubmit reports whether both a source and an acceptable file are chosen.
// The upload action stays disabled until this holds.
func (d *UploadDialog) CanSubmit() bool {
	return d.selected != nil && d.filePath != "" && !d.busy
}

func (d *UploadDialog) accepts(name string) bool {
	if len(d.accept) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range d.accept {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}

func (d *UploadDialog) Render(w io.Writer) {
	if !d.open {
		return
	}
	fmt.Fprintf(w, "-- %s --\n", d.title)
	if d.errMsg != "" {
		fmt.Fprintf(w, "! %s\n", d.errMsg)
	}
	for i, s := range d.sources {
		marker := " "
		if d.selected != nil && d.selected.ID == s.ID {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %d) %s\n", marker, i+1, s.Name)
	}
	if d.filePath != "" {
		fmt.Fprintf(w, "File: %s\n", d.filePath)
	} else {
		fmt.Fprintln(w, "File: (none)")
	}
	fmt.Fprintf(w, "Commands: source <n>, file <path>, upload, cancel (accepted: %s)\n", strings.Join(d.accept, " "))
}

// Handle consumes one input line while the dialog is open.
func (d *UploadDialog) Handle(ctx context.Context, line string, w io.Writer) {
	if !d.open {
		return
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		d.Render(w)
		return
	}

	switch fields[0] {
	case "cancel":
		d.open = false
		fmt.Fprintln(w, "Cancelled.")
	case "source":
		if len(fields) < 2 {
			fmt.Fprintf(w, "Usage: source <number>\n")
			return
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 || n > len(d.sources) {
			fmt.Fprintf(w, "No %s numbered %q.\n", strings.ToLower(d.sourceLabel), fields[1])
			return
		}
		d.selected = &d.sources[n-1]
		d.Render(w)
	case "file":
		if len(fields) < 2 {
			fmt.Fprintln(w, "Usage: file <path>")
			return
		}
		path := strings.Join(fields[1:], " ")
		if !d.accepts(path) {
			fmt.Fprintf(w, "File type not accepted (want %s).\n", strings.Join(d.accept, " "))
			return
		}
		d.filePath = path
		d.Render(w)
	case "upload":
		d.submit(ctx, w)
	default:
		fmt.Fprintf(w, "Unknown dialog command %q.\n", fields[0])
	}
}

func (d *UploadDialog) submit(ctx context.Context, w io.Writer) {
	if !d.CanSubmit() {
		fmt.Fprintf(w, "Select a %s and choose a file first.\n", strings.ToLower(d.sourceLabel))
		return
	}
	d.busy = true
	defer func() { d.busy = false }()

	file, err := d.openFile(d.filePath)
	if err != nil {
		d.errMsg = fmt.Sprintf("cannot open file: %v", err)
		d.Render(w)
		return
	}
	defer file.Close()

	result, err := d.upload(ctx, d.selected.ID, filepath.Base(d.filePath), file)
	if err != nil {
		// Failure keeps the dialog open with an inline error.
		d.errMsg = err.Error()
		d.Render(w)
		return
	}

	d.open = false
	d.errMsg = ""
	if result != "" {
		fmt.Fprintf(w, "✓ Upload accepted: %s\n", result)
	} else {
		fmt.Fprintln(w, "✓ Upload accepted.")
	}
	if d.onUploaded != nil {
		d.onUploaded()
	}
}

// Error returns the current inline error message.
func (d *UploadDialog) Error() string {
	return d.errMsg
}
