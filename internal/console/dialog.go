package console

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// DialogState tracks the edit dialog lifecycle:
// Closed -> Open(prompting) -> Saving -> Closed on success, or back to Open
// with an inline error on failure.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogOpen
	DialogSaving
)

// Field is one prompted form field.
type Field struct {
	Name     string
	Label    string
	Required bool
	Value    string
	err      string
}

// EditDialog is the generic create/edit form shared by every entity page.
// It prompts field by field; validation is synchronous and local, and a
// failing required field never reaches the network.
type EditDialog struct {
	title   string
	fields  []Field
	state   DialogState
	idx     int
	editing bool
	errMsg  string

	// save issues the create or update call with the trimmed field values.
	save    func(ctx context.Context, values map[string]string) error
	onSaved func()
}

// NewEditDialog builds a dialog over the given fields. fields are prompted in
// order; save receives a name->trimmed-value map.
func NewEditDialog(title string, fields []Field, save func(ctx context.Context, values map[string]string) error) *EditDialog {
	return &EditDialog{title: title, fields: fields, save: save}
}

// OnSaved registers the parent's reload signal.
func (d *EditDialog) OnSaved(fn func()) {
	d.onSaved = fn
}

// Open resets the form. initial carries the existing record's values when
// editing; a nil map means create with empty defaults.
func (d *EditDialog) Open(initial map[string]string) {
	d.editing = initial != nil
	d.state = DialogOpen
	d.idx = 0
	d.errMsg = ""
	for i := range d.fields {
		d.fields[i].Value = initial[d.fields[i].Name]
		d.fields[i].err = ""
	}
}

func (d *EditDialog) State() DialogState {
	return d.state
}

func (d *EditDialog) Editing() bool {
	return d.editing
}

// Render prints the prompt for the current field, or the pending error.
func (d *EditDialog) Render(w io.Writer) {
	if d.state == DialogClosed {
		return
	}
	if d.errMsg != "" {
		fmt.Fprintf(w, "! %s\n", d.errMsg)
	}
	f := d.fields[d.idx]
	if f.err != "" {
		fmt.Fprintf(w, "! %s\n", f.err)
	}
	if f.Value != "" {
		fmt.Fprintf(w, "%s [%s]: ", f.Label, f.Value)
	} else {
		fmt.Fprintf(w, "%s: ", f.Label)
	}
}

// Feed consumes one input line for the current field. An empty line keeps the
// existing value. "cancel" aborts the dialog. After the last field the form is
// validated and, only if valid, submitted.
func (d *EditDialog) Feed(ctx context.Context, line string, w io.Writer) {
	if d.state != DialogOpen {
		return
	}
	if strings.TrimSpace(line) == "cancel" {
		d.state = DialogClosed
		fmt.Fprintln(w, "Cancelled.")
		return
	}

	if trimmed := strings.TrimSpace(line); trimmed != "" {
		d.fields[d.idx].Value = trimmed
	}
	d.fields[d.idx].err = ""
	d.idx++
	if d.idx < len(d.fields) {
		d.Render(w)
		return
	}
	d.submit(ctx, w)
}

func (d *EditDialog) validate() bool {
	ok := true
	for i := range d.fields {
		f := &d.fields[i]
		if f.Required && strings.TrimSpace(f.Value) == "" {
			f.err = fmt.Sprintf("%s is required", f.Label)
			if ok {
				d.idx = i
			}
			ok = false
		}
	}
	return ok
}

func (d *EditDialog) submit(ctx context.Context, w io.Writer) {
	if !d.validate() {
		// Stay open on the offending field; no network call is made.
		d.Render(w)
		return
	}
	if d.state == DialogSaving {
		return
	}
	d.state = DialogSaving

	values := make(map[string]string, len(d.fields))
	for _, f := range d.fields {
		values[f.Name] = strings.TrimSpace(f.Value)
	}
	if err := d.save(ctx, values); err != nil {
		// Keep the dialog open; the whole error is shown as one message.
		d.state = DialogOpen
		d.idx = 0
		d.errMsg = err.Error()
		d.Render(w)
		return
	}

	d.state = DialogClosed
	fmt.Fprintln(w, "✓ Saved.")
	if d.onSaved != nil {
		d.onSaved()
	}
}

// Values returns the current trimmed field values. Used by tests.
func (d *EditDialog) Values() map[string]string {
	values := make(map[string]string, len(d.fields))
	for _, f := range d.fields {
		values[f.Name] = strings.TrimSpace(f.Value)
	}
	return values
}

// FieldError returns the validation message attached to the named field.
func (d *EditDialog) FieldError(name string) string {
	for _, f := range d.fields {
		if f.Name == name {
			return f.err
		}
	}
	return ""
}
