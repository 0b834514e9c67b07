package editor

import "fmt"

// Editor manages the open documents and the index of the active one. Only
// the active document is edited; switching refreshes its derived line state.
type Editor struct {
	Documents []*Document
	Current   int
	Options   Options
}

// New creates an Editor with no open documents.
func New(opts Options) *Editor {
	return &Editor{Current: -1, Options: opts}
}

// AddDocument appends a document and makes it the current one.
func (e *Editor) AddDocument(d *Document) {
	e.Documents = append(e.Documents, d)
	e.activate(len(e.Documents) - 1)
}

// NewEmpty adds an empty, unnamed document and makes it current.
func (e *Editor) NewEmpty() *Document {
	d := NewDocument(e.Options)
	e.AddDocument(d)
	return d
}

// Open reads a file and adds it as a new document.
func (e *Editor) Open(path string) (*Document, error) {
	d, err := Open(path, e.Options)
	if err != nil {
		return nil, err
	}
	e.AddDocument(d)
	return d, nil
}

// CurrentDocument returns the active document, or nil when none is open.
func (e *Editor) CurrentDocument() *Document {
	if e.Current >= 0 && e.Current < len(e.Documents) {
		return e.Documents[e.Current]
	}
	return nil
}

// SetActive makes document i current.
func (e *Editor) SetActive(i int) error {
	if i < 0 || i >= len(e.Documents) {
		return fmt.Errorf("document %d out of range (have %d)", i, len(e.Documents))
	}
	e.activate(i)
	return nil
}

// Next advances focus to the next document and returns it.
func (e *Editor) Next() *Document {
	if len(e.Documents) == 0 {
		return nil
	}
	e.activate((e.Current + 1) % len(e.Documents))
	return e.CurrentDocument()
}

// Prev moves focus to the previous document and returns it.
func (e *Editor) Prev() *Document {
	if len(e.Documents) == 0 {
		return nil
	}
	e.activate((e.Current - 1 + len(e.Documents)) % len(e.Documents))
	return e.CurrentDocument()
}

// Close drops document i without saving it. The previous document, if any,
// becomes current.
func (e *Editor) Close(i int) error {
	if i < 0 || i >= len(e.Documents) {
		return fmt.Errorf("document %d out of range (have %d)", i, len(e.Documents))
	}
	e.Documents = append(e.Documents[:i], e.Documents[i+1:]...)
	switch {
	case len(e.Documents) == 0:
		e.Current = -1
	case e.Current >= i && e.Current > 0:
		e.activate(e.Current - 1)
	default:
		e.activate(e.Current)
	}
	return nil
}

// SetUnderscoreBreaks updates the word-break setting of every document.
func (e *Editor) SetUnderscoreBreaks(on bool) {
	e.Options.UnderscoreBreaks = on
	for _, d := range e.Documents {
		d.SetUnderscoreBreaks(on)
	}
}

func (e *Editor) activate(i int) {
	e.Current = i
	e.Documents[i].Refresh()
}
