package editor

import (
	"example.com/gapedit/pkg/config"
	"example.com/gapedit/pkg/logs"
)

// Editor manages multiple documents and the focused document index.
type Editor struct {
	Docs    []*Document
	Current int
	Config  *config.Config
	Logger  *logs.Logger
}

// New creates an empty Editor. A nil cfg means config.Default().
func New(cfg *config.Config, logger *logs.Logger) *Editor {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Editor{Config: cfg, Logger: logger}
}

// Add appends a document and makes it the current one.
func (e *Editor) Add(d *Document) {
	if d.Logger == nil {
		d.Logger = e.Logger
	}
	e.Docs = append(e.Docs, d)
	e.Current = len(e.Docs) - 1
}

// NewDocument creates an empty scratch document and focuses it.
func (e *Editor) NewDocument() (*Document, error) {
	d, err := NewDocument(e.Config.Buffer)
	if err != nil {
		return nil, err
	}
	e.Add(d)
	return d, nil
}

// Open loads a file into a new document and focuses it.
func (e *Editor) Open(path string) (*Document, error) {
	d, err := LoadFile(path, e.Config.Buffer, e.Logger)
	if err != nil {
		return nil, err
	}
	e.Add(d)
	return d, nil
}

// CurrentDoc returns the focused document, or nil when there is none.
func (e *Editor) CurrentDoc() *Document {
	if e.Current >= 0 && e.Current < len(e.Docs) {
		return e.Docs[e.Current]
	}
	return nil
}

// Next advances focus to the next document and returns it.
func (e *Editor) Next() *Document {
	if len(e.Docs) == 0 {
		return nil
	}
	e.Current = (e.Current + 1) % len(e.Docs)
	return e.Docs[e.Current]
}

// Prev moves focus to the previous document and returns it.
func (e *Editor) Prev() *Document {
	if len(e.Docs) == 0 {
		return nil
	}
	e.Current = (e.Current - 1 + len(e.Docs)) % len(e.Docs)
	return e.Docs[e.Current]
}

// Close removes the current document. Focus moves to the document that
// takes its place, or to the new last one.
func (e *Editor) Close() {
	if e.CurrentDoc() == nil {
		return
	}
	e.Docs = append(e.Docs[:e.Current], e.Docs[e.Current+1:]...)
	if e.Current >= len(e.Docs) {
		e.Current = len(e.Docs) - 1
	}
	if e.Current < 0 {
		e.Current = 0
	}
}

// AnyDirty reports whether some document has unsaved changes.
func (e *Editor) AnyDirty() bool {
	for _, d := range e.Docs {
		if d.Dirty {
			return true
		}
	}
	return false
}
