/*
Package w3cdom provides a W3C-style scripting surface for a document.

Scripting hosts do not operate on a process-wide document. Instead, they
are handed a Context, which owns a document and serializes every query and
mutation. Elements are referenced by the handles of package dom, which stay
valid until the element is destroyed by a mutation of one of its ancestors.

Status

Early draft, API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"errors"
	"sync"

	"github.com/npillmayer/boxer/dom"
	"github.com/npillmayer/boxer/dom/markup"
	"github.com/npillmayer/boxer/maybe"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("boxer.dom")
}

// ErrNoDocument is returned for operations on a context without a rooted document.
var ErrNoDocument = errors.New("context holds no document")

// Context owns a document on behalf of a scripting host. All methods are
// safe for concurrent use.
type Context struct {
	mu  sync.Mutex
	doc *dom.Document
}

// NewContext creates a context owning doc. Clients must not touch doc
// directly afterwards.
func NewContext(doc *dom.Document) *Context {
	return &Context{doc: doc}
}

// Load parses markup and creates a context owning the resulting document.
func Load(raw string) (*Context, error) {
	doc, err := markup.Parse(raw)
	if err != nil {
		return nil, err
	}
	return NewContext(doc), nil
}

// Document returns the root element of the owned document, if any.
func (ctx *Context) Document() maybe.Maybe[dom.Node] {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if ctx.doc == nil || !ctx.doc.Root().Valid() {
		return maybe.Nothing[dom.Node]()
	}
	return maybe.Just(ctx.doc.Root())
}

// GetElementByID searches the whole document in pre-order.
func (ctx *Context) GetElementByID(id string) maybe.Maybe[dom.Node] {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if ctx.doc == nil || !ctx.doc.Root().Valid() {
		return maybe.Nothing[dom.Node]()
	}
	return ctx.doc.Root().GetElementByID(id)
}

// TagName returns the tag name of an element.
func (ctx *Context) TagName(el dom.Node) (string, error) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if err := ctx.check(el); err != nil {
		return "", err
	}
	return el.TagName(), nil
}

// InnerText returns the concatenated text of all descendants of el.
func (ctx *Context) InnerText(el dom.Node) (string, error) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if err := ctx.check(el); err != nil {
		return "", err
	}
	return el.InnerText(), nil
}

// SetInnerText replaces the children of el by a single text node.
func (ctx *Context) SetInnerText(el dom.Node, text string) error {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if err := ctx.check(el); err != nil {
		return err
	}
	el.SetInnerText(text)
	return nil
}

// InnerHTML serializes the children of el.
func (ctx *Context) InnerHTML(el dom.Node) (string, error) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if err := ctx.check(el); err != nil {
		return "", err
	}
	return el.InnerHTML(), nil
}

// SetInnerHTML parses raw as a fragment and replaces the children of el.
// If raw does not parse, el is left unchanged.
func (ctx *Context) SetInnerHTML(el dom.Node, raw string) error {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if err := ctx.check(el); err != nil {
		return err
	}
	return el.SetInnerHTML(raw, markup.ParseFragment)
}

// With calls f while holding the lock of the context, for hosts which have
// to combine several operations atomically. f must not call methods of ctx.
func (ctx *Context) With(f func(doc *dom.Document) error) error {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if ctx.doc == nil {
		return ErrNoDocument
	}
	return f(ctx.doc)
}

func (ctx *Context) check(el dom.Node) error {
	if ctx.doc == nil {
		return ErrNoDocument
	}
	if el.Document() != ctx.doc {
		return dom.ErrForeignNode
	}
	if !el.Valid() {
		tracer().Errorf("script uses stale element handle #%d", el.ID())
		return dom.ErrStaleNode
	}
	return nil
}
