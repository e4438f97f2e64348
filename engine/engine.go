package engine

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boxer/dom"
	"github.com/npillmayer/boxer/dom/markup"
	"github.com/npillmayer/boxer/dom/style/cssom"
	"github.com/npillmayer/boxer/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/boxer/dom/w3cdom"
	"github.com/npillmayer/boxer/frame"
	"github.com/npillmayer/boxer/frame/framedbg"
	"github.com/npillmayer/tyse/core/dimen"
)

// Engine lays out documents.
type Engine struct {
	config Config
	parse  func(string) (cssom.StyleSheet, error)
	ua     cssom.StyleSheet
}

// New creates an engine for a configuration. The user-agent stylesheet of
// config is parsed once, with the configured front-end.
func New(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{config: config, parse: parseNative}
	if config.CSSFrontEnd == FrontEndDouceur {
		e.parse = parseDouceur
	}
	ua, err := e.parse(config.UserAgentCSS)
	if err != nil {
		return nil, fmt.Errorf("user-agent stylesheet: %w", err)
	}
	e.ua = ua
	tracer().P("front-end", config.CSSFrontEnd).Debugf("engine created, %d user-agent rules",
		len(ua.Rules()))
	return e, nil
}

func parseNative(raw string) (cssom.StyleSheet, error) {
	sheet, err := cssom.Parse(raw)
	if err != nil {
		return nil, err
	}
	return sheet, nil
}

func parseDouceur(raw string) (cssom.StyleSheet, error) {
	sheet, err := douceuradapter.Parse(raw)
	if err != nil {
		return nil, err
	}
	return sheet, nil
}

// Config returns the configuration of e.
func (e *Engine) Config() Config {
	return e.config
}

// Layout parses markup and creates the box tree for it, styled by the
// user-agent stylesheet, the <style> elements of the markup and css,
// in this order.
//
// If the root element has display "none", there is nothing to render.
// Layout then returns false and no error.
func (e *Engine) Layout(markupText string, css string) (*frame.Box, bool, error) {
	doc, err := markup.Parse(markupText)
	if err != nil {
		return nil, false, err
	}
	return e.layout(doc.Root(), css)
}

// LayoutDocument creates the box tree for the document held by ctx. The
// document is locked while it is styled. Node handles referenced by the
// boxes turn stale if the document is mutated later.
func (e *Engine) LayoutDocument(ctx *w3cdom.Context, css string) (*frame.Box, bool, error) {
	var box *frame.Box
	var ok bool
	err := ctx.With(func(doc *dom.Document) error {
		var err error
		box, ok, err = e.layout(doc.Root(), css)
		return err
	})
	return box, ok, err
}

func (e *Engine) layout(root dom.Node, css string) (*frame.Box, bool, error) {
	sheet, err := e.Stylesheet(root, css)
	if err != nil {
		return nil, false, err
	}
	sn, ok := cssom.Style(root, sheet).Get()
	if !ok {
		tracer().Infof("nothing to render")
		return nil, false, nil
	}
	box := frame.BuildBoxTree(sn)
	tracer().Debugf("box tree for %s created", root)
	return box, true, nil
}

// Stylesheet collects the rules which apply to the document below root:
// user-agent rules first, then rules of <style> elements in document
// order, then the rules of css.
func (e *Engine) Stylesheet(root dom.Node, css string) (cssom.StyleSheet, error) {
	sheet := cssom.NewSheet()
	sheet.AppendRules(e.ua)
	for i, raw := range cssom.ExtractStyleElements(root) {
		s, err := e.parse(raw)
		if err != nil {
			return nil, fmt.Errorf("<style> element #%d: %w", i+1, err)
		}
		sheet.AppendRules(s)
	}
	if strings.TrimSpace(css) != "" {
		s, err := e.parse(css)
		if err != nil {
			return nil, fmt.Errorf("author stylesheet: %w", err)
		}
		sheet.AppendRules(s)
	}
	return sheet, nil
}

// Dump returns a representation of a box tree, in the format configured
// for e.
func (e *Engine) Dump(box *frame.Box) (string, error) {
	if e.config.DumpFormat == DumpDot {
		var b strings.Builder
		if err := framedbg.ToGraphViz(box, &b, nil); err != nil {
			return "", err
		}
		return b.String(), nil
	}
	return frame.Dump(box), nil
}

// Measurer returns a fixed-pitch text measurer for the text metrics
// configured for e.
func (e *Engine) Measurer() frame.Measurer {
	return frame.FixedPitch{
		Advance: points(e.config.TextAdvance),
		Height:  points(e.config.LineHeight),
	}
}

// Extent returns the size of a box, measuring text with e.Measurer().
func (e *Engine) Extent(box *frame.Box) (w, h dimen.DU) {
	return frame.Extent(box, e.Measurer())
}

func points(x float64) dimen.DU {
	return dimen.DU(x * float64(dimen.PT))
}
