/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It uses the CSS parser of github.com/aymerick/douceur as a front-end. Douceur
tokenizes full CSS; rules are then checked against the restricted model of
package cssom: preludes have to be lists of simple selectors, and values have
to be single keywords. At-rules are skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxer/dom"
	"github.com/npillmayer/boxer/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("boxer.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css   *css.Stylesheet
	rules []*cssom.Rule
}

// Parse parses a stylesheet with douceur and converts it.
// Errors wrap cssom.ErrSyntax.
func Parse(raw string) (*CSSStyles, error) {
	c, err := parser.Parse(raw)
	if err != nil {
		tracer().Errorf("douceur: %v", err)
		return nil, fmt.Errorf("%w: %v", cssom.ErrSyntax, err)
	}
	return Wrap(c)
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(c *css.Stylesheet) (*CSSStyles, error) {
	sheet := &CSSStyles{css: c}
	for _, r := range c.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("skipping at-rule %s", r.Name)
			continue
		}
		rule, err := convert(r)
		if err != nil {
			return nil, err
		}
		sheet.rules = append(sheet.rules, rule)
	}
	return sheet, nil
}

func convert(r *css.Rule) (*cssom.Rule, error) {
	sels, err := cssom.ParseSelectorList(r.Prelude)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", r.Prelude, err)
	}
	rule := &cssom.Rule{Selectors: sels}
	for _, d := range r.Declarations {
		value, err := cssom.ParseKeyword(d.Value)
		if err != nil {
			return nil, fmt.Errorf("rule %q, property %s: %w", r.Prelude, d.Property, err)
		}
		if d.Important {
			tracer().P("property", d.Property).Debugf("!important has no effect")
		}
		rule.Declarations = append(rule.Declarations, cssom.Declaration{
			Name:  d.Property,
			Value: value,
		})
	}
	return rule, nil
}

// Source returns the douceur stylesheet wrapped by sheet.
func (sheet *CSSStyles) Source() *css.Stylesheet {
	return sheet.css
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if other == nil {
		return
	}
	sheet.rules = append(sheet.rules, other.Rules()...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []*cssom.Rule {
	return sheet.rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// ExtractStyleElements searches a document tree for embedded <style>s.
// It returns the content of style-elements as style sheets.
func ExtractStyleElements(root dom.Node) ([]*CSSStyles, error) {
	var sheets []*CSSStyles
	for _, raw := range cssom.ExtractStyleElements(root) {
		c, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, c)
	}
	return sheets, nil
}
