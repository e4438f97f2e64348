package cssom

import (
	"strings"

	"github.com/npillmayer/boxer/dom"
	"github.com/npillmayer/boxer/dom/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the styled node tree, we introduce an interface
// for CSS stylesheets. Clients for the styling engine may provide a
// concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See type Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []*Rule         // all the rules of a stylesheet, in order
}

// Rule is the type stylesheets consists of.
// A rule applies to a node if any of its selectors matches the node.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Declaration sets a style property to a keyword.
type Declaration struct {
	Name  string
	Value style.Property
}

func (d Declaration) String() string {
	return d.Name + ": " + d.Value.String()
}

// Matches returns true if any of the selectors of r matches n.
func (r *Rule) Matches(n dom.Node) bool {
	for _, sel := range r.Selectors {
		if sel.Matches(n) {
			return true
		}
	}
	return false
}

func (r *Rule) String() string {
	var b strings.Builder
	for i, sel := range r.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sel.String())
	}
	b.WriteString(" {")
	for i, d := range r.Declarations {
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(" ")
		b.WriteString(d.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Sheet is the default implementation of StyleSheet, as produced by Parse.
type Sheet struct {
	rules []*Rule
}

// NewSheet creates a stylesheet from a list of rules.
func NewSheet(rules ...*Rule) *Sheet {
	return &Sheet{rules: rules}
}

// Rules returns the rules of a stylesheet. Part of interface StyleSheet.
func (sheet *Sheet) Rules() []*Rule {
	if sheet == nil {
		return nil
	}
	return sheet.rules
}

// Empty checks if this stylesheet contains any rules. Part of interface StyleSheet.
func (sheet *Sheet) Empty() bool {
	return sheet == nil || len(sheet.rules) == 0
}

// AppendRules appends rules from another stylesheet. Rules of other will
// come after the rules of sheet and therefore win over them.
// Part of interface StyleSheet.
func (sheet *Sheet) AppendRules(other StyleSheet) {
	if other == nil {
		return
	}
	sheet.rules = append(sheet.rules, other.Rules()...)
}

// String serializes a stylesheet, one rule per line. The output may be
// parsed again.
func (sheet *Sheet) String() string {
	var b strings.Builder
	for _, r := range sheet.Rules() {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}

var _ StyleSheet = &Sheet{}
