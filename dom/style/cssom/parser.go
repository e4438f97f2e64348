package cssom

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/boxer/dom/style"
)

// ErrSyntax is wrapped by every stylesheet parse error.
var ErrSyntax = errors.New("stylesheet syntax error")

// ParseError reports the position where parsing a stylesheet failed.
type ParseError struct {
	Offset int // byte offset into the input
	Line   int // 1-based
	Column int // 1-based, in runes
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("css: %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Unwrap makes errors.Is(err, ErrSyntax) work.
func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// Parse parses a stylesheet. Any error fails the complete stylesheet;
// there is no recovery on the level of rules or declarations.
func Parse(raw string) (*Sheet, error) {
	p := &sheetParser{input: raw}
	sheet, err := p.stylesheet()
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	tracer().Debugf("parsed stylesheet with %d rules", len(sheet.rules))
	return sheet, nil
}

// ParseSelectorList parses a comma-separated list of selectors, e.g. the
// prelude of a rule.
func ParseSelectorList(raw string) ([]Selector, error) {
	p := &sheetParser{input: raw}
	p.blank()
	sels, err := p.selectorList()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.input) {
		return nil, p.errorf("unexpected input after selector list")
	}
	return sels, nil
}

// ParseKeyword checks that a property value is a single keyword.
func ParseKeyword(raw string) (style.Property, error) {
	p := &sheetParser{input: strings.TrimSpace(raw)}
	kw, err := p.ident("keyword")
	if err != nil {
		return style.NullStyle, err
	}
	if p.pos < len(p.input) {
		return style.NullStyle, p.errorf("value %q is not a single keyword", raw)
	}
	return style.Property(kw), nil
}

// sheetParser is a hand-written recursive descent parser. The grammar is
// LL(1), so there is no backtracking.
type sheetParser struct {
	input string
	pos   int
}

func (p *sheetParser) errorf(msg string, args ...interface{}) *ParseError {
	at := p.pos
	line := 1 + strings.Count(p.input[:at], "\n")
	col := 1 + utf8.RuneCountInString(p.input[strings.LastIndexByte(p.input[:at], '\n')+1:at])
	return &ParseError{Offset: at, Line: line, Column: col, Msg: fmt.Sprintf(msg, args...)}
}

func (p *sheetParser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *sheetParser) expect(c byte) error {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return nil
	}
	if p.pos >= len(p.input) {
		return p.errorf("expected %q, found end of input", c)
	}
	return p.errorf("expected %q, found %q", c, p.input[p.pos])
}

func (p *sheetParser) blank() {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '-'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

// ident reads an identifier: letters, digits, '-' and '_', not starting
// with a digit.
func (p *sheetParser) ident(what string) (string, error) {
	start := p.pos
	if !isIdentStart(p.peek()) {
		if p.pos >= len(p.input) {
			return "", p.errorf("expected %s, found end of input", what)
		}
		return "", p.errorf("expected %s", what)
	}
	for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos], nil
}

func (p *sheetParser) stylesheet() (*Sheet, error) {
	sheet := &Sheet{}
	p.blank()
	for p.pos < len(p.input) {
		r, err := p.rule()
		if err != nil {
			return nil, err
		}
		sheet.rules = append(sheet.rules, r)
		p.blank()
	}
	return sheet, nil
}

func (p *sheetParser) rule() (*Rule, error) {
	sels, err := p.selectorList()
	if err != nil {
		return nil, err
	}
	if err = p.expect('{'); err != nil {
		return nil, err
	}
	p.blank()
	r := &Rule{Selectors: sels}
	for p.peek() != '}' {
		d, err := p.declaration()
		if err != nil {
			return nil, err
		}
		r.Declarations = append(r.Declarations, d)
		p.blank()
		if p.peek() == ';' {
			p.pos++
			p.blank()
		} else if p.peek() != '}' {
			return nil, p.errorf("expected ';' or '}' after declaration %q", d.Name)
		}
	}
	p.pos++ // '}'
	return r, nil
}

func (p *sheetParser) selectorList() ([]Selector, error) {
	var sels []Selector
	for {
		sel, err := p.selector()
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
		p.blank()
		if p.peek() != ',' {
			return sels, nil
		}
		p.pos++
		p.blank()
	}
}

func (p *sheetParser) selector() (Selector, error) {
	switch c := p.peek(); {
	case c == '*':
		p.pos++
		return UniversalSelector{}, nil
	case c == '.':
		p.pos++
		class, err := p.ident("class name")
		if err != nil {
			return nil, err
		}
		return ClassSelector{Class: class}, nil
	case isIdentStart(c):
		return p.typeOrAttributeSelector()
	}
	if p.pos >= len(p.input) {
		return nil, p.errorf("expected selector, found end of input")
	}
	return nil, p.errorf("expected selector")
}

func (p *sheetParser) typeOrAttributeSelector() (Selector, error) {
	tag, err := p.ident("tag name")
	if err != nil {
		return nil, err
	}
	p.blank()
	if p.peek() != '[' {
		return TypeSelector{Tag: tag}, nil
	}
	p.pos++
	p.blank()
	attr, err := p.ident("attribute name")
	if err != nil {
		return nil, err
	}
	p.blank()
	op, err := p.attrOp()
	if err != nil {
		return nil, err
	}
	p.blank()
	value, err := p.attrValue()
	if err != nil {
		return nil, err
	}
	p.blank()
	if err = p.expect(']'); err != nil {
		return nil, err
	}
	return AttributeSelector{Tag: tag, Op: op, Attribute: attr, Value: value}, nil
}

func (p *sheetParser) attrOp() (AttrOp, error) {
	switch {
	case p.peek() == '=':
		p.pos++
		return AttrEq, nil
	case strings.HasPrefix(p.input[p.pos:], "~="):
		p.pos += 2
		return AttrContains, nil
	case strings.IndexByte("|^$*", p.peek()) >= 0:
		return AttrEq, p.errorf("unsupported attribute selector operator %q", p.input[p.pos:p.pos+1]+"=")
	}
	return AttrEq, p.errorf("expected attribute selector operator")
}

func (p *sheetParser) attrValue() (string, error) {
	if p.peek() != '"' {
		return p.ident("attribute value")
	}
	p.pos++
	end := strings.IndexByte(p.input[p.pos:], '"')
	if end < 0 {
		return "", p.errorf("unterminated attribute value")
	}
	value := p.input[p.pos : p.pos+end]
	p.pos += end + 1
	return value, nil
}

func (p *sheetParser) declaration() (Declaration, error) {
	name, err := p.ident("property name")
	if err != nil {
		return Declaration{}, err
	}
	p.blank()
	if err = p.expect(':'); err != nil {
		return Declaration{}, err
	}
	p.blank()
	value, err := p.ident("keyword value")
	if err != nil {
		return Declaration{}, err
	}
	return Declaration{Name: name, Value: style.Property(value)}, nil
}
