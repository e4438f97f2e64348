package markup

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/boxer/dom"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("markup syntax error")

// ParseError reports the position where parsing failed.
type ParseError struct {
	Offset int // byte offset into the input
	Line   int // 1-based
	Column int // 1-based, in runes
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markup: %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Unwrap makes errors.Is(err, ErrSyntax) work.
func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// Parse parses raw markup into a new document. If the markup consists of
// exactly one top-level node, this node becomes the document root.
// Otherwise an <html> element is synthesized, wrapping all top-level nodes.
func Parse(raw string) (*dom.Document, error) {
	doc := dom.NewDocument()
	ids, err := ParseFragment(doc, raw)
	if err != nil {
		return nil, err
	}
	if len(ids) == 1 {
		if err = doc.SetRoot(doc.Node(ids[0])); err != nil {
			return nil, err
		}
		return doc, nil
	}
	root := doc.NewElement("html", nil)
	for _, id := range ids {
		if err = doc.AppendChild(root, doc.Node(id)); err != nil {
			return nil, err
		}
	}
	if err = doc.SetRoot(root); err != nil {
		return nil, err
	}
	tracer().Debugf("synthesized <html> root for %d top-level nodes", len(ids))
	return doc, nil
}

// ParseFragment parses raw markup into detached nodes of doc and returns
// the top-level nodes in document order. No root is synthesized.
// On failure, nodes allocated so far are released again.
//
// ParseFragment is a dom.FragmentParser.
func ParseFragment(doc *dom.Document, raw string) ([]dom.NodeID, error) {
	p := &parser{input: raw}
	nodes := p.nodes()
	p.blank()
	if p.pos < len(p.input) {
		err := p.error()
		tracer().Errorf("%v", err)
		return nil, err
	}
	ids := make([]dom.NodeID, 0, len(nodes))
	for _, n := range nodes {
		id, err := n.build(doc)
		if err != nil {
			for _, built := range ids {
				_ = doc.Release(doc.Node(built))
			}
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

var _ dom.FragmentParser = ParseFragment

// --- Parse tree ------------------------------------------------------------

// pnode is an intermediate parse tree node. Parsing backtracks, so nodes are
// transferred to the document only after the parse succeeded.
type pnode struct {
	tag      string // empty for text
	text     string
	attrs    map[string]string
	children []*pnode
}

func (n *pnode) build(doc *dom.Document) (dom.NodeID, error) {
	if n.tag == "" {
		return doc.NewText(n.text).ID(), nil
	}
	el := doc.NewElement(n.tag, n.attrs)
	for _, ch := range n.children {
		id, err := ch.build(doc)
		if err != nil {
			_ = doc.Release(el)
			return dom.NoNode, err
		}
		if err = doc.AppendChild(el, doc.Node(id)); err != nil {
			_ = doc.Release(doc.Node(id))
			_ = doc.Release(el)
			return dom.NoNode, err
		}
	}
	return el.ID(), nil
}

// --- Parser ------------------------------------------------------------------

type parser struct {
	input    string
	pos      int
	farthest int    // farthest position of a failure
	expected string // message for failure at farthest
	mismatch bool   // a tag mismatch has been recorded
}

// fail records a failure at position at. The failure at the farthest
// position wins, later failures win ties.
func (p *parser) fail(at int, msg string, args ...interface{}) {
	if p.mismatch {
		return
	}
	if at >= p.farthest {
		p.farthest = at
		p.expected = fmt.Sprintf(msg, args...)
	}
}

// failMismatch records a mismatch of open and close tag. A failing element
// always fails the whole parse, so the first mismatch is the cause of the
// failure and takes precedence over any other failure.
func (p *parser) failMismatch(at int, msg string, args ...interface{}) {
	if p.mismatch {
		return
	}
	p.mismatch = true
	p.farthest = at
	p.expected = fmt.Sprintf(msg, args...)
}

func (p *parser) error() *ParseError {
	at, msg := p.farthest, p.expected
	if !p.mismatch && at < p.pos || msg == "" {
		at, msg = p.pos, "unexpected input"
	}
	line := 1 + strings.Count(p.input[:at], "\n")
	col := 1 + utf8.RuneCountInString(p.input[strings.LastIndexByte(p.input[:at], '\n')+1:at])
	return &ParseError{Offset: at, Line: line, Column: col, Msg: msg}
}

func (p *parser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *parser) char(c byte) bool {
	if p.peek() == c && p.pos < len(p.input) {
		p.pos++
		return true
	}
	p.fail(p.pos, "expected %q", c)
	return false
}

func (p *parser) blank() {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// name reads an ASCII letter followed by letters, digits or any of extra.
func (p *parser) name(what string, extra string) (string, bool) {
	start := p.pos
	if !isLetter(p.peek()) {
		p.fail(p.pos, "expected %s", what)
		return "", false
	}
	p.pos++
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if !isLetter(c) && !isDigit(c) && strings.IndexByte(extra, c) < 0 {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos], true
}

// attribute consumes `name="value"`.
func (p *parser) attribute() (string, string, bool) {
	start := p.pos
	key, ok := p.name("attribute name", "-_")
	if !ok {
		return "", "", false
	}
	p.blank()
	if !p.char('=') {
		p.pos = start
		return "", "", false
	}
	p.blank()
	if !p.char('"') {
		p.pos = start
		return "", "", false
	}
	end := strings.IndexByte(p.input[p.pos:], '"')
	if end < 0 {
		p.fail(len(p.input), "unterminated value of attribute %q", key)
		p.pos = start
		return "", "", false
	}
	value := p.input[p.pos : p.pos+end]
	p.pos += end + 1
	return key, value, true
}

// attributes consumes `name1="value1" name2="value2" ...`, with optional
// trailing white space.
func (p *parser) attributes() map[string]string {
	attrs := make(map[string]string)
	for {
		key, value, ok := p.attribute()
		if !ok {
			return attrs
		}
		attrs[key] = value
		p.blank()
	}
}

// openTag consumes `<tag_name attr_name="attr_value" ...>`.
func (p *parser) openTag() (string, map[string]string, bool) {
	start := p.pos
	if !p.char('<') {
		return "", nil, false
	}
	tag, ok := p.name("tag name", "")
	if !ok {
		p.pos = start
		return "", nil, false
	}
	p.blank()
	attrs := p.attributes()
	if !p.char('>') {
		p.pos = start
		return "", nil, false
	}
	return tag, attrs, true
}

// closeTag consumes `</tag_name>`.
func (p *parser) closeTag() (string, bool) {
	start := p.pos
	if !p.char('<') || !p.char('/') {
		p.pos = start
		return "", false
	}
	tag, ok := p.name("tag name", "")
	if !ok || !p.char('>') {
		p.pos = start
		return "", false
	}
	return tag, true
}

// element consumes `<tag_name ...>(children)</tag_name>`.
func (p *parser) element() (*pnode, bool) {
	start := p.pos
	tag, attrs, ok := p.openTag()
	if !ok {
		return nil, false
	}
	p.blank()
	children := p.nodes()
	p.blank()
	closeAt := p.pos
	closing, ok := p.closeTag()
	if !ok {
		p.pos = start
		return nil, false
	}
	if closing != tag {
		p.failMismatch(closeAt, "close tag </%s> does not match open tag <%s>", closing, tag)
		p.pos = start
		return nil, false
	}
	return &pnode{tag: tag, attrs: attrs, children: children}, true
}

// text consumes input until '<' comes.
func (p *parser) text() (*pnode, bool) {
	end := strings.IndexByte(p.input[p.pos:], '<')
	if end < 0 {
		end = len(p.input) - p.pos
	}
	if end == 0 {
		p.fail(p.pos, "expected text")
		return nil, false
	}
	t := p.input[p.pos : p.pos+end]
	p.pos += end
	return &pnode{text: strings.TrimSpace(t)}, true
}

// nodes consumes a sequence of elements and text, trying elements first.
// Text nodes which are empty after trimming are dropped.
func (p *parser) nodes() []*pnode {
	var nodes []*pnode
	for p.pos < len(p.input) {
		if el, ok := p.element(); ok {
			nodes = append(nodes, el)
			continue
		}
		if t, ok := p.text(); ok {
			if t.text != "" {
				nodes = append(nodes, t)
			}
			continue
		}
		break
	}
	return nodes
}
