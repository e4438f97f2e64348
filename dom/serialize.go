package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// serialNode is the persistent form of a node. Exactly one of Tag or Text
// is set.
type serialNode struct {
	Tag      string            `yaml:"tag,omitempty"`
	Text     *string           `yaml:"text,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Children []serialNode      `yaml:"children,omitempty"`
}

// ErrMalformedDocument is returned when decoding a persisted tree fails
// structurally.
var ErrMalformedDocument = errors.New("malformed persisted document")

// MarshalYAML is part of interface yaml.Marshaler. Only the tree under the
// document root is persisted; detached nodes are lost.
func (doc *Document) MarshalYAML() (interface{}, error) {
	if !doc.Root().Valid() {
		return nil, nil
	}
	return doc.toSerial(doc.root), nil
}

func (doc *Document) toSerial(id NodeID) serialNode {
	r := &doc.nodes[id]
	var sn serialNode
	if r.kind == TextNode {
		data := r.data
		sn.Text = &data
		return sn
	}
	sn.Tag = r.data
	if len(r.attrs) > 0 {
		sn.Attrs = make(map[string]string, len(r.attrs))
		for k, v := range r.attrs {
			sn.Attrs[k] = v
		}
	}
	for _, ch := range r.children {
		sn.Children = append(sn.Children, doc.toSerial(ch))
	}
	return sn
}

// UnmarshalYAML is part of interface yaml.Unmarshaler. It replaces the
// content of doc by the decoded tree.
func (doc *Document) UnmarshalYAML(value *yaml.Node) error {
	var sn serialNode
	if err := value.Decode(&sn); err != nil {
		return err
	}
	fresh := NewDocument()
	root, err := fresh.fromSerial(&sn)
	if err != nil {
		return err
	}
	fresh.root = root
	*doc = *fresh
	return nil
}

func (doc *Document) fromSerial(sn *serialNode) (NodeID, error) {
	if sn.Text != nil {
		if sn.Tag != "" || len(sn.Children) > 0 || len(sn.Attrs) > 0 {
			return NoNode, ErrMalformedDocument
		}
		return doc.NewText(*sn.Text).id, nil
	}
	if sn.Tag == "" {
		return NoNode, ErrMalformedDocument
	}
	el := doc.NewElement(sn.Tag, sn.Attrs)
	for i := range sn.Children {
		ch, err := doc.fromSerial(&sn.Children[i])
		if err != nil {
			return NoNode, err
		}
		doc.nodes[ch].parent = el.id
		doc.nodes[el.id].children = append(doc.nodes[el.id].children, ch)
	}
	return el.id, nil
}

// Encode writes the rooted tree of doc to w.
func (doc *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// Decode reads a tree written by Encode.
func Decode(r io.Reader) (*Document, error) {
	doc := NewDocument()
	if err := yaml.NewDecoder(r).Decode(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
