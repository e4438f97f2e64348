/*
Package engine ties the stages of boxer together.

Markup is parsed into a document tree, stylesheets are collected and parsed,
the document is styled and finally a box tree is built:

    markup ──▶ dom.Document ──┐
                              ├──▶ styledtree ──▶ frame.Box
    UA + <style> + author ────┘
         (cssom.StyleSheet)

The user-agent stylesheet comes first, followed by the contents of all
<style> elements of the document and the author stylesheet handed to Layout.
As later declarations win, author styles overwrite user-agent defaults.

An Engine is configured by a Config, which may be loaded from a YAML or TOML
file. The configuration selects the stylesheet front-end, the format of box
tree dumps, text metrics and trace levels.

Engines are immutable after creation and may be shared between goroutines.
Documents are not synchronized; hosts which mutate a document while laying
it out should use a w3cdom.Context and LayoutDocument.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxer.engine'.
func tracer() tracing.Trace {
	return tracing.Select("boxer.engine")
}
