/*
Package cssom provides functionality for CSS styling.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. This package
holds a deliberately small subset of it: a stylesheet is an ordered list of
rules, every rule has a list of selectors and a list of declarations, and
every declaration sets a property to a single keyword.

   stylesheet     := S* (rule S*)*
   rule           := selector_list S* '{' S* (declaration S* (';' S* declaration S*)* (';' S*)?)? '}'
   selector_list  := selector S* (',' S* selector S*)*
   selector       := '*' | '.' ident | ident S* ('[' S* ident S* op S* value S* ']')?
   op             := '=' | '~='
   value          := ident | '"' chars '"'
   declaration    := ident S* ':' S* ident

Selectors are simple selectors only: universal, type, class and attribute
selectors. There are no combinators. A class selector compares the complete
value of the class attribute; to test for a single class, use the
attribute selector

   p[class~=note]

Styling

Function Style() creates a styled tree for a document node. For every node,
the declarations of all matching rules are folded into one property map,
in stylesheet order. Later declarations win; there is no specificity and no
inheritance. Nodes with display "none" are left out of the styled tree,
together with their sub-trees.

CSS handling is de-coupled by introducing interface StyleSheet.
The stylesheet parser of this package is the default implementation;
package douceuradapter implements a second front-end.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxer.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("boxer.cssom")
}
