/*
Package css provides functionality for CSS styling.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of the textual nature of CSS properties.

Currently the only property with semantics attached is "display". It decides
which nodes take part in layout and whether they create block-level or
inline-level boxes. There is no inheritance: a node's properties are exactly
the ones set for it by matching rules.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxer.styling'.
func tracer() tracing.Trace {
	return tracing.Select("boxer.styling")
}
