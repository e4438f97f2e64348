/*
Package frame computes the box tree for a styled tree.

Boxes

Every styled node gets a box. Block-level nodes get a BlockBox, all other
nodes an InlineBox. Boxes of block-level children are appended directly to
their parent box. Boxes of inline children are collected in an inline
container:

    - the parent box itself, if it is an inline or anonymous box
    - otherwise the parent's last child, if it is an anonymous box
    - otherwise a new anonymous box, appended to the parent

Consecutive inline children therefore share one anonymous box, and a run of
inline content is closed by the next block-level child:

    <div>                   ▩ <div>#0
      <p>a</p>              ├── ▩ <p>#1 ...
      <span>b</span>        ├── ▭ anonymous
      <span>c</span>        │   ├── ► <span>#3 ...
      <p>d</p>              │   └── ► <span>#5 ...
    </div>                  └── ▩ <p>#7 ...

The box tree is built in one pass over the styled tree, without backtracking.
This package does not compute box positions. Function Extent gives the size
of a box from the sizes of its text, as measured by a client-supplied
Measurer.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxer.frame'.
func tracer() tracing.Trace {
	return tracing.Select("boxer.frame")
}
