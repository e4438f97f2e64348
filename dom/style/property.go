package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'boxer.styling'
func tracer() tracing.Trace {
	return tracing.Select("boxer.styling")
}

// Property is a raw value for a CSS property. For example, with
//
//     display: block
//
// a property value of "block" is set. Values are single keywords and are
// stored as written, without case folding.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	var b strings.Builder
	b.WriteString("[" + pg.name + "] =\n")
	for _, kv := range pg.Properties() {
		fmt.Fprintf(&b, "  %s = %s\n", kv.Key, kv.Value)
	}
	return b.String()
}

// Properties returns all properties of a group, ordered by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	_, ok := pg.propsDict[key]
	return ok
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg == nil || pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
func (pg *PropertyGroup) Set(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

func (pg *PropertyGroup) clone() *PropertyGroup {
	c := NewPropertyGroup(pg.name)
	for k, v := range pg.propsDict {
		c.Set(k, v)
	}
	return c
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin":         PGMargins,
	"margin-top":     PGMargins,
	"margin-left":    PGMargins,
	"margin-right":   PGMargins,
	"margin-bottom":  PGMargins,
	"padding":        PGPadding,
	"padding-top":    PGPadding,
	"padding-left":   PGPadding,
	"padding-right":  PGPadding,
	"padding-bottom": PGPadding,
	"border-style":   PGBorder,
	"border-color":   PGBorder,
	"border-width":   PGBorder,
	"width":          PGDimension,
	"height":         PGDimension,
	"display":        PGDisplay,
	"float":          PGDisplay,
	"visibility":     PGDisplay,
	"position":       PGDisplay,
	"color":          PGColor,
	"background":     PGColor,
	"font-weight":    PGText,
	"font-style":     PGText,
	"white-space":    PGText,
	"text-align":     PGText,
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a document node: a styled node links
// to a property map, which contains zero or more property groups.
//
// Every key holds at most one value; setting a key again replaces the
// previous value.
type PropertyMap struct {
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("Property Map = {\n")
	for _, g := range pmap.Groups() {
		b.WriteString(g.String())
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Len returns the number of properties set.
func (pmap *PropertyMap) Len() int {
	if pmap == nil {
		return 0
	}
	n := 0
	for _, g := range pmap.m {
		n += len(g.propsDict)
	}
	return n
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Groups returns all property groups, ordered by name.
func (pmap *PropertyMap) Groups() []*PropertyGroup {
	if pmap == nil {
		return nil
	}
	groups := make([]*PropertyGroup, 0, len(pmap.m))
	for _, g := range pmap.m {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].name < groups[j].name })
	return groups
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Set sets a property in this property map, e.g.,
//
//    pm.Set("funny-margin", "big")
//
// An existing value for key is replaced.
func (pmap *PropertyMap) Set(key string, value Property) {
	if pmap == nil {
		tracer().Errorf("cannot set property %s on nil property map", key)
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// Properties returns all properties of the map, ordered by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	var r []KeyValue
	for _, g := range pmap.Groups() {
		r = append(r, g.Properties()...)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// Clone returns a deep copy of pmap.
func (pmap *PropertyMap) Clone() *PropertyMap {
	c := NewPropertyMap()
	if pmap == nil || len(pmap.m) == 0 {
		return c
	}
	c.m = make(map[string]*PropertyGroup, len(pmap.m))
	for name, g := range pmap.m {
		c.m[name] = g.clone()
	}
	return c
}

// Equal compares two property maps by their key-value pairs.
func (pmap *PropertyMap) Equal(other *PropertyMap) bool {
	a, b := pmap.Properties(), other.Properties()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
