/*
Package maybe implements an option type.

Lookups into a document tree and styling of an invisible document root do
not fail, they may just yield nothing. Clients are expected to branch on
the outcome rather than treat absence as an error:

    var el dom.Node
    switch m := root.GetElementByID("main").Match(); m {
    case m.Just(&el):
        // use el
    case m.Nothing():
        // absent
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of returns Just(x) if ok is set, Nothing otherwise.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Get returns the value and true, or the zero value of T and false.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself produce nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to a present value.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	return x.Map(f)
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Maybe. T has to
// be comparable at run time for the switch idiom to work.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
