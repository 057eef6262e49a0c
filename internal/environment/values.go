// Package environment provides hierarchically scoped, typed values.
//
// A Values chain is immutable: binding a key returns a new child node that
// points at its parent, so an override is visible to everything derived from
// the child and invisible to the parent and its other children. Lookups walk
// from the innermost node outwards and fall back to the key's default, which
// makes every lookup total.
package environment

// Key identifies one typed slot. Keys compare by identity, so two keys with
// the same name are still distinct slots.
type Key[T any] struct {
	name         string
	defaultValue T
}

// NewKey declares a slot with its required default
func NewKey[T any](name string, defaultValue T) *Key[T] {
	return &Key[T]{name: name, defaultValue: defaultValue}
}

// Name returns the diagnostic name of the key
func (k *Key[T]) Name() string {
	return k.name
}

// Default returns the value used when no ancestor binds the key
func (k *Key[T]) Default() T {
	return k.defaultValue
}

// Bind returns a child of parent with the key bound to value. parent may be nil.
func (k *Key[T]) Bind(parent *Values, value T) *Values {
	return &Values{parent: parent, key: k, value: value}
}

// Get resolves the key against values: nearest binding wins, default otherwise
func (k *Key[T]) Get(values *Values) T {
	for node := values; node != nil; node = node.parent {
		if node.key == any(k) {
			value, _ := node.value.(T)
			return value
		}
	}
	return k.defaultValue
}

// Values is one node of a binding chain. The nil *Values is the empty root.
type Values struct {
	parent *Values
	key    any
	value  any
}

// Parent returns the enclosing scope, or nil at the root
func (v *Values) Parent() *Values {
	if v == nil {
		return nil
	}
	return v.parent
}

// Depth reports how many bindings are in scope
func (v *Values) Depth() int {
	depth := 0
	for node := v; node != nil; node = node.parent {
		depth++
	}
	return depth
}
