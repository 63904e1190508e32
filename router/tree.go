package router

import "slices"

// Route is a single registration: an item stored under a method and a
// path pattern.
type Route[T any] struct {
	Method string
	Path   string
	Item   T
}

// entry is a stored item together with the variable names collected on
// the insertion path that produced it, in root-to-leaf order. Wildcard
// segments contribute no name.
type entry[T any] struct {
	item  T
	names []string
}

// Tree is one node of a route tree. Items live directly on the node
// they were registered at, keyed by method; the empty path registers
// on the root node itself. Each node owns its children exclusively:
// a map of literal children plus at most one variable child and at
// most one wildcard child. Which variable name a branch was registered
// under is not part of the tree shape; names are bookkeeping carried
// on the entries.
//
// The zero value is an empty tree ready for use.
type Tree[T any] struct {
	items    map[string]entry[T]
	static   map[string]*Tree[T]
	variable *Tree[T]
	wildcard *Tree[T]
}

// New returns an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// FromRoutes builds a tree from an ordered route list, inserting each
// route in turn. When two routes register the identical method and
// pattern node, the later one wins.
func FromRoutes[T any](routes []Route[T]) *Tree[T] {
	t := New[T]()
	for _, route := range routes {
		t.Insert(route.Method, route.Path, route.Item)
	}
	return t
}

// Insert stores an item under a method and a path pattern, creating
// tree nodes as needed. Inserting again with the same method and an
// identical pattern node silently replaces the previous item.
func (t *Tree[T]) Insert(method, path string, item T) {
	t.insert(splitPath(path), nil, method, item)
}

// insert descends the pattern segments, threading the accumulated
// variable names through the recursion.
func (t *Tree[T]) insert(segments, names []string, method string, item T) {
	if len(segments) == 0 {
		t.setItem(method, item, names)
		return
	}
	head := segments[0]
	next := t.child(head)
	if isVariable(head) {
		names = append(names, head[1:])
	}
	next.insert(segments[1:], names, method, item)
}

// Merge copies the contents of another tree into this one underneath
// the given path prefix. Prefix nodes are created exactly as Insert
// creates them, and variable names from the prefix are prepended to
// the name list of every merged entry. Children merge by kind: literal
// children pair up by their text, variable with variable, wildcard
// with wildcard. Existing children are never replaced, and other is
// left unmodified.
func (t *Tree[T]) Merge(prefix string, other *Tree[T]) {
	t.merge(splitPath(prefix), nil, other)
}

func (t *Tree[T]) merge(segments, names []string, other *Tree[T]) {
	if len(segments) == 0 {
		t.mergeFrom(names, other)
		return
	}
	head := segments[0]
	next := t.child(head)
	if isVariable(head) {
		names = append(names, head[1:])
	}
	next.merge(segments[1:], names, other)
}

// mergeFrom recursively copies other's entries and structure into t,
// prepending prefix to every entry's variable names.
func (t *Tree[T]) mergeFrom(prefix []string, other *Tree[T]) {
	for method, e := range other.items {
		names := make([]string, 0, len(prefix)+len(e.names))
		names = append(names, prefix...)
		names = append(names, e.names...)
		t.setItem(method, e.item, names)
	}
	for key, sub := range other.static {
		t.child(key).mergeFrom(prefix, sub)
	}
	if other.variable != nil {
		if t.variable == nil {
			t.variable = New[T]()
		}
		t.variable.mergeFrom(prefix, other.variable)
	}
	if other.wildcard != nil {
		if t.wildcard == nil {
			t.wildcard = New[T]()
		}
		t.wildcard.mergeFrom(prefix, other.wildcard)
	}
}

// child returns the child node a pattern segment routes to, creating
// it if absent. "*" selects the wildcard child, ":name" the variable
// child, anything else the literal child keyed by the segment text.
func (t *Tree[T]) child(segment string) *Tree[T] {
	switch {
	case segment == wildcardSegment:
		if t.wildcard == nil {
			t.wildcard = New[T]()
		}
		return t.wildcard
	case isVariable(segment):
		if t.variable == nil {
			t.variable = New[T]()
		}
		return t.variable
	default:
		next, ok := t.static[segment]
		if !ok {
			next = New[T]()
			if t.static == nil {
				t.static = make(map[string]*Tree[T])
			}
			t.static[segment] = next
		}
		return next
	}
}

// setItem records an item for a method on this node. The name list is
// cloned so entries never alias a caller's or a sibling's slice.
func (t *Tree[T]) setItem(method string, item T, names []string) {
	if t.items == nil {
		t.items = make(map[string]entry[T])
	}
	t.items[method] = entry[T]{item: item, names: slices.Clone(names)}
}
