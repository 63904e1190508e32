package router

// Find looks up the item registered for a method and a path, together
// with the captured path variables. The path must already be
// percent-decoded. The third return value reports whether a route
// matched at all; a miss is the ordinary negative outcome, not an
// error. Find only reads the tree and is safe for concurrent use.
func (t *Tree[T]) Find(method, path string) (T, Params, bool) {
	e, captured, ok := t.search(method, splitPath(path), nil)
	if !ok {
		var zero T
		return zero, nil, false
	}
	return e.item, bindParams(e.names, captured), true
}

// search walks the node against the remaining path segments. captured
// collects the text of segments consumed at variable positions, root
// to leaf. Branches are tried in precedence order (static, variable,
// wildcard) and the first branch that reaches an entry for the method
// wins. A failed branch backtracks to the next one.
func (t *Tree[T]) search(method string, remaining, captured []string) (entry[T], []string, bool) {
	if len(remaining) == 0 {
		e, ok := t.items[method]
		return e, captured, ok
	}

	head, rest := remaining[0], remaining[1:]

	if next, ok := t.static[head]; ok {
		if e, values, ok := next.search(method, rest, captured); ok {
			return e, values, true
		}
	}

	if t.variable != nil {
		if e, values, ok := t.variable.search(method, rest, append(captured, head)); ok {
			return e, values, true
		}
	}

	if t.wildcard != nil {
		// The wildcard consumes as many segments as possible first,
		// then gives one back per retry. It must consume at least one.
		for n := len(remaining); n >= 1; n-- {
			if e, values, ok := t.wildcard.search(method, remaining[n:], captured); ok {
				return e, values, true
			}
		}
	}

	return entry[T]{}, nil, false
}

// bindParams zips declared names with captured values positionally.
// The two lists have equal length whenever insertion bookkeeping was
// consistent; if not, the pairing truncates to the shorter list.
func bindParams(names, values []string) Params {
	n := len(names)
	if len(values) < n {
		n = len(values)
	}
	if n == 0 {
		return nil
	}
	params := make(Params, n)
	for i := 0; i < n; i++ {
		params[i] = Param{Name: names[i], Value: values[i]}
	}
	return params
}
