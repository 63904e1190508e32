package router

// Param is one captured path variable: the name from the pattern and
// the segment text it matched.
type Param struct {
	Name  string
	Value string
}

// Params is the ordered list of variables captured by a match, in the
// order the variable segments appear in the pattern, root to leaf.
type Params []Param

// Get returns the value bound to name, or the empty string when the
// name was not captured. Use Has to tell the two apart.
func (p Params) Get(name string) string {
	for _, param := range p {
		if param.Name == name {
			return param.Value
		}
	}
	return ""
}

// Has reports whether a value is bound to name.
func (p Params) Has(name string) bool {
	for _, param := range p {
		if param.Name == name {
			return true
		}
	}
	return false
}

// Map returns the bindings as a name-to-value map. Returns nil for an
// empty list.
func (p Params) Map() map[string]string {
	if len(p) == 0 {
		return nil
	}
	m := make(map[string]string, len(p))
	for _, param := range p {
		m[param.Name] = param.Value
	}
	return m
}
