package dom

// StyleEntry is a single computed-style property and its value.
type StyleEntry struct {
	// Name is the CSS property name (e.g., "display").
	Name string

	// Value is the computed value (e.g., "none").
	Value string
}

// StyleMap is an ordered mapping from style-property name to
// value. Unlike a plain Go map, iteration over Entries follows
// insertion order, which matters when building expectation
// messages property by property.
type StyleMap struct {
	entries []StyleEntry
	index   map[string]int
}

// NewStyleMap creates an empty StyleMap.
func NewStyleMap() *StyleMap {
	return &StyleMap{
		index: make(map[string]int),
	}
}

// Styles creates a StyleMap from alternating name/value pairs.
// An odd trailing name is ignored.
func Styles(pairs ...string) *StyleMap {
	m := NewStyleMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

// Set adds or replaces a property. Replacing keeps the original
// insertion position. Returns the map for chaining.
func (m *StyleMap) Set(name, value string) *StyleMap {
	if i, ok := m.index[name]; ok {
		m.entries[i].Value = value
		return m
	}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, StyleEntry{
		Name:  name,
		Value: value,
	})
	return m
}

// Get returns the value for a property and whether it is set.
func (m *StyleMap) Get(name string) (string, bool) {
	i, ok := m.index[name]
	if !ok {
		return "", false
	}
	return m.entries[i].Value, true
}

// Entries returns the properties in insertion order.
func (m *StyleMap) Entries() []StyleEntry {
	out := make([]StyleEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of properties in the map.
func (m *StyleMap) Len() int {
	return len(m.entries)
}
