// Package dom provides the in-memory element model that the
// matcher predicates inspect: tag, attributes, class list,
// computed styles, and text content. It stands in for a real
// rendered document in unit tests, the same way a fixture
// component does in a browser harness.
package dom

import "strings"

// Element is a single node in an element tree. Build one with
// NewElement and the chainable With* methods, or load a whole
// tree from a JSON fixture with ParseFixture.
type Element struct {
	tag      string
	attrs    map[string]string
	classes  []string
	styles   *StyleMap
	text     string
	children []*Element
	parent   *Element
}

// NewElement creates an element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{
		tag:    strings.ToLower(tag),
		attrs:  make(map[string]string),
		styles: NewStyleMap(),
	}
}

// Tag returns the lower-cased tag name.
func (e *Element) Tag() string {
	return e.tag
}

// WithAttr sets an attribute and returns the element.
func (e *Element) WithAttr(name, value string) *Element {
	e.attrs[strings.ToLower(name)] = value
	return e
}

// WithClass appends class names and returns the element.
func (e *Element) WithClass(names ...string) *Element {
	e.classes = append(e.classes, names...)
	return e
}

// WithStyle sets a computed-style property and returns the
// element.
func (e *Element) WithStyle(name, value string) *Element {
	e.styles.Set(name, value)
	return e
}

// WithText sets the element's own text content and returns the
// element.
func (e *Element) WithText(text string) *Element {
	e.text = text
	return e
}

// Append adds child elements and returns the parent.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

// Attr returns the value of an attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

// ID returns the element's id attribute, or "".
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// ClassList returns a copy of the element's class names.
func (e *Element) ClassList() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// ComputedStyle returns the computed value of a style property
// on this element, or "" when the property is not set.
func (e *Element) ComputedStyle(name string) string {
	v, _ := e.styles.Get(name)
	return v
}

// Styles returns the element's computed-style map. Entries keep
// the order in which they were set.
func (e *Element) Styles() *StyleMap {
	return e.styles
}

// InheritedStyle returns the computed value of a style property,
// walking up the ancestor chain until a value is found. It is
// used for properties such as background-color where the nearest
// painted ancestor determines what the user sees.
func (e *Element) InheritedStyle(name string) string {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.styles.Get(name); ok {
			return v
		}
	}
	return ""
}

// Visible reports whether the element's computed display style
// is anything other than "none". An unset display counts as
// visible.
func (e *Element) Visible() bool {
	return e.ComputedStyle("display") != "none"
}

// Text returns the element's text content: its own text followed
// by the text of all descendants, in document order.
func (e *Element) Text() string {
	var b strings.Builder
	e.appendText(&b)
	return b.String()
}

func (e *Element) appendText(b *strings.Builder) {
	b.WriteString(e.text)
	for _, c := range e.children {
		c.appendText(b)
	}
}

// OwnText returns only the element's own text content, without
// descendant text.
func (e *Element) OwnText() string {
	return e.text
}

// TrimmedText returns Text with leading and trailing whitespace
// removed.
func (e *Element) TrimmedText() string {
	return strings.TrimSpace(e.Text())
}

// Children returns a copy of the element's direct children.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// Parent returns the element's parent, or nil for a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Walk visits the element and every descendant in document
// order. The visitor returns false to stop the walk early.
func (e *Element) Walk(visit func(*Element) bool) {
	e.walk(visit)
}

func (e *Element) walk(visit func(*Element) bool) bool {
	if !visit(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}

// FindByID returns the first element in the tree whose id
// attribute equals id, or nil.
func (e *Element) FindByID(id string) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if el.ID() == id {
			found = el
			return false
		}
		return true
	})
	return found
}
