package htmlwriter

import (
	"sort"
	"strings"
)

// Attr - Abstraction for html attribute. A nil Attr has no value at all,
// which is how boolean attributes arrive; it cannot be serialized.
type Attr []string

// Add - adds one more attribute value
func (a Attr) Add(value string) Attr {
	return append(a, value)
}

func (a Attr) String() string {
	return strings.Join(a, " ")
}

// Attributes - store for many attributes. Names are case-insensitive and
// kept lower-cased.
type Attributes struct {
	attrsMap map[string]Attr
	keys     []string
}

// NewAttributes - creates new Attributes instance
func NewAttributes() *Attributes {
	return &Attributes{
		attrsMap: make(map[string]Attr),
	}
}

// Attrs builds Attributes from name, value pairs.
func Attrs(pairs ...string) *Attributes {
	if len(pairs)%2 != 0 {
		panic("htmlwriter: Attrs needs name, value pairs")
	}
	a := NewAttributes()
	for i := 0; i < len(pairs); i += 2 {
		a.Add(pairs[i], pairs[i+1])
	}
	return a
}

// Add - adds attribute if not exists and appends value to it
func (a *Attributes) Add(name, value string) *Attributes {
	name = strings.ToLower(name)
	if _, ok := a.attrsMap[name]; !ok {
		a.attrsMap[name] = make(Attr, 0)
		a.keys = append(a.keys, name)
	}

	a.attrsMap[name] = a.attrsMap[name].Add(value)
	return a
}

// Set - replaces the whole value of an attribute. A nil value records the
// attribute without a value.
func (a *Attributes) Set(name string, value Attr) *Attributes {
	name = strings.ToLower(name)
	if _, ok := a.attrsMap[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.attrsMap[name] = value
	return a
}

// Get - returns the value of an attribute
func (a *Attributes) Get(name string) (Attr, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.attrsMap[strings.ToLower(name)]
	return v, ok
}

// Remove - removes attribute by name
func (a *Attributes) Remove(name string) *Attributes {
	name = strings.ToLower(name)
	for i := range a.keys {
		if a.keys[i] == name {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}

	delete(a.attrsMap, name)
	return a
}

// Names returns the attribute names in insertion order.
func (a *Attributes) Names() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}

// Sorted returns the attribute names in alphabetical order.
func (a *Attributes) Sorted() []string {
	names := a.Names()
	sort.Strings(names)
	return names
}

// String renders the attributes in insertion order, unescaped. Used for
// debug output.
func (a *Attributes) String() string {
	r := []string{}
	for _, attrName := range a.Names() {
		r = append(r, attrName+"=\""+a.attrsMap[attrName].String()+"\"")
	}

	return strings.Join(r, " ")
}
