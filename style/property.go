package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "strings"

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial".
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit".
func (p Property) IsInherit() bool {
	return p == "inherit"
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

// PropertyMap holds the computed style values of one element, as
// produced by the cascade engine. Inheritance and cascading are resolved
// by the engine before values end up here, so the map is flat.
type PropertyMap struct {
	propsDict map[string]Property
}

// NewPropertyMap creates an empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

// Property returns the value set for key.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	if pmap == nil || pmap.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pmap.propsDict[key]
	return p, ok
}

// IsSet is a predicate wether a property is set within this map.
func (pmap *PropertyMap) IsSet(key string) bool {
	p, ok := pmap.Property(key)
	return ok && !p.IsEmpty()
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case.
func (pmap *PropertyMap) Set(key string, p Property) {
	p = Property(strings.ToLower(string(p)))
	if pmap.propsDict == nil {
		pmap.propsDict = make(map[string]Property)
	}
	pmap.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e.,
// does nothing if a value is already set.
func (pmap *PropertyMap) Add(key string, p Property) {
	if pmap.propsDict == nil {
		pmap.propsDict = make(map[string]Property)
	}
	if _, exists := pmap.propsDict[key]; !exists {
		pmap.propsDict[key] = Property(strings.ToLower(string(p)))
	}
}

// Properties returns all properties of the map.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap == nil {
		return nil
	}
	r := make([]KeyValue, 0, len(pmap.propsDict))
	for k, v := range pmap.propsDict {
		r = append(r, KeyValue{k, v})
	}
	return r
}

// Size returns the number of properties set.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.propsDict)
}
