package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'rendercore.dom'
func tracer() tracing.Trace {
	return tracing.Select("rendercore.dom")
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Value
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds the specified CSS properties of a styled node.
// nil is a legal (empty) property map. Keys are unique; setting a key a
// second time overwrites its value.
type PropertyMap struct {
	m map[string]Value // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, kv := range pmap.Properties() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(kv.Key)
		b.WriteString(":")
		b.WriteString(kv.Value.String())
		b.WriteString(";")
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of properties.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Value, bool) {
	if pmap == nil || pmap.m == nil {
		return NullValue, false
	}
	v, ok := pmap.m[key]
	return v, ok
}

// Lookup returns the value for key. If key is not set, it falls back to
// the value for fallbackKey, and if that is unset too, to def.
//
//     pm.Lookup("margin-left", "margin", style.Pixels(0))
//
func (pmap *PropertyMap) Lookup(key, fallbackKey string, def Value) Value {
	if v, ok := pmap.Property(key); ok {
		return v
	}
	if v, ok := pmap.Property(fallbackKey); ok {
		return v
	}
	return def
}

// Set a property's value. Overwrites an existing value, if present.
func (pmap *PropertyMap) Set(key string, v Value) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]Value)
	}
	pmap.m[key] = v
}

// Add a property's value. Does not overwrite an existing value, i.e., does
// nothing if a value is already set.
func (pmap *PropertyMap) Add(key string, v Value) {
	if _, exists := pmap.Property(key); exists {
		return
	}
	pmap.Set(key, v)
}

// Properties returns all properties of a map, sorted by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap.Size() == 0 {
		return nil
	}
	r := make([]KeyValue, 0, len(pmap.m))
	for k, v := range pmap.m {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// AsMap returns a copy of the properties as a Go map.
func (pmap *PropertyMap) AsMap() map[string]Value {
	r := make(map[string]Value, pmap.Size())
	if pmap != nil {
		for k, v := range pmap.m {
			r[k] = v
		}
	}
	return r
}

// --- CSS Property Groups ----------------------------------------------

// Symbolic names for string literals, denoting property groups. Groups are
// used for diagnostic output only.
const (
	PGMargins    = "Margins"
	PGPadding    = "Padding"
	PGBorder     = "Border"
	PGDimension  = "Dimension"
	PGDisplay    = "Display"
	PGBackground = "Background"
	PGX          = "X"
)

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	switch {
	case key == "margin" || strings.HasPrefix(key, "margin-"):
		return PGMargins
	case key == "padding" || strings.HasPrefix(key, "padding-"):
		return PGPadding
	case key == "border" || strings.HasPrefix(key, "border-"):
		return PGBorder
	case key == "background" || strings.HasPrefix(key, "background-"):
		return PGBackground
	}
	switch key {
	case "width", "height", "min-width", "min-height", "max-width", "max-height":
		return PGDimension
	case "display", "float", "visibility", "position":
		return PGDisplay
	}
	return PGX
}

// GroupProperties splits the properties of a map into groups, keyed by
// group name.
func (pmap *PropertyMap) GroupProperties() map[string][]KeyValue {
	groups := make(map[string][]KeyValue)
	for _, kv := range pmap.Properties() {
		g := GroupNameFromPropertyKey(kv.Key)
		groups[g] = append(groups[g], kv)
	}
	return groups
}
