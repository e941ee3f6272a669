package engine

import (
	"fmt"
	"sort"
)

// Serializable is implemented by components that can be created from scene files.
type Serializable interface {
	Component
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

// ComponentFactory creates an empty, default-initialized component.
type ComponentFactory func() Serializable

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent makes a component type constructible by name. Called from
// init functions; registering the same name twice panics.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent builds a registered component and applies data to it.
// Returns nil for unknown names.
func CreateComponent(name string, data map[string]any) Serializable {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil
	}
	c := factory()
	if data != nil {
		c.Deserialize(data)
	}
	return c
}

// GetRegisteredComponents returns all registered component names, sorted.
func GetRegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Float32 reads a numeric JSON/YAML value as float32.
func Float32(data map[string]any, key string) (float32, bool) {
	switch v := data[key].(type) {
	case float64:
		return float32(v), true
	case float32:
		return v, true
	case int:
		return float32(v), true
	}
	return 0, false
}

// Vector3 reads a three-element numeric array.
func Vector3(data map[string]any, key string) ([3]float32, bool) {
	var out [3]float32
	switch v := data[key].(type) {
	case []any:
		if len(v) != 3 {
			return out, false
		}
		for i, e := range v {
			switch n := e.(type) {
			case float64:
				out[i] = float32(n)
			case int:
				out[i] = float32(n)
			default:
				return out, false
			}
		}
		return out, true
	case [3]float32:
		return v, true
	}
	return out, false
}
