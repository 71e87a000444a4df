package game

import (
	"fmt"
	"strconv"
)

// Condition is one data-defined trigger predicate of an event. The event
// engine owns the meaning of each Type.
type Condition struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params,omitempty"`
	Negate bool           `json:"negate,omitempty"`
}

func (c Condition) Validate() error {
	if c.Type == "" {
		return fmt.Errorf("condition type is required")
	}
	return nil
}

// String returns a string parameter, or "" when absent.
func (c Condition) String(name string) string {
	return paramString(c.Params, name)
}

// Bool returns a boolean parameter, or false when absent.
func (c Condition) Bool(name string) bool {
	return paramBool(c.Params, name)
}

// Change is the mutation an event applies to its affected objects.
type Change struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params,omitempty"`
}

func (c Change) Validate() error {
	if c.Type == "" {
		return fmt.Errorf("change type is required")
	}
	return nil
}

// String returns a string parameter, or "" when absent.
func (c Change) String(name string) string {
	return paramString(c.Params, name)
}

func paramString(params map[string]any, name string) string {
	switch v := params[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func paramBool(params map[string]any, name string) bool {
	switch v := params[name].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}
