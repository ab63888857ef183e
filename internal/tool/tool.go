package tool

import "context"

// Param types understood by argument normalization.
const (
	TypeString  = "string"
	TypeInteger = "integer"
)

// Param declares one tool parameter. Default is the value substituted for an
// absent required parameter in permissive dispatch mode; it is not part of
// the published schema.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	Default     string `json:"-"`
}

// Descriptor is the static metadata of one tool. Descriptors are defined at
// process start and never change.
type Descriptor struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"parameters"`
}

// Args holds normalized arguments for a handler invocation.
type Args map[string]any

// String returns the named argument as a string, or "" when absent.
func (a Args) String(name string) string {
	if v, ok := a[name].(string); ok {
		return v
	}
	return ""
}

// Int returns the named argument as an int.
func (a Args) Int(name string) (int, bool) {
	v, ok := a[name].(int)
	return v, ok
}

// Result is the tagged outcome of one tool invocation. Message is the
// human-readable narration; Data carries the structured payload. A failed
// Result is an expected domain outcome, not a fault.
type Result struct {
	Success bool
	Message string
	Data    map[string]any
}

// Handler executes one tool call with normalized arguments. It returns an
// error only for infrastructure faults; domain failures come back as a
// Result with Success false.
type Handler func(ctx context.Context, args Args) (*Result, error)
