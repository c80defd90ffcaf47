package types

// InstallerFunc is a zero-argument routine that performs one
// idempotent-intended setup action and returns a result value. A non-nil
// error is treated the same way as a failing test outcome: fatal for the
// current run.
type InstallerFunc func() (interface{}, error)

// TestFunc maps an installer's result value to a success boolean.
type TestFunc func(result interface{}) bool

// Descriptor is a fully normalized installer registration. Raw input goes
// through registry normalization before it becomes a Descriptor; after
// that the value is never mutated.
type Descriptor struct {
	// Package is the unique identifier this descriptor is registered under
	Package string

	// Name is the display name used in console output and logs.
	// Defaults to Package when the caller does not provide one.
	Name string

	// Priority orders execution: higher runs sooner. Defaults to 0.
	Priority int

	// Install performs the actual installation work
	Install InstallerFunc

	// Test decides whether Install's result counts as success.
	// Defaults to Truthy.
	Test TestFunc
}

// DescriptorInput is the raw shape accepted by registration. Install is
// required; everything else is optional and filled in by normalization.
type DescriptorInput struct {
	Name     string
	Priority *int
	Install  InstallerFunc
	Test     TestFunc
}

// Truthy is the default test predicate: it coerces an arbitrary result
// value to a boolean. nil, false, empty strings and zero numbers are
// false; everything else is true.
func Truthy(result interface{}) bool {
	switch v := result.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}
