package macid

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [Component.Collect] and the platform queriers.
var (
	// ErrSchemaUnavailable is returned by a [Querier] when the modern adapter
	// schema is not present on the host. It is the only error that makes
	// [Component.Collect] fall back to the legacy schema.
	ErrSchemaUnavailable = errors.New("adapter schema unavailable")

	// ErrNotFound is returned when a value is not found in command output
	// or system files.
	ErrNotFound = errors.New("value not found")
)

// QueryError records a failed adapter query against one schema.
// Use [errors.As] to extract the schema from wrapped errors.
type QueryError struct {
	Schema Schema // schema that was queried
	Err    error  // underlying error from the platform interface
}

// Error returns a human-readable description of the query failure.
func (e *QueryError) Error() string {
	return fmt.Sprintf("%s adapter query failed: %v", e.Schema, e.Err)
}

// Unwrap returns the underlying error.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// CommandError records a failed system command execution.
// Use [errors.As] to extract the command name from wrapped errors.
type CommandError struct {
	Command string // command name, e.g. "networksetup"
	Err     error  // underlying error from exec
}

// Error returns a human-readable description of the command failure.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ParseError records a failure while parsing command or system output.
// Use [errors.As] to extract the source from wrapped errors.
type ParseError struct {
	Source string // data source, e.g. "networksetup output", "sysfs"
	Err    error  // underlying parse error
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// unavailable wraps err so that it matches [ErrSchemaUnavailable] while
// keeping the platform cause in the chain.
func unavailable(schema Schema, err error) error {
	if err == nil {
		err = ErrSchemaUnavailable
	} else {
		err = fmt.Errorf("%w: %w", ErrSchemaUnavailable, err)
	}

	return &QueryError{Schema: schema, Err: err}
}
