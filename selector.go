package macid

import (
	"context"
	"errors"
)

// selectorState is a state of the schema selection machine run by
// [Component.Collect].
type selectorState int

const (
	stateTryModern selectorState = iota
	stateTryLegacy
	stateDone
	stateFailed
)

func (s selectorState) String() string {
	switch s {
	case stateTryModern:
		return "try-modern"
	case stateTryLegacy:
		return "try-legacy"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// nextState returns the state that follows s after an attempt finished with
// err. Only the modern attempt can fall back, and only on
// [ErrSchemaUnavailable].
func nextState(s selectorState, err error) selectorState {
	switch s {
	case stateTryModern:
		switch {
		case err == nil:
			return stateDone
		case errors.Is(err, ErrSchemaUnavailable):
			return stateTryLegacy
		default:
			return stateFailed
		}
	case stateTryLegacy:
		if err == nil {
			return stateDone
		}

		return stateFailed
	default:
		return s
	}
}

// Result is the outcome of one [Component.Collect] call.
type Result struct {
	// Fallback holds the error that made the modern schema unavailable.
	// It is nil when the modern schema served the result.
	Fallback  error
	Addresses []string
	Counts    Counts
	Schema    Schema // schema that produced Addresses
}

// Value returns the comma-joined addresses.
func (r *Result) Value() string {
	return Join(r.Addresses)
}

// Collect enumerates the host's adapters, trying the modern schema first and
// falling back to the legacy schema when the modern one is unavailable.
// Any other failure is returned unchanged; results of the two schemas are
// never combined.
func (c *Component) Collect(ctx context.Context) (*Result, error) {
	var (
		result = &Result{}
		state  = stateTryModern
		err    error
	)

	for {
		switch state {
		case stateTryModern:
			c.logDebug("querying adapters", "schema", SchemaModern)
			result.Schema = SchemaModern
			result.Addresses, err = c.modernAddresses(ctx, &result.Counts)
		case stateTryLegacy:
			c.logInfo("modern adapter schema unavailable, falling back", "schema", SchemaLegacy, "cause", err)
			result.Fallback = err
			result.Schema = SchemaLegacy
			result.Counts = Counts{}
			result.Addresses, err = c.legacyAddresses(ctx, &result.Counts)
		case stateDone:
			c.logInfo("adapter addresses collected",
				"schema", result.Schema,
				"count", len(result.Addresses),
				"enumerated", result.Counts.Enumerated,
				"excluded", result.Counts.Excluded,
				"missing", result.Counts.Missing,
			)

			return result, nil
		case stateFailed:
			c.logWarn("adapter query failed", "schema", result.Schema, "error", err)

			return nil, err
		}

		state = nextState(state, err)
	}
}

// Addresses returns the ordered hardware addresses of the host's adapters.
func (c *Component) Addresses(ctx context.Context) ([]string, error) {
	result, err := c.Collect(ctx)
	if err != nil {
		return nil, err
	}

	return result.Addresses, nil
}

// Value returns the component value: the host's adapter addresses joined
// with commas. It fails if the adapter query fails for any reason other than
// the modern schema being unavailable.
func (c *Component) Value(ctx context.Context) (string, error) {
	result, err := c.Collect(ctx)
	if err != nil {
		return "", err
	}

	return result.Value(), nil
}
