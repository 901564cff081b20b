package macid

import (
	"context"
	"io"
)

// Schema identifies one of the two adapter enumeration schemas.
type Schema int

const (
	// SchemaModern is the current adapter schema. It carries a medium type,
	// so wireless adapters can be told apart, and yields raw hex addresses.
	SchemaModern Schema = iota
	// SchemaLegacy is the older adapter schema. It has no medium type and
	// yields addresses that are already separator-formatted.
	SchemaLegacy
)

// String returns the schema name used in logs and diagnostics.
func (s Schema) String() string {
	switch s {
	case SchemaModern:
		return "modern"
	case SchemaLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Querier is the device-management interface the component enumerates
// adapters through. QueryModern fails with an error matching
// [ErrSchemaUnavailable] when the modern schema does not exist on the host.
type Querier interface {
	QueryModern(ctx context.Context) (Enumeration, error)
	QueryLegacy(ctx context.Context) (Enumeration, error)
}

// Enumeration is an open adapter enumeration. Next returns [io.EOF] once all
// adapters have been returned. Close must be called once the caller is done,
// whether or not the enumeration was exhausted.
type Enumeration interface {
	Next() (Handle, error)
	Close() error
}

// Handle gives access to one enumerated adapter. Fields are read lazily, so
// a filtered-out adapter never has its address read. Close releases the
// handle and must be called on every path.
type Handle interface {
	// Physical reports whether the adapter is backed by real hardware.
	Physical() (bool, error)
	// Medium returns the physical medium type. ok is false when the schema
	// has no such field.
	Medium() (medium uint32, ok bool, err error)
	// Address returns the hardware address. ok is false when the adapter
	// has no value for it; a present address is never empty.
	Address() (address string, ok bool, err error)
	Close() error
}

// staticHandle is a Handle over values that were loaded up front.
type staticHandle struct {
	record AdapterRecord
}

func (h *staticHandle) Physical() (bool, error) { return h.record.Physical, nil }

func (h *staticHandle) Medium() (uint32, bool, error) {
	return h.record.Medium, h.record.HasMedium, nil
}

func (h *staticHandle) Address() (string, bool, error) {
	if h.record.Address == "" {
		return "", false, nil
	}

	return h.record.Address, h.record.HasAddress, nil
}

func (h *staticHandle) Close() error { return nil }

// staticEnumeration yields records that a platform query already
// materialized, such as parsed command output.
type staticEnumeration struct {
	records []AdapterRecord
	pos     int
}

// newStaticEnumeration returns an Enumeration over records.
func newStaticEnumeration(records []AdapterRecord) *staticEnumeration {
	return &staticEnumeration{records: records}
}

func (e *staticEnumeration) Next() (Handle, error) {
	if e.pos >= len(e.records) {
		return nil, io.EOF
	}

	h := &staticHandle{record: e.records[e.pos]}
	e.pos++

	return h, nil
}

func (e *staticEnumeration) Close() error {
	e.records = nil

	return nil
}
