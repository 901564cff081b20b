package macid

import (
	"context"
	"io"
)

// fakeHandle is a Handle test double that records how it was used.
type fakeHandle struct {
	physicalErr  error
	mediumErr    error
	addressErr   error
	closeErr     error
	record       AdapterRecord
	addressReads int
	closed       int
}

func (h *fakeHandle) Physical() (bool, error) {
	if h.physicalErr != nil {
		return false, h.physicalErr
	}

	return h.record.Physical, nil
}

func (h *fakeHandle) Medium() (uint32, bool, error) {
	if h.mediumErr != nil {
		return 0, false, h.mediumErr
	}

	return h.record.Medium, h.record.HasMedium, nil
}

func (h *fakeHandle) Address() (string, bool, error) {
	h.addressReads++
	if h.addressErr != nil {
		return "", false, h.addressErr
	}

	return h.record.Address, h.record.HasAddress, nil
}

func (h *fakeHandle) Close() error {
	h.closed++

	return h.closeErr
}

// fakeEnumeration yields its handles, then nextErr (io.EOF when unset).
type fakeEnumeration struct {
	nextErr  error
	closeErr error
	handles  []*fakeHandle
	pos      int
	closed   int
}

func (e *fakeEnumeration) Next() (Handle, error) {
	if e.pos >= len(e.handles) {
		if e.nextErr != nil {
			return nil, e.nextErr
		}

		return nil, io.EOF
	}

	h := e.handles[e.pos]
	e.pos++

	return h, nil
}

func (e *fakeEnumeration) Close() error {
	e.closed++

	return e.closeErr
}

// fakeQuerier serves fixed enumerations for both schemas.
type fakeQuerier struct {
	modernErr   error
	legacyErr   error
	modern      *fakeEnumeration
	legacy      *fakeEnumeration
	modernCalls int
	legacyCalls int
}

func (q *fakeQuerier) QueryModern(context.Context) (Enumeration, error) {
	q.modernCalls++
	if q.modernErr != nil {
		return nil, q.modernErr
	}

	return q.modern, nil
}

func (q *fakeQuerier) QueryLegacy(context.Context) (Enumeration, error) {
	q.legacyCalls++
	if q.legacyErr != nil {
		return nil, q.legacyErr
	}

	return q.legacy, nil
}

// modernRecord builds a modern-schema record.
func modernRecord(physical bool, medium uint32, address string) AdapterRecord {
	return AdapterRecord{
		Physical:   physical,
		Medium:     medium,
		HasMedium:  true,
		Address:    address,
		HasAddress: address != "",
	}
}

// legacyRecord builds a legacy-schema record.
func legacyRecord(physical bool, address string) AdapterRecord {
	return AdapterRecord{
		Physical:     physical,
		Address:      address,
		HasAddress:   address != "",
		PreFormatted: true,
	}
}

// enumerationOf wraps records in fake handles.
func enumerationOf(records ...AdapterRecord) *fakeEnumeration {
	e := &fakeEnumeration{}
	for _, r := range records {
		e.handles = append(e.handles, &fakeHandle{record: r})
	}

	return e
}
