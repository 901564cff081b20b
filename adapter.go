package macid

import (
	"context"
	"errors"
	"io"
)

// Counts tallies what happened to the adapters of one enumeration pass.
type Counts struct {
	Enumerated int // handles returned by the enumeration
	Excluded   int // rejected by the filter policy
	Missing    int // kept but without a hardware address
}

// modernAddresses enumerates the modern schema. The wireless filter applies
// and raw addresses are canonicalized with [FormatAddress].
func (c *Component) modernAddresses(ctx context.Context, counts *Counts) ([]string, error) {
	enum, err := c.querier.QueryModern(ctx)
	if err != nil {
		return nil, err
	}

	return drain(enum, func(h Handle) (string, bool, error) {
		counts.Enumerated++

		physical, err := h.Physical()
		if err != nil {
			return "", false, err
		}

		medium, hasMedium, err := h.Medium()
		if err != nil {
			return "", false, err
		}

		record := AdapterRecord{Physical: physical, Medium: medium, HasMedium: hasMedium}
		if !Keep(record, c.excludeNonPhysical, c.excludeWireless) {
			counts.Excluded++
			c.logDebug("adapter excluded", "schema", SchemaModern, "physical", physical, "medium", medium)

			return "", false, nil
		}

		address, ok, err := h.Address()
		if err != nil {
			return "", false, err
		}
		if !ok || address == "" {
			counts.Missing++

			return "", false, nil
		}

		return FormatAddress(address), true, nil
	})
}

// legacyAddresses enumerates the legacy schema. The schema has no medium
// type, so the wireless filter is never applied, and addresses are kept as
// delivered.
func (c *Component) legacyAddresses(ctx context.Context, counts *Counts) ([]string, error) {
	enum, err := c.querier.QueryLegacy(ctx)
	if err != nil {
		return nil, err
	}

	return drain(enum, func(h Handle) (string, bool, error) {
		counts.Enumerated++

		physical, err := h.Physical()
		if err != nil {
			return "", false, err
		}

		record := AdapterRecord{Physical: physical, PreFormatted: true}
		if !Keep(record, c.excludeNonPhysical, false) {
			counts.Excluded++
			c.logDebug("adapter excluded", "schema", SchemaLegacy, "physical", physical)

			return "", false, nil
		}

		address, ok, err := h.Address()
		if err != nil {
			return "", false, err
		}
		if !ok || address == "" {
			counts.Missing++

			return "", false, nil
		}

		return address, true, nil
	})
}

// drain walks enum, collecting the values visit accepts. The enumeration and
// every handle are closed before drain returns, and close errors are joined
// into the result.
func drain(enum Enumeration, visit func(Handle) (string, bool, error)) (values []string, err error) {
	defer func() {
		err = errors.Join(err, enum.Close())
		if err != nil {
			values = nil
		}
	}()

	for {
		h, err := enum.Next()
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		if err != nil {
			return nil, err
		}

		value, ok, err := visitHandle(h, visit)
		if err != nil {
			return nil, err
		}
		if ok {
			values = append(values, value)
		}
	}
}

// visitHandle runs visit on h and closes h on every exit path.
func visitHandle(h Handle, visit func(Handle) (string, bool, error)) (value string, ok bool, err error) {
	defer func() {
		err = errors.Join(err, h.Close())
	}()

	return visit(h)
}
