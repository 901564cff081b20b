//go:build windows

package macid

import (
	"context"

	"github.com/yusufpapurcu/wmi"
)

// windowsQuerier enumerates adapters through WMI.
type windowsQuerier struct {
	component *Component
}

func newSystemQuerier(c *Component) Querier {
	return &windowsQuerier{component: c}
}

// QueryModern reads MSFT_NetAdapter, which exists from Windows 8 on.
func (q *windowsQuerier) QueryModern(_ context.Context) (Enumeration, error) {
	var adapters []msftNetAdapter
	q.component.logDebug("wmi query", "namespace", modernNamespace, "query", modernQuery)
	if err := wmi.QueryNamespace(modernQuery, &adapters, modernNamespace); err != nil {
		if isSchemaMissing(err) {
			return nil, unavailable(SchemaModern, err)
		}

		return nil, &QueryError{Schema: SchemaModern, Err: err}
	}

	return newStaticEnumeration(msftRecords(adapters)), nil
}

// QueryLegacy reads Win32_NetworkAdapter from the default namespace.
func (q *windowsQuerier) QueryLegacy(_ context.Context) (Enumeration, error) {
	var adapters []win32NetworkAdapter
	q.component.logDebug("wmi query", "query", legacyQuery)
	if err := wmi.Query(legacyQuery, &adapters); err != nil {
		return nil, &QueryError{Schema: SchemaLegacy, Err: err}
	}

	return newStaticEnumeration(win32Records(adapters)), nil
}
