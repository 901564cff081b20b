//go:build !linux && !darwin && !windows

package macid

import "context"

// interfaceTableQuerier only has the interface table; there is no modern
// schema on these platforms.
type interfaceTableQuerier struct{}

func newSystemQuerier(*Component) Querier {
	return interfaceTableQuerier{}
}

func (interfaceTableQuerier) QueryModern(context.Context) (Enumeration, error) {
	return nil, unavailable(SchemaModern, nil)
}

func (interfaceTableQuerier) QueryLegacy(ctx context.Context) (Enumeration, error) {
	return queryInterfaceTable(ctx)
}
