//go:build darwin

package macid

import "context"

// darwinQuerier reads macOS hardware ports, falling back to the interface table.
type darwinQuerier struct {
	component *Component
}

func newSystemQuerier(c *Component) Querier {
	return &darwinQuerier{component: c}
}

// QueryModern lists hardware ports with networksetup.
func (q *darwinQuerier) QueryModern(ctx context.Context) (Enumeration, error) {
	return queryHardwarePorts(ctx, q.component.commandExecutor, q.component.logger)
}

// QueryLegacy enumerates the interface table.
func (q *darwinQuerier) QueryLegacy(ctx context.Context) (Enumeration, error) {
	return queryInterfaceTable(ctx)
}
