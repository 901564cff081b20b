//go:build linux

package macid

import "context"

// linuxQuerier reads adapters from sysfs, falling back to the interface table.
type linuxQuerier struct {
	component *Component
	sysfsRoot string
}

func newSystemQuerier(c *Component) Querier {
	return &linuxQuerier{component: c, sysfsRoot: defaultSysfsNetRoot}
}

// QueryModern enumerates /sys/class/net.
func (q *linuxQuerier) QueryModern(ctx context.Context) (Enumeration, error) {
	if err := ctx.Err(); err != nil {
		return nil, &QueryError{Schema: SchemaModern, Err: err}
	}

	q.component.logDebug("reading sysfs interfaces", "root", q.sysfsRoot)

	return openSysfs(q.sysfsRoot)
}

// QueryLegacy enumerates the kernel interface table.
func (q *linuxQuerier) QueryLegacy(ctx context.Context) (Enumeration, error) {
	return queryInterfaceTable(ctx)
}
