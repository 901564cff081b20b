// Package macid derives a device-identifier component from the hardware
// addresses of the host's network adapters. The value is stable across
// reboots but changes when adapters are added or replaced, making it one
// useful input to a composite device fingerprint.
//
// # Overview
//
// A [Component] enumerates adapters through a [Querier]. Two schemas exist:
//
//   - the modern schema ([SchemaModern]) reports a medium type, so wireless
//     adapters can be excluded, and yields raw hex addresses that are
//     rendered as colon-separated pairs by [FormatAddress];
//   - the legacy schema ([SchemaLegacy]) has no medium type and yields
//     addresses that are already separated.
//
// The modern schema is always tried first. If it fails with
// [ErrSchemaUnavailable] the legacy schema is queried instead; any other
// failure is returned unchanged. Results of the two schemas are never mixed.
//
// # Quick Start
//
//	value, err := macid.New().
//		WithExcludeNonPhysical().
//		WithExcludeWireless().
//		Value(ctx)
//
// The value is the ordered list of addresses joined with commas, for
// example "AA:BB:CC:DD:EE:FF,00:11:22:33:44:55". [Name] tags the component
// inside a composite identifier.
//
// # Filters
//
//   - [Component.WithExcludeNonPhysical] drops virtual, VPN, and container
//     adapters.
//   - [Component.WithExcludeWireless] drops 802.11 adapters. The legacy
//     schema cannot tell them apart, so wireless adapters are kept after a
//     fallback.
//
// # Diagnostics
//
// [Component.Collect] returns a [Result] with the schema that served the
// addresses, the error that caused a fallback, and per-pass [Counts].
//
// # Platform Support
//
// On Windows the modern schema is WMI MSFT_NetAdapter (root\StandardCimv2)
// and the legacy schema is WMI Win32_NetworkAdapter. On Linux the modern
// schema is /sys/class/net; on macOS it is the networksetup hardware port
// list. Elsewhere, and as the legacy schema on Linux and macOS, the OS
// interface table is used.
//
// # Testing
//
// Inject a custom [Querier] via [Component.WithQuerier] to replace the
// host's adapters with deterministic test doubles.
//
// # CLI Tool
//
// A command-line tool is provided in cmd/macid:
//
//	macid --exclude-non-physical --exclude-wireless
//	macid --json --diagnostics
//	macid --version
package macid
