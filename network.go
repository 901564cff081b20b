package macid

import (
	"context"
	"slices"
	"strings"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// virtualInterfacePrefixes lists interface name prefixes that represent
// virtual, VPN, bridge, or ephemeral interfaces. Adapters with these names
// are reported as non-physical.
var virtualInterfacePrefixes = []string{
	// VPN and tunnel interfaces
	"utun", "tun", "tap", "ipsec", "ppp",
	// Docker and container bridges
	"docker", "br-", "veth",
	// Virtual bridges and switches
	"virbr", "vnet", "vmnet",
	// Thunderbolt bridge (changes with docking state)
	"bridge",
	// Loopback variants
	"lo",
	// WireGuard
	"wg",
	// Parallels / VirtualBox / VMware
	"vnic", "vboxnet",
}

// isVirtualInterface returns true if the interface name matches a known
// virtual, VPN, or bridge prefix.
func isVirtualInterface(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range virtualInterfacePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	return false
}

// queryInterfaceTable enumerates the OS interface table as legacy-schema
// records.
func queryInterfaceTable(ctx context.Context) (Enumeration, error) {
	interfaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, &QueryError{Schema: SchemaLegacy, Err: err}
	}

	return newStaticEnumeration(interfaceRecords(interfaces)), nil
}

// interfaceRecords converts interface table entries to legacy-schema records.
// Loopback and virtual interfaces are reported as non-physical.
func interfaceRecords(interfaces []psnet.InterfaceStat) []AdapterRecord {
	records := make([]AdapterRecord, 0, len(interfaces))

	for _, iface := range interfaces {
		loopback := slices.Contains(iface.Flags, "loopback")
		address := strings.TrimSpace(iface.HardwareAddr)

		records = append(records, AdapterRecord{
			Physical:     !loopback && !isVirtualInterface(iface.Name),
			Address:      address,
			HasAddress:   address != "",
			PreFormatted: true,
		})
	}

	return records
}
