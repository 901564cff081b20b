package macid

// MediumWireless is the modern-schema medium type of a native 802.11 adapter.
const MediumWireless uint32 = 9

// MediumEthernet is the modern-schema medium type of an 802.3 adapter.
const MediumEthernet uint32 = 14

// AdapterRecord is one enumerated adapter as seen by the filter policy.
// Records from both schemas share this shape; legacy records never carry a
// medium type and are always PreFormatted.
type AdapterRecord struct {
	Address      string // hardware address, meaningful only when HasAddress
	Medium       uint32 // medium type, meaningful only when HasMedium
	Physical     bool   // backed by real hardware
	HasMedium    bool
	HasAddress   bool
	PreFormatted bool // address is already in separated form
}

// Keep reports whether record passes the exclusion filters.
// A record without a medium type is never rejected as wireless.
func Keep(record AdapterRecord, excludeNonPhysical, excludeWireless bool) bool {
	if excludeNonPhysical && !record.Physical {
		return false
	}

	if excludeWireless && record.HasMedium && record.Medium == MediumWireless {
		return false
	}

	return true
}
