package macid

import (
	"errors"
	"strings"

	"github.com/go-ole/go-ole"
)

// WMI queries and the namespace of the modern adapter class.
const (
	modernNamespace = `root\StandardCimv2`
	modernQuery     = "SELECT ConnectorPresent, NdisPhysicalMedium, PermanentAddress FROM MSFT_NetAdapter"
	legacyQuery     = "SELECT PhysicalAdapter, MACAddress FROM Win32_NetworkAdapter"
)

// WMI status codes that mean the queried namespace or class does not exist.
const (
	wbemInvalidNamespace = 0x8004100E
	wbemInvalidClass     = 0x80041010
	wbemNotFound         = 0x80041002
)

// msftNetAdapter holds the MSFT_NetAdapter properties read by the modern query.
type msftNetAdapter struct {
	ConnectorPresent   *bool
	NdisPhysicalMedium *uint32
	PermanentAddress   *string
}

// win32NetworkAdapter holds the Win32_NetworkAdapter properties read by the
// legacy query.
type win32NetworkAdapter struct {
	PhysicalAdapter *bool
	MACAddress      *string
}

// msftRecords converts MSFT_NetAdapter rows to modern-schema records.
// NULL properties become a non-physical adapter without medium or address.
func msftRecords(adapters []msftNetAdapter) []AdapterRecord {
	records := make([]AdapterRecord, 0, len(adapters))

	for _, a := range adapters {
		record := AdapterRecord{Physical: deref(a.ConnectorPresent)}
		if a.NdisPhysicalMedium != nil {
			record.Medium = *a.NdisPhysicalMedium
			record.HasMedium = true
		}
		if a.PermanentAddress != nil && *a.PermanentAddress != "" {
			record.Address = *a.PermanentAddress
			record.HasAddress = true
		}
		records = append(records, record)
	}

	return records
}

// win32Records converts Win32_NetworkAdapter rows to legacy-schema records.
func win32Records(adapters []win32NetworkAdapter) []AdapterRecord {
	records := make([]AdapterRecord, 0, len(adapters))

	for _, a := range adapters {
		record := AdapterRecord{Physical: deref(a.PhysicalAdapter), PreFormatted: true}
		if a.MACAddress != nil && *a.MACAddress != "" {
			record.Address = *a.MACAddress
			record.HasAddress = true
		}
		records = append(records, record)
	}

	return records
}

// isSchemaMissing reports whether err is a WMI failure caused by a missing
// namespace or class.
func isSchemaMissing(err error) bool {
	var oleErr *ole.OleError
	if !errors.As(err, &oleErr) {
		return false
	}

	switch uint32(oleErr.Code()) {
	case wbemInvalidNamespace, wbemInvalidClass, wbemNotFound:
		return true
	}

	// Dispatch exceptions carry the WMI status only in their description.
	description := strings.ToLower(oleErr.Description())

	return strings.Contains(description, "invalid namespace") ||
		strings.Contains(description, "invalid class")
}

func deref(b *bool) bool {
	return b != nil && *b
}
