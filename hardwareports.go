package macid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Line prefixes of `networksetup -listallhardwareports` output.
const (
	hardwarePortPrefix    = "Hardware Port:"
	hardwareDevicePrefix  = "Device:"
	hardwareAddressPrefix = "Ethernet Address:"
)

// hardwarePort is one entry of the macOS hardware port list.
type hardwarePort struct {
	Port    string
	Device  string
	Address string
}

// queryHardwarePorts lists macOS hardware ports as modern-schema records.
// A host without networksetup has no modern schema.
func queryHardwarePorts(ctx context.Context, executor CommandExecutor, logger *slog.Logger) (Enumeration, error) {
	output, err := executeCommand(ctx, executor, logger, "networksetup", "-listallhardwareports")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, unavailable(SchemaModern, err)
		}

		return nil, &QueryError{Schema: SchemaModern, Err: err}
	}

	ports, err := parseHardwarePorts(output)
	if err != nil {
		return nil, &QueryError{Schema: SchemaModern, Err: err}
	}

	return newStaticEnumeration(hardwarePortRecords(ports)), nil
}

// parseHardwarePorts extracts the port blocks from networksetup output.
func parseHardwarePorts(output string) ([]hardwarePort, error) {
	var (
		ports   []hardwarePort
		current *hardwarePort
	)

	for line := range strings.SplitSeq(output, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, hardwarePortPrefix):
			ports = append(ports, hardwarePort{
				Port: strings.TrimSpace(strings.TrimPrefix(line, hardwarePortPrefix)),
			})
			current = &ports[len(ports)-1]
		case current == nil:
			continue
		case strings.HasPrefix(line, hardwareDevicePrefix):
			current.Device = strings.TrimSpace(strings.TrimPrefix(line, hardwareDevicePrefix))
		case strings.HasPrefix(line, hardwareAddressPrefix):
			current.Address = strings.TrimSpace(strings.TrimPrefix(line, hardwareAddressPrefix))
		case line == "":
			current = nil
		}
	}

	if len(ports) == 0 && strings.TrimSpace(output) != "" {
		return nil, &ParseError{
			Source: "networksetup output",
			Err:    fmt.Errorf("no %q entries: %w", hardwarePortPrefix, ErrNotFound),
		}
	}

	return ports, nil
}

// hardwarePortRecords converts hardware ports to modern-schema records.
func hardwarePortRecords(ports []hardwarePort) []AdapterRecord {
	records := make([]AdapterRecord, 0, len(ports))

	for _, port := range ports {
		record := AdapterRecord{
			Physical:  port.Device != "" && !isVirtualInterface(port.Device),
			Medium:    MediumEthernet,
			HasMedium: true,
		}

		if isWirelessPort(port.Port) {
			record.Medium = MediumWireless
		}

		if port.Address != "" && !strings.EqualFold(port.Address, "N/A") {
			record.Address = rawHex(port.Address)
			record.HasAddress = true
		}

		records = append(records, record)
	}

	return records
}

// isWirelessPort reports whether a hardware port name denotes an 802.11 port.
func isWirelessPort(port string) bool {
	lower := strings.ToLower(port)

	return lower == "wi-fi" || lower == "airport" || strings.HasPrefix(lower, "wi-fi ")
}
