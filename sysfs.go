package macid

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// defaultSysfsNetRoot is where Linux exposes one directory per network interface.
const defaultSysfsNetRoot = "/sys/class/net"

// arphrdEther is the ARP hardware type of Ethernet-like interfaces.
const arphrdEther = 1

// zeroAddress is reported by sysfs for interfaces without a hardware address.
const zeroAddress = "00:00:00:00:00:00"

// openSysfs opens the sysfs interface directory as a modern-schema
// enumeration. A missing directory means the schema is unavailable.
func openSysfs(root string) (Enumeration, error) {
	dir, err := os.Open(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, unavailable(SchemaModern, err)
		}

		return nil, &QueryError{Schema: SchemaModern, Err: err}
	}

	return &sysfsEnumeration{root: root, dir: dir}, nil
}

// sysfsEnumeration reads interface names from an open sysfs directory.
type sysfsEnumeration struct {
	dir  *os.File
	root string
}

func (e *sysfsEnumeration) Next() (Handle, error) {
	entries, err := e.dir.ReadDir(1)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, &QueryError{Schema: SchemaModern, Err: err}
	}

	return &sysfsHandle{path: filepath.Join(e.root, entries[0].Name())}, nil
}

func (e *sysfsEnumeration) Close() error {
	return e.dir.Close()
}

// sysfsHandle reads the attributes of one interface directory on demand.
type sysfsHandle struct {
	path string
}

// Physical reports whether the interface is bound to a bus device.
func (h *sysfsHandle) Physical() (bool, error) {
	return h.exists("device")
}

// Medium reports 802.11 for wireless interfaces and 802.3 for other
// Ethernet-like interfaces. Other link types have no medium.
func (h *sysfsHandle) Medium() (uint32, bool, error) {
	for _, name := range []string{"wireless", "phy80211"} {
		ok, err := h.exists(name)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return MediumWireless, true, nil
		}
	}

	value, err := h.read("type")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, false, nil
		}

		return 0, false, err
	}

	linkType, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, &ParseError{Source: "sysfs type", Err: err}
	}
	if linkType == arphrdEther {
		return MediumEthernet, true, nil
	}

	return 0, false, nil
}

// Address returns the interface address as raw hex.
func (h *sysfsHandle) Address() (string, bool, error) {
	value, err := h.read("address")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}

		return "", false, err
	}

	if value == "" || value == zeroAddress {
		return "", false, nil
	}

	return rawHex(value), true, nil
}

func (h *sysfsHandle) Close() error { return nil }

func (h *sysfsHandle) exists(name string) (bool, error) {
	_, err := os.Lstat(filepath.Join(h.path, name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

func (h *sysfsHandle) read(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(h.path, name))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
