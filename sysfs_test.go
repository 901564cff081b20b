package macid

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSysfsInterface creates a fake /sys/class/net/<name> directory.
func writeSysfsInterface(t *testing.T, root, name string, files map[string]string, dirs ...string) {
	t.Helper()

	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	for file, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content+"\n"), 0o644))
	}
	for _, sub := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0o755))
	}
}

func TestSysfsEnumeration(t *testing.T) {
	root := t.TempDir()
	writeSysfsInterface(t, root, "eth0", map[string]string{"address": "aa:bb:cc:dd:ee:ff", "type": "1"}, "device")
	writeSysfsInterface(t, root, "wlan0", map[string]string{"address": "00:11:22:33:44:55", "type": "1"}, "device", "wireless")
	writeSysfsInterface(t, root, "lo", map[string]string{"address": "00:00:00:00:00:00", "type": "772"})
	writeSysfsInterface(t, root, "docker0", map[string]string{"address": "02:42:ac:11:00:02", "type": "1"})

	enum, err := openSysfs(root)
	require.NoError(t, err)
	defer enum.Close()

	type adapter struct {
		medium    uint32
		hasMedium bool
		physical  bool
		address   string
		hasAddr   bool
	}

	got := map[string]adapter{}
	for {
		h, err := enum.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		physical, err := h.Physical()
		require.NoError(t, err)
		medium, hasMedium, err := h.Medium()
		require.NoError(t, err)
		address, hasAddr, err := h.Address()
		require.NoError(t, err)
		require.NoError(t, h.Close())

		got[filepath.Base(h.(*sysfsHandle).path)] = adapter{medium, hasMedium, physical, address, hasAddr}
	}

	assert.Equal(t, map[string]adapter{
		"eth0":    {MediumEthernet, true, true, "AABBCCDDEEFF", true},
		"wlan0":   {MediumWireless, true, true, "001122334455", true},
		"lo":      {0, false, false, "", false},
		"docker0": {MediumEthernet, true, false, "0242AC110002", true},
	}, got)
}

func TestSysfsMissingRootIsUnavailable(t *testing.T) {
	_, err := openSysfs(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, ErrSchemaUnavailable)

	var queryErr *QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, SchemaModern, queryErr.Schema)
}

func TestSysfsInvalidType(t *testing.T) {
	root := t.TempDir()
	writeSysfsInterface(t, root, "eth0", map[string]string{"type": "ether"})

	h := &sysfsHandle{path: filepath.Join(root, "eth0")}
	_, _, err := h.Medium()

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "sysfs type", parseErr.Source)
}

func TestSysfsThroughComponent(t *testing.T) {
	root := t.TempDir()
	writeSysfsInterface(t, root, "eth0", map[string]string{"address": "aa:bb:cc:dd:ee:ff", "type": "1"}, "device")
	writeSysfsInterface(t, root, "wlan0", map[string]string{"address": "00:11:22:33:44:55", "type": "1"}, "device", "phy80211")
	writeSysfsInterface(t, root, "veth12", map[string]string{"address": "7e:11:22:33:44:55", "type": "1"})

	q := sysfsQuerier{root: root}
	value, err := New().WithQuerier(q).WithExcludeNonPhysical().WithExcludeWireless().Value(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", value)
}

// sysfsQuerier serves a fixture sysfs tree as the modern schema.
type sysfsQuerier struct {
	root string
}

func (q sysfsQuerier) QueryModern(context.Context) (Enumeration, error) {
	return openSysfs(q.root)
}

func (q sysfsQuerier) QueryLegacy(context.Context) (Enumeration, error) {
	return nil, errors.New("legacy schema not expected")
}
