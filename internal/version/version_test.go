package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStampedVersion(t *testing.T) {
	savedVersion, savedCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = savedVersion, savedCommit })

	Version = "1.2.3"
	GitCommit = "abc123"

	assert.Equal(t, "macid version: 1.2.3", Short("macid"))
	assert.Contains(t, Long("macid"), "Git commit: abc123")
	assert.True(t, strings.HasPrefix(Long("macid"), "macid version: 1.2.3, "))
}

func TestDefaultVersion(t *testing.T) {
	assert.True(t, strings.HasPrefix(Short("macid"), "macid version: "))
	assert.Contains(t, Long("macid"), "Go version: ")
}
