package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	orig := []string{Version, CommitHash, BuildDate}
	t.Cleanup(func() { Version, CommitHash, BuildDate = orig[0], orig[1], orig[2] })

	Version, CommitHash, BuildDate = "v1.2.3", "abc123", "2025-01-01T00:00:00Z"
	assert.Equal(t, "pspec version v1.2.3\nBuild time: 2025-01-01T00:00:00Z\nGit commit: abc123\n", Info())
}
