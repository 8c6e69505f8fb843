package gentoo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/emergenet/internal/clock"
)

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestHostnameFile(t *testing.T) {
	r := NewRenderer(&fakeRunner{}, clock.NewMockClock(renderTime))

	body := r.HostnameFile("myhost")
	assert.Contains(t, body, `HOSTNAME="myhost"`)
	assert.Contains(t, body, "# Set to the hostname of this machine")
	assert.Contains(t, body, "autogenerated at 2025-06-01 12:00:00")
}

func TestReadHostname(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostname")
	require.NoError(t, writeTestFile(path, `# Set to the hostname of this machine
# some header
HOSTNAME="gentoo-vm"
`))

	got, ok := ReadHostname(path)
	require.True(t, ok)
	assert.Equal(t, "gentoo-vm", got)
}

func TestReadHostnameFirstMatchWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostname")
	require.NoError(t, writeTestFile(path, "HOSTNAME=\"first\"\nHOSTNAME=\"second\"\n"))

	got, ok := ReadHostname(path)
	require.True(t, ok)
	assert.Equal(t, "first", got)
}

func TestReadHostnameMissingFile(t *testing.T) {
	got, ok := ReadHostname(filepath.Join(t.TempDir(), "nope"))
	assert.False(t, ok)
	assert.Equal(t, "", got)
}

func TestReadHostnameNoMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostname")
	require.NoError(t, writeTestFile(path, "# nothing to see here\n"))

	_, ok := ReadHostname(path)
	assert.False(t, ok)
}

func TestHostnameRoundTrip(t *testing.T) {
	r := NewRenderer(&fakeRunner{}, clock.NewMockClock(renderTime))
	path := filepath.Join(t.TempDir(), "hostname")
	require.NoError(t, writeTestFile(path, r.HostnameFile("round.trip.example")))

	got, ok := ReadHostname(path)
	require.True(t, ok)
	assert.Equal(t, "round.trip.example", got)
}
