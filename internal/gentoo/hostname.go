package gentoo

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"grimm.is/emergenet/internal/logging"
)

var hostnamePattern = regexp.MustCompile(`HOSTNAME="(.*)"`)

// HostnameFile renders the hostname specification body. The hostname is
// embedded verbatim: a value containing a double quote corrupts the file
// (known limitation, matching what the rest of the ecosystem expects).
func (r *Renderer) HostnameFile(hostname string) string {
	lines := []string{
		"# Set to the hostname of this machine",
		r.header(),
		fmt.Sprintf("HOSTNAME=\"%s\"", hostname),
	}
	return strings.Join(lines, "\n")
}

// ReadHostname scans the hostname file for a HOSTNAME="..." line and
// returns the first captured value. Any failure to open or read the
// file, or the absence of a matching line, collapses to ("", false);
// callers only learn that no hostname is known.
func ReadHostname(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		logging.Info("hostname enquiry failed", "path", path, "error", err)
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := hostnamePattern.FindStringSubmatch(scanner.Text()); m != nil {
			return m[1], true
		}
	}
	if err := scanner.Err(); err != nil {
		logging.Info("hostname enquiry failed", "path", path, "error", err)
	}
	return "", false
}
