package gentoo

import "strings"

// fakeRunner scripts subprocess behavior without spawning anything.
// Exit codes and errors are keyed by the full space-joined command line;
// unknown commands succeed.
type fakeRunner struct {
	haveIP bool
	exits  map[string]int
	errs   map[string]error
	calls  []string
}

func (f *fakeRunner) Run(name string, args ...string) (int, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmdline)
	if err, ok := f.errs[cmdline]; ok {
		return -1, err
	}
	if code, ok := f.exits[cmdline]; ok {
		return code, nil
	}
	return 0, nil
}

func (f *fakeRunner) LookPath(name string) bool {
	if name == "ip" {
		return f.haveIP
	}
	return true
}
