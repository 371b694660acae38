package platform

import (
	"os/exec"
	"strings"
)

// kernelRelease shells out to `uname -r`, matching how most launchers on
// POSIX obtain the kernel release without cgo. A missing uname binary (rare
// outside POSIX) degrades to "unknown" rather than failing platform probe.
func kernelRelease() string {
	out, err := exec.Command("uname", "-r").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
