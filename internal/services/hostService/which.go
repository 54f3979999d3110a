package hostservice

import "os/exec"

var lookPath = exec.LookPath

// Which returns the path to a binary, if found (i.e. adb -> /usr/bin/adb).
func Which(binary string) (string, error) {
	return lookPath(binary)
}
