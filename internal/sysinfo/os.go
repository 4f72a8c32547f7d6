// file: internal/sysinfo/os.go
// version: 1.0.0
// guid: 2e7c9a4d-6b1f-4d8e-9a3b-5c2f8e0d7a1c

package sysinfo

import "runtime"

// goosProvider allows tests to override the detected platform.
var goosProvider = func() string { return runtime.GOOS }

// OSLabel returns the host operating system label used by the General
// table's CHECK constraint: Windows, Linux or Mac. Unrecognized platforms
// fall back to Linux.
func OSLabel() string {
	switch goosProvider() {
	case "windows":
		return "Windows"
	case "darwin":
		return "Mac"
	default:
		return "Linux"
	}
}
