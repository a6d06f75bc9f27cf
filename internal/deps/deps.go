// Package deps reports the availability of the external tooling the
// orchestrator leans on: the cargo toolchain that can build the codec and the
// directories it writes into. The status command renders these results;
// nothing here runs on the encode/decode path.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBuildTool is the binary the fresh-build fallback shells out to.
const DefaultBuildTool = "cargo"

// Status reports the availability of one external dependency.
type Status struct {
	Name      string
	Available bool
	Detail    string
}

// CheckBuildTool reports whether the codec build tool is on PATH. An empty
// tool means the default cargo binary. Only the binary's presence is checked;
// a broken toolchain still surfaces later as a build failure.
func CheckBuildTool(tool string) Status {
	tool = strings.TrimSpace(tool)
	if tool == "" {
		tool = DefaultBuildTool
	}
	status := Status{Name: "Build tool"}
	path, err := exec.LookPath(tool)
	if err != nil {
		status.Detail = fmt.Sprintf("%s not found; the build fallback cannot run", tool)
		return status
	}
	status.Available = true
	status.Detail = path
	return status
}
