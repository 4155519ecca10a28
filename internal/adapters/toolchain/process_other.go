//go:build !unix

package toolchain

import "os/exec"

// configureProcessGroup keeps the default CommandContext behaviour (kill the process only)
func configureProcessGroup(cmd *exec.Cmd) {}
