//go:build windows

package git

import "os/exec"

func configureProcessGroup(_ *exec.Cmd) {}

// terminateProcessTree kills the direct child only. Windows has no process
// groups in the POSIX sense; descendants exit when their console goes away.
func terminateProcessTree(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
