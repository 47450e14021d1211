// Package spawn launches helper programs the way spec.md §6 describes:
// fork, replace the child's image with the given argv, and never wait on
// it. Child reaping is automatic via a SIGCHLD disposition installed once
// at startup, matching the original_source's utils.c/main.c signal setup
// (spec.md §5, "Shared resources").
package spawn

import (
	"fmt"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/xtile-wm/xtile/internal/xlog"
)

// Spawn forks and execs argv[0] with argv[1:] as arguments. It does not
// wait for the child, and does not return an error merely because the
// child later exits nonzero: "could not start" is the only failure this
// reports, matching the original's fire-and-forget spawn() helper.
func Spawn(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("spawn: empty argv")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %v: %w", argv, err)
	}

	xlog.WithField("argv", argv).WithField("pid", cmd.Process.Pid).Debug("spawned child process")
	return nil
}

// ReapChildren installs SIG_IGN on SIGCHLD with SA_NOCLDWAIT|SA_NOCLDSTOP,
// so the kernel reaps every spawned child automatically and the event loop
// never needs a wait4 call or a SIGCHLD handler of its own. Must be called
// once at startup, before the first Spawn.
func ReapChildren() error {
	sa := &unix.Sigaction{
		Handler: uintptr(unix.SIG_IGN),
		Flags:   unix.SA_NOCLDWAIT | unix.SA_NOCLDSTOP,
	}
	if err := unix.Sigaction(unix.SIGCHLD, sa, nil); err != nil {
		return fmt.Errorf("sigaction(SIGCHLD): %w", err)
	}
	return nil
}
