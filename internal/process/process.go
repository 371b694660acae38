// Package process spawns the child Java process, attaches line-oriented
// stdout/stderr observers, and relays the exit code, per spec.md §4.M.
package process

import (
	"bufio"
	"io"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/brightforge/mlcore/events"
	"github.com/brightforge/mlcore/internal/options"
)

// Launch starts javaBin with args, wiring obs's stdout/stderr/exit
// callbacks to the child's pipes. It blocks until the child exits and
// returns its numeric exit code (0 if the code could not be determined,
// per spec.md §6 "Exit codes").
func Launch(javaBin string, args []string, priority options.ProcessPriority, obs events.ProcessObserver) (int, error) {
	cmd := exec.Command(javaBin, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return 0, err
	}

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	applyPriority(cmd.Process.Pid, priority)

	done := make(chan struct{}, 2)
	go pump(stdout, obs.Stdout, done)
	go pump(stderr, obs.Stderr, done)

	// Both pipes must be fully drained before Wait is called: Wait closes
	// them as soon as the child exits, and reading from an already-closed
	// pipe loses whatever was still buffered.
	<-done
	<-done
	err = cmd.Wait()

	code := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
			if code < 0 {
				code = 0
			}
		} else {
			logrus.WithError(err).Warn("process wait failed")
		}
	}
	obs.Exit(code)
	return code, nil
}

func pump(r io.ReadCloser, deliver func(string), done chan<- struct{}) {
	defer func() { done <- struct{}{} }()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		deliver(scanner.Text())
	}
}
