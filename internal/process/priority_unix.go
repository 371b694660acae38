//go:build !windows

package process

import (
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/brightforge/mlcore/internal/options"
)

// niceValues maps ProcessPriority to POSIX nice values, per spec.md §4.M.
var niceValues = map[options.ProcessPriority]int{
	options.PriorityHigh:  0,
	options.PriorityAbove: 5,
	options.PriorityBelow: 15,
	options.PriorityLow:   19,
}

// applyPriority sets the child's nice value. Normal priority is a no-op
// (leave the inherited default), matching spec.md §4.M: "above=5, normal=skip".
func applyPriority(pid int, priority options.ProcessPriority) {
	if priority == options.PriorityNormal || priority == "" {
		return
	}
	nice, ok := niceValues[priority]
	if !ok {
		return
	}
	if err := syscall.Setpriority(syscall.PRIO_PROCESS, pid, nice); err != nil {
		logrus.WithError(err).WithField("pid", pid).Warn("failed to set process priority")
	}
}
