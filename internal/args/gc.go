package args

import (
	"fmt"
	"runtime"

	"github.com/brightforge/mlcore/internal/options"
)

// gcFlags returns the JVM flags for the selected collector, per spec.md
// §4.L step 6. ParallelGCThreads uses the detected logical CPU count,
// matching the original's "physical-core-count" intent without a cgo
// dependency for true physical-core detection.
func gcFlags(gc options.GC) []string {
	switch gc {
	case options.GCG1:
		return []string{
			"-XX:+UseG1GC",
			"-XX:+UnlockExperimentalVMOptions",
			"-XX:G1NewSizePercent=20",
			"-XX:G1ReservePercent=20",
			"-XX:MaxGCPauseMillis=50",
			"-XX:G1HeapRegionSize=16M",
		}
	case options.GCParallel:
		return []string{
			"-XX:+UseParallelGC",
			fmt.Sprintf("-XX:ParallelGCThreads=%d", runtime.NumCPU()),
		}
	case options.GCParallelOld:
		return []string{"-XX:+UseParallelOldGC"}
	case options.GCSerial:
		return []string{"-XX:+UseSerialGC"}
	case options.GCZ:
		return []string{"-XX:+UseZGC"}
	default:
		return nil
	}
}
