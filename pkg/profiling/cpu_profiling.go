package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"
)

var (
	osCreate             = os.Create
	pprofStartCPUProfile = pprof.StartCPUProfile
	pprofStopCPUProfile  = pprof.StopCPUProfile
)

// DoCPUProfiling starts CPU profiling into the given file and returns
// the stop function. On setup failure it reports to stderr and returns
// a no-op stop function.
func DoCPUProfiling(filePath string) (stop func()) {
	f, err := osCreate(filePath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}
