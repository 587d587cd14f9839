package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"
)

var (
	memProfilingInterval  = 30 * time.Second
	pprofWriteHeapProfile = pprof.WriteHeapProfile
)

// DoMemProfiling periodically snapshots the heap profile into the given
// file and returns a function that writes one snapshot on demand.
func DoMemProfiling(filePath string) (writeMemProfile func()) {
	writeMemProfile = func() {
		f, err := osCreate(filePath)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
		}
	}
	go func() {
		for {
			time.Sleep(memProfilingInterval)
			writeMemProfile()
		}
	}()
	return writeMemProfile
}
