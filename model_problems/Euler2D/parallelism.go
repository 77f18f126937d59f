package Euler2D

import (
	"runtime"
)

// ParallelDegree is ProcLimit, or the CPU count when ProcLimit is zero, reduced
// to 1 when there are fewer interior rows than workers.
func ParallelDegree(ProcLimit, rows int) (NP int) {
	if ProcLimit != 0 {
		NP = ProcLimit
	} else {
		NP = runtime.NumCPU()
	}
	if NP > rows {
		NP = 1
	}
	if NP < 1 {
		NP = 1
	}
	return
}
