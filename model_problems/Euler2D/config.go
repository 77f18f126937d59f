package Euler2D

import (
	"fmt"
	"math"
)

type SimulationConfig struct {
	Gamma          float64
	CFL            float64 // Used when DT is zero
	DT             float64 // Fixed time step when > 0
	Cx, Cy         float64 // Artificial viscosity coefficients
	MaxSteps       int
	StopTime       float64
	ParallelDegree int // Zero uses all CPUs
	LogFrequency   int // Steps between progress logs, 0 disables
}

func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Gamma:          1.4,
		CFL:            0.5,
		Cx:             0.2,
		Cy:             0.2,
		ParallelDegree: 1,
		LogFrequency:   100,
	}
}

func badFloat(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Validate checks the numerical settings. Termination (MaxSteps, StopTime) is
// checked by the run loop that consumes it.
func (sc SimulationConfig) Validate() (err error) {
	switch {
	case !(sc.Gamma > 1) || badFloat(sc.Gamma):
		err = NewConfigurationError("gamma", "must be finite and > 1, have %v", sc.Gamma)
	case sc.DT < 0 || badFloat(sc.DT):
		err = NewConfigurationError("dt", "must be finite and >= 0, have %v", sc.DT)
	case sc.DT == 0 && (!(sc.CFL > 0) || sc.CFL > 1 || badFloat(sc.CFL)):
		err = NewConfigurationError("cfl", "must be in (0,1] when no fixed time step is set, have %v", sc.CFL)
	case sc.Cx < 0 || badFloat(sc.Cx):
		err = NewConfigurationError("cx", "must be finite and >= 0, have %v", sc.Cx)
	case sc.Cy < 0 || badFloat(sc.Cy):
		err = NewConfigurationError("cy", "must be finite and >= 0, have %v", sc.Cy)
	case sc.MaxSteps < 0:
		err = NewConfigurationError("maxSteps", "must be >= 0, have %d", sc.MaxSteps)
	case sc.StopTime < 0 || badFloat(sc.StopTime):
		err = NewConfigurationError("stopTime", "must be finite and >= 0, have %v", sc.StopTime)
	case sc.ParallelDegree < 0:
		err = NewConfigurationError("parallelDegree", "must be >= 0, have %d", sc.ParallelDegree)
	case sc.LogFrequency < 0:
		err = NewConfigurationError("logFrequency", "must be >= 0, have %d", sc.LogFrequency)
	}
	return
}

// validateTermination requires at least one of MaxSteps and StopTime.
func (sc SimulationConfig) validateTermination() (err error) {
	if sc.MaxSteps == 0 && sc.StopTime == 0 {
		err = NewConfigurationError("stopTime", "one of maxSteps or stopTime must be set")
	}
	return
}

func (sc SimulationConfig) String() string {
	dtTxt := fmt.Sprintf("CFL = %5.3f", sc.CFL)
	if sc.DT > 0 {
		dtTxt = fmt.Sprintf("DT = %g", sc.DT)
	}
	return fmt.Sprintf("Gamma = %5.3f, %s, Cx = %5.3f, Cy = %5.3f, MaxSteps = %d, StopTime = %g, ParallelDegree = %d",
		sc.Gamma, dtTxt, sc.Cx, sc.Cy, sc.MaxSteps, sc.StopTime, sc.ParallelDegree)
}
