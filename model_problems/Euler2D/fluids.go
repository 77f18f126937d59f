package Euler2D

import (
	"math"

	"github.com/notargets/gofd/utils"
)

type FlowFunction uint8

func (pm FlowFunction) String() string {
	strings := []string{
		"Density",
		"XMomentum",
		"YMomentum",
		"Energy",
		"Mach",
		"Static Pressure",
		"Dynamic Pressure",
		"Sound Speed",
		"Velocity",
		"XVelocity",
		"YVelocity",
		"Temperature",
		"Enthalpy",
	}
	return strings[int(pm)]
}

const (
	Density FlowFunction = iota
	XMomentum
	YMomentum
	Energy
	Mach            // 4
	StaticPressure  // 5
	DynamicPressure // 6
	SoundSpeed      // 7
	Velocity        // 8
	XVelocity       // 9
	YVelocity       // 10
	Temperature     // 11
	Enthalpy        // 12
)

// GasModel is a calorically perfect gas.
type GasModel struct {
	Gamma float64
}

func NewGasModel(Gamma float64) (gas GasModel, err error) {
	if !(Gamma > 1) || math.IsInf(Gamma, 0) {
		err = NewConfigurationError("gamma", "ratio of specific heats must be finite and > 1, have %v", Gamma)
		return
	}
	gas = GasModel{Gamma: Gamma}
	return
}

// Pressure returns p = (gamma-1)*(E - 0.5*rho*(u*u+v*v)) and fails when the cell
// is not physical.
func (gas GasModel) Pressure(rho, rhoU, rhoV, E float64) (p float64, err error) {
	switch {
	case !utils.IsFinite(rho) || !utils.IsFinite(rhoU) || !utils.IsFinite(rhoV) || !utils.IsFinite(E):
		err = newBreakdown("non-finite conserved variables [%v,%v,%v,%v]", rho, rhoU, rhoV, E)
		return
	case !(rho > 0):
		err = newBreakdown("non-positive density %v", rho)
		return
	}
	p = (gas.Gamma - 1.) * (E - 0.5*(rhoU*rhoU+rhoV*rhoV)/rho)
	if !(p > 0) || !utils.IsFinite(p) {
		err = newBreakdown("non-positive pressure %v", p)
		p = 0
	}
	return
}

func (gas GasModel) SoundSpeed(rho, p float64) float64 {
	return math.Sqrt(gas.Gamma * p / rho)
}

// ConsFromPrim converts primitive (rho,u,v,p) to conserved (rho,rhoU,rhoV,E).
func (gas GasModel) ConsFromPrim(rho, u, v, p float64) (Q [4]float64) {
	Q = [4]float64{
		rho,
		rho * u,
		rho * v,
		p/(gas.Gamma-1.) + 0.5*rho*(u*u+v*v),
	}
	return
}

func (gas GasModel) GetFlowFunctionQQ(Q [4]float64, pf FlowFunction) (f float64) {
	return gas.GetFlowFunction(Q[0], Q[1], Q[2], Q[3], pf)
}

// GetFlowFunction does not check the state, see Pressure for that.
func (gas GasModel) GetFlowFunction(rho, rhoU, rhoV, E float64, pf FlowFunction) (f float64) {
	var (
		Gamma = gas.Gamma
		GM1   = Gamma - 1.
		oorho = 1. / rho
		q, p  float64
	)
	// Calculate q and p if needed
	switch pf {
	case StaticPressure, SoundSpeed, Mach, Temperature, Enthalpy:
		q = 0.5 * (rhoU*rhoU + rhoV*rhoV) * oorho
		p = GM1 * (E - q)
	}

	switch pf {
	case Density:
		f = rho
	case XMomentum:
		f = rhoU
	case YMomentum:
		f = rhoV
	case Energy:
		f = E
	case StaticPressure:
		f = p
	case DynamicPressure:
		f = 0.5 * (rhoU*rhoU + rhoV*rhoV) * oorho
	case SoundSpeed:
		f = math.Sqrt(math.Abs(Gamma * p * oorho))
	case Velocity:
		f = math.Sqrt(rhoU*rhoU+rhoV*rhoV) * oorho
	case XVelocity:
		f = rhoU * oorho
	case YVelocity:
		f = rhoV * oorho
	case Mach:
		C := math.Sqrt(math.Abs(Gamma * p * oorho))
		U := math.Sqrt(rhoU*rhoU+rhoV*rhoV) * oorho
		f = U / C
	case Temperature:
		f = p * oorho
	case Enthalpy:
		f = (E + p) * oorho
	}
	return
}
