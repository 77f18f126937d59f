package Euler2D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gofd/model_problems/Euler2D/isentropic_vortex"
)

type InitType uint

const (
	FREESTREAM InitType = iota
	SHOCKTUBE
	IVORTEX
	SHOCKVORTEX
)

var (
	InitNames = map[string]InitType{
		"freestream":  FREESTREAM,
		"shocktube":   SHOCKTUBE,
		"ivortex":     IVORTEX,
		"shockvortex": SHOCKVORTEX,
	}
	InitPrintNames = []string{"Freestream", "Shock Tube", "Inviscid Vortex Analytic Solution", "Shock Vortex Interaction"}
)

func (it InitType) Print() (txt string) {
	txt = InitPrintNames[it]
	return
}

func NewInitType(label string) (it InitType, err error) {
	var (
		ok bool
	)
	if len(label) == 0 {
		err = NewConfigurationError("initType", "empty init type, must be one of %v", initLabels())
		return
	}
	if it, ok = InitNames[strings.ToLower(label)]; !ok {
		err = NewConfigurationError("initType", "unable to use init type named %s, must be one of %v",
			label, initLabels())
	}
	return
}

func initLabels() []string {
	return []string{"freestream", "shocktube", "ivortex", "shockvortex"}
}

// PrimitiveValues is a uniform primitive state.
type PrimitiveValues struct {
	Rho, U, V, P float64
}

func (pv PrimitiveValues) validate(field string) (err error) {
	switch {
	case badFloat(pv.Rho) || badFloat(pv.U) || badFloat(pv.V) || badFloat(pv.P):
		err = NewConfigurationError(field, "non-finite state %+v", pv)
	case !(pv.Rho > 0):
		err = NewConfigurationError(field, "density must be > 0, have %v", pv.Rho)
	case !(pv.P > 0):
		err = NewConfigurationError(field, "pressure must be > 0, have %v", pv.P)
	}
	return
}

func InitializeFreestream(g *Grid, gas GasModel, rho, u, v, p float64) (q *State, err error) {
	pv := PrimitiveValues{Rho: rho, U: u, V: v, P: p}
	if err = pv.validate("freestream"); err != nil {
		return
	}
	q = NewState(g)
	Q := gas.ConsFromPrim(rho, u, v, p)
	for n := 0; n < 4; n++ {
		q.Q[n].Fill(Q[n])
	}
	err = q.CheckShape(g)
	return
}

type ShockTubeParams struct {
	DiaphragmX  float64
	Left, Right PrimitiveValues
}

// DefaultShockTubeParams is the Sod problem on [0,1] with the diaphragm at 0.5.
func DefaultShockTubeParams() ShockTubeParams {
	return ShockTubeParams{
		DiaphragmX: 0.5,
		Left:       PrimitiveValues{Rho: 1, P: 1},
		Right:      PrimitiveValues{Rho: 0.125, P: 0.1},
	}
}

// InitializeShockTube sets cells with center x < DiaphragmX to Left, the rest to Right.
func InitializeShockTube(g *Grid, gas GasModel, params ShockTubeParams) (q *State, err error) {
	if err = params.Left.validate("shocktube.left"); err != nil {
		return
	}
	if err = params.Right.validate("shocktube.right"); err != nil {
		return
	}
	if params.DiaphragmX <= g.X0 || params.DiaphragmX >= g.X0+g.Lx {
		err = NewConfigurationError("shocktube.diaphragmX", "%v is outside of the domain (%v,%v)",
			params.DiaphragmX, g.X0, g.X0+g.Lx)
		return
	}
	var (
		QL = gas.ConsFromPrim(params.Left.Rho, params.Left.U, params.Left.V, params.Left.P)
		QR = gas.ConsFromPrim(params.Right.Rho, params.Right.U, params.Right.V, params.Right.P)
	)
	q = NewState(g)
	for j := 0; j < g.NyT; j++ {
		for i := 0; i < g.NxT; i++ {
			if g.X(i) < params.DiaphragmX {
				q.SetCell(g, i, j, QL)
			} else {
				q.SetCell(g, i, j, QR)
			}
		}
	}
	err = q.CheckShape(g)
	return
}

// InitializeIVortex samples the analytic vortex at t=0 on every storage cell.
func InitializeIVortex(g *Grid, iv *isentropic_vortex.IVortex) (q *State, err error) {
	return InitializeIVortexAt(g, iv, 0)
}

// InitializeIVortexAt samples the analytic vortex at time t, used as the exact
// solution of a convected vortex.
func InitializeIVortexAt(g *Grid, iv *isentropic_vortex.IVortex, t float64) (q *State, err error) {
	if iv == nil {
		err = NewConfigurationError("ivortex", "missing vortex")
		return
	}
	if _, err = NewGasModel(iv.Gamma); err != nil {
		return
	}
	q = NewState(g)
	for j := 0; j < g.NyT; j++ {
		for i := 0; i < g.NxT; i++ {
			rho, rhoU, rhoV, E := iv.GetStateC(t, g.X(i), g.Y(j))
			q.SetCell(g, i, j, [4]float64{rho, rhoU, rhoV, E})
		}
	}
	err = q.CheckShape(g)
	return
}

// StationaryShockParams places a normal shock at ShockX with upstream Mach number
// Mach, upstream density Rho and pressure P, flowing in +x.
type StationaryShockParams struct {
	Mach, ShockX float64
	Rho, P       float64
}

func DefaultStationaryShockParams(gas GasModel) StationaryShockParams {
	return StationaryShockParams{
		Mach:   1.1,
		ShockX: 0,
		Rho:    1,
		P:      1 / gas.Gamma,
	}
}

// RankineHugoniot returns the upstream and downstream states of a normal shock
// at rest in the lab frame.
func RankineHugoniot(gas GasModel, Mach, rho1, p1 float64) (up, down PrimitiveValues, err error) {
	var (
		Gamma = gas.Gamma
		M2    = Mach * Mach
	)
	if !(Mach > 1) || badFloat(Mach) {
		err = NewConfigurationError("shock.mach", "upstream Mach number must be finite and > 1, have %v", Mach)
		return
	}
	up = PrimitiveValues{Rho: rho1, P: p1}
	if err = up.validate("shock.upstream"); err != nil {
		return
	}
	up.U = Mach * gas.SoundSpeed(rho1, p1)
	rhoRatio := (Gamma + 1) * M2 / ((Gamma-1)*M2 + 2)
	pRatio := 1 + 2*Gamma/(Gamma+1)*(M2-1)
	down = PrimitiveValues{
		Rho: rho1 * rhoRatio,
		U:   up.U / rhoRatio,
		P:   p1 * pRatio,
	}
	return
}

func InitializeStationaryShock(g *Grid, gas GasModel, params StationaryShockParams) (q *State, err error) {
	var (
		up, down PrimitiveValues
	)
	if up, down, err = RankineHugoniot(gas, params.Mach, params.Rho, params.P); err != nil {
		return
	}
	if params.ShockX <= g.X0 || params.ShockX >= g.X0+g.Lx {
		err = NewConfigurationError("shock.shockX", "%v is outside of the domain (%v,%v)",
			params.ShockX, g.X0, g.X0+g.Lx)
		return
	}
	return InitializeShockTube(g, gas, ShockTubeParams{DiaphragmX: params.ShockX, Left: up, Right: down})
}

/*
InjectVortex superposes the vortex perturbation on q in place. Velocity is
incremented and the temperature T = p/rho moves by the vortex temperature change
along an isentrope of the local state:

	rho' = rho * (T'/T)^(1/(gamma-1)),   p' = rho' * T'
*/
func InjectVortex(q *State, g *Grid, gas GasModel, iv *isentropic_vortex.IVortex) (err error) {
	var (
		OOGM1 = 1. / (gas.Gamma - 1.)
	)
	if err = q.CheckShape(g); err != nil {
		return
	}
	if iv == nil {
		return NewConfigurationError("vortex", "missing vortex")
	}
	// Validate everything before modifying q
	injected := NewState(g)
	for j := 0; j < g.NyT; j++ {
		for i := 0; i < g.NxT; i++ {
			Q := q.Cell(g, i, j)
			var p float64
			if p, err = gas.Pressure(Q[0], Q[1], Q[2], Q[3]); err != nil {
				return locate(err, i, j)
			}
			var (
				rho, u, v  = Q[0], Q[1] / Q[0], Q[2] / Q[0]
				T          = p / rho
				du, dv, dT = iv.Perturbation(0, g.X(i), g.Y(j))
				TNew       = T + dT
			)
			if !(TNew > 0) {
				err = newBreakdown("vortex injection gives non-positive temperature %v", TNew)
				return locate(err, i, j)
			}
			rhoNew := rho * math.Pow(TNew/T, OOGM1)
			injected.SetCell(g, i, j, gas.ConsFromPrim(rhoNew, u+du, v+dv, rhoNew*TNew))
		}
	}
	q.CopyFrom(injected)
	return
}

func (sp StationaryShockParams) String() string {
	return fmt.Sprintf("Mach = %5.3f at x = %v, upstream rho = %v, p = %v", sp.Mach, sp.ShockX, sp.Rho, sp.P)
}
