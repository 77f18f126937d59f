package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/gofd/model_problems/Euler2D"
	"github.com/notargets/gofd/model_problems/Euler2D/isentropic_vortex"
)

type GridParameters struct {
	Nx int     `json:"Nx"`
	Ny int     `json:"Ny"`
	Lx float64 `json:"Lx"`
	Ly float64 `json:"Ly"`
	X0 float64 `json:"X0"`
	Y0 float64 `json:"Y0"`
}

type StateParameters struct {
	Rho float64 `json:"Rho"`
	U   float64 `json:"U"`
	V   float64 `json:"V"`
	P   float64 `json:"P"`
}

func (sp StateParameters) PrimitiveValues() Euler2D.PrimitiveValues {
	return Euler2D.PrimitiveValues{Rho: sp.Rho, U: sp.U, V: sp.V, P: sp.P}
}

type ShockTubeParameters struct {
	DiaphragmX float64         `json:"DiaphragmX"`
	Left       StateParameters `json:"Left"`
	Right      StateParameters `json:"Right"`
}

type VortexParameters struct {
	Beta float64  `json:"Beta"`
	X0   float64  `json:"X0"`
	Y0   float64  `json:"Y0"`
	Ufs  *float64 `json:"Ufs"` // Convection speed, 1 when omitted
}

type ShockParameters struct {
	Mach   float64 `json:"Mach"`
	ShockX float64 `json:"ShockX"`
	Rho    float64 `json:"Rho"`
	P      float64 `json:"P"`
}

// ConvergeParameters control the first phase of a shock vortex run.
type ConvergeParameters struct {
	Steps     int                `json:"Steps"`
	Tolerance float64            `json:"Tolerance"`
	BCs       map[string]string  `json:"BCs"`
	WallSpeed map[string]float64 `json:"WallSpeed"`
}

// Parameters obtained from the YAML input file
type InputParameters2D struct {
	Title          string              `json:"Title"`
	InitType       string              `json:"InitType"`
	Gamma          float64             `json:"Gamma"`
	CFL            float64             `json:"CFL"`
	DT             float64             `json:"DT"`
	Cx             float64             `json:"Cx"`
	Cy             float64             `json:"Cy"`
	FinalTime      float64             `json:"FinalTime"`
	MaxIterations  int                 `json:"MaxIterations"`
	ParallelDegree int                 `json:"ParallelDegree"`
	LogFrequency   int                 `json:"LogFrequency"`
	Grid           GridParameters      `json:"Grid"`
	BCs            map[string]string   `json:"BCs"` // Edge name to boundary type
	WallSpeed      map[string]float64  `json:"WallSpeed"`
	Freestream     StateParameters     `json:"Freestream"`
	ShockTube      ShockTubeParameters `json:"ShockTube"`
	Vortex         VortexParameters    `json:"Vortex"`
	Shock          ShockParameters     `json:"Shock"`
	Converge       ConvergeParameters  `json:"Converge"`
}

func (ip *InputParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t= InitType\n", ip.InitType)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	if ip.DT > 0 {
		fmt.Printf("%8.5f\t\t= DT\n", ip.DT)
	} else {
		fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	}
	fmt.Printf("[%5.3f,%5.3f]\t= Cx, Cy\n", ip.Cx, ip.Cy)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d]\t\t\t\t= MaxIterations\n", ip.MaxIterations)
	fmt.Printf("[%dx%d] on [%v,%v]x[%v,%v]\t= Grid\n", ip.Grid.Nx, ip.Grid.Ny,
		ip.Grid.X0, ip.Grid.X0+ip.Grid.Lx, ip.Grid.Y0, ip.Grid.Y0+ip.Grid.Ly)
	printBCs("BCs", ip.BCs)
	if len(ip.Converge.BCs) != 0 {
		printBCs("Converge BCs", ip.Converge.BCs)
	}
}

func printBCs(label string, bcs map[string]string) {
	keys := make([]string, len(bcs))
	i := 0
	for k := range bcs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%s[%s] = %v\n", label, key, bcs[key])
	}
}

// SimulationConfig fills unset values from Euler2D.DefaultSimulationConfig and validates.
func (ip *InputParameters2D) SimulationConfig() (cfg Euler2D.SimulationConfig, err error) {
	cfg = Euler2D.DefaultSimulationConfig()
	if ip.Gamma != 0 {
		cfg.Gamma = ip.Gamma
	}
	if ip.CFL != 0 {
		cfg.CFL = ip.CFL
	}
	cfg.DT = ip.DT
	cfg.Cx, cfg.Cy = ip.Cx, ip.Cy
	cfg.StopTime = ip.FinalTime
	cfg.MaxSteps = ip.MaxIterations
	cfg.ParallelDegree = ip.ParallelDegree
	if ip.LogFrequency != 0 {
		cfg.LogFrequency = ip.LogFrequency
	}
	err = cfg.Validate()
	return
}

func (ip *InputParameters2D) NewGrid() (*Euler2D.Grid, error) {
	return Euler2D.NewGrid(ip.Grid.Nx, ip.Grid.Ny, ip.Grid.Lx, ip.Grid.Ly, ip.Grid.X0, ip.Grid.Y0)
}

func (ip *InputParameters2D) BoundarySpec() (*Euler2D.BoundarySpec, error) {
	return Euler2D.ParseBoundarySpec(ip.BCs, ip.WallSpeed)
}

func (ip *InputParameters2D) NewIVortex(Gamma float64) *isentropic_vortex.IVortex {
	vp := ip.Vortex
	if vp.Ufs == nil {
		return isentropic_vortex.NewIVortex(vp.Beta, vp.X0, vp.Y0, Gamma)
	}
	return isentropic_vortex.NewIVortex(vp.Beta, vp.X0, vp.Y0, Gamma, *vp.Ufs)
}

func (ip *InputParameters2D) ShockTubeParams() Euler2D.ShockTubeParams {
	return Euler2D.ShockTubeParams{
		DiaphragmX: ip.ShockTube.DiaphragmX,
		Left:       ip.ShockTube.Left.PrimitiveValues(),
		Right:      ip.ShockTube.Right.PrimitiveValues(),
	}
}

// ShockVortexParams returns the controller parameters and the boundary
// specification used while the shock converges.
func (ip *InputParameters2D) ShockVortexParams(Gamma float64) (params Euler2D.ShockVortexParams,
	convergeBC *Euler2D.BoundarySpec, err error) {
	params = Euler2D.ShockVortexParams{
		Shock: Euler2D.StationaryShockParams{
			Mach:   ip.Shock.Mach,
			ShockX: ip.Shock.ShockX,
			Rho:    ip.Shock.Rho,
			P:      ip.Shock.P,
		},
		Vortex:        ip.NewIVortex(Gamma),
		ConvergeSteps: ip.Converge.Steps,
		ConvergeTol:   ip.Converge.Tolerance,
	}
	if params.Shock.Rho == 0 && params.Shock.P == 0 {
		params.Shock.Rho, params.Shock.P = 1, 1/Gamma
	}
	convergeBC, err = Euler2D.ParseBoundarySpec(ip.Converge.BCs, ip.Converge.WallSpeed)
	return
}
