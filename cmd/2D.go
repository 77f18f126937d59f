/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/gofd/InputParameters"
	"github.com/notargets/gofd/model_problems/Euler2D"
	"github.com/notargets/gofd/model_problems/Euler2D/isentropic_vortex"
	"github.com/notargets/gofd/types"
	"github.com/notargets/gofd/utils"
)

type Model2D struct {
	ICFile string
}

type Result2D struct {
	Grid         *Euler2D.Grid
	State        *Euler2D.State
	Summary      Euler2D.RunSummary
	Totals       [4]float64
	Mach         [2]float64 // Min and max over the interior
	DensityError float64    // Max |rho - rho_exact| at the final time, IVortex runs only
}

const exampleFile = `
########################################
Title: "Isentropic Vortex"
InitType: IVortex # Freestream, ShockTube, IVortex or ShockVortex
CFL: 0.5
Cx: 0.05
Cy: 0.05
FinalTime: 10
Grid:
  Nx: 80
  Ny: 80
  Lx: 10
  Ly: 10
  Y0: -5
BCs:
  West: periodic
  East: periodic
  South: periodic
  North: periodic
Vortex:
  Beta: 5
  X0: 5
  Ufs: 1
########################################
`

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional solver for problems described in a YAML input file",
	Long:  `Two dimensional solver for problems described in a YAML input file`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip  *InputParameters.InputParameters2D
			res *Result2D
		)
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		if ip, err = processInput(m2d); err != nil {
			return
		}
		ip.Print()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if res, err = Run2D(ctx, ip, logrus.StandardLogger()); err != nil {
			return
		}
		fmt.Printf("%s\n", res.Summary)
		fmt.Printf("Totals: mass = %12.8f, x momentum = %12.8f, y momentum = %12.8f, energy = %12.8f\n",
			res.Totals[0], res.Totals[1], res.Totals[2], res.Totals[3])
		fmt.Printf("Mach number range: [%8.5f, %8.5f]\n", res.Mach[0], res.Mach[1])
		if initIsVortex(ip) {
			fmt.Printf("Max density error vs exact vortex: %12.8f\n", res.DensityError)
		}
		return
	},
}

func processInput(m2d *Model2D) (ip *InputParameters.InputParameters2D, err error) {
	var (
		data []byte
	)
	if len(m2d.ICFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleFile)
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		return
	}
	if data, err = os.ReadFile(m2d.ICFile); err != nil {
		return
	}
	ip = &InputParameters.InputParameters2D{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", m2d.ICFile, err)
	}
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- Grid\n\t- BCs")
}

// Run2D builds the problem described by ip and runs it to completion.
func Run2D(ctx context.Context, ip *InputParameters.InputParameters2D, log logrus.FieldLogger) (res *Result2D, err error) {
	var (
		cfg      Euler2D.SimulationConfig
		g        *Euler2D.Grid
		gas      Euler2D.GasModel
		bc       *Euler2D.BoundarySpec
		initType Euler2D.InitType
		q        *Euler2D.State
		sum      Euler2D.RunSummary
		iv       *isentropic_vortex.IVortex
		mach     utils.Matrix
	)
	if cfg, err = ip.SimulationConfig(); err != nil {
		return
	}
	if g, err = ip.NewGrid(); err != nil {
		return
	}
	if gas, err = Euler2D.NewGasModel(cfg.Gamma); err != nil {
		return
	}
	if initType, err = Euler2D.NewInitType(ip.InitType); err != nil {
		return
	}
	if bc, err = ip.BoundarySpec(); err != nil {
		return
	}
	log.WithField("case", initType.Print()).Info(ip.Title)
	switch initType {
	case Euler2D.SHOCKVORTEX:
		if q, sum, err = runShockVortex(ctx, ip, g, cfg, bc, log); err != nil {
			return
		}
	default:
		switch initType {
		case Euler2D.FREESTREAM:
			fs := ip.Freestream
			q, err = Euler2D.InitializeFreestream(g, gas, fs.Rho, fs.U, fs.V, fs.P)
		case Euler2D.SHOCKTUBE:
			q, err = Euler2D.InitializeShockTube(g, gas, ip.ShockTubeParams())
		case Euler2D.IVORTEX:
			iv = ip.NewIVortex(cfg.Gamma)
			if bc.IsPeriodic(types.West) {
				iv.PeriodX = g.Lx
			}
			if bc.IsPeriodic(types.South) {
				iv.PeriodY = g.Ly
			}
			q, err = Euler2D.InitializeIVortex(g, iv)
		}
		if err != nil {
			return
		}
		var solver *Euler2D.Solver
		if solver, err = Euler2D.NewSolver(g, cfg, q, bc); err != nil {
			return
		}
		solver.Log = log
		if sum, err = solver.Run(ctx); err != nil {
			return
		}
	}
	if mach, err = q.FlowField(g, gas, Euler2D.Mach); err != nil {
		return
	}
	res = &Result2D{
		Grid:    g,
		State:   q,
		Summary: sum,
		Totals:  q.Totals(g),
		Mach:    [2]float64{mach.Min(), mach.Max()},
	}
	if iv != nil {
		var exact *Euler2D.State
		if exact, err = Euler2D.InitializeIVortexAt(g, iv, sum.Time); err != nil {
			return
		}
		res.DensityError = q.Q[0].MaxAbsDiff(exact.Q[0])
	}
	return
}

func initIsVortex(ip *InputParameters.InputParameters2D) bool {
	it, err := Euler2D.NewInitType(ip.InitType)
	return err == nil && it == Euler2D.IVORTEX
}

func runShockVortex(ctx context.Context, ip *InputParameters.InputParameters2D, g *Euler2D.Grid,
	cfg Euler2D.SimulationConfig, runBC *Euler2D.BoundarySpec, log logrus.FieldLogger) (q *Euler2D.State,
	sum Euler2D.RunSummary, err error) {
	var (
		params     Euler2D.ShockVortexParams
		convergeBC *Euler2D.BoundarySpec
		c          *Euler2D.ShockVortexController
	)
	if params, convergeBC, err = ip.ShockVortexParams(cfg.Gamma); err != nil {
		return
	}
	if c, err = Euler2D.NewShockVortexController(g, cfg, params, convergeBC, runBC); err != nil {
		return
	}
	c.Log = log
	if _, err = c.Converge(ctx); err != nil {
		return
	}
	if err = c.Inject(); err != nil {
		return
	}
	sum, err = c.Run(ctx)
	q = c.State
	return
}
