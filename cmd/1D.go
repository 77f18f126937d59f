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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/gofd/model_problems/Euler2D"
	"github.com/notargets/gofd/sod_shock_tube"
	"github.com/notargets/gofd/types"
)

type Model1D struct {
	Nx             int
	CFL            float64
	Cx             float64
	FinalTime      float64
	DiaphragmX     float64
	ParallelDegree int
	OutFile        string
}

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "Sod shock tube compared with the exact Riemann solution",
	Long: `
Runs the Sod shock tube on [0,1] as a single row of cells and writes the computed
and exact density, velocity and pressure as CSV,

gofd 1D --nx 400 --finalTime 0.2 --out sod.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		m1d := &Model1D{}
		m1d.Nx, _ = cmd.Flags().GetInt("nx")
		m1d.CFL, _ = cmd.Flags().GetFloat64("CFL")
		m1d.Cx, _ = cmd.Flags().GetFloat64("Cx")
		m1d.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		m1d.DiaphragmX, _ = cmd.Flags().GetFloat64("diaphragm")
		m1d.ParallelDegree, _ = cmd.Flags().GetInt("parallelDegree")
		m1d.OutFile, _ = cmd.Flags().GetString("out")
		w := io.Writer(os.Stdout)
		if len(m1d.OutFile) != 0 {
			var f *os.File
			if f, err = os.Create(m1d.OutFile); err != nil {
				return
			}
			defer f.Close()
			w = f
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return Run1D(ctx, m1d, w, logrus.StandardLogger())
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().IntP("nx", "n", 200, "number of cells")
	OneDCmd.Flags().Float64("CFL", 0.5, "CFL number")
	OneDCmd.Flags().Float64("Cx", 0.3, "artificial viscosity coefficient")
	OneDCmd.Flags().Float64("finalTime", 0.2, "time of the solution")
	OneDCmd.Flags().Float64("diaphragm", 0.5, "initial location of the diaphragm")
	OneDCmd.Flags().IntP("parallelDegree", "p", 1, "number of workers, 0 uses all CPUs")
	OneDCmd.Flags().StringP("out", "o", "", "CSV output file, default is stdout")
}

func Run1D(ctx context.Context, m1d *Model1D, w io.Writer, log logrus.FieldLogger) (err error) {
	var (
		g      *Euler2D.Grid
		gas    Euler2D.GasModel
		q      *Euler2D.State
		bc     *Euler2D.BoundarySpec
		solver *Euler2D.Solver
		sod    *sod_shock_tube.SOD
		pr     *Euler2D.Primitive
		cfg    = Euler2D.DefaultSimulationConfig()
	)
	cfg.CFL, cfg.Cx, cfg.Cy = m1d.CFL, m1d.Cx, 0
	cfg.StopTime = m1d.FinalTime
	cfg.ParallelDegree = m1d.ParallelDegree
	cfg.LogFrequency = 0
	if m1d.Nx < 1 {
		return Euler2D.NewConfigurationError("nx", "must be >= 1, have %d", m1d.Nx)
	}
	if g, err = Euler2D.NewGrid(m1d.Nx, 1, 1, 1/float64(m1d.Nx)); err != nil {
		return
	}
	if gas, err = Euler2D.NewGasModel(cfg.Gamma); err != nil {
		return
	}
	params := Euler2D.DefaultShockTubeParams()
	params.DiaphragmX = m1d.DiaphragmX
	if q, err = Euler2D.InitializeShockTube(g, gas, params); err != nil {
		return
	}
	if bc, err = Euler2D.NewUniformBoundarySpec(types.BC_Extrapolated); err != nil {
		return
	}
	if solver, err = Euler2D.NewSolver(g, cfg, q, bc); err != nil {
		return
	}
	solver.Log = log
	if _, err = solver.Run(ctx); err != nil {
		return
	}
	sodParams := sod_shock_tube.DefaultSODParams()
	sodParams.X0 = m1d.DiaphragmX
	if sod, err = sod_shock_tube.NewSODWithError(m1d.FinalTime, sodParams); err != nil {
		return
	}
	if pr, err = q.Primitive(g, gas); err != nil {
		return
	}
	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"x", "rho", "u", "p", "rho_exact", "u_exact", "p_exact"}); err != nil {
		return
	}
	format := func(f float64) string { return strconv.FormatFloat(f, 'g', 10, 64) }
	for i := 1; i <= g.Nx; i++ {
		x := g.X(i)
		rhoE, uE, pE := sod.Sample(x)
		record := []string{
			format(x), format(q.Q[0].At(1, i)), format(pr.U.At(1, i)), format(pr.P.At(1, i)),
			format(rhoE), format(uE), format(pE),
		}
		if err = cw.Write(record); err != nil {
			return
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		err = fmt.Errorf("writing CSV: %w", err)
	}
	return
}
