package sod_shock_tube

import (
	"fmt"
	"math"
)

// SODParams describes a shock tube with both gases initially at rest and the
// higher pressure on the left of the diaphragm.
type SODParams struct {
	Gamma      float64
	XMin, XMax float64
	X0         float64 // Diaphragm location
	RhoL, PL   float64
	RhoR, PR   float64
	FanPoints  int // Number of samples returned inside the rarefaction fan by Get
}

func DefaultSODParams() SODParams {
	return SODParams{
		Gamma:     1.4,
		XMin:      0,
		XMax:      1,
		X0:        0.5,
		RhoL:      1,
		PL:        1,
		RhoR:      0.125,
		PR:        0.1,
		FanPoints: 10,
	}
}

func (sp SODParams) Validate() (err error) {
	switch {
	case sp.Gamma <= 1:
		err = fmt.Errorf("gamma must be > 1, have %v", sp.Gamma)
	case sp.RhoL <= 0 || sp.RhoR <= 0 || sp.PL <= 0 || sp.PR <= 0:
		err = fmt.Errorf("densities and pressures must be positive, have rho=[%v,%v] p=[%v,%v]",
			sp.RhoL, sp.RhoR, sp.PL, sp.PR)
	case sp.PL <= sp.PR:
		err = fmt.Errorf("left pressure %v must exceed right pressure %v", sp.PL, sp.PR)
	case sp.XMax <= sp.XMin || sp.X0 <= sp.XMin || sp.X0 >= sp.XMax:
		err = fmt.Errorf("diaphragm %v must lie inside (%v,%v)", sp.X0, sp.XMin, sp.XMax)
	}
	return
}

// SOD is the exact solution at time T: a left running rarefaction [X1,X2], a
// contact at X3 and a right running shock at X4.
type SOD struct {
	SODParams
	T                  float64
	PPost, UPost       float64 // Pressure and velocity between the rarefaction and the shock
	RhoMiddle, RhoPost float64 // Density left and right of the contact
	UShock             float64
	CL, CR             float64
	X1, X2, X3, X4     float64
}

func NewSOD(t float64, paramsO ...SODParams) (sod *SOD) {
	var (
		err error
	)
	if sod, err = NewSODWithError(t, paramsO...); err != nil {
		panic(err)
	}
	return
}

func NewSODWithError(t float64, paramsO ...SODParams) (sod *SOD, err error) {
	var (
		sp = DefaultSODParams()
	)
	if len(paramsO) != 0 {
		sp = paramsO[0]
	}
	if err = sp.Validate(); err != nil {
		return
	}
	if t <= 0 {
		err = fmt.Errorf("time must be positive, have %v", t)
		return
	}
	var (
		gamma = sp.Gamma
		mu2   = (gamma - 1) / (gamma + 1)
	)
	sod = &SOD{
		SODParams: sp,
		T:         t,
		CL:        math.Sqrt(gamma * sp.PL / sp.RhoL),
		CR:        math.Sqrt(gamma * sp.PR / sp.RhoR),
	}
	if sod.PPost, err = sod.solvePressure(); err != nil {
		return
	}
	fL, _ := sod.rarefaction(sod.PPost)
	fR, _ := sod.shock(sod.PPost)
	sod.UPost = 0.5 * (fR - fL)
	sod.RhoMiddle = sp.RhoL * math.Pow(sod.PPost/sp.PL, 1./gamma)
	pr := sod.PPost / sp.PR
	sod.RhoPost = sp.RhoR * (pr + mu2) / (1 + mu2*pr)
	sod.UShock = sod.CR * math.Sqrt((gamma+1)/(2*gamma)*pr+(gamma-1)/(2*gamma))
	cMiddle := sod.CL * math.Pow(sod.PPost/sp.PL, (gamma-1)/(2*gamma))
	sod.X1 = sp.X0 - sod.CL*t
	sod.X2 = sp.X0 + (sod.UPost-cMiddle)*t
	sod.X3 = sp.X0 + sod.UPost*t
	sod.X4 = sp.X0 + sod.UShock*t
	return
}

// Pressure function for the left rarefaction and its derivative
func (sod *SOD) rarefaction(p float64) (f, df float64) {
	var (
		gamma = sod.Gamma
		pl    = sod.PL
		expo  = (gamma - 1) / (2 * gamma)
	)
	f = 2 * sod.CL / (gamma - 1) * (math.Pow(p/pl, expo) - 1)
	df = sod.CL / (gamma * pl) * math.Pow(p/pl, -(gamma+1)/(2*gamma))
	return
}

// Pressure function for the right shock and its derivative
func (sod *SOD) shock(p float64) (f, df float64) {
	var (
		gamma = sod.Gamma
		A     = 2 / ((gamma + 1) * sod.RhoR)
		B     = (gamma - 1) / (gamma + 1) * sod.PR
		sq    = math.Sqrt(A / (p + B))
	)
	f = (p - sod.PR) * sq
	df = sq * (1 - 0.5*(p-sod.PR)/(p+B))
	return
}

func (sod *SOD) solvePressure() (p float64, err error) {
	var (
		tol     = 1.e-12
		maxIter = 100
	)
	// The star pressure of a rarefaction-shock pair lies in (PR, PL)
	p = 0.5 * (sod.PL + sod.PR)
	for i := 0; i < maxIter; i++ {
		fL, dfL := sod.rarefaction(p)
		fR, dfR := sod.shock(p)
		pNew := p - (fL+fR)/(dfL+dfR)
		if pNew <= 0 {
			pNew = 0.5 * p
		}
		if math.Abs(pNew-p) < tol*(pNew+p) {
			p = pNew
			return
		}
		p = pNew
	}
	err = fmt.Errorf("star pressure iteration did not converge after %d iterations, last p = %v", maxIter, p)
	return
}

// Sample returns the primitive state at x.
func (sod *SOD) Sample(x float64) (rho, u, p float64) {
	var (
		gamma = sod.Gamma
		t     = sod.T
	)
	switch {
	case x < sod.X1:
		rho, u, p = sod.RhoL, 0, sod.PL
	case x < sod.X2:
		u = 2 / (gamma + 1) * (sod.CL + (x-sod.X0)/t)
		c := sod.CL - 0.5*(gamma-1)*u
		rho = sod.RhoL * math.Pow(c/sod.CL, 2/(gamma-1))
		p = sod.PL * math.Pow(rho/sod.RhoL, gamma)
	case x < sod.X3:
		rho, u, p = sod.RhoMiddle, sod.UPost, sod.PPost
	case x < sod.X4:
		rho, u, p = sod.RhoPost, sod.UPost, sod.PPost
	default:
		rho, u, p = sod.RhoR, 0, sod.PR
	}
	return
}

// Get returns samples suitable for plotting: the domain ends, both sides of each
// wave and FanPoints samples within the rarefaction. E is the total energy per
// unit volume.
func (sod *SOD) Get() (X, Rho, P, RhoU, E []float64) {
	var (
		tol = 0.0001
	)
	X = []float64{sod.XMin, sod.X1 - tol}
	nFan := sod.FanPoints
	if nFan < 2 {
		nFan = 2
	}
	for i := 0; i < nFan; i++ {
		X = append(X, sod.X1+(sod.X2-sod.X1)*float64(i)/float64(nFan-1))
	}
	X = append(X, sod.X2+tol, sod.X3-tol, sod.X3+tol, sod.X4-tol, sod.X4+tol, sod.XMax)
	Rho = make([]float64, len(X))
	P = make([]float64, len(X))
	RhoU = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		rho, u, p := sod.Sample(x)
		Rho[i], P[i], RhoU[i] = rho, p, rho*u
		E[i] = p/(sod.Gamma-1) + 0.5*rho*u*u
	}
	return
}
