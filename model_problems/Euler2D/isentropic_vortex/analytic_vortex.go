package isentropic_vortex

import (
	"math"
)

// IVortex is the isentropic vortex of strength Beta centered at (X0,Y0) at t=0,
// convected by a uniform stream Ufs in x. The freestream has rho = p = 1.
type IVortex struct {
	Beta, X0, Y0, Gamma float64
	Ufs                 float64
	// When positive, the vortex is treated as periodic in x and/or y with these
	// periods, and the nearest image of the center is used.
	PeriodX, PeriodY float64
}

func NewIVortex(Beta, X0, Y0, Gamma float64, UfsO ...float64) (iv *IVortex) {
	var (
		Ufs = 1.0
	)
	if len(UfsO) > 0 {
		Ufs = UfsO[0]
	}
	iv = &IVortex{
		Beta:  Beta,
		X0:    X0,
		Y0:    Y0,
		Gamma: Gamma,
		Ufs:   Ufs,
	}
	return
}

func (iv *IVortex) SetPeriodic(PeriodX, PeriodY float64) *IVortex {
	iv.PeriodX, iv.PeriodY = PeriodX, PeriodY
	return iv
}

// Offset returns the position of (x,y) relative to the vortex center at time t.
func (iv *IVortex) Offset(t, x, y float64) (dx, dy float64) {
	dx, dy = x-iv.Ufs*t-iv.X0, y-iv.Y0
	nearest := func(d, period float64) float64 {
		if period <= 0 {
			return d
		}
		return d - period*math.Round(d/period)
	}
	dx, dy = nearest(dx, iv.PeriodX), nearest(dy, iv.PeriodY)
	return
}

// Perturbation returns the velocity and temperature (p/rho) perturbations of the
// vortex at time t. Added to any uniform state the result stays in radial
// equilibrium and isentropic.
func (iv *IVortex) Perturbation(t, x, y float64) (du, dv, dT float64) {
	var (
		oo2pi = 0.5 * (1. / math.Pi)
		Gamma = iv.Gamma
		GM1   = Gamma - 1
		pi2   = math.Pi * math.Pi
		beta  = iv.Beta
		beta2 = beta * beta
		fac   = 16 * Gamma * pi2
	)
	xr, yr := iv.Offset(t, x, y)
	r2 := xr*xr + yr*yr
	ex1r := math.Exp(1 - r2)
	du = -beta * ex1r * yr * oo2pi
	dv = beta * ex1r * xr * oo2pi
	dT = -GM1 * beta2 * math.Exp(2.0*(1.0-r2)) / fac
	return
}

func (iv *IVortex) GetState(t, x, y float64) (u, v, rho, p float64) {
	/*
	  xmut = xi - u*ti;   ymvt = yi - v*ti;
	  rsqr = sqr(xmut-xo)+sqr(ymvt-yo);
	  ex1r = exp(1.0-rsqr);

	  u -= beta * ex1r.dm(ymvt-yo)/(2.0*pi);
	  v += beta * ex1r.dm(xmut-xo)/(2.0*pi);

	  tv1  = (1.0-(gm1*SQ(beta)*exp(2.0*(1.0-rsqr))/fac));
	  rho1 = pow(tv1, 1.0/gm1);
	  p1   = pow(rho1, gamma);
	*/
	var (
		OOGM1 = 1. / (iv.Gamma - 1)
	)
	du, dv, dT := iv.Perturbation(t, x, y)
	u, v = iv.Ufs+du, dv
	rho = math.Pow(1+dT, OOGM1)
	p = math.Pow(rho, iv.Gamma)
	return
}

func (iv *IVortex) GetStateC(t, x, y float64) (Rho, RhoU, RhoV, E float64) {
	var (
		ooGM1 = 1. / (iv.Gamma - 1.)
	)
	u, v, rho, p := iv.GetState(t, x, y)
	q := 0.5 * rho * (u*u + v*v)
	Rho, RhoU, RhoV, E = rho, rho*u, rho*v, p*ooGM1+q
	return
}
