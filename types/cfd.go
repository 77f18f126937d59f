package types

import (
	"fmt"
	"strings"
)

type BoundaryType uint8

const (
	BC_None BoundaryType = iota
	BC_Periodic
	BC_Reflective
	BC_Extrapolated
)

var BCNameMap = map[string]BoundaryType{
	"periodic":     BC_Periodic,
	"cyclic":       BC_Periodic,
	"reflective":   BC_Reflective,
	"wall":         BC_Reflective,
	"slip":         BC_Reflective,
	"extrapolated": BC_Extrapolated,
	"outflow":      BC_Extrapolated,
	"out":          BC_Extrapolated,
}

func (bt BoundaryType) String() string {
	switch bt {
	case BC_None:
		return "None"
	case BC_Periodic:
		return "Periodic"
	case BC_Reflective:
		return "Reflective"
	case BC_Extrapolated:
		return "Extrapolated"
	}
	return fmt.Sprintf("BoundaryType(%d)", uint8(bt))
}

// IsValid is false for BC_None and for any value outside the enumeration.
func (bt BoundaryType) IsValid() bool {
	return bt >= BC_Periodic && bt <= BC_Extrapolated
}

// ParseBoundaryType is case insensitive. An unrecognized name is an error, there is
// no fallback type.
func ParseBoundaryType(name string) (bt BoundaryType, err error) {
	var (
		ok bool
	)
	label := strings.ToLower(strings.TrimSpace(name))
	if bt, ok = BCNameMap[label]; !ok {
		err = fmt.Errorf("unrecognized boundary type %q, must be one of periodic, reflective, extrapolated", name)
	}
	return
}

// Edge identifies one side of a rectangular grid.
type Edge uint8

const (
	West Edge = iota // x = X0
	East             // x = X0 + Lx
	South            // y = Y0
	North            // y = Y0 + Ly
)

var Edges = [4]Edge{West, East, South, North}

var EdgeNameMap = map[string]Edge{
	"west":   West,
	"left":   West,
	"east":   East,
	"right":  East,
	"south":  South,
	"bottom": South,
	"north":  North,
	"top":    North,
}

func (e Edge) String() string {
	return [4]string{"West", "East", "South", "North"}[e]
}

// Opposite returns the edge across the domain on the same axis.
func (e Edge) Opposite() Edge {
	return [4]Edge{East, West, North, South}[e]
}

// IsX is true for the edges normal to the x axis.
func (e Edge) IsX() bool {
	return e == West || e == East
}

func ParseEdge(name string) (e Edge, err error) {
	var (
		ok bool
	)
	if e, ok = EdgeNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unrecognized edge %q, must be one of west, east, south, north", name)
	}
	return
}
