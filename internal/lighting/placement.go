// Package lighting places the studio lights around the subject and packs
// them for GPU upload.
package lighting

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Convention fixes how the orbit dial's zero angle lines up with world axes.
// The azimuth offset is a design constant of the convention, never a user
// parameter.
type Convention struct {
	Name             string
	AzimuthOffsetDeg float64
}

var (
	// FrontZ puts orbit 0 in front of the subject (+Z) and 90 on its right (-X).
	FrontZ = Convention{Name: "front-z", AzimuthOffsetDeg: 90}

	// FrontX puts orbit 0 on +X. Kept for scenes authored against it.
	FrontX = Convention{Name: "front-x", AzimuthOffsetDeg: 0}
)

// ConventionByName looks up a convention by its config name.
func ConventionByName(name string) (Convention, error) {
	switch name {
	case FrontZ.Name, "":
		return FrontZ, nil
	case FrontX.Name:
		return FrontX, nil
	default:
		return Convention{}, fmt.Errorf("unknown light convention %q", name)
	}
}

// Place converts an orbit angle (degrees), a height fraction and a distance
// into a position on the sphere of that radius around the origin.
//
// heightFraction 0 is directly below the subject and 1 directly above; it is
// not clamped here.
func Place(conv Convention, orbitDeg, heightFraction, distance float64) mgl64.Vec3 {
	azimuth := (orbitDeg + conv.AzimuthOffsetDeg) * math.Pi / 180
	vertical := -math.Pi/2 + heightFraction*math.Pi

	ring := distance * math.Cos(vertical)
	return mgl64.Vec3{
		ring * math.Cos(azimuth),
		distance * math.Sin(vertical),
		ring * math.Sin(azimuth),
	}
}
