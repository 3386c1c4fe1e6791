// Package units converts measured values between the metric and imperial
// systems. Rapsodo exports are metric (km/h, m, cm), Savant and Blast are
// imperial (mph, ft, in); chart components want everything in the viewer's
// preferred system. No rounding is applied here, callers round for display.
package units

import "math"

// System is the viewer-facing unit system.
type System string

const (
	Imperial System = "imperial"
	Metric   System = "metric"
)

// Unit is the unit a source value was measured in.
type Unit string

const (
	MPH Unit = "mph"
	KMH Unit = "kmh"
	M   Unit = "m"
	FT  Unit = "ft"
	CM  Unit = "cm"
	IN  Unit = "in"
)

const (
	KmhToMph = 0.621371
	MphToKmh = 1.60934
	MToFt    = 3.28084
	FtToM    = 0.3048
	CmToIn   = 0.393701
	InToCm   = 2.54
)

// Velocity converts v from its source unit into the target system.
// A value already in the target system is returned unchanged so repeated
// conversion never accumulates rounding drift. NaN passes through.
func Velocity(v float64, from Unit, to System) float64 {
	if math.IsNaN(v) {
		return v
	}
	if (from == KMH && to == Metric) || (from == MPH && to == Imperial) {
		return v
	}
	if to == Imperial {
		return v * KmhToMph
	}
	return v * MphToKmh
}

// Distance converts v from its source unit into the target system. The
// magnitude class is inferred from the source unit: m/ft convert with the
// large-distance pair, cm/in with the small one. Callers must pass the
// source unit of the correct class, the target system alone does not
// determine which constant applies.
func Distance(v float64, from Unit, to System) float64 {
	if math.IsNaN(v) {
		return v
	}
	if (from == M && to == Metric) || (from == FT && to == Imperial) ||
		(from == CM && to == Metric) || (from == IN && to == Imperial) {
		return v
	}

	large := from == M || from == FT
	if large {
		if to == Imperial {
			return v * MToFt
		}
		return v * FtToM
	}
	if to == Imperial {
		return v * CmToIn
	}
	return v * InToCm
}

// VelocityPtr is Velocity lifted over nullable values.
func VelocityPtr(v *float64, from Unit, to System) *float64 {
	if v == nil {
		return nil
	}
	out := Velocity(*v, from, to)
	return &out
}

// DistancePtr is Distance lifted over nullable values.
func DistancePtr(v *float64, from Unit, to System) *float64 {
	if v == nil {
		return nil
	}
	out := Distance(*v, from, to)
	return &out
}

// VelocityUnit returns the display label for velocities in the given system.
func VelocityUnit(s System) string {
	if s == Imperial {
		return "mph"
	}
	return "km/h"
}

// DistanceUnit returns the display label for distances. large selects the
// m/ft pair, otherwise cm/in.
func DistanceUnit(s System, large bool) string {
	if large {
		if s == Imperial {
			return "ft"
		}
		return "m"
	}
	if s == Imperial {
		return "in"
	}
	return "cm"
}
