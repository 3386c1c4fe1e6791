package analysis

import (
	"math"

	"github.com/yterada/ballpark/models"
	"github.com/yterada/ballpark/units"
)

// Savant field-coordinate origin for home plate and the scale applied when
// no measured hit distance is available. Coordinate-derived distances are
// unreliable, so the measured hit_distance_sc wins whenever present.
const (
	savantHomeX   = 125.42
	savantHomeY   = 199.88
	savantFThrust = 2.85
)

// SprayPoint is one batted ball plotted on the field. Coordinates are feet
// with home plate at the origin: y points to center field, x to the pull
// side, so direction 0° lands at (0, distance) and +90° at (distance, 0).
type SprayPoint struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Distance *float64 `json:"distance,omitempty"`
	ExitVel  *float64 `json:"exit_vel,omitempty"`
	Event    string   `json:"event,omitempty"`
	Batter   string   `json:"batter,omitempty"`
}

func keepSprayPoint(p SprayPoint) bool {
	if p.Y < 0 {
		return false
	}
	if p.Distance != nil && *p.Distance <= 10 {
		return false
	}
	return true
}

// SavantSprayPoints projects Savant batted balls onto the field. The stored
// hc_x/hc_y coordinates give the direction; the measured hit distance, when
// present, gives the magnitude. Without one the coordinate offset is scaled
// into feet. Points behind home plate or implausibly short are noise from
// the tracking system and are dropped.
func SavantSprayPoints(rows []models.PitchEvent, sel Selection) []SprayPoint {
	var points []SprayPoint
	for _, d := range rows {
		if d.HCX == nil || d.HCY == nil {
			continue
		}
		if !sel.wantsPlayer(d.BatterName) || !sel.inDateRange(d.GameDate) {
			continue
		}
		relX := *d.HCX - savantHomeX
		relY := savantHomeY - *d.HCY
		angle := math.Atan2(relY, relX)

		var x, y float64
		if positive(d.HitDistance) {
			x = *d.HitDistance * math.Cos(angle)
			y = *d.HitDistance * math.Sin(angle)
		} else {
			x = relX * savantFThrust
			y = relY * savantFThrust
		}

		p := SprayPoint{
			X:        x,
			Y:        y,
			Distance: d.HitDistance,
			ExitVel:  d.LaunchSpeed,
			Event:    d.Events,
			Batter:   d.BatterName,
		}
		if keepSprayPoint(p) {
			points = append(points, p)
		}
	}
	return points
}

// RapsodoSprayPoints projects device swings from polar direction/distance
// readings. Direction is degrees off the centerline, distance meters; both
// become field feet. Swings without a direction or a positive distance
// cannot be placed and are skipped.
func RapsodoSprayPoints(rows []models.RapsodoSwing, sel Selection) []SprayPoint {
	var points []SprayPoint
	for _, d := range rows {
		if d.Direction == nil || !positive(d.Distance) {
			continue
		}
		if !sel.wantsPlayer(d.PlayerName) || !sel.inDateRange(d.Date) {
			continue
		}
		distFt := *d.Distance * units.MToFt
		rad := *d.Direction * math.Pi / 180

		p := SprayPoint{
			X:        distFt * math.Sin(rad),
			Y:        math.Abs(distFt * math.Cos(rad)),
			Distance: &distFt,
			ExitVel:  d.ExitVelocity,
			Event:    "hit",
			Batter:   d.PlayerName,
		}
		if keepSprayPoint(p) {
			points = append(points, p)
		}
	}
	return points
}
