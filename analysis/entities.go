package analysis

import (
	"sort"

	"github.com/yterada/ballpark/models"
)

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SavantPlayers lists every pitcher and batter appearing in the rows.
func SavantPlayers(rows []models.PitchEvent) (pitchers, batters []string) {
	pset := map[string]struct{}{}
	bset := map[string]struct{}{}
	for _, d := range rows {
		if d.PitcherName != "" {
			pset[d.PitcherName] = struct{}{}
		}
		if d.BatterName != "" {
			bset[d.BatterName] = struct{}{}
		}
	}
	return sortedKeys(pset), sortedKeys(bset)
}

// PitchTypes lists the distinct pitch names in the rows.
func PitchTypes(rows []models.PitchEvent) []string {
	set := map[string]struct{}{}
	for _, d := range rows {
		if d.PitchName != "" {
			set[d.PitchName] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// RapsodoPitchingPlayers lists the distinct players in device pitching rows.
func RapsodoPitchingPlayers(rows []models.RapsodoPitch) []string {
	set := map[string]struct{}{}
	for _, d := range rows {
		if d.PlayerName != "" {
			set[d.PlayerName] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// RapsodoBattingPlayers lists the distinct players in device batting rows.
func RapsodoBattingPlayers(rows []models.RapsodoSwing) []string {
	set := map[string]struct{}{}
	for _, d := range rows {
		if d.PlayerName != "" {
			set[d.PlayerName] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// BlastPlayers lists the distinct players in sensor rows.
func BlastPlayers(rows []models.BlastSwing) []string {
	set := map[string]struct{}{}
	for _, d := range rows {
		if d.PlayerName != "" {
			set[d.PlayerName] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// ZonePoint is one pitch located on the strike-zone plane, viewed from the
// catcher. Value carries the metric used for coloring.
type ZonePoint struct {
	Side   float64 `json:"side"`
	Height float64 `json:"height"`
	Value  float64 `json:"value,omitempty"`
	Player string  `json:"player"`
}

// SavantZonePoints plots pitches by their plate crossing, colored by
// release speed.
func SavantZonePoints(rows []models.PitchEvent, sel Selection) []ZonePoint {
	var points []ZonePoint
	for _, d := range rows {
		if !sel.wantsPlayer(d.PitcherName) || !sel.inDateRange(d.GameDate) {
			continue
		}
		if d.PlateX == nil || d.PlateZ == nil {
			continue
		}
		p := ZonePoint{Side: *d.PlateX, Height: *d.PlateZ, Player: d.PitcherName}
		if d.ReleaseSpeed != nil {
			p.Value = *d.ReleaseSpeed
		}
		points = append(points, p)
	}
	return points
}

// RapsodoZonePoints plots device pitches by their strike-zone reading,
// colored by velocity.
func RapsodoZonePoints(rows []models.RapsodoPitch, sel Selection) []ZonePoint {
	var points []ZonePoint
	for _, d := range rows {
		if !sel.wantsPlayer(d.PlayerName) || !sel.inDateRange(d.Date) {
			continue
		}
		if d.StrikeZoneSide == nil || d.StrikeZoneHeight == nil {
			continue
		}
		p := ZonePoint{Side: *d.StrikeZoneSide, Height: *d.StrikeZoneHeight, Player: d.PlayerName}
		if d.Velocity != nil {
			p.Value = *d.Velocity
		}
		points = append(points, p)
	}
	return points
}

// ScatterPoint pairs two metrics for one swing or batted ball.
type ScatterPoint struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Player string  `json:"player"`
}

// SavantScatter pairs exit velocity with launch angle for batted balls.
func SavantScatter(rows []models.PitchEvent, sel Selection) []ScatterPoint {
	var points []ScatterPoint
	for _, d := range rows {
		if !sel.wantsPlayer(d.BatterName) || !sel.inDateRange(d.GameDate) {
			continue
		}
		if !positive(d.LaunchSpeed) || d.LaunchAngle == nil {
			continue
		}
		points = append(points, ScatterPoint{X: *d.LaunchSpeed, Y: *d.LaunchAngle, Player: d.BatterName})
	}
	return points
}

// RapsodoScatter pairs exit velocity with launch angle for device swings.
func RapsodoScatter(rows []models.RapsodoSwing, sel Selection) []ScatterPoint {
	var points []ScatterPoint
	for _, d := range rows {
		if !sel.wantsPlayer(d.PlayerName) || !sel.inDateRange(d.Date) {
			continue
		}
		if !positive(d.ExitVelocity) || d.LaunchAngle == nil {
			continue
		}
		points = append(points, ScatterPoint{X: *d.ExitVelocity, Y: *d.LaunchAngle, Player: d.PlayerName})
	}
	return points
}
