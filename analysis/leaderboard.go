package analysis

import (
	"fmt"
	"sort"

	"github.com/yterada/ballpark/models"
	"github.com/yterada/ballpark/units"
)

// Metric names a leaderboard column.
type Metric string

const (
	MetricExitVelocity  Metric = "exit_velocity"
	MetricDistance      Metric = "distance"
	MetricPitchVelocity Metric = "pitch_velocity"
	MetricSpinRate      Metric = "spin_rate"
	MetricBatSpeed      Metric = "bat_speed"
	MetricPeakHandSpeed Metric = "peak_hand_speed"
	MetricPower         Metric = "power"
	MetricRotationScore Metric = "rotation_score"
)

// LeaderboardSize caps every board at the top entries.
const LeaderboardSize = 50

// LeaderboardEntry is one ranked row. Value is already converted into the
// requested unit system.
type LeaderboardEntry struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// rank folds per-player maxima into a sorted, capped board.
type ranker struct {
	best map[string]float64
}

func newRanker() *ranker {
	return &ranker{best: map[string]float64{}}
}

func (r *ranker) observe(name string, v *float64) {
	if name == "" || !positive(v) {
		return
	}
	if cur, ok := r.best[name]; !ok || *v > cur {
		r.best[name] = *v
	}
}

func (r *ranker) board(convert func(float64) float64) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(r.best))
	for name, v := range r.best {
		entries = append(entries, LeaderboardEntry{Name: name, Value: convert(v)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func identity(v float64) float64 { return v }

// SavantLeaderboard ranks players by their single best value of the metric.
// Batting metrics rank batters, pitching metrics rank pitchers. Velocities
// and distances convert from Savant's imperial units into the viewer's
// system.
func SavantLeaderboard(rows []models.PitchEvent, metric Metric, to units.System) ([]LeaderboardEntry, error) {
	r := newRanker()
	switch metric {
	case MetricExitVelocity:
		for _, d := range rows {
			r.observe(d.BatterName, d.LaunchSpeed)
		}
		return r.board(func(v float64) float64 { return units.Velocity(v, units.MPH, to) }), nil
	case MetricDistance:
		for _, d := range rows {
			r.observe(d.BatterName, d.HitDistance)
		}
		return r.board(func(v float64) float64 { return units.Distance(v, units.FT, to) }), nil
	case MetricPitchVelocity:
		for _, d := range rows {
			r.observe(d.PitcherName, d.ReleaseSpeed)
		}
		return r.board(func(v float64) float64 { return units.Velocity(v, units.MPH, to) }), nil
	case MetricSpinRate:
		for _, d := range rows {
			r.observe(d.PitcherName, d.ReleaseSpinRate)
		}
		return r.board(identity), nil
	}
	return nil, fmt.Errorf("metric %q not available for savant data", metric)
}

// RapsodoLeaderboard ranks players across the two device datasets. Batting
// metrics read the batting rows (km/h and meters), pitching metrics the
// pitching rows (km/h).
func RapsodoLeaderboard(pitching []models.RapsodoPitch, batting []models.RapsodoSwing, metric Metric, to units.System) ([]LeaderboardEntry, error) {
	r := newRanker()
	switch metric {
	case MetricExitVelocity:
		for _, d := range batting {
			r.observe(d.PlayerName, d.ExitVelocity)
		}
		return r.board(func(v float64) float64 { return units.Velocity(v, units.KMH, to) }), nil
	case MetricDistance:
		for _, d := range batting {
			r.observe(d.PlayerName, d.Distance)
		}
		return r.board(func(v float64) float64 { return units.Distance(v, units.M, to) }), nil
	case MetricPitchVelocity:
		for _, d := range pitching {
			r.observe(d.PlayerName, d.Velocity)
		}
		return r.board(func(v float64) float64 { return units.Velocity(v, units.KMH, to) }), nil
	case MetricSpinRate:
		for _, d := range pitching {
			r.observe(d.PlayerName, d.TotalSpin)
		}
		return r.board(identity), nil
	}
	return nil, fmt.Errorf("metric %q not available for rapsodo data", metric)
}

// BlastLeaderboard ranks players by bat-sensor metrics. Speeds convert from
// mph; the score metrics are unitless.
func BlastLeaderboard(rows []models.BlastSwing, metric Metric, to units.System) ([]LeaderboardEntry, error) {
	r := newRanker()
	toVel := func(v float64) float64 { return units.Velocity(v, units.MPH, to) }
	switch metric {
	case MetricBatSpeed:
		for _, d := range rows {
			r.observe(d.PlayerName, d.BatSpeed)
		}
		return r.board(toVel), nil
	case MetricPeakHandSpeed:
		for _, d := range rows {
			r.observe(d.PlayerName, d.PeakHandSpeed)
		}
		return r.board(toVel), nil
	case MetricPower:
		for _, d := range rows {
			r.observe(d.PlayerName, d.Power)
		}
		return r.board(identity), nil
	case MetricRotationScore:
		for _, d := range rows {
			r.observe(d.PlayerName, d.RotationScore)
		}
		return r.board(identity), nil
	}
	return nil, fmt.Errorf("metric %q not available for blast data", metric)
}
