// Package analysis derives chart-ready series, summary tables, leaderboards
// and spray-chart geometry from the in-memory working sets. Every function is
// a stateless fold over the snapshot it is given.
package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/yterada/ballpark/models"
	"github.com/yterada/ballpark/units"
)

// Selection narrows an aggregation to chosen players, pitch types and a date
// window. Empty slices select everything; empty bounds leave that side open.
// Dates compare as strings, which is correct for the normalized YYYY-MM-DD
// form the ingest pipeline stores.
type Selection struct {
	Players    []string
	PitchTypes []string
	DateFrom   string
	DateTo     string
}

func (s Selection) wantsPlayer(name string) bool {
	if name == "" {
		return false
	}
	if len(s.Players) == 0 {
		return true
	}
	for _, p := range s.Players {
		if p == name {
			return true
		}
	}
	return false
}

func (s Selection) wantsPitchType(pt string) bool {
	if len(s.PitchTypes) == 0 {
		return true
	}
	for _, p := range s.PitchTypes {
		if p == pt {
			return true
		}
	}
	return false
}

func (s Selection) inDateRange(date string) bool {
	if date == "" {
		return false
	}
	if s.DateFrom != "" && date < s.DateFrom {
		return false
	}
	if s.DateTo != "" && date > s.DateTo {
		return false
	}
	return true
}

// entityKey labels a series line. With pitch types selected, pitching-mode
// lines split per (player, pitch type).
func (s Selection) entityKey(player, pitchType string) string {
	if len(s.PitchTypes) == 0 {
		return player
	}
	if pitchType == "" {
		pitchType = "Unknown"
	}
	return fmt.Sprintf("%s [%s]", player, pitchType)
}

// SeriesPoint is one date bucket. Values holds per-entity averaged metrics
// keyed "<entity>_<metric>"; a missing key means no defined sample that day.
type SeriesPoint struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

var dateLayouts = []string{"2006-01-02", "2006-01-02T15:04:05", "1/2/2006"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sortSeries orders buckets ascending by parsed date. Unparsable dates sort
// after all parsable ones; ties fall back to raw string order.
func sortSeries(points []SeriesPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		ti, iok := parseDate(points[i].Date)
		tj, jok := parseDate(points[j].Date)
		if iok && jok {
			if !ti.Equal(tj) {
				return ti.Before(tj)
			}
			return points[i].Date < points[j].Date
		}
		if iok != jok {
			return iok
		}
		return points[i].Date < points[j].Date
	})
}

func positive(v *float64) bool { return v != nil && *v > 0 }

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Pitch outcome classes from Savant's description column.
var (
	swingDescriptions = map[string]bool{
		"swinging_strike": true, "swinging_strike_blocked": true,
		"foul": true, "foul_tip": true, "hit_into_play": true,
		"missed_bunt": true, "foul_bunt": true,
	}
	whiffDescriptions = map[string]bool{
		"swinging_strike": true, "swinging_strike_blocked": true,
	}
	strikeDescriptions = map[string]bool{
		"called_strike": true, "swinging_strike": true,
		"swinging_strike_blocked": true, "foul": true, "foul_tip": true,
		"hit_into_play": true, "foul_bunt": true, "missed_bunt": true,
	}
)

type pitchTally struct {
	vel, spin               float64
	count                   int
	swings, whiffs, strikes int
}

// SavantPitchingSummary is the all-time line for one pitcher (or pitcher and
// pitch type). Whiff rate is whiffs over swings, strike rate strikes over
// all counted pitches, both percentages.
type SavantPitchingSummary struct {
	Vel       float64 `json:"vel"`
	Spin      float64 `json:"spin"`
	WhiffPct  float64 `json:"whiff"`
	StrikePct float64 `json:"strike"`
	Count     int     `json:"count"`
}

// AggregateSavantPitching buckets pitches by date and pitcher, averaging
// release speed and spin per bucket. Pitches without a release speed do not
// count. Velocity converts from mph into the viewer's system.
func AggregateSavantPitching(rows []models.PitchEvent, sel Selection, to units.System) ([]SeriesPoint, map[string]SavantPitchingSummary) {
	byDate := map[string]map[string]*pitchTally{}
	totals := map[string]*pitchTally{}

	for _, d := range rows {
		if !sel.inDateRange(d.GameDate) || !sel.wantsPlayer(d.PitcherName) {
			continue
		}
		if len(sel.PitchTypes) > 0 && !sel.wantsPitchType(d.PitchName) {
			continue
		}
		if !positive(d.ReleaseSpeed) {
			continue
		}
		key := sel.entityKey(d.PitcherName, d.PitchName)
		vel := units.Velocity(*d.ReleaseSpeed, units.MPH, to)

		if byDate[d.GameDate] == nil {
			byDate[d.GameDate] = map[string]*pitchTally{}
		}
		for _, t := range []*pitchTally{tally(byDate[d.GameDate], key), tally(totals, key)} {
			t.vel += vel
			t.spin += orZero(d.ReleaseSpinRate)
			t.count++
			if swingDescriptions[d.Description] {
				t.swings++
				if whiffDescriptions[d.Description] {
					t.whiffs++
				}
			}
			if strikeDescriptions[d.Description] {
				t.strikes++
			}
		}
	}

	series := make([]SeriesPoint, 0, len(byDate))
	for date, entities := range byDate {
		point := SeriesPoint{Date: date, Values: map[string]float64{}}
		for key, t := range entities {
			if t.count > 0 {
				point.Values[key+"_vel"] = t.vel / float64(t.count)
				point.Values[key+"_spin"] = t.spin / float64(t.count)
			}
		}
		series = append(series, point)
	}
	sortSeries(series)

	summary := make(map[string]SavantPitchingSummary, len(totals))
	for key, t := range totals {
		s := SavantPitchingSummary{Count: t.count}
		if t.count > 0 {
			s.Vel = t.vel / float64(t.count)
			s.Spin = t.spin / float64(t.count)
			s.StrikePct = float64(t.strikes) / float64(t.count) * 100
		}
		if t.swings > 0 {
			s.WhiffPct = float64(t.whiffs) / float64(t.swings) * 100
		}
		summary[key] = s
	}
	return series, summary
}

func tally(m map[string]*pitchTally, key string) *pitchTally {
	t, ok := m[key]
	if !ok {
		t = &pitchTally{}
		m[key] = t
	}
	return t
}

type battedTally struct {
	exit, dist, angle                float64
	exitCount, distCount, angleCount int
}

// SavantBattingSummary is the all-time line for one batter. Count is the sum
// of exit-velocity and distance samples, matching how the dashboard reports
// sample size for batted balls.
type SavantBattingSummary struct {
	Exit  float64 `json:"exit"`
	Dist  float64 `json:"dist"`
	Angle float64 `json:"angle"`
	Count int     `json:"count"`
}

// AggregateSavantBatting buckets batted balls by date and batter. Exit
// velocity, hit distance and launch angle carry independent null patterns,
// so each metric keeps its own sample count.
func AggregateSavantBatting(rows []models.PitchEvent, sel Selection, to units.System) ([]SeriesPoint, map[string]SavantBattingSummary) {
	byDate := map[string]map[string]*battedTally{}
	totals := map[string]*battedTally{}

	for _, d := range rows {
		if !sel.inDateRange(d.GameDate) || !sel.wantsPlayer(d.BatterName) {
			continue
		}
		if byDate[d.GameDate] == nil {
			byDate[d.GameDate] = map[string]*battedTally{}
		}
		for _, t := range []*battedTally{battedFor(byDate[d.GameDate], d.BatterName), battedFor(totals, d.BatterName)} {
			if positive(d.LaunchSpeed) {
				t.exit += units.Velocity(*d.LaunchSpeed, units.MPH, to)
				t.exitCount++
			}
			if positive(d.HitDistance) {
				t.dist += units.Distance(*d.HitDistance, units.FT, to)
				t.distCount++
			}
			if d.LaunchAngle != nil {
				t.angle += *d.LaunchAngle
				t.angleCount++
			}
		}
	}

	series := make([]SeriesPoint, 0, len(byDate))
	for date, entities := range byDate {
		point := SeriesPoint{Date: date, Values: map[string]float64{}}
		for key, t := range entities {
			if t.exitCount > 0 {
				point.Values[key+"_exit"] = t.exit / float64(t.exitCount)
			}
			if t.distCount > 0 {
				point.Values[key+"_dist"] = t.dist / float64(t.distCount)
			}
			if t.angleCount > 0 {
				point.Values[key+"_angle"] = t.angle / float64(t.angleCount)
			}
		}
		series = append(series, point)
	}
	sortSeries(series)

	summary := make(map[string]SavantBattingSummary, len(totals))
	for key, t := range totals {
		s := SavantBattingSummary{Count: t.exitCount + t.distCount}
		if t.exitCount > 0 {
			s.Exit = t.exit / float64(t.exitCount)
		}
		if t.distCount > 0 {
			s.Dist = t.dist / float64(t.distCount)
		}
		if t.angleCount > 0 {
			s.Angle = t.angle / float64(t.angleCount)
		}
		summary[key] = s
	}
	return series, summary
}

func battedFor(m map[string]*battedTally, key string) *battedTally {
	t, ok := m[key]
	if !ok {
		t = &battedTally{}
		m[key] = t
	}
	return t
}

type rapsodoPitchTally struct {
	vel, spin, eff, hbreak, vbreak float64
	count                          int
}

// RapsodoPitchingSummary is the all-time line for one pitcher off the device.
type RapsodoPitchingSummary struct {
	Vel    float64 `json:"vel"`
	Spin   float64 `json:"spin"`
	Eff    float64 `json:"eff"`
	HBreak float64 `json:"hbreak"`
	VBreak float64 `json:"vbreak"`
	Count  int     `json:"count"`
}

// AggregateRapsodoPitching buckets device pitches by date and player. A pitch
// counts only when it carries a velocity; the other metrics ride along with
// zero substituted for missing values, sharing the velocity sample count.
// Velocity converts from km/h, break from cm.
func AggregateRapsodoPitching(rows []models.RapsodoPitch, sel Selection, to units.System) ([]SeriesPoint, map[string]RapsodoPitchingSummary) {
	byDate := map[string]map[string]*rapsodoPitchTally{}
	totals := map[string]*rapsodoPitchTally{}

	get := func(m map[string]*rapsodoPitchTally, key string) *rapsodoPitchTally {
		t, ok := m[key]
		if !ok {
			t = &rapsodoPitchTally{}
			m[key] = t
		}
		return t
	}

	for _, d := range rows {
		if !sel.inDateRange(d.Date) || !sel.wantsPlayer(d.PlayerName) {
			continue
		}
		if len(sel.PitchTypes) > 0 && !sel.wantsPitchType(d.PitchType) {
			continue
		}
		if !positive(d.Velocity) {
			continue
		}
		key := sel.entityKey(d.PlayerName, d.PitchType)
		vel := units.Velocity(*d.Velocity, units.KMH, to)
		hbreak := units.Distance(orZero(d.HorizontalBreak), units.CM, to)
		vbreak := units.Distance(orZero(d.VerticalBreak), units.CM, to)

		if byDate[d.Date] == nil {
			byDate[d.Date] = map[string]*rapsodoPitchTally{}
		}
		for _, t := range []*rapsodoPitchTally{get(byDate[d.Date], key), get(totals, key)} {
			t.vel += vel
			t.spin += orZero(d.TotalSpin)
			t.eff += orZero(d.SpinEfficiency)
			t.hbreak += hbreak
			t.vbreak += vbreak
			t.count++
		}
	}

	series := make([]SeriesPoint, 0, len(byDate))
	for date, entities := range byDate {
		point := SeriesPoint{Date: date, Values: map[string]float64{}}
		for key, t := range entities {
			if t.count > 0 {
				n := float64(t.count)
				point.Values[key+"_vel"] = t.vel / n
				point.Values[key+"_spin"] = t.spin / n
				point.Values[key+"_eff"] = t.eff / n
				point.Values[key+"_hbreak"] = t.hbreak / n
				point.Values[key+"_vbreak"] = t.vbreak / n
			}
		}
		series = append(series, point)
	}
	sortSeries(series)

	summary := make(map[string]RapsodoPitchingSummary, len(totals))
	for key, t := range totals {
		s := RapsodoPitchingSummary{Count: t.count}
		if t.count > 0 {
			n := float64(t.count)
			s.Vel = t.vel / n
			s.Spin = t.spin / n
			s.Eff = t.eff / n
			s.HBreak = t.hbreak / n
			s.VBreak = t.vbreak / n
		}
		summary[key] = s
	}
	return series, summary
}

// RapsodoBattingSummary is the all-time line for one hitter off the device.
// Count reports the larger of the two sample counts since either metric may
// be missing on a given swing.
type RapsodoBattingSummary struct {
	Exit  float64 `json:"exit"`
	Dist  float64 `json:"dist"`
	Count int     `json:"count"`
}

// AggregateRapsodoBatting buckets device swings by date and player with
// independent exit-velocity and carry-distance counts. Exit velocity
// converts from km/h, distance from meters.
func AggregateRapsodoBatting(rows []models.RapsodoSwing, sel Selection, to units.System) ([]SeriesPoint, map[string]RapsodoBattingSummary) {
	byDate := map[string]map[string]*battedTally{}
	totals := map[string]*battedTally{}

	for _, d := range rows {
		if !sel.inDateRange(d.Date) || !sel.wantsPlayer(d.PlayerName) {
			continue
		}
		if byDate[d.Date] == nil {
			byDate[d.Date] = map[string]*battedTally{}
		}
		for _, t := range []*battedTally{battedFor(byDate[d.Date], d.PlayerName), battedFor(totals, d.PlayerName)} {
			if positive(d.ExitVelocity) {
				t.exit += units.Velocity(*d.ExitVelocity, units.KMH, to)
				t.exitCount++
			}
			if positive(d.Distance) {
				t.dist += units.Distance(*d.Distance, units.M, to)
				t.distCount++
			}
		}
	}

	series := make([]SeriesPoint, 0, len(byDate))
	for date, entities := range byDate {
		point := SeriesPoint{Date: date, Values: map[string]float64{}}
		for key, t := range entities {
			if t.exitCount > 0 {
				point.Values[key+"_exit"] = t.exit / float64(t.exitCount)
			}
			if t.distCount > 0 {
				point.Values[key+"_dist"] = t.dist / float64(t.distCount)
			}
		}
		series = append(series, point)
	}
	sortSeries(series)

	summary := make(map[string]RapsodoBattingSummary, len(totals))
	for key, t := range totals {
		s := RapsodoBattingSummary{}
		if t.exitCount > 0 {
			s.Exit = t.exit / float64(t.exitCount)
		}
		if t.distCount > 0 {
			s.Dist = t.dist / float64(t.distCount)
		}
		s.Count = t.exitCount
		if t.distCount > s.Count {
			s.Count = t.distCount
		}
		summary[key] = s
	}
	return series, summary
}

type blastTally struct {
	batSpeed, power, efficiency float64
	count                       int
}

// BlastSummary is the all-time line for one hitter's sensor swings.
type BlastSummary struct {
	BatSpeed   float64 `json:"bat_speed"`
	Power      float64 `json:"power"`
	Efficiency float64 `json:"efficiency"`
	Count      int     `json:"count"`
}

// AggregateBlast buckets sensor swings by date and player, averaging bat
// speed (converted from mph), power and on-plane efficiency. Every dated
// swing counts; missing metrics contribute zero.
func AggregateBlast(rows []models.BlastSwing, sel Selection, to units.System) ([]SeriesPoint, map[string]BlastSummary) {
	byDate := map[string]map[string]*blastTally{}
	totals := map[string]*blastTally{}

	get := func(m map[string]*blastTally, key string) *blastTally {
		t, ok := m[key]
		if !ok {
			t = &blastTally{}
			m[key] = t
		}
		return t
	}

	for _, d := range rows {
		if !sel.inDateRange(d.Date) || !sel.wantsPlayer(d.PlayerName) {
			continue
		}
		batSpeed := 0.0
		if d.BatSpeed != nil {
			batSpeed = units.Velocity(*d.BatSpeed, units.MPH, to)
		}
		if byDate[d.Date] == nil {
			byDate[d.Date] = map[string]*blastTally{}
		}
		for _, t := range []*blastTally{get(byDate[d.Date], d.PlayerName), get(totals, d.PlayerName)} {
			t.batSpeed += batSpeed
			t.power += orZero(d.Power)
			t.efficiency += orZero(d.OnPlaneEfficiency)
			t.count++
		}
	}

	series := make([]SeriesPoint, 0, len(byDate))
	for date, entities := range byDate {
		point := SeriesPoint{Date: date, Values: map[string]float64{}}
		for key, t := range entities {
			if t.count > 0 {
				n := float64(t.count)
				point.Values[key+"_bat_speed"] = t.batSpeed / n
				point.Values[key+"_power"] = t.power / n
				point.Values[key+"_efficiency"] = t.efficiency / n
			}
		}
		series = append(series, point)
	}
	sortSeries(series)

	summary := make(map[string]BlastSummary, len(totals))
	for key, t := range totals {
		if t.count == 0 {
			continue
		}
		n := float64(t.count)
		summary[key] = BlastSummary{
			BatSpeed:   t.batSpeed / n,
			Power:      t.power / n,
			Efficiency: t.efficiency / n,
			Count:      t.count,
		}
	}
	return series, summary
}
