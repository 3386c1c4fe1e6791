package ingest

import (
	"github.com/yterada/ballpark/models"
)

// MapRapsodoPitch normalizes one Rapsodo pitching-mode row. Header spellings
// drift between export versions, so every field resolves through a candidate
// list. Required: player name, velocity and total spin; rows missing any of
// them are dropped.
func MapRapsodoPitch(r Row, fileName, uploadID string) (models.RapsodoPitch, bool) {
	p := models.RapsodoPitch{
		Date:       pick(r, "Date"),
		PlayerName: pick(r, "Player Name", "PlayerName"),
		PitchType:  pick(r, "Pitch Type", "PitchType"),

		Velocity:         pickNum(r, "Velocity"),
		TotalSpin:        roundPtr(pickNum(r, "Total Spin", "TotalSpin", "Spin Rate")),
		SpinEfficiency:   pickNum(r, "Spin Efficiency (release)", "Spin Efficiency", "SpinEfficiency"),
		HorizontalBreak:  pickNum(r, "HB (trajectory)", "Horizontal Break", "HorizontalBreak"),
		VerticalBreak:    pickNum(r, "VB (trajectory)", "Vertical Break", "VerticalBreak"),
		ReleaseSide:      pickNum(r, "Release Side", "ReleaseSide"),
		ReleaseHeight:    pickNum(r, "Release Height", "ReleaseHeight"),
		ReleaseAngle:     pickNum(r, "Release Angle", "ReleaseAngle"),
		StrikeZoneSide:   pickNum(r, "Strike Zone Side", "StrikeZoneSide", "PlateLocSide"),
		StrikeZoneHeight: pickNum(r, "Strike Zone Height", "StrikeZoneHeight", "PlateLocHeight"),

		FileName: fileName,
		UploadID: uploadID,
	}

	if p.PlayerName == "" || p.Velocity == nil || p.TotalSpin == nil {
		return models.RapsodoPitch{}, false
	}
	return p, true
}

// MapRapsodoSwing normalizes one Rapsodo batting-mode row. Required: player
// name, exit velocity, launch angle and distance.
func MapRapsodoSwing(r Row, fileName, uploadID string) (models.RapsodoSwing, bool) {
	s := models.RapsodoSwing{
		Date:       pick(r, "Date"),
		PlayerName: pick(r, "Player Name", "PlayerName"),

		ExitVelocity:     pickNum(r, "ExitVelocity", "Exit Velocity", "Exit Speed"),
		LaunchAngle:      pickNum(r, "LaunchAngle", "Launch Angle"),
		Direction:        pickNum(r, "ExitDirection", "Direction"),
		SpinRate:         roundPtr(pickNum(r, "Spin", "Spin Rate", "SpinRate")),
		Distance:         pickNum(r, "Distance", "Total Distance"),
		HangTime:         pickNum(r, "HangTime", "Hang Time"),
		StrikeZoneSide:   pickNum(r, "StrikeZoneLocation", "Strike Zone Side", "StrikeZoneSide"),
		StrikeZoneHeight: pickNum(r, "Strike Zone Height", "StrikeZoneHeight"),

		FileName: fileName,
		UploadID: uploadID,
	}

	if s.PlayerName == "" || s.ExitVelocity == nil || s.LaunchAngle == nil || s.Distance == nil {
		return models.RapsodoSwing{}, false
	}
	return s, true
}

// MapRapsodoPitches maps a whole pitching file; second return is drop count.
func MapRapsodoPitches(rows []Row, fileName, uploadID string) ([]models.RapsodoPitch, int) {
	out := make([]models.RapsodoPitch, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		p, ok := MapRapsodoPitch(r, fileName, uploadID)
		if !ok {
			dropped++
			continue
		}
		out = append(out, p)
	}
	return out, dropped
}

// MapRapsodoSwings maps a whole batting file; second return is drop count.
func MapRapsodoSwings(rows []Row, fileName, uploadID string) ([]models.RapsodoSwing, int) {
	out := make([]models.RapsodoSwing, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		s, ok := MapRapsodoSwing(r, fileName, uploadID)
		if !ok {
			dropped++
			continue
		}
		out = append(out, s)
	}
	return out, dropped
}
