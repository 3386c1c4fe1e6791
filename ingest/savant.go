package ingest

import (
	"github.com/yterada/ballpark/models"
)

// MapSavantRow normalizes one Baseball Savant CSV row. In the Savant export
// "player_name" is the pitcher; the batter identity is resolved from
// batter_name with the numeric batter ID as fallback. Rows missing any of
// pitcher, batter or game date are dropped, everything else degrades to
// null field by field.
func MapSavantRow(r Row, fileName, uploadID string) (models.PitchEvent, bool) {
	ev := models.PitchEvent{
		GameDate:    pick(r, "game_date"),
		PitcherName: pick(r, "player_name", "pitcher_name"),
		BatterName:  pick(r, "batter_name", "batter"),
		Pitcher:     pickNum(r, "pitcher"),
		Batter:      pickNum(r, "batter"),
		PitchName:   pick(r, "pitch_name"),

		ReleaseSpeed:    pickNum(r, "release_speed"),
		ReleaseSpinRate: pickNum(r, "release_spin_rate"),
		LaunchSpeed:     pickNum(r, "launch_speed"),
		LaunchAngle:     pickNum(r, "launch_angle"),
		HitDistance:     pickNum(r, "hit_distance_sc"),

		Events:      pick(r, "events"),
		Description: pick(r, "description"),
		Zone:        pickNum(r, "zone"),
		Stand:       pick(r, "stand"),
		PThrows:     pick(r, "p_throws"),
		HomeTeam:    pick(r, "home_team"),
		AwayTeam:    pick(r, "away_team"),
		Type:        pick(r, "type"),
		HitLocation: pickNum(r, "hit_location"),
		BBType:      pick(r, "bb_type"),
		Balls:       pickNum(r, "balls"),
		Strikes:     pickNum(r, "strikes"),
		GameYear:    pickNum(r, "game_year"),

		PfxX:   pickNum(r, "pfx_x"),
		PfxZ:   pickNum(r, "pfx_z"),
		PlateX: pickNum(r, "plate_x"),
		PlateZ: pickNum(r, "plate_z"),

		On3B:       pickNum(r, "on_3b"),
		On2B:       pickNum(r, "on_2b"),
		On1B:       pickNum(r, "on_1b"),
		OutsWhenUp: pickNum(r, "outs_when_up"),
		Inning:     pickNum(r, "inning"),
		InningHalf: pick(r, "inning_topbot"),

		HCX: pickNum(r, "hc_x"),
		HCY: pickNum(r, "hc_y"),

		VX0: pickNum(r, "vx0"),
		VY0: pickNum(r, "vy0"),
		VZ0: pickNum(r, "vz0"),
		AX:  pickNum(r, "ax"),
		AY:  pickNum(r, "ay"),
		AZ:  pickNum(r, "az"),

		SZTop:            pickNum(r, "sz_top"),
		SZBot:            pickNum(r, "sz_bot"),
		EffectiveSpeed:   pickNum(r, "effective_speed"),
		ReleaseExtension: pickNum(r, "release_extension"),
		GamePK:           pickNum(r, "game_pk"),
		SpinAxis:         pickNum(r, "spin_axis"),
		DeltaHomeWinExp:  pickNum(r, "delta_home_win_exp"),
		DeltaRunExp:      pickNum(r, "delta_run_exp"),

		FileName: fileName,
		UploadID: uploadID,
	}

	if ev.PitcherName == "" || ev.BatterName == "" || ev.GameDate == "" {
		return models.PitchEvent{}, false
	}
	return ev, true
}

// MapSavantRows maps a whole parsed file, silently filtering dropped rows.
// The second return is the drop count.
func MapSavantRows(rows []Row, fileName, uploadID string) ([]models.PitchEvent, int) {
	out := make([]models.PitchEvent, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		ev, ok := MapSavantRow(r, fileName, uploadID)
		if !ok {
			dropped++
			continue
		}
		out = append(out, ev)
	}
	return out, dropped
}
