package ingest

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/yterada/ballpark/models"
)

// blastJPHeaders translates the Japanese Blast export headers to canonical
// column names. Some headers carry a leading space in the export itself.
var blastJPHeaders = map[string]string{
	"日付":                       "date",
	"スイングスピード (mph)":        "bat_speed",
	"バットスピード (mph)":          "bat_speed",
	"アッパースイング度 (deg)":       "attack_angle",
	"垂直バット角度 (deg)":          "vertical_bat_angle",
	"パワー (kW)":                 "power",
	"スイング時間 (sec)":            "time_to_contact",
	"手の最大スピード (mph)":         "peak_hand_speed",
	"オンプレーンの効率 (%)":         "on_plane_efficiency",
	"体の回転による加速スコア":        "rotation_score",
	"オンプレーンスコア":             "on_plane_score",
	"オンプレーンのスコア":           "on_plane_score",
	"体とバットの角度スコア":         "connection_score",
	"コネクションのスコア":           "connection_score",
	"体の回転によるバットの加速の大きさ（初動） (g)": "rotation_acceleration",
	" 体とバットの角度（インパクト） (deg)":      "connection_at_impact",
	" 体とバットの角度（構え） (deg)":         "connection_at_address",
	" バット角度 (deg)":                   "bat_angle",
	"打球スピード (mph)":                  "exit_velocity",
	"打球角度 (deg)":                     "launch_angle",
	"推定飛距離 (feet)":                   "carry_distance",
}

// blastENHeaders is the fallback table for English-format exports.
var blastENHeaders = map[string]string{
	"Date":                        "date",
	"Bat Speed (mph)":             "bat_speed",
	"Attack Angle (deg)":          "attack_angle",
	"Vertical Bat Angle (deg)":    "vertical_bat_angle",
	"Power (kW)":                  "power",
	"Time to Contact (sec)":       "time_to_contact",
	"Peak Hand Speed (mph)":       "peak_hand_speed",
	"On Plane Efficiency (%)":     "on_plane_efficiency",
	"Rotation Score":              "rotation_score",
	"On Plane Score":              "on_plane_score",
	"Connection Score":            "connection_score",
	"Rotational Acceleration (g)": "rotation_acceleration",
	"Connection at Impact (deg)":  "connection_at_impact",
	"Connection at Address (deg)": "connection_at_address",
	"Bat Angle (deg)":             "bat_angle",
	"Exit Velocity (mph)":         "exit_velocity",
	"Launch Angle (deg)":          "launch_angle",
	"Carry Distance (ft)":         "carry_distance",
}

var (
	blastJPTimestamp = regexp.MustCompile(`(\d+)月\s+(\d+),\s+(\d+)\s+(\d+):(\d+):(\d+)\s+(午前|午後)`)
	blastJPDate      = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)
	blastPlayerFile  = regexp.MustCompile(`Player (\d+)`)
)

// ParseBlastDate reduces a Blast timestamp to a YYYY-MM-DD date string.
// Japanese timestamps look like "11月 11, 2025 2:30:00 午後"; 午後 adds 12
// to the hour unless it is already 12, and 午前 12 is midnight. The
// date-only 年月日 form and common Western layouts are accepted as
// fallbacks. Unparseable input returns "".
func ParseBlastDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if m := blastJPTimestamp.FindStringSubmatch(s); m != nil {
		month := atoi(m[1])
		day := atoi(m[2])
		year := atoi(m[3])
		hour := atoi(m[4])
		if m[7] == "午後" && hour != 12 {
			hour += 12
		}
		if m[7] == "午前" && hour == 12 {
			hour = 0
		}
		d := time.Date(year, time.Month(month), day, hour, atoi(m[5]), atoi(m[6]), 0, time.UTC)
		return d.Format("2006-01-02")
	}

	if m := blastJPDate.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%02d-%02d", m[1], atoi(m[2]), atoi(m[3]))
	}

	for _, layout := range []string{"2006-01-02", "2006/01/02", "Jan 2, 2006 3:04:05 PM", "01/02/2006"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("2006-01-02")
		}
	}
	return ""
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// PlayerFromFileName derives the swing-sensor subject from the export
// filename, e.g. "Player 2312 - 2025-11-11 - ... .csv" -> "Player 2312".
// Blast rows carry no player column of their own.
func PlayerFromFileName(fileName string) string {
	if m := blastPlayerFile.FindStringSubmatch(fileName); m != nil {
		return "Player " + m[1]
	}
	return "Uploaded"
}

// isJapaneseBlast detects the Japanese export format by its characteristic
// header substrings.
func isJapaneseBlast(r Row) bool {
	for k := range r {
		if strings.Contains(k, "日付") || strings.Contains(k, "スイング") {
			return true
		}
	}
	return false
}

// translateBlastRow renames a raw row's headers to canonical names using the
// Japanese table when the format is detected, the English table otherwise.
// Unmapped columns are discarded.
func translateBlastRow(r Row, japaneseFormat bool) Row {
	table := blastENHeaders
	if japaneseFormat {
		table = blastJPHeaders
	}
	out := make(Row, len(table))
	for k, v := range r {
		target, ok := table[k]
		if !ok {
			// The exports are inconsistent about leading spaces.
			target, ok = table[" "+k]
		}
		if ok {
			out[target] = v
		}
	}
	return out
}

// MapBlastRow normalizes one Blast swing. Rows whose date cannot be parsed
// or whose bat speed is missing are dropped; bat speed is the one reading
// every analysis view keys on.
func MapBlastRow(r Row, japaneseFormat bool, player, fileName, uploadID string) (models.BlastSwing, bool) {
	m := translateBlastRow(r, japaneseFormat)

	s := models.BlastSwing{
		Date:       ParseBlastDate(pick(m, "date")),
		PlayerName: player,

		BatSpeed:             pickNum(m, "bat_speed"),
		AttackAngle:          pickNum(m, "attack_angle"),
		VerticalBatAngle:     pickNum(m, "vertical_bat_angle"),
		Power:                pickNum(m, "power"),
		TimeToContact:        pickNum(m, "time_to_contact"),
		PeakHandSpeed:        pickNum(m, "peak_hand_speed"),
		OnPlaneEfficiency:    pickNum(m, "on_plane_efficiency"),
		RotationScore:        pickNum(m, "rotation_score"),
		OnPlaneScore:         pickNum(m, "on_plane_score"),
		ConnectionScore:      pickNum(m, "connection_score"),
		RotationAcceleration: pickNum(m, "rotation_acceleration"),
		ConnectionAtImpact:   pickNum(m, "connection_at_impact"),
		ConnectionAtAddress:  pickNum(m, "connection_at_address"),
		BatAngle:             pickNum(m, "bat_angle"),

		ExitVelocity:  pickNum(m, "exit_velocity"),
		LaunchAngle:   pickNum(m, "launch_angle"),
		CarryDistance: pickNum(m, "carry_distance"),

		FileName: fileName,
		UploadID: uploadID,
	}

	if s.Date == "" || s.BatSpeed == nil {
		return models.BlastSwing{}, false
	}
	return s, true
}

// MapBlastRows maps a whole Blast file. Format detection looks at the first
// row; player identity comes from the filename. Second return is the drop
// count.
func MapBlastRows(rows []Row, fileName, uploadID string) ([]models.BlastSwing, int) {
	if len(rows) == 0 {
		return nil, 0
	}
	japaneseFormat := isJapaneseBlast(rows[0])
	player := PlayerFromFileName(fileName)

	out := make([]models.BlastSwing, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		s, ok := MapBlastRow(r, japaneseFormat, player, fileName, uploadID)
		if !ok {
			dropped++
			continue
		}
		out = append(out, s)
	}
	return out, dropped
}
