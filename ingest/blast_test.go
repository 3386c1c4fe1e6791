package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlastDate(t *testing.T) {
	cases := map[string]string{
		"11月 11, 2025 2:30:00 午後":  "2025-11-11",
		"11月 11, 2025 12:15:00 午前": "2025-11-11", // 12 AM is midnight, not noon
		"11月 11, 2025 12:15:00 午後": "2025-11-11", // 12 PM stays 12
		"1月 3, 2024 9:05:01 午前":    "2024-01-03",
		"2023年10月26日":              "2023-10-26",
		"2025-11-11":                "2025-11-11",
		"garbage":                   "",
		"":                          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseBlastDate(in), "input %q", in)
	}
}

func TestParseBlastDateHourConversion(t *testing.T) {
	// The 12-hour conversion must not shift the calendar date for PM hours.
	assert.Equal(t, "2025-11-11", ParseBlastDate("11月 11, 2025 11:59:59 午後"))
}

func TestPlayerFromFileName(t *testing.T) {
	assert.Equal(t, "Player 2312",
		PlayerFromFileName("Player 2312 - 2025-11-11 - 2025-11-11 - 1764042452.csv"))
	assert.Equal(t, "Uploaded", PlayerFromFileName("swings.csv"))
}

func TestMapBlastRowsJapanese(t *testing.T) {
	rows := []Row{
		{
			"日付":                "11月 11, 2025 2:30:00 午後",
			"スイングスピード (mph)": "68.4",
			"アッパースイング度 (deg)": "11.2",
			"パワー (kW)":          "4.1",
			"オンプレーンの効率 (%)":  "78",
			"打球スピード (mph)":     "88.3",
			"無関係な列":            "ignored",
		},
		{
			// Unparseable date: dropped.
			"日付":                "invalid",
			"スイングスピード (mph)": "70.1",
		},
		{
			// Missing bat speed: dropped.
			"日付": "11月 12, 2025 9:00:00 午前",
		},
	}

	out, dropped := MapBlastRows(rows, "Player 2312 - export.csv", "u4")
	require.Len(t, out, 1)
	assert.Equal(t, 2, dropped)

	s := out[0]
	assert.Equal(t, "2025-11-11", s.Date)
	assert.Equal(t, "Player 2312", s.PlayerName)
	require.NotNil(t, s.BatSpeed)
	assert.Equal(t, 68.4, *s.BatSpeed)
	assert.Equal(t, 78.0, *s.OnPlaneEfficiency)
	assert.Equal(t, 88.3, *s.ExitVelocity)
	assert.Nil(t, s.PeakHandSpeed)
}

func TestMapBlastRowsEnglish(t *testing.T) {
	rows := []Row{{
		"Date":                  "2025-11-11",
		"Bat Speed (mph)":       "71.9",
		"Peak Hand Speed (mph)": "24.3",
		"Rotation Score":        "62",
	}}
	out, dropped := MapBlastRows(rows, "swings.csv", "u5")
	require.Len(t, out, 1)
	assert.Zero(t, dropped)
	assert.Equal(t, "Uploaded", out[0].PlayerName)
	assert.Equal(t, 71.9, *out[0].BatSpeed)
	assert.Equal(t, 24.3, *out[0].PeakHandSpeed)
	assert.Equal(t, 62.0, *out[0].RotationScore)
}

func TestTranslateBlastRowLeadingSpaceHeaders(t *testing.T) {
	r := Row{"バット角度 (deg)": "28.4"} // export sometimes trims the leading space
	m := translateBlastRow(r, true)
	assert.Equal(t, "28.4", m["bat_angle"])
}
