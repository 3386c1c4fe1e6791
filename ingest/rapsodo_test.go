package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRapsodoPitch(t *testing.T) {
	r := Row{
		"Date":                      "2025-06-14",
		"Player Name":               "Sato",
		"Pitch Type":                "Fastball",
		"Velocity":                  "142.3",
		"Total Spin":                "2212.7",
		"Spin Efficiency (release)": "94.2",
		"HB (trajectory)":           "18.4",
		"VB (trajectory)":           "-32.6",
		"Release Height":            "175",
	}
	p, ok := MapRapsodoPitch(r, "rp.csv", "u2")
	require.True(t, ok)

	assert.Equal(t, "Sato", p.PlayerName)
	require.NotNil(t, p.Velocity)
	assert.Equal(t, 142.3, *p.Velocity)
	// Spin is stored integer-rounded.
	require.NotNil(t, p.TotalSpin)
	assert.Equal(t, 2213.0, *p.TotalSpin)
	require.NotNil(t, p.HorizontalBreak)
	assert.Equal(t, 18.4, *p.HorizontalBreak)
	assert.Nil(t, p.ReleaseSide)
}

func TestMapRapsodoPitchHeaderVariants(t *testing.T) {
	r := Row{
		"Date":           "2025-06-14",
		"PlayerName":     "Sato",
		"Velocity":       "138",
		"Spin Rate":      "2100",
		"SpinEfficiency": "90",
		"PlateLocSide":   "-12.5",
	}
	p, ok := MapRapsodoPitch(r, "rp.csv", "u2")
	require.True(t, ok)
	assert.Equal(t, 2100.0, *p.TotalSpin)
	assert.Equal(t, 90.0, *p.SpinEfficiency)
	assert.Equal(t, -12.5, *p.StrikeZoneSide)
}

func TestMapRapsodoPitchRequired(t *testing.T) {
	base := Row{"Player Name": "Sato", "Velocity": "140", "Total Spin": "2200"}

	for _, missing := range []string{"Player Name", "Velocity", "Total Spin"} {
		r := Row{}
		for k, v := range base {
			r[k] = v
		}
		r[missing] = "-"
		_, ok := MapRapsodoPitch(r, "rp.csv", "u2")
		assert.False(t, ok, "row with dashed %s should drop", missing)
	}
}

func TestMapRapsodoSwing(t *testing.T) {
	r := Row{
		"Date":               "2025-06-14",
		"Player Name":        "Kondo",
		"ExitVelocity":       "158.2",
		"LaunchAngle":        "24.5",
		"ExitDirection":      "-12.3",
		"Spin":               "1843.4",
		"Distance":           "96.7",
		"HangTime":           "4.8",
		"StrikeZoneLocation": "8.1",
	}
	s, ok := MapRapsodoSwing(r, "rb.csv", "u3")
	require.True(t, ok)
	assert.Equal(t, 158.2, *s.ExitVelocity)
	assert.Equal(t, -12.3, *s.Direction)
	assert.Equal(t, 1843.0, *s.SpinRate)
	assert.Equal(t, 8.1, *s.StrikeZoneSide)
}

func TestMapRapsodoSwingRequired(t *testing.T) {
	r := Row{
		"Player Name":  "Kondo",
		"ExitVelocity": "150",
		"LaunchAngle":  "20",
		// Distance missing: drop.
	}
	_, ok := MapRapsodoSwing(r, "rb.csv", "u3")
	assert.False(t, ok)

	rows, dropped := MapRapsodoSwings([]Row{r}, "rb.csv", "u3")
	assert.Empty(t, rows)
	assert.Equal(t, 1, dropped)
}
