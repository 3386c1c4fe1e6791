package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yterada/ballpark/models"
	"github.com/yterada/ballpark/units"
)

func rapsodoHit(direction, distanceM float64) models.RapsodoSwing {
	return models.RapsodoSwing{
		Date: "2025-06-01", PlayerName: "Mori",
		Direction: fp(direction), Distance: fp(distanceM),
	}
}

func TestRapsodoSprayConvention(t *testing.T) {
	d300ft := 300 / units.MToFt // meters that land at 300 ft

	cases := []struct {
		name      string
		direction float64
		wantX     float64
		wantY     float64
	}{
		{"straightaway", 0, 0, 300},
		{"full pull side", 90, 300, 0},
		{"full opposite side", -90, -300, 0},
		{"behind the plate folds forward", 180, 0, 300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			points := RapsodoSprayPoints([]models.RapsodoSwing{rapsodoHit(tc.direction, d300ft)}, Selection{})
			require.Len(t, points, 1)
			assert.InDelta(t, tc.wantX, points[0].X, 1e-6)
			assert.InDelta(t, tc.wantY, points[0].Y, 1e-6)
		})
	}
}

func TestRapsodoSprayFilters(t *testing.T) {
	rows := []models.RapsodoSwing{
		// too short, instrumentation noise
		rapsodoHit(0, 2/units.MToFt),
		// no direction
		{Date: "2025-06-01", PlayerName: "Mori", Distance: fp(90)},
		// keeper
		rapsodoHit(15, 90),
	}
	points := RapsodoSprayPoints(rows, Selection{})
	require.Len(t, points, 1)
	assert.InDelta(t, 90*units.MToFt, *points[0].Distance, 1e-6)
}

func TestSavantSprayUsesMeasuredDistance(t *testing.T) {
	// straightaway center: hc_x at home plate x, hc_y toward the outfield
	rows := []models.PitchEvent{{
		GameDate: "2025-04-01", BatterName: "Sato",
		HCX: fp(125.42 + 50), HCY: fp(199.88 - 50),
		HitDistance: fp(300), LaunchSpeed: fp(100), Events: "home_run",
	}}
	points := SavantSprayPoints(rows, Selection{})
	require.Len(t, points, 1)

	// 45 degrees off the x axis, magnitude from the measured distance
	assert.InDelta(t, 300/1.41421356, points[0].X, 1e-4)
	assert.InDelta(t, 300/1.41421356, points[0].Y, 1e-4)
	assert.Equal(t, "home_run", points[0].Event)
}

func TestSavantSprayFallbackScale(t *testing.T) {
	rows := []models.PitchEvent{{
		GameDate: "2025-04-01", BatterName: "Sato",
		HCX: fp(125.42), HCY: fp(199.88 - 100),
	}}
	points := SavantSprayPoints(rows, Selection{})
	require.Len(t, points, 1)
	assert.InDelta(t, 0, points[0].X, 1e-6)
	assert.InDelta(t, 285, points[0].Y, 1e-6)
}

func TestSavantSprayDropsBehindPlateAndShort(t *testing.T) {
	rows := []models.PitchEvent{
		// behind home plate: hc_y greater than the plate origin
		{GameDate: "2025-04-01", BatterName: "Sato", HCX: fp(130), HCY: fp(220), HitDistance: fp(40)},
		// implausibly short measured distance
		{GameDate: "2025-04-01", BatterName: "Sato", HCX: fp(130), HCY: fp(150), HitDistance: fp(5)},
		// no coordinates at all
		{GameDate: "2025-04-01", BatterName: "Sato", HitDistance: fp(300)},
	}
	points := SavantSprayPoints(rows, Selection{})
	assert.Empty(t, points)
}

func TestSprayIdempotent(t *testing.T) {
	rows := []models.RapsodoSwing{rapsodoHit(20, 95), rapsodoHit(-35, 80)}
	p1 := RapsodoSprayPoints(rows, Selection{})
	p2 := RapsodoSprayPoints(rows, Selection{})
	assert.Equal(t, p1, p2)
}
