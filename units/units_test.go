package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVelocityIdentity(t *testing.T) {
	for _, v := range []float64{0, 85.3, 160.9, -3} {
		assert.Equal(t, v, Velocity(v, MPH, Imperial))
		assert.Equal(t, v, Velocity(v, KMH, Metric))
	}
}

func TestVelocityConversion(t *testing.T) {
	assert.InDelta(t, 160.934, Velocity(100, MPH, Metric), 1e-9)
	assert.InDelta(t, 62.1371, Velocity(100, KMH, Imperial), 1e-9)
}

func TestVelocityNaNPassthrough(t *testing.T) {
	assert.True(t, math.IsNaN(Velocity(math.NaN(), MPH, Metric)))
	assert.True(t, math.IsNaN(Distance(math.NaN(), M, Imperial)))
}

func TestDistanceIdentity(t *testing.T) {
	assert.Equal(t, 120.0, Distance(120, M, Metric))
	assert.Equal(t, 400.0, Distance(400, FT, Imperial))
	assert.Equal(t, 45.0, Distance(45, CM, Metric))
	assert.Equal(t, 17.7, Distance(17.7, IN, Imperial))
}

func TestDistanceMagnitudeClass(t *testing.T) {
	// m/ft use the large pair, cm/in the small one.
	assert.InDelta(t, 328.084, Distance(100, M, Imperial), 1e-9)
	assert.InDelta(t, 30.48, Distance(100, FT, Metric), 1e-9)
	assert.InDelta(t, 39.3701, Distance(100, CM, Imperial), 1e-9)
	assert.InDelta(t, 254, Distance(100, IN, Metric), 1e-9)
}

func TestDistanceRoundTrip(t *testing.T) {
	for _, v := range []float64{1, 98, 120.5, 4000} {
		got := Distance(Distance(v, M, Imperial), FT, Metric)
		assert.InEpsilon(t, v, got, 1e-6)
	}
}

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, VelocityPtr(nil, KMH, Imperial))
	assert.Nil(t, DistancePtr(nil, M, Imperial))

	v := 144.0
	got := VelocityPtr(&v, KMH, Imperial)
	require.NotNil(t, got)
	assert.InDelta(t, 89.477424, *got, 1e-6)
}

func TestUnitLabels(t *testing.T) {
	assert.Equal(t, "mph", VelocityUnit(Imperial))
	assert.Equal(t, "km/h", VelocityUnit(Metric))
	assert.Equal(t, "ft", DistanceUnit(Imperial, true))
	assert.Equal(t, "m", DistanceUnit(Metric, true))
	assert.Equal(t, "in", DistanceUnit(Imperial, false))
	assert.Equal(t, "cm", DistanceUnit(Metric, false))
}
