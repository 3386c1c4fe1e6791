package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yterada/ballpark/models"
	"github.com/yterada/ballpark/units"
)

func TestSavantLeaderboardMaxPerPlayer(t *testing.T) {
	rows := []models.PitchEvent{
		{BatterName: "Sato", LaunchSpeed: fp(98)},
		{BatterName: "Sato", LaunchSpeed: fp(105)},
		{BatterName: "Mori", LaunchSpeed: fp(101)},
		// zero and missing values never rank
		{BatterName: "Ito", LaunchSpeed: fp(0)},
		{BatterName: "Abe"},
	}

	board, err := SavantLeaderboard(rows, MetricExitVelocity, units.Imperial)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, LeaderboardEntry{Rank: 1, Name: "Sato", Value: 105}, board[0])
	assert.Equal(t, LeaderboardEntry{Rank: 2, Name: "Mori", Value: 101}, board[1])
}

func TestSavantLeaderboardPitchingMetricsUsePitcher(t *testing.T) {
	rows := []models.PitchEvent{
		{PitcherName: "Tanaka", BatterName: "Sato", ReleaseSpeed: fp(96), ReleaseSpinRate: fp(2400)},
	}

	board, err := SavantLeaderboard(rows, MetricPitchVelocity, units.Imperial)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "Tanaka", board[0].Name)

	board, err = SavantLeaderboard(rows, MetricSpinRate, units.Imperial)
	require.NoError(t, err)
	assert.Equal(t, 2400.0, board[0].Value)
}

func TestRapsodoLeaderboardConversion(t *testing.T) {
	batting := []models.RapsodoSwing{
		{PlayerName: "Mori", ExitVelocity: fp(160), Distance: fp(110)},
	}

	board, err := RapsodoLeaderboard(nil, batting, MetricExitVelocity, units.Imperial)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.InDelta(t, 160*units.KmhToMph, board[0].Value, 1e-9)

	board, err = RapsodoLeaderboard(nil, batting, MetricDistance, units.Metric)
	require.NoError(t, err)
	assert.InDelta(t, 110.0, board[0].Value, 1e-9)
}

func TestBlastLeaderboardMetrics(t *testing.T) {
	rows := []models.BlastSwing{
		{PlayerName: "Player 3", BatSpeed: fp(71), Power: fp(4.4), RotationScore: fp(62)},
		{PlayerName: "Player 5", BatSpeed: fp(68), Power: fp(4.9), RotationScore: fp(55)},
	}

	board, err := BlastLeaderboard(rows, MetricBatSpeed, units.Metric)
	require.NoError(t, err)
	assert.Equal(t, "Player 3", board[0].Name)
	assert.InDelta(t, 71*units.MphToKmh, board[0].Value, 1e-9)

	board, err = BlastLeaderboard(rows, MetricPower, units.Imperial)
	require.NoError(t, err)
	assert.Equal(t, "Player 5", board[0].Name)
}

func TestLeaderboardUnknownMetric(t *testing.T) {
	_, err := SavantLeaderboard(nil, MetricBatSpeed, units.Imperial)
	assert.Error(t, err)
	_, err = RapsodoLeaderboard(nil, nil, MetricRotationScore, units.Imperial)
	assert.Error(t, err)
	_, err = BlastLeaderboard(nil, MetricDistance, units.Imperial)
	assert.Error(t, err)
}

func TestLeaderboardCap(t *testing.T) {
	var rows []models.PitchEvent
	for i := 0; i < 60; i++ {
		rows = append(rows, models.PitchEvent{
			BatterName:  fmt.Sprintf("Batter %02d", i),
			LaunchSpeed: fp(80 + float64(i)*0.1),
		})
	}

	board, err := SavantLeaderboard(rows, MetricExitVelocity, units.Imperial)
	require.NoError(t, err)
	assert.Len(t, board, LeaderboardSize)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, LeaderboardSize, board[len(board)-1].Rank)
	// descending by best value
	assert.Greater(t, board[0].Value, board[1].Value)
}
