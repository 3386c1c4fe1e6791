package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/yterada/ballpark/analysis"
	"github.com/yterada/ballpark/store"
)

func selectionFrom(c echo.Context) analysis.Selection {
	return analysis.Selection{
		Players:    splitParam(c.QueryParam("players")),
		PitchTypes: splitParam(c.QueryParam("pitch_types")),
		DateFrom:   c.QueryParam("from"),
		DateTo:     c.QueryParam("to"),
	}
}

func splitParam(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

type analysisResponse struct {
	Series  []analysis.SeriesPoint `json:"series"`
	Summary interface{}            `json:"summary"`
}

// Analysis returns the date-bucketed series and per-player summary for one
// dataset. Savant rows serve both pitching and batting mode, switched by the
// mode query parameter.
func (h *Handler) Analysis(c echo.Context) error {
	d, err := dataset(c)
	if err != nil {
		return err
	}
	sel := selectionFrom(c)
	sys := unitSystem(c)

	switch d {
	case store.DatasetSavant:
		if c.QueryParam("mode") == "batting" {
			series, summary := analysis.AggregateSavantBatting(h.sets.Savant.Snapshot(), sel, sys)
			return c.JSON(http.StatusOK, analysisResponse{Series: series, Summary: summary})
		}
		series, summary := analysis.AggregateSavantPitching(h.sets.Savant.Snapshot(), sel, sys)
		return c.JSON(http.StatusOK, analysisResponse{Series: series, Summary: summary})
	case store.DatasetRapsodoPitching:
		series, summary := analysis.AggregateRapsodoPitching(h.sets.RapsodoPitching.Snapshot(), sel, sys)
		return c.JSON(http.StatusOK, analysisResponse{Series: series, Summary: summary})
	case store.DatasetRapsodoBatting:
		series, summary := analysis.AggregateRapsodoBatting(h.sets.RapsodoBatting.Snapshot(), sel, sys)
		return c.JSON(http.StatusOK, analysisResponse{Series: series, Summary: summary})
	default:
		series, summary := analysis.AggregateBlast(h.sets.Blast.Snapshot(), sel, sys)
		return c.JSON(http.StatusOK, analysisResponse{Series: series, Summary: summary})
	}
}

// Leaderboard ranks players by their best single value of a metric within
// one source.
func (h *Handler) Leaderboard(c echo.Context) error {
	metric := analysis.Metric(c.QueryParam("metric"))
	sys := unitSystem(c)

	var (
		board []analysis.LeaderboardEntry
		err   error
	)
	switch c.QueryParam("source") {
	case "savant":
		board, err = analysis.SavantLeaderboard(h.sets.Savant.Snapshot(), metric, sys)
	case "rapsodo":
		board, err = analysis.RapsodoLeaderboard(
			h.sets.RapsodoPitching.Snapshot(),
			h.sets.RapsodoBatting.Snapshot(),
			metric, sys)
	case "blast":
		board, err = analysis.BlastLeaderboard(h.sets.Blast.Snapshot(), metric, sys)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown source")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if board == nil {
		board = []analysis.LeaderboardEntry{}
	}
	return c.JSON(http.StatusOK, board)
}

// Spray returns field-coordinate points for the spray chart.
func (h *Handler) Spray(c echo.Context) error {
	sel := selectionFrom(c)

	var points []analysis.SprayPoint
	switch c.QueryParam("source") {
	case "rapsodo":
		points = analysis.RapsodoSprayPoints(h.sets.RapsodoBatting.Snapshot(), sel)
	case "savant", "":
		points = analysis.SavantSprayPoints(h.sets.Savant.Snapshot(), sel)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown source")
	}
	if points == nil {
		points = []analysis.SprayPoint{}
	}
	return c.JSON(http.StatusOK, points)
}

// Zone returns strike-zone plane points for pitch location charts.
func (h *Handler) Zone(c echo.Context) error {
	sel := selectionFrom(c)

	var points []analysis.ZonePoint
	switch c.QueryParam("source") {
	case "rapsodo":
		points = analysis.RapsodoZonePoints(h.sets.RapsodoPitching.Snapshot(), sel)
	case "savant", "":
		points = analysis.SavantZonePoints(h.sets.Savant.Snapshot(), sel)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown source")
	}
	if points == nil {
		points = []analysis.ZonePoint{}
	}
	return c.JSON(http.StatusOK, points)
}

// Scatter returns exit-velocity versus launch-angle pairs.
func (h *Handler) Scatter(c echo.Context) error {
	sel := selectionFrom(c)

	var points []analysis.ScatterPoint
	switch c.QueryParam("source") {
	case "rapsodo":
		points = analysis.RapsodoScatter(h.sets.RapsodoBatting.Snapshot(), sel)
	case "savant", "":
		points = analysis.SavantScatter(h.sets.Savant.Snapshot(), sel)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown source")
	}
	if points == nil {
		points = []analysis.ScatterPoint{}
	}
	return c.JSON(http.StatusOK, points)
}
