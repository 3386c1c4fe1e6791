package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yterada/ballpark/analysis"
	"github.com/yterada/ballpark/store"
)

// Data returns the working-set snapshot for one dataset. With ?refresh=1 the
// snapshot is rebuilt from the remote store first, replacing whatever the
// set held.
func (h *Handler) Data(c echo.Context) error {
	d, err := dataset(c)
	if err != nil {
		return err
	}

	if c.QueryParam("refresh") == "1" {
		if err := h.Reload(c, d); err != nil {
			return err
		}
	}

	switch d {
	case store.DatasetSavant:
		return c.JSON(http.StatusOK, h.sets.Savant.Snapshot())
	case store.DatasetRapsodoPitching:
		return c.JSON(http.StatusOK, h.sets.RapsodoPitching.Snapshot())
	case store.DatasetRapsodoBatting:
		return c.JSON(http.StatusOK, h.sets.RapsodoBatting.Snapshot())
	default:
		return c.JSON(http.StatusOK, h.sets.Blast.Snapshot())
	}
}

// Reload re-reads one dataset from the store and swaps the working set.
func (h *Handler) Reload(c echo.Context, d store.Dataset) error {
	ctx := c.Request().Context()
	switch d {
	case store.DatasetSavant:
		rows, err := h.repo.LoadSavant(ctx)
		if err != nil {
			h.metrics.ObserveStoreError("load")
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		h.sets.Savant.ReplaceAll(rows, store.BuildHistory(rows, d))
	case store.DatasetRapsodoPitching:
		rows, err := h.repo.LoadRapsodoPitching(ctx)
		if err != nil {
			h.metrics.ObserveStoreError("load")
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		h.sets.RapsodoPitching.ReplaceAll(rows, store.BuildHistory(rows, d))
	case store.DatasetRapsodoBatting:
		rows, err := h.repo.LoadRapsodoBatting(ctx)
		if err != nil {
			h.metrics.ObserveStoreError("load")
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		h.sets.RapsodoBatting.ReplaceAll(rows, store.BuildHistory(rows, d))
	case store.DatasetBlast:
		rows, err := h.repo.LoadBlast(ctx)
		if err != nil {
			h.metrics.ObserveStoreError("load")
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		h.sets.Blast.ReplaceAll(rows, store.BuildHistory(rows, d))
	}
	return nil
}

// Files lists the upload history across all datasets.
func (h *Handler) Files(c echo.Context) error {
	var entries []store.FileHistoryEntry
	for _, d := range []store.Dataset{
		store.DatasetSavant,
		store.DatasetRapsodoPitching,
		store.DatasetRapsodoBatting,
		store.DatasetBlast,
	} {
		entries = append(entries, h.sets.History(d)...)
	}
	if entries == nil {
		entries = []store.FileHistoryEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

// DeleteFile removes one upload batch: remote rows first, then the local
// working set and its history entry. The dataset comes from a query
// parameter since upload ids are only unique per dataset table.
func (h *Handler) DeleteFile(c echo.Context) error {
	d := store.Dataset(c.QueryParam("dataset"))
	if !d.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown dataset")
	}
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing upload id")
	}

	removed, err := h.repo.DeleteByUpload(c.Request().Context(), d, id)
	if err != nil {
		h.metrics.ObserveStoreError("delete")
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	h.sets.RemoveUpload(d, id)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"deleted": removed,
		"id":      id,
	})
}

// Players lists the selectable player names for one dataset.
func (h *Handler) Players(c echo.Context) error {
	d, err := dataset(c)
	if err != nil {
		return err
	}

	switch d {
	case store.DatasetSavant:
		pitchers, batters := analysis.SavantPlayers(h.sets.Savant.Snapshot())
		return c.JSON(http.StatusOK, map[string][]string{
			"pitchers": pitchers,
			"batters":  batters,
		})
	case store.DatasetRapsodoPitching:
		return c.JSON(http.StatusOK, analysis.RapsodoPitchingPlayers(h.sets.RapsodoPitching.Snapshot()))
	case store.DatasetRapsodoBatting:
		return c.JSON(http.StatusOK, analysis.RapsodoBattingPlayers(h.sets.RapsodoBatting.Snapshot()))
	default:
		return c.JSON(http.StatusOK, analysis.BlastPlayers(h.sets.Blast.Snapshot()))
	}
}

// PitchTypes lists the distinct Savant pitch names.
func (h *Handler) PitchTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, analysis.PitchTypes(h.sets.Savant.Snapshot()))
}
