package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yterada/ballpark/ingest"
	"github.com/yterada/ballpark/store"
)

type uploadResponse struct {
	Rows    int                    `json:"rows"`
	Dropped int                    `json:"dropped"`
	Entry   store.FileHistoryEntry `json:"entry"`
}

// Upload ingests one vendor CSV into a dataset: parse, map to canonical
// rows, insert in fixed-size batches, then append to the in-memory working
// set. A mid-upload insert failure leaves earlier batches persisted; the
// client re-syncs with a refresh load.
func (h *Handler) Upload(c echo.Context) error {
	d, err := dataset(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer file.Close()

	ctx := c.Request().Context()
	uploadID := store.NewUploadID()
	fileName := fileHeader.Filename

	var entry store.FileHistoryEntry
	var kept, dropped int
	switch d {
	case store.DatasetSavant:
		raw, err := ingest.ReadCSV(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		rows, n := ingest.MapSavantRows(raw, fileName, uploadID)
		kept, dropped = len(rows), n
		if err := store.UploadBatches(ctx, rows, d.BatchSize(), h.repo.InsertSavant); err != nil {
			h.metrics.ObserveStoreError("insert")
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		entry = historyEntry(uploadID, fileName, d, len(rows))
		h.sets.Savant.Append(rows, entry)

	case store.DatasetRapsodoPitching:
		raw, err := ingest.ReadCSV(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		rows, n := ingest.MapRapsodoPitches(raw, fileName, uploadID)
		kept, dropped = len(rows), n
		if err := store.UploadBatches(ctx, rows, d.BatchSize(), h.repo.InsertRapsodoPitching); err != nil {
			h.metrics.ObserveStoreError("insert")
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		entry = historyEntry(uploadID, fileName, d, len(rows))
		h.sets.RapsodoPitching.Append(rows, entry)

	case store.DatasetRapsodoBatting:
		raw, err := ingest.ReadCSV(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		rows, n := ingest.MapRapsodoSwings(raw, fileName, uploadID)
		kept, dropped = len(rows), n
		if err := store.UploadBatches(ctx, rows, d.BatchSize(), h.repo.InsertRapsodoBatting); err != nil {
			h.metrics.ObserveStoreError("insert")
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		entry = historyEntry(uploadID, fileName, d, len(rows))
		h.sets.RapsodoBatting.Append(rows, entry)

	case store.DatasetBlast:
		raw, err := ingest.ReadBlastCSV(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		rows, n := ingest.MapBlastRows(raw, fileName, uploadID)
		kept, dropped = len(rows), n
		if err := store.UploadBatches(ctx, rows, d.BatchSize(), h.repo.InsertBlast); err != nil {
			h.metrics.ObserveStoreError("insert")
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		entry = historyEntry(uploadID, fileName, d, len(rows))
		h.sets.Blast.Append(rows, entry)
	}

	batches := (kept + d.BatchSize() - 1) / d.BatchSize()
	h.metrics.ObserveIngest(string(d), kept, dropped, batches)

	return c.JSON(http.StatusOK, uploadResponse{
		Rows:    kept,
		Dropped: dropped,
		Entry:   entry,
	})
}

func historyEntry(uploadID, fileName string, d store.Dataset, rows int) store.FileHistoryEntry {
	return store.FileHistoryEntry{
		ID:         uploadID,
		FileName:   fileName,
		Source:     "upload",
		UploadedAt: time.Now(),
		RowCount:   rows,
		Dataset:    d,
	}
}
