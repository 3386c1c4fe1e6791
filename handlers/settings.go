package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetSettings returns the persisted dashboard preferences as a key/value map.
func (h *Handler) GetSettings(c echo.Context) error {
	settings, err := h.repo.GetSettings(c.Request().Context())
	if err != nil {
		h.metrics.ObserveStoreError("settings")
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, settings)
}

// PutSettings upserts preference keys. Unknown keys are stored as-is so the
// dashboard can add preferences without a server change.
func (h *Handler) PutSettings(c echo.Context) error {
	var values map[string]string
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(values) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no settings provided")
	}

	if err := h.repo.PutSettings(c.Request().Context(), values); err != nil {
		h.metrics.ObserveStoreError("settings")
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, values)
}
