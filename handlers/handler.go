package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yterada/ballpark/metrics"
	"github.com/yterada/ballpark/store"
	"github.com/yterada/ballpark/units"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	repo         *store.Repository
	sets         *store.Sets
	metrics      *metrics.Metrics
	JWTKey       []byte
	passwordHash string
}

// New creates a Handler wired to the repository, working sets, metrics and
// the credentials from config.
func New(repo *store.Repository, sets *store.Sets, m *metrics.Metrics, jwtKey []byte, passwordHash string) *Handler {
	return &Handler{
		repo:         repo,
		sets:         sets,
		metrics:      m,
		JWTKey:       jwtKey,
		passwordHash: passwordHash,
	}
}

// dataset resolves and validates the :dataset path parameter.
func dataset(c echo.Context) (store.Dataset, error) {
	d := store.Dataset(c.Param("dataset"))
	if !d.Valid() {
		return "", echo.NewHTTPError(http.StatusBadRequest, "unknown dataset")
	}
	return d, nil
}

// unitSystem reads the units query parameter, defaulting to imperial.
func unitSystem(c echo.Context) units.System {
	if c.QueryParam("units") == string(units.Metric) {
		return units.Metric
	}
	return units.Imperial
}
