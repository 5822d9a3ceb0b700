package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hunter122526/quantum2017/internal/core/catalog"
	"github.com/hunter122526/quantum2017/internal/core/domain"
)

// CatalogHandler serves the static marketing tables. All routes are public.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

type tradersResponse struct {
	Traders []domain.Trader `json:"traders"`
}

type instrumentsResponse struct {
	Instruments []domain.Instrument `json:"instruments"`
}

type awardsResponse struct {
	Awards []domain.Award `json:"awards"`
}

type benefitsResponse struct {
	Benefits []domain.Benefit `json:"benefits"`
}

// Traders handles GET /api/catalog/traders.
func (h *CatalogHandler) Traders(c echo.Context) error {
	return c.JSON(http.StatusOK, tradersResponse{Traders: catalog.Traders()})
}

// Instruments handles GET /api/catalog/instruments.
func (h *CatalogHandler) Instruments(c echo.Context) error {
	return c.JSON(http.StatusOK, instrumentsResponse{Instruments: catalog.Instruments()})
}

// Awards handles GET /api/catalog/awards.
func (h *CatalogHandler) Awards(c echo.Context) error {
	return c.JSON(http.StatusOK, awardsResponse{Awards: catalog.Awards()})
}

// Benefits handles GET /api/catalog/benefits.
func (h *CatalogHandler) Benefits(c echo.Context) error {
	return c.JSON(http.StatusOK, benefitsResponse{Benefits: catalog.Benefits()})
}
