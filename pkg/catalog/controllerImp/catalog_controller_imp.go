package controllerImp

import (
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"tripkit/pkg/catalog/importer"
	"tripkit/pkg/catalog/repository"
)

type CatalogCtrl struct {
	repo  repository.CatalogRepository
	allow map[string]bool
}

func New(repo repository.CatalogRepository) *CatalogCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(os.Getenv("IMPORT_ALLOWED_DOMAINS"), ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	return &CatalogCtrl{repo: repo, allow: allow}
}

func (h *CatalogCtrl) Register(e *echo.Echo) {
	e.GET("/catalog/hotels", h.Hotels)
	e.GET("/catalog/hotels/:id/room-types", h.RoomTypes)
	e.GET("/catalog/sightseeings", h.Sightseeings)
	e.GET("/catalog/activities", h.Activities)
	e.GET("/catalog/activities/:id/options", h.Options)
	e.GET("/catalog/tickets", h.Tickets)
	e.GET("/catalog/meals", h.Meals)
	e.GET("/catalog/transportations", h.Transportations)
	e.POST("/catalog/import/workbook", h.ImportWorkbook)
	e.POST("/catalog/import/url", h.ImportURL)
}

func (h *CatalogCtrl) Hotels(c echo.Context) error {
	out, err := h.repo.Hotels()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) RoomTypes(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.RoomTypesByHotel(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) Sightseeings(c echo.Context) error {
	out, err := h.repo.Sightseeings()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) Activities(c echo.Context) error {
	out, err := h.repo.Activities()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) Options(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.OptionsByActivity(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) Tickets(c echo.Context) error {
	out, err := h.repo.Tickets()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) Meals(c echo.Context) error {
	out, err := h.repo.Meals()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogCtrl) Transportations(c echo.Context) error {
	out, err := h.repo.Transportations()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// ImportWorkbook loads a rate workbook from a server-side path.
func (h *CatalogCtrl) ImportWorkbook(c echo.Context) error {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Path) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "path is required"})
	}
	rows, err := importer.ParseWorkbook(req.Path)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	n, err := importer.Import(h.repo, rows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"room_types_created": n})
}

// ImportURL fetches a partner rate page and scrapes its rate table. Domains
// must be allowlisted via IMPORT_ALLOWED_DOMAINS.
func (h *CatalogCtrl) ImportURL(c echo.Context) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url is required"})
	}
	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid url"})
	}
	if len(h.allow) > 0 && !h.allow[strings.ToLower(u.Hostname())] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(req.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "fetch failed: " + resp.Status})
	}

	rows, err := importer.ParseRateTable(resp.Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	n, err := importer.Import(h.repo, rows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"room_types_created": n})
}
