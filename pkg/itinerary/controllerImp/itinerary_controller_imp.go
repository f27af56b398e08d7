package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	clientrepo "tripkit/pkg/client/repository"
	"tripkit/pkg/itinerary/service"
	"tripkit/pkg/itinerary/types"
)

type ItineraryCtrl struct {
	svc     service.ItineraryService
	clients clientrepo.ClientRepository
}

func New(svc service.ItineraryService, clients clientrepo.ClientRepository) *ItineraryCtrl {
	return &ItineraryCtrl{svc: svc, clients: clients}
}

type versionReq struct {
	Days              []types.DayPlan `json:"days"`
	ProfitMargin      float64         `json:"profit_margin"`
	ChangeDescription string          `json:"change_description"`
}

func (h *ItineraryCtrl) Quote(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	cl, err := h.clients.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
	}
	var req versionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	bd, err := h.svc.Quote(cl, req.Days)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"breakdown":   bd,
		"final_price": bd.TotalBaseCost + req.ProfitMargin,
	})
}

func (h *ItineraryCtrl) CreateVersion(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	cl, err := h.clients.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
	}
	var req versionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	v, err := h.svc.CreateVersion(cl, req.Days, req.ProfitMargin, req.ChangeDescription, uid)
	if err != nil {
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "day") {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save version, try again"})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"version":          v,
		"secondary_amount": v.FinalPrice * v.ExchangeRate,
	})
}

func (h *ItineraryCtrl) List(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	vs, err := h.svc.List(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, vs)
}

func (h *ItineraryCtrl) Latest(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	v, err := h.svc.Latest(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no versions yet"})
	}
	return c.JSON(http.StatusOK, v)
}
