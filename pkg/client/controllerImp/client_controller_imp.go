package controllerImp

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"tripkit/entities"
	"tripkit/pkg/client/repository"
	"tripkit/pkg/funnel"
)

type ClientCtrl struct{ repo repository.ClientRepository }

func New(repo repository.ClientRepository) *ClientCtrl { return &ClientCtrl{repo} }

type createReq struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	TravelStartDate string  `json:"travel_start_date"` // YYYY-MM-DD
	NumberOfDays    int     `json:"number_of_days"`
	TransportMode   string  `json:"transport_mode"`
	ExchangeRate    float64 `json:"exchange_rate"`
}

func (h *ClientCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "operator identity is required"})
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	if req.Adults < 0 || req.Children < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "pax must be non-negative"})
	}

	// Duplicate by natural key is non-fatal: the record is known to exist, so
	// log and hand it back.
	if existing, err := h.repo.FindByNatural(req.Name, req.Phone); err == nil {
		log.Printf("[client] duplicate create for %q/%q -> client %d", req.Name, req.Phone, existing.ClientID)
		return c.JSON(http.StatusOK, existing)
	}

	start, _ := time.Parse("2006-01-02", req.TravelStartDate)
	mode := req.TransportMode
	if mode == "" {
		mode = entities.ModeCab
	}
	cl := &entities.SalesClient{
		OperatorID:      uid,
		Name:            req.Name,
		Phone:           req.Phone,
		Adults:          req.Adults,
		Children:        req.Children,
		TravelStartDate: start,
		NumberOfDays:    req.NumberOfDays,
		TransportMode:   mode,
		ExchangeRate:    req.ExchangeRate,
		CurrentStatus:   string(funnel.Created),
	}
	if err := h.repo.Create(cl); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cl)
}

func (h *ClientCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	cl, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
	}
	return c.JSON(http.StatusOK, cl)
}

func (h *ClientCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	out, err := h.repo.ListByOperator(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
