package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"tripkit/pkg/booking/service"
	clientrepo "tripkit/pkg/client/repository"
)

type BookingCtrl struct {
	svc     service.BookingService
	clients clientrepo.ClientRepository
}

func New(svc service.BookingService, clients clientrepo.ClientRepository) *BookingCtrl {
	return &BookingCtrl{svc: svc, clients: clients}
}

type confirmReq struct {
	VersionNumber int    `json:"version_number"`
	Remarks       string `json:"remarks"`
	AssignedTo    string `json:"assigned_to"`
}

func (h *BookingCtrl) Confirm(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	cl, err := h.clients.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
	}
	var req confirmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.VersionNumber <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "version_number is required"})
	}

	res, err := h.svc.Confirm(cl, req.VersionNumber, req.Remarks, req.AssignedTo, uid)
	if err != nil {
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "not found") ||
			strings.Contains(err.Error(), "dead") {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "confirmation failed, try again"})
	}
	if res.AlreadyExists {
		return c.JSON(http.StatusOK, res)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *BookingCtrl) Checklist(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	items, err := h.svc.Checklist(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

type patchReq struct {
	IsBooked bool   `json:"is_booked"`
	Notes    string `json:"notes"`
}

func (h *BookingCtrl) PatchItem(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	itemID, _ := strconv.Atoi(c.Param("item_id"))
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	item, err := h.svc.MarkBooked(uint(itemID), req.IsBooked, uid, req.Notes)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, item)
}
