package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	clientrepo "tripkit/pkg/client/repository"
	"tripkit/pkg/followup/service"
	"tripkit/pkg/funnel"
)

type FollowUpCtrl struct {
	svc     service.FollowUpService
	clients clientrepo.ClientRepository
}

func New(svc service.FollowUpService, clients clientrepo.ClientRepository) *FollowUpCtrl {
	return &FollowUpCtrl{svc: svc, clients: clients}
}

type transitionReq struct {
	Status         string `json:"status"`
	Remarks        string `json:"remarks"`
	NextFollowUpOn string `json:"next_follow_up_on"` // YYYY-MM-DD
	NextFollowUpAt string `json:"next_follow_up_at"` // HH:MM
}

func (h *FollowUpCtrl) Transition(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	cl, err := h.clients.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
	}
	var req transitionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	var nextAt *time.Time
	if req.NextFollowUpOn != "" {
		hhmm := req.NextFollowUpAt
		if hhmm == "" {
			hhmm = "09:00"
		}
		t, err := time.Parse("2006-01-02 15:04", req.NextFollowUpOn+" "+hhmm)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "next follow-up date/time is invalid"})
		}
		nextAt = &t
	}

	entry, err := h.svc.Transition(cl, funnel.Status(req.Status), req.Remarks, nextAt, uid)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"entry": entry, "client": cl})
}

func (h *FollowUpCtrl) History(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.svc.History(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FollowUpCtrl) SuggestNext(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	cl, err := h.clients.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
	}
	next := h.svc.Suggest(cl)
	return c.JSON(http.StatusOK, map[string]any{
		"current":             cl.CurrentStatus,
		"suggested":           next,
		"requires_scheduling": funnel.RequiresScheduling(next),
	})
}
