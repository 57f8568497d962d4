package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/hirewise/recruiting-data-service/internal/analytics/model"
	"github.com/hirewise/recruiting-data-service/internal/analytics/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/pagination"
	"github.com/hirewise/recruiting-data-service/internal/system/security"
	"github.com/hirewise/recruiting-data-service/internal/system/utils"
	"github.com/hirewise/recruiting-data-service/internal/system/workers"
)

// The dashboard report window when no window_secs parameter is given.
const defaultDashboardWindowSecs = 24 * 3600

type EventHandler struct{}

func NewEventHandler() *EventHandler {

	return &EventHandler{}
}

// AddEvent handles ingesting a single event.
func (eh *EventHandler) AddEvent(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpEventsWrite); err != nil {
		utils.HandleError(w, err)
		return
	}

	var event model.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.HandleError(w, invalidPayloadError())
		return
	}

	eventsService := provider.NewEventsProvider().GetEventsService()
	stored, err := eventsService.AddEvent(event, &workers.AnalyticsWorkerQueue{})
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, stored)
}

// AddEventsBatch handles ingesting a batch of events.
func (eh *EventHandler) AddEventsBatch(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpEventsWrite); err != nil {
		utils.HandleError(w, err)
		return
	}

	var events []model.Event
	if err := json.NewDecoder(r.Body).Decode(&events); err != nil {
		utils.HandleError(w, invalidPayloadError())
		return
	}

	eventsService := provider.NewEventsProvider().GetEventsService()
	result, err := eventsService.AddEvents(events, &workers.AnalyticsWorkerQueue{})
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusAccepted, result)
}

// GetEvents fetches events with optional filters, time range and pagination.
func (eh *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpEventsRead); err != nil {
		utils.HandleError(w, err)
		return
	}

	rawFilters := r.URL.Query()["filter"]

	var sinceTimestamp int64
	if timeStr := r.URL.Query().Get("time_range"); timeStr != "" {
		durationSec, err := strconv.Atoi(timeStr)
		if err != nil || durationSec < 0 {
			utils.HandleError(w, apierrors.NewClientError(apierrors.ErrorMessage{
				Code:        apierrors.INVALID_REQUEST.Code,
				Message:     apierrors.INVALID_REQUEST.Message,
				Description: "Invalid time_range format, must be an integer representing seconds",
			}, http.StatusBadRequest))
			return
		}
		sinceTimestamp = time.Now().UTC().Unix() - int64(durationSec)
	}

	page, err := pagination.ParsePage(r)
	if err != nil {
		utils.HandleError(w, invalidPayloadError())
		return
	}

	eventsService := provider.NewEventsProvider().GetEventsService()
	events, total, err := eventsService.GetEvents(rawFilters, sinceTimestamp, page.Limit, page.Offset)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, pagination.ListResponse{
		TotalCount: int(total),
		Limit:      page.Limit,
		Offset:     page.Offset,
		Items:      events,
	})
}

// GetEvent fetches a specific event.
func (eh *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpEventsRead); err != nil {
		utils.HandleError(w, err)
		return
	}

	eventID := r.PathValue("id")
	eventsService := provider.NewEventsProvider().GetEventsService()
	event, err := eventsService.GetEvent(eventID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, event)
}

// DeleteEvent removes an event permanently.
func (eh *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpEventsDelete); err != nil {
		utils.HandleError(w, err)
		return
	}

	eventID := r.PathValue("id")
	eventsService := provider.NewEventsProvider().GetEventsService()
	if err := eventsService.DeleteEvent(eventID); err != nil {
		utils.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AnonymizeEvent strips the subject identifiers from an event.
func (eh *EventHandler) AnonymizeEvent(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpEventsWrite); err != nil {
		utils.HandleError(w, err)
		return
	}

	eventID := r.PathValue("id")
	eventsService := provider.NewEventsProvider().GetEventsService()
	if err := eventsService.AnonymizeEvent(eventID); err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]string{"event_id": eventID, "status": "anonymized"})
}

// GetDashboard serves the aggregate metrics snapshot.
func (eh *EventHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpDashboardRead); err != nil {
		utils.HandleError(w, err)
		return
	}

	windowSecs := int64(defaultDashboardWindowSecs)
	if windowStr := r.URL.Query().Get("window_secs"); windowStr != "" {
		v, err := strconv.ParseInt(windowStr, 10, 64)
		if err != nil || v <= 0 {
			utils.HandleError(w, apierrors.NewClientError(apierrors.ErrorMessage{
				Code:        apierrors.INVALID_REQUEST.Code,
				Message:     apierrors.INVALID_REQUEST.Message,
				Description: "window_secs must be a positive integer",
			}, http.StatusBadRequest))
			return
		}
		windowSecs = v
	}

	dashboardService := provider.NewEventsProvider().GetDashboardService()
	dashboard, err := dashboardService.GetDashboard(windowSecs)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dashboard)
}

func invalidPayloadError() error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.INVALID_REQUEST.Code,
		Message:     apierrors.INVALID_REQUEST.Message,
		Description: "Invalid request payload",
	}, http.StatusBadRequest)
}
