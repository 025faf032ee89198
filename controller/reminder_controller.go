package controller

import (
	"net/http"

	"github.com/velora-app/velora-api/secctx"
	"github.com/velora-app/velora-api/service"
	"github.com/velora-app/velora-api/view"
)

type ReminderController interface {
	CreateReminder(w http.ResponseWriter, r *http.Request)
	ListReminders(w http.ResponseWriter, r *http.Request)
	DeleteReminder(w http.ResponseWriter, r *http.Request)
}

func NewReminderController(reminderService service.ReminderService, authorizationService service.AuthorizationService) ReminderController {
	return &reminderControllerImpl{
		reminderService:      reminderService,
		authorizationService: authorizationService,
	}
}

type reminderControllerImpl struct {
	reminderService      service.ReminderService
	authorizationService service.AuthorizationService
}

func (c reminderControllerImpl) CreateReminder(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, c.authorizationService, userId) {
		return
	}
	var req view.ReminderCreateReq
	if !decodeAndValidate(w, r, &req) {
		return
	}
	reminder, err := c.reminderService.CreateReminder(secctx.MakeUserContext(r), userId, req)
	if err != nil {
		respondWithError(w, "Failed to create reminder", err)
		return
	}
	respondWithJson(w, http.StatusCreated, reminder)
}

func (c reminderControllerImpl) ListReminders(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, c.authorizationService, userId) {
		return
	}
	reminders, err := c.reminderService.ListReminders(secctx.MakeUserContext(r), userId)
	if err != nil {
		respondWithError(w, "Failed to list reminders", err)
		return
	}
	respondWithJson(w, http.StatusOK, reminders)
}

func (c reminderControllerImpl) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, c.authorizationService, userId) {
		return
	}
	if err := c.reminderService.DeleteReminder(secctx.MakeUserContext(r), userId, getStringParam(r, "reminderId")); err != nil {
		respondWithError(w, "Failed to delete reminder", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
