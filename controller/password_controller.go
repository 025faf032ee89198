package controller

import (
	"net/http"

	"github.com/velora-app/velora-api/secctx"
	"github.com/velora-app/velora-api/service"
	"github.com/velora-app/velora-api/view"
)

type PasswordController interface {
	AddEntry(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	GetEntry(w http.ResponseWriter, r *http.Request)
	UpdateEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
}

func NewPasswordController(vaultService service.VaultService, authorizationService service.AuthorizationService) PasswordController {
	return &passwordControllerImpl{
		vaultService:         vaultService,
		authorizationService: authorizationService,
	}
}

type passwordControllerImpl struct {
	vaultService         service.VaultService
	authorizationService service.AuthorizationService
}

// AddEntry scores the submitted password and stores it with its strength.
func (p passwordControllerImpl) AddEntry(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, p.authorizationService, userId) {
		return
	}
	var req view.VaultEntryReq
	if !decodeAndValidate(w, r, &req) {
		return
	}
	saved, err := p.vaultService.AddEntry(secctx.MakeUserContext(r), getLang(r), userId, req)
	if err != nil {
		respondWithError(w, "Failed to add vault entry", err)
		return
	}
	respondWithJson(w, http.StatusCreated, saved)
}

func (p passwordControllerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, p.authorizationService, userId) {
		return
	}
	entries, err := p.vaultService.ListEntries(secctx.MakeUserContext(r), userId)
	if err != nil {
		respondWithError(w, "Failed to list vault entries", err)
		return
	}
	respondWithJson(w, http.StatusOK, entries)
}

func (p passwordControllerImpl) GetEntry(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, p.authorizationService, userId) {
		return
	}
	entryId := getStringParam(r, "entryId")
	entry, err := p.vaultService.GetEntry(secctx.MakeUserContext(r), userId, entryId)
	if err != nil {
		respondWithError(w, "Failed to get vault entry", err)
		return
	}
	if entry == nil {
		respondNotFound(w, "vault entry", entryId)
		return
	}
	respondWithJson(w, http.StatusOK, entry)
}

func (p passwordControllerImpl) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, p.authorizationService, userId) {
		return
	}
	var req view.VaultEntryReq
	if !decodeAndValidate(w, r, &req) {
		return
	}
	saved, err := p.vaultService.UpdateEntry(secctx.MakeUserContext(r), getLang(r), userId, getStringParam(r, "entryId"), req)
	if err != nil {
		respondWithError(w, "Failed to update vault entry", err)
		return
	}
	respondWithJson(w, http.StatusOK, saved)
}

func (p passwordControllerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, p.authorizationService, userId) {
		return
	}
	if err := p.vaultService.DeleteEntry(secctx.MakeUserContext(r), userId, getStringParam(r, "entryId")); err != nil {
		respondWithError(w, "Failed to delete vault entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
