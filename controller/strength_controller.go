package controller

import (
	"net/http"

	"github.com/velora-app/velora-api/service"
	"github.com/velora-app/velora-api/view"
)

type StrengthController interface {
	EvaluatePassword(w http.ResponseWriter, r *http.Request)
}

func NewStrengthController(strengthService service.StrengthService) StrengthController {
	return &strengthControllerImpl{strengthService: strengthService}
}

type strengthControllerImpl struct {
	strengthService service.StrengthService
}

func (s strengthControllerImpl) EvaluatePassword(w http.ResponseWriter, r *http.Request) {
	var req view.StrengthReq
	if !decodeAndValidate(w, r, &req) {
		return
	}
	respondWithJson(w, http.StatusOK, s.strengthService.Report(getLang(r), req.Password))
}
