// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/exception"
	"github.com/velora-app/velora-api/secctx"
	"github.com/velora-app/velora-api/service"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func respondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		respondWithError(w, "Failed to serialize response", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func RespondWithCustomError(w http.ResponseWriter, err *exception.CustomError) {
	log.Debugf("Request failed. Code = %d. Message = %s. Params: %v. Debug: %s", err.Status, err.Message, err.Params, err.Debug)
	if err.Params != nil {
		err.Message = err.Error()
	}
	respondWithJson(w, err.Status, err)
}

// respondWithError passes CustomError through unchanged and reports anything
// else as an internal error.
func respondWithError(w http.ResponseWriter, msg string, err error) {
	var customError *exception.CustomError
	if errors.As(err, &customError) {
		RespondWithCustomError(w, customError)
		return
	}
	log.Errorf("%s: %s", msg, err.Error())
	RespondWithCustomError(w, &exception.CustomError{
		Status:  http.StatusInternalServerError,
		Message: msg,
		Debug:   err.Error(),
	})
}

func respondForbidden(w http.ResponseWriter) {
	RespondWithCustomError(w, &exception.CustomError{
		Status:  http.StatusForbidden,
		Code:    exception.InsufficientPrivileges,
		Message: exception.InsufficientPrivilegesMsg,
	})
}

func respondNotFound(w http.ResponseWriter, entityName string, id string) {
	RespondWithCustomError(w, &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.EntityNotFound,
		Message: exception.EntityNotFoundMsg,
		Params:  map[string]interface{}{"entity": entityName, "id": id},
	})
}

func getStringParam(r *http.Request, p string) string {
	params := mux.Vars(r)
	return params[p]
}

// getLang returns the raw Accept-Language value, the i18n package picks the
// best supported tag from it.
func getLang(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return r.Header.Get("Accept-Language")
}

// decodeAndValidate reads a JSON body into req and runs its validate tags.
// It writes the error response itself and reports whether the handler may
// continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			respondWithError(w, "Failed to validate request", err)
			return false
		}
		fields := make([]string, 0, len(validationErrors))
		details := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, fe.Field())
			details = append(details, fmt.Sprintf("field '%s' failed validation: %s", fe.Field(), fe.Tag()))
		}
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.ValidationFailed,
			Message: exception.ValidationFailedMsg,
			Params:  map[string]interface{}{"fields": strings.Join(fields, ", ")},
			Debug:   strings.Join(details, ", "),
		})
		return false
	}
	return true
}

// checkOwnerAccess responds with 403 unless the caller owns userId's data.
func checkOwnerAccess(w http.ResponseWriter, r *http.Request, authorizationService service.AuthorizationService, userId string) bool {
	ok, err := authorizationService.HasOwnerAccess(secctx.MakeUserContext(r), userId)
	if err != nil {
		respondWithError(w, "Failed to check user privileges", err)
		return false
	}
	if !ok {
		respondForbidden(w)
		return false
	}
	return true
}
