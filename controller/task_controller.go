package controller

import (
	"net/http"

	"github.com/velora-app/velora-api/secctx"
	"github.com/velora-app/velora-api/service"
	"github.com/velora-app/velora-api/view"
)

type TaskController interface {
	CreateTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
}

func NewTaskController(taskService service.TaskService, authorizationService service.AuthorizationService) TaskController {
	return &taskControllerImpl{
		taskService:          taskService,
		authorizationService: authorizationService,
	}
}

type taskControllerImpl struct {
	taskService          service.TaskService
	authorizationService service.AuthorizationService
}

func (t taskControllerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, t.authorizationService, userId) {
		return
	}
	var req view.TaskCreateReq
	if !decodeAndValidate(w, r, &req) {
		return
	}
	task, err := t.taskService.CreateTask(secctx.MakeUserContext(r), userId, req)
	if err != nil {
		respondWithError(w, "Failed to create task", err)
		return
	}
	respondWithJson(w, http.StatusCreated, task)
}

func (t taskControllerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, t.authorizationService, userId) {
		return
	}
	tasks, err := t.taskService.ListTasks(secctx.MakeUserContext(r), userId)
	if err != nil {
		respondWithError(w, "Failed to list tasks", err)
		return
	}
	respondWithJson(w, http.StatusOK, tasks)
}

func (t taskControllerImpl) GetTask(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, t.authorizationService, userId) {
		return
	}
	taskId := getStringParam(r, "taskId")
	task, err := t.taskService.GetTask(secctx.MakeUserContext(r), userId, taskId)
	if err != nil {
		respondWithError(w, "Failed to get task", err)
		return
	}
	if task == nil {
		respondNotFound(w, "task", taskId)
		return
	}
	respondWithJson(w, http.StatusOK, task)
}

func (t taskControllerImpl) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, t.authorizationService, userId) {
		return
	}
	var req view.TaskUpdateReq
	if !decodeAndValidate(w, r, &req) {
		return
	}
	task, err := t.taskService.UpdateTask(secctx.MakeUserContext(r), userId, getStringParam(r, "taskId"), req)
	if err != nil {
		respondWithError(w, "Failed to update task", err)
		return
	}
	respondWithJson(w, http.StatusOK, task)
}

func (t taskControllerImpl) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, t.authorizationService, userId) {
		return
	}
	if err := t.taskService.DeleteTask(secctx.MakeUserContext(r), userId, getStringParam(r, "taskId")); err != nil {
		respondWithError(w, "Failed to delete task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
