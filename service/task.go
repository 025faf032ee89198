package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/velora-app/velora-api/entity"
	"github.com/velora-app/velora-api/exception"
	"github.com/velora-app/velora-api/repository"
	"github.com/velora-app/velora-api/view"
)

type TaskService interface {
	CreateTask(ctx context.Context, userId string, req view.TaskCreateReq) (*view.Task, error)
	ListTasks(ctx context.Context, userId string) ([]view.Task, error)
	GetTask(ctx context.Context, userId string, taskId string) (*view.Task, error)
	UpdateTask(ctx context.Context, userId string, taskId string, req view.TaskUpdateReq) (*view.Task, error)
	DeleteTask(ctx context.Context, userId string, taskId string) error
}

func NewTaskService(taskRepository repository.TaskRepository) TaskService {
	return &taskServiceImpl{taskRepository: taskRepository}
}

type taskServiceImpl struct {
	taskRepository repository.TaskRepository
}

func (t taskServiceImpl) CreateTask(ctx context.Context, userId string, req view.TaskCreateReq) (*view.Task, error) {
	now := time.Now()
	ent := entity.Task{
		Id:          uuid.NewString(),
		UserId:      userId,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.taskRepository.Save(ctx, ent); err != nil {
		return nil, err
	}
	result := entity.MakeTaskView(ent)
	return &result, nil
}

func (t taskServiceImpl) ListTasks(ctx context.Context, userId string) ([]view.Task, error) {
	ents, err := t.taskRepository.FindByOwner(ctx, userId)
	if err != nil {
		return nil, err
	}
	result := make([]view.Task, 0, len(ents))
	for _, ent := range ents {
		result = append(result, entity.MakeTaskView(ent))
	}
	return result, nil
}

func (t taskServiceImpl) GetTask(ctx context.Context, userId string, taskId string) (*view.Task, error) {
	ent, err := t.findOwned(ctx, userId, taskId)
	if err != nil || ent == nil {
		return nil, err
	}
	result := entity.MakeTaskView(*ent)
	return &result, nil
}

func (t taskServiceImpl) UpdateTask(ctx context.Context, userId string, taskId string, req view.TaskUpdateReq) (*view.Task, error) {
	ent, err := t.findOwned(ctx, userId, taskId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, taskNotFound(taskId)
	}
	if req.Title != nil {
		ent.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		ent.Description = *req.Description
	}
	if req.Done != nil {
		ent.Done = *req.Done
	}
	ent.UpdatedAt = time.Now()
	if err = t.taskRepository.Update(ctx, *ent); err != nil {
		return nil, err
	}
	result := entity.MakeTaskView(*ent)
	return &result, nil
}

func (t taskServiceImpl) DeleteTask(ctx context.Context, userId string, taskId string) error {
	ent, err := t.findOwned(ctx, userId, taskId)
	if err != nil {
		return err
	}
	if ent == nil {
		return taskNotFound(taskId)
	}
	return t.taskRepository.Delete(ctx, taskId)
}

// findOwned hides tasks of other users behind a nil result.
func (t taskServiceImpl) findOwned(ctx context.Context, userId string, taskId string) (*entity.Task, error) {
	ent, err := t.taskRepository.FindById(ctx, taskId)
	if err != nil {
		return nil, err
	}
	if ent == nil || ent.UserId != userId {
		return nil, nil
	}
	return ent, nil
}

func taskNotFound(taskId string) error {
	return &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.EntityNotFound,
		Message: exception.EntityNotFoundMsg,
		Params:  map[string]interface{}{"entity": "task", "id": taskId},
	}
}
