package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/velora-app/velora-api/entity"
	"github.com/velora-app/velora-api/exception"
	"github.com/velora-app/velora-api/repository"
	"github.com/velora-app/velora-api/utils"
	"github.com/velora-app/velora-api/view"
)

type ReminderService interface {
	CreateReminder(ctx context.Context, userId string, req view.ReminderCreateReq) (*view.Reminder, error)
	ListReminders(ctx context.Context, userId string) ([]view.Reminder, error)
	DeleteReminder(ctx context.Context, userId string, reminderId string) error
}

func NewReminderService(reminderRepository repository.ReminderRepository) ReminderService {
	return &reminderServiceImpl{reminderRepository: reminderRepository}
}

type reminderServiceImpl struct {
	reminderRepository repository.ReminderRepository
}

func (r reminderServiceImpl) CreateReminder(ctx context.Context, userId string, req view.ReminderCreateReq) (*view.Reminder, error) {
	ent := entity.Reminder{
		Id:        uuid.NewString(),
		UserId:    userId,
		Note:      req.Note,
		Time:      req.Time,
		Status:    view.ReminderStatusUnscheduled,
		CreatedAt: time.Now(),
	}
	if dueAt, ok := utils.ParseReminderTime(req.Time); ok {
		ent.DueAt = &dueAt
		ent.Status = view.ReminderStatusPending
	}
	if err := r.reminderRepository.Save(ctx, ent); err != nil {
		return nil, err
	}
	result := entity.MakeReminderView(ent)
	return &result, nil
}

func (r reminderServiceImpl) ListReminders(ctx context.Context, userId string) ([]view.Reminder, error) {
	ents, err := r.reminderRepository.FindByOwner(ctx, userId)
	if err != nil {
		return nil, err
	}
	result := make([]view.Reminder, 0, len(ents))
	for _, ent := range ents {
		result = append(result, entity.MakeReminderView(ent))
	}
	return result, nil
}

func (r reminderServiceImpl) DeleteReminder(ctx context.Context, userId string, reminderId string) error {
	ent, err := r.reminderRepository.FindById(ctx, reminderId)
	if err != nil {
		return err
	}
	if ent == nil || ent.UserId != userId {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.EntityNotFound,
			Message: exception.EntityNotFoundMsg,
			Params:  map[string]interface{}{"entity": "reminder", "id": reminderId},
		}
	}
	return r.reminderRepository.Delete(ctx, reminderId)
}
