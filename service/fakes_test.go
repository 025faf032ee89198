package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/velora-app/velora-api/entity"
	"github.com/velora-app/velora-api/view"
)

type fakeUserRepository struct {
	mutex sync.Mutex
	users map[string]entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]entity.User{}}
}

func (f *fakeUserRepository) Save(ctx context.Context, ent entity.User) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.users[ent.Id] = ent
	return nil
}

func (f *fakeUserRepository) FindById(ctx context.Context, id string) (*entity.User, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if ent, ok := f.users[id]; ok {
		return &ent, nil
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	for _, ent := range f.users {
		if strings.EqualFold(ent.Email, email) {
			e := ent
			return &e, nil
		}
	}
	return nil, nil
}

type fakeTaskRepository struct {
	mutex sync.Mutex
	tasks map[string]entity.Task
}

func newFakeTaskRepository() *fakeTaskRepository {
	return &fakeTaskRepository{tasks: map[string]entity.Task{}}
}

func (f *fakeTaskRepository) Save(ctx context.Context, ent entity.Task) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.tasks[ent.Id] = ent
	return nil
}

func (f *fakeTaskRepository) Update(ctx context.Context, ent entity.Task) error {
	return f.Save(ctx, ent)
}

func (f *fakeTaskRepository) FindById(ctx context.Context, id string) (*entity.Task, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if ent, ok := f.tasks[id]; ok {
		return &ent, nil
	}
	return nil, nil
}

func (f *fakeTaskRepository) FindByOwner(ctx context.Context, userId string) ([]entity.Task, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	var result []entity.Task
	for _, ent := range f.tasks {
		if ent.UserId == userId {
			result = append(result, ent)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeTaskRepository) Delete(ctx context.Context, id string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	delete(f.tasks, id)
	return nil
}

type fakeVaultEntryRepository struct {
	mutex   sync.Mutex
	entries map[string]entity.VaultEntry
}

func newFakeVaultEntryRepository() *fakeVaultEntryRepository {
	return &fakeVaultEntryRepository{entries: map[string]entity.VaultEntry{}}
}

func (f *fakeVaultEntryRepository) Save(ctx context.Context, ent entity.VaultEntry) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.entries[ent.Id] = ent
	return nil
}

func (f *fakeVaultEntryRepository) Update(ctx context.Context, ent entity.VaultEntry) error {
	return f.Save(ctx, ent)
}

func (f *fakeVaultEntryRepository) FindById(ctx context.Context, id string) (*entity.VaultEntry, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if ent, ok := f.entries[id]; ok {
		return &ent, nil
	}
	return nil, nil
}

func (f *fakeVaultEntryRepository) FindByOwner(ctx context.Context, userId string) ([]entity.VaultEntry, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	var result []entity.VaultEntry
	for _, ent := range f.entries {
		if ent.UserId == userId {
			result = append(result, ent)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Account < result[j].Account })
	return result, nil
}

func (f *fakeVaultEntryRepository) Delete(ctx context.Context, id string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	delete(f.entries, id)
	return nil
}

type fakeReminderRepository struct {
	mutex     sync.Mutex
	reminders map[string]entity.Reminder
}

func newFakeReminderRepository() *fakeReminderRepository {
	return &fakeReminderRepository{reminders: map[string]entity.Reminder{}}
}

func (f *fakeReminderRepository) Save(ctx context.Context, ent entity.Reminder) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.reminders[ent.Id] = ent
	return nil
}

func (f *fakeReminderRepository) FindById(ctx context.Context, id string) (*entity.Reminder, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if ent, ok := f.reminders[id]; ok {
		return &ent, nil
	}
	return nil, nil
}

func (f *fakeReminderRepository) FindByOwner(ctx context.Context, userId string) ([]entity.Reminder, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	var result []entity.Reminder
	for _, ent := range f.reminders {
		if ent.UserId == userId {
			result = append(result, ent)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeReminderRepository) Delete(ctx context.Context, id string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	delete(f.reminders, id)
	return nil
}

func (f *fakeReminderRepository) ClaimDue(ctx context.Context, now time.Time, executorId string, limit int) ([]entity.Reminder, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	var due []entity.Reminder
	for _, ent := range f.reminders {
		if ent.Status == view.ReminderStatusPending && ent.DueAt != nil && !ent.DueAt.After(now) {
			due = append(due, ent)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].DueAt.Before(*due[j].DueAt) })
	if len(due) > limit {
		due = due[:limit]
	}
	for i := range due {
		firedAt := now
		due[i].Status = view.ReminderStatusFiring
		due[i].ExecutorId = executorId
		due[i].FiredAt = &firedAt
		f.reminders[due[i].Id] = due[i]
	}
	return due, nil
}

func (f *fakeReminderRepository) UpdateStatusAndDetails(ctx context.Context, id string, status view.ReminderStatus, details string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	ent := f.reminders[id]
	ent.Status = status
	ent.Details = details
	f.reminders[id] = ent
	return nil
}

func (f *fakeReminderRepository) ReleaseStale(ctx context.Context, cutoff time.Time) (int, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	released := 0
	for id, ent := range f.reminders {
		if ent.Status == view.ReminderStatusFiring && ent.FiredAt != nil && ent.FiredAt.Before(cutoff) {
			ent.Status = view.ReminderStatusPending
			ent.ExecutorId = ""
			f.reminders[id] = ent
			released++
		}
	}
	return released, nil
}

type fakeNotificationClient struct {
	mutex   sync.Mutex
	sent    []view.ReminderNotification
	failFor map[string]error
}

func (f *fakeNotificationClient) SendReminder(ctx context.Context, notification view.ReminderNotification) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if err := f.failFor[notification.ReminderId]; err != nil {
		return err
	}
	f.sent = append(f.sent, notification)
	return nil
}
