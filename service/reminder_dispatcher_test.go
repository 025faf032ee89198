package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/velora-app/velora-api/entity"
	"github.com/velora-app/velora-api/view"
)

func newTestDispatcher(repo *fakeReminderRepository, notifier *fakeNotificationClient, now time.Time) *reminderDispatcherImpl {
	d := NewReminderDispatcher(repo, notifier, "executor-1", time.Second).(*reminderDispatcherImpl)
	d.now = func() time.Time { return now }
	return d
}

func addReminder(repo *fakeReminderRepository, id string, status view.ReminderStatus, dueAt *time.Time) {
	repo.reminders[id] = entity.Reminder{Id: id, UserId: "u1", Note: "note " + id, Status: status, DueAt: dueAt, CreatedAt: time.Now()}
}

func TestReminderDispatcher_DeliversDueOnly(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	repo := newFakeReminderRepository()
	addReminder(repo, "due", view.ReminderStatusPending, &past)
	addReminder(repo, "later", view.ReminderStatusPending, &future)
	addReminder(repo, "vague", view.ReminderStatusUnscheduled, nil)
	notifier := &fakeNotificationClient{}

	delivered, err := newTestDispatcher(repo, notifier, now).DispatchDue(context.Background())
	if err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if delivered != 1 || len(notifier.sent) != 1 || notifier.sent[0].ReminderId != "due" {
		t.Fatalf("expected only the due reminder to be sent, got %d %+v", delivered, notifier.sent)
	}
	if repo.reminders["due"].Status != view.ReminderStatusDelivered {
		t.Fatalf("expected delivered status, got %s", repo.reminders["due"].Status)
	}
	if repo.reminders["later"].Status != view.ReminderStatusPending || repo.reminders["vague"].Status != view.ReminderStatusUnscheduled {
		t.Fatalf("reminders that are not due must stay untouched")
	}

	delivered, err = newTestDispatcher(repo, notifier, now).DispatchDue(context.Background())
	if err != nil || delivered != 0 {
		t.Fatalf("second pass must not redeliver, got %d %v", delivered, err)
	}
}

func TestReminderDispatcher_FailedDelivery(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeReminderRepository()
	addReminder(repo, "r1", view.ReminderStatusPending, &now)
	notifier := &fakeNotificationClient{failFor: map[string]error{"r1": errors.New("webhook returned 502")}}

	delivered, err := newTestDispatcher(repo, notifier, now).DispatchDue(context.Background())
	if err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if delivered != 0 {
		t.Fatalf("expected no deliveries, got %d", delivered)
	}
	rem := repo.reminders["r1"]
	if rem.Status != view.ReminderStatusFailed || rem.Details != "webhook returned 502" {
		t.Fatalf("expected failed status with details, got %s %q", rem.Status, rem.Details)
	}
}

func TestReminderDispatcher_ReleasesStale(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)
	firedAt := now.Add(-reminderStaleAfter - time.Minute)
	repo := newFakeReminderRepository()
	repo.reminders["stuck"] = entity.Reminder{Id: "stuck", UserId: "u1", Status: view.ReminderStatusFiring, DueAt: &due, FiredAt: &firedAt, ExecutorId: "dead"}
	notifier := &fakeNotificationClient{}

	delivered, err := newTestDispatcher(repo, notifier, now).DispatchDue(context.Background())
	if err != nil || delivered != 1 {
		t.Fatalf("expected stale reminder to be redelivered, got %d %v", delivered, err)
	}
	if repo.reminders["stuck"].ExecutorId != "executor-1" {
		t.Fatalf("expected reminder to be claimed by executor-1, got %s", repo.reminders["stuck"].ExecutorId)
	}
}

func TestReminderDispatcher_MultipleBatches(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeReminderRepository()
	total := reminderBatchSize + 7
	for i := 0; i < total; i++ {
		due := now.Add(-time.Duration(i) * time.Second)
		addReminder(repo, fmt.Sprintf("r%d", i), view.ReminderStatusPending, &due)
	}
	notifier := &fakeNotificationClient{}
	delivered, err := newTestDispatcher(repo, notifier, now).DispatchDue(context.Background())
	if err != nil {
		t.Fatalf("DispatchDue: %v", err)
	}
	if delivered != total || len(notifier.sent) != total {
		t.Fatalf("expected %d deliveries, got %d", total, delivered)
	}
}
