package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/client"
	"github.com/velora-app/velora-api/entity"
	"github.com/velora-app/velora-api/repository"
	"github.com/velora-app/velora-api/secctx"
	"github.com/velora-app/velora-api/utils"
	"github.com/velora-app/velora-api/view"
)

const reminderBatchSize = 50

// reminders left in firing longer than this are assumed to belong to a dead executor
const reminderStaleAfter = 5 * time.Minute

type ReminderDispatcher interface {
	Start(ctx context.Context)
	DispatchDue(ctx context.Context) (int, error)
}

func NewReminderDispatcher(reminderRepository repository.ReminderRepository, notificationClient client.NotificationClient, executorId string, interval time.Duration) ReminderDispatcher {
	return &reminderDispatcherImpl{
		reminderRepository: reminderRepository,
		notificationClient: notificationClient,
		executorId:         executorId,
		interval:           interval,
		now:                time.Now,
	}
}

type reminderDispatcherImpl struct {
	reminderRepository repository.ReminderRepository
	notificationClient client.NotificationClient
	executorId         string
	interval           time.Duration
	now                func() time.Time
}

func (d *reminderDispatcherImpl) Start(ctx context.Context) {
	utils.SafeAsync(func() {
		d.run(ctx)
	})
}

func (d *reminderDispatcherImpl) run(ctx context.Context) {
	log.Infof("Reminder dispatcher %s started, poll interval %v", d.executorId, d.interval)
	t := time.NewTicker(d.interval)
	defer t.Stop()
	sysCtx := secctx.MakeSystemContext(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Infof("Reminder dispatcher %s stopped", d.executorId)
			return
		case <-t.C:
			if _, err := d.DispatchDue(sysCtx); err != nil {
				log.Errorf("Failed to dispatch due reminders: %v", err)
			}
		}
	}
}

// DispatchDue delivers every reminder that is due now and returns how many
// were delivered successfully.
func (d *reminderDispatcherImpl) DispatchDue(ctx context.Context) (int, error) {
	now := d.now().UTC()

	released, err := d.reminderRepository.ReleaseStale(ctx, now.Add(-reminderStaleAfter))
	if err != nil {
		return 0, err
	}
	if released > 0 {
		log.Warnf("Released %d stale reminder(s) for redelivery", released)
	}

	delivered := 0
	for {
		reminders, err := d.reminderRepository.ClaimDue(ctx, now, d.executorId, reminderBatchSize)
		if err != nil {
			return delivered, err
		}
		for _, rem := range reminders {
			if d.deliver(ctx, rem) {
				delivered++
			}
		}
		if len(reminders) < reminderBatchSize {
			break
		}
	}
	if delivered > 0 {
		log.Debugf("Delivered %d reminder(s)", delivered)
	}
	return delivered, nil
}

func (d *reminderDispatcherImpl) deliver(ctx context.Context, rem entity.Reminder) bool {
	status := view.ReminderStatusDelivered
	details := ""
	err := d.notificationClient.SendReminder(ctx, entity.MakeReminderNotification(rem))
	if err != nil {
		log.Errorf("Failed to deliver reminder %s: %v", rem.Id, err)
		status = view.ReminderStatusFailed
		details = err.Error()
	}
	if err := d.reminderRepository.UpdateStatusAndDetails(ctx, rem.Id, status, details); err != nil {
		log.Errorf("Failed to update reminder %s status to %s: %v", rem.Id, status, err)
	}
	return status == view.ReminderStatusDelivered
}
