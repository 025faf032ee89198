package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/utils"
	"github.com/velora-app/velora-api/view"
	"gopkg.in/resty.v1"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type NotificationClient interface {
	SendReminder(ctx context.Context, notification view.ReminderNotification) error
}

// NewNotificationClient posts reminders to webhookUrl. Without a webhook the
// notifications are only logged.
func NewNotificationClient(webhookUrl string, insecureSkipVerify bool) NotificationClient {
	if webhookUrl == "" {
		log.Info("REMINDER_WEBHOOK_URL is not set, reminders will only be logged")
		return &logNotificationClientImpl{}
	}

	parsedUrl, err := url.Parse(webhookUrl)
	host := ""
	if err != nil {
		log.Errorf("Can't parse reminder webhook url: %v", err)
	} else {
		host = parsedUrl.Hostname()
	}

	tr := http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: insecureSkipVerify}}
	cl := http.Client{Transport: &tr, Timeout: time.Second * 30}
	client := resty.NewWithClient(&cl)
	if host != "" {
		client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(host))
	}

	return &webhookNotificationClientImpl{webhookUrl: webhookUrl, client: client}
}

type webhookNotificationClientImpl struct {
	webhookUrl string
	client     *resty.Client
}

func (w webhookNotificationClientImpl) SendReminder(ctx context.Context, notification view.ReminderNotification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	req := w.client.R()
	req.SetContext(ctx)
	req.SetHeader("Content-Type", "application/json")
	req.SetHeader(IdempotencyKeyHeader, utils.IdempotencyKey(notification.ReminderId, notification.DueAt.UTC().Format(time.RFC3339)))
	req.SetBody(body)

	resp, err := req.Post(w.webhookUrl)
	if err != nil {
		return fmt.Errorf("failed to send reminder %s: %w", notification.ReminderId, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("failed to send reminder %s: status code %d %s", notification.ReminderId, resp.StatusCode(), resp.Body())
	}
	return nil
}

type logNotificationClientImpl struct{}

func (l logNotificationClientImpl) SendReminder(ctx context.Context, notification view.ReminderNotification) error {
	log.WithFields(log.Fields{
		"reminderId": notification.ReminderId,
		"userId":     notification.UserId,
		"dueAt":      notification.DueAt,
	}).Infof("Reminder: %s", notification.Note)
	return nil
}
