package services

import (
	"encoding/json"
	"log"

	"recipehub/internal/models"
	"recipehub/internal/repository"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

// Notifier records a notification for a user and hands the matching email
// off to the background worker.
type Notifier interface {
	Notify(recipientID uint, senderID *uint, message string) error
}

// EmailJob is the payload published to the email queue.
type EmailJob struct {
	CorrelationID string `json:"correlation_id"`
	RecipientID   uint   `json:"recipient_id"`
	Message       string `json:"message"`
}

const emailQueueName = "recipehub.notification.email"

type NotificationDispatcher struct {
	notificationRepo repository.NotificationRepository
	conn             *amqp.Connection
	channel          *amqp.Channel
}

func NewNotificationDispatcher(notificationRepo repository.NotificationRepository, rabbitMQURL string) (*NotificationDispatcher, error) {
	conn, err := amqp.Dial(rabbitMQURL)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := channel.QueueDeclare(emailQueueName, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &NotificationDispatcher{
		notificationRepo: notificationRepo,
		conn:             conn,
		channel:          channel,
	}, nil
}

// Notify persists the unread Notification row, then publishes the email job.
// The publish is fire-and-forget: a failed enqueue is logged and the row is
// not rolled back.
func (d *NotificationDispatcher) Notify(recipientID uint, senderID *uint, message string) error {
	notification := &models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Message:     message,
	}
	if err := d.notificationRepo.Create(notification); err != nil {
		return err
	}

	job := EmailJob{
		CorrelationID: uuid.New().String(),
		RecipientID:   recipientID,
		Message:       message,
	}
	body, err := json.Marshal(job)
	if err != nil {
		log.Printf("Failed to marshal email job %s: %v", job.CorrelationID, err)
		return nil
	}

	err = d.channel.Publish("", emailQueueName, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		CorrelationId: job.CorrelationID,
		Body:          body,
	})
	if err != nil {
		log.Printf("Failed to enqueue email job %s for user %d: %v", job.CorrelationID, recipientID, err)
	}

	return nil
}

func (d *NotificationDispatcher) Close() {
	if d.channel != nil {
		d.channel.Close()
	}
	if d.conn != nil {
		d.conn.Close()
	}
}
