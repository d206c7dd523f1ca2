package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"recipehub/internal/repository"
	"recipehub/internal/utils"

	"github.com/streadway/amqp"
)

// NotificationWorker consumes email jobs from RabbitMQ and sends them over
// SMTP. Delivery is best-effort: send failures are logged and the job is
// acked anyway, matching the at-most-best-effort contract of Notify.
type NotificationWorker struct {
	userRepo    repository.UserRepository
	mailConfig  utils.MailConfig
	conn        *amqp.Connection
	channel     *amqp.Channel
	workerCount int

	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.RWMutex
}

func NewNotificationWorker(userRepo repository.UserRepository, rabbitMQURL string, workerCount int) (*NotificationWorker, error) {
	if workerCount <= 0 {
		workerCount = 3
	}

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

	return &NotificationWorker{
		userRepo:    userRepo,
		mailConfig:  utils.LoadMailConfig(),
		conn:        conn,
		channel:     channel,
		workerCount: workerCount,
		stopChan:    make(chan struct{}),
	}, nil
}

func (w *NotificationWorker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return fmt.Errorf("notification worker already running")
	}

	if err := w.channel.Qos(w.workerCount, 0, false); err != nil {
		return err
	}

	deliveries, err := w.channel.Consume(emailQueueName, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.run(deliveries)
	}

	w.running = true
	log.Printf("Notification worker started with %d workers", w.workerCount)
	return nil
}

func (w *NotificationWorker) run(deliveries <-chan amqp.Delivery) {
	defer w.wg.Done()
	for {
		select {
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}
			w.handle(delivery)
		case <-w.stopChan:
			return
		}
	}
}

func (w *NotificationWorker) handle(delivery amqp.Delivery) {
	// Ack regardless of outcome; a lost email is tolerable, a stuck
	// redelivery loop is not.
	defer delivery.Ack(false)

	var job EmailJob
	if err := json.Unmarshal(delivery.Body, &job); err != nil {
		log.Printf("Failed to decode email job: %v", err)
		return
	}

	recipient, err := w.userRepo.FindByID(job.RecipientID)
	if err != nil {
		log.Printf("Email job %s: recipient %d not found: %v", job.CorrelationID, job.RecipientID, err)
		return
	}

	if err := utils.SendEmail(w.mailConfig, recipient.Email, "New Notification", job.Message); err != nil {
		log.Printf("Email job %s: failed to send to %s: %v", job.CorrelationID, recipient.Email, err)
		return
	}
}

func (w *NotificationWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}

	close(w.stopChan)
	w.channel.Close()
	w.conn.Close()
	w.wg.Wait()
	w.running = false
	log.Println("Notification worker stopped")
}
