package worker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wneessen/go-mail"

	"lexdesk/internal/conf"
	"lexdesk/internal/service"
)

// Sender delivers one rendered email. Swapped for a recorder in tests.
type Sender interface {
	Send(ctx context.Context, job service.MailJob) error
}

// SMTPSender delivers through go-mail.
type SMTPSender struct {
	cfg conf.MailConfig
}

func NewSMTPSender(cfg conf.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, job service.MailJob) error {
	opts := []mail.Option{mail.WithPort(s.cfg.Port)}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return err
	}
	if err := msg.To(job.To); err != nil {
		return err
	}
	msg.Subject(job.Subject)
	msg.SetBodyString(mail.TypeTextPlain, job.Body)

	return client.DialAndSendWithContext(ctx, msg)
}

// MailWorker drains the redis mail queue. Jobs that fail to send are
// pushed to the dead-letter list and logged; the worker never stops on
// a bad job.
type MailWorker struct {
	redis  *redis.Client
	sender Sender
}

func NewMailWorker(rdb *redis.Client, sender Sender) *MailWorker {
	return &MailWorker{redis: rdb, sender: sender}
}

// Start launches numWorkers goroutines and returns.
func (w *MailWorker) Start(ctx context.Context, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	log.Printf("starting %d mail worker(s) on %s", numWorkers, service.MailQueueKey)
	for i := 0; i < numWorkers; i++ {
		go w.processLoop(ctx, i)
	}
}

func (w *MailWorker) processLoop(ctx context.Context, workerID int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			result, err := w.redis.BLPop(ctx, 5*time.Second, service.MailQueueKey).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					log.Printf("[mail-%d] queue read failed: %v", workerID, err)
					time.Sleep(3 * time.Second)
				}
				continue
			}

			raw := result[1]
			var job service.MailJob
			if err := json.Unmarshal([]byte(raw), &job); err != nil {
				log.Printf("[mail-%d] dropping malformed job: %v", workerID, err)
				continue
			}

			if err := w.sender.Send(ctx, job); err != nil {
				log.Printf("[mail-%d] send to %s failed: %v", workerID, job.To, err)
				w.deadLetter(ctx, raw)
				continue
			}
			log.Printf("[mail-%d] sent %q to %s", workerID, job.Subject, job.To)
		}
	}
}

func (w *MailWorker) deadLetter(ctx context.Context, raw string) {
	if err := w.redis.RPush(ctx, service.MailDeadLetterKey, raw).Err(); err != nil {
		log.Printf("dead-letter push failed, job lost: %v", err)
	}
}
