package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"hbs/src/config"
	"hbs/src/lib"
	libaws "hbs/src/lib/aws"
	"log"
)

type Mailer interface {
	Send(ctx context.Context, input *lib.SendMailInput) error
}

// SMTPMailer delivers directly over SMTP, opening a client per message.
type SMTPMailer struct{}

func (SMTPMailer) Send(ctx context.Context, input *lib.SendMailInput) error {
	c, err := lib.NewSMTPClientFromEnv()
	if err != nil {
		return err
	}
	return lib.SendMail(ctx, c, input)
}

// SESMailer uses SES for messages without attachments and falls back to SMTP otherwise.
type SESMailer struct{}

func (SESMailer) Send(ctx context.Context, input *lib.SendMailInput) error {
	if len(input.Attachments) > 0 {
		return SMTPMailer{}.Send(ctx, input)
	}
	return libaws.SESSendMessage(ctx, input)
}

// QueueMailer hands the message to the email queue for the worker to deliver.
type QueueMailer struct {
	Queue string
}

func (q QueueMailer) Send(ctx context.Context, input *lib.SendMailInput) error {
	body, err := json.Marshal(input)
	if err != nil {
		return err
	}
	if err := lib.SQSProduceMessage(ctx, q.Queue, string(body)); err != nil {
		return fmt.Errorf("error sending message to queue: %s", err.Error())
	}
	return nil
}

// NewFromEnv selects a driver from MAIL_DRIVER: smtp (default), ses or sqs.
func NewFromEnv() Mailer {
	switch config.GetEnv("MAIL_DRIVER", "smtp") {
	case "ses":
		return SESMailer{}
	case "sqs":
		return QueueMailer{Queue: config.GetEnv("EMAIL_QUEUE", "hbs-emails")}
	default:
		return SMTPMailer{}
	}
}

// QueueHandler decodes queued messages and delivers them with m.
func QueueHandler(m Mailer) libaws.Handler {
	return func(ctx context.Context, body string) error {
		var input lib.SendMailInput
		if err := json.Unmarshal([]byte(body), &input); err != nil {
			log.Printf("[Mailer] Discarding malformed queue message: %s\n", err.Error())
			return nil
		}
		return m.Send(ctx, &input)
	}
}
