package lib

import (
	"bytes"
	"context"
	"hbs/src/config"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

func GetSMTPClient() (*mail.Client, error) {
	host := os.Getenv("SMTP_HOST")
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	user := os.Getenv("SMTP_USERNAME")
	pass := os.Getenv("SMTP_PASSWORD")
	c, err := mail.NewClient(
		host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(pass),
	)
	if err != nil {
		log.Printf("Could not initialize smtp client: %s\n", err.Error())
		return nil, err
	}
	return c, nil
}

func SMTPNewSendGrid() (*mail.Client, error) {
	host := "smtp.sendgrid.net"
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	user := os.Getenv("SENDGRID_SMTP_USER")
	pass := os.Getenv("SENDGRID_API_KEY")
	c, err := mail.NewClient(
		host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(pass),
	)
	if err != nil {
		log.Printf("Could not initialize smtp client: %s\n", err.Error())
		return nil, err
	}
	return c, nil
}

// NewSMTPClientFromEnv picks the provider named by SMTP_PROVIDER (default or sendgrid).
func NewSMTPClientFromEnv() (*mail.Client, error) {
	if config.GetEnv("SMTP_PROVIDER", "default") == "sendgrid" {
		return SMTPNewSendGrid()
	}
	return GetSMTPClient()
}

// BuildMailMessage converts the input into a go-mail message.
func BuildMailMessage(inputParams *SendMailInput) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(inputParams.FromName, inputParams.From); err != nil {
		log.Printf("Failed to set From address: %s\n", err.Error())
		return nil, err
	}
	if err := msg.To(inputParams.To...); err != nil {
		log.Printf("Failed to set To address: %s\n", err.Error())
		return nil, err
	}
	if inputParams.ReplyTo != "" {
		if err := msg.ReplyTo(inputParams.ReplyTo); err != nil {
			log.Printf("Failed to set Reply-To address: %s\n", err.Error())
		}
	}
	msg.Subject(inputParams.Subject)
	if inputParams.Html {
		msg.SetBodyString(mail.TypeTextHTML, inputParams.Body)
	} else {
		msg.SetBodyString(mail.TypeTextPlain, inputParams.Body)
	}
	for _, a := range inputParams.Attachments {
		if err := msg.AttachReader(a.Name, bytes.NewReader(a.Data)); err != nil {
			log.Printf("Failed to attach %s: %s\n", a.Name, err.Error())
			return nil, err
		}
	}
	return msg, nil
}

func SendMail(ctx context.Context, c *mail.Client, inputParams *SendMailInput) error {
	msg, err := BuildMailMessage(inputParams)
	if err != nil {
		return err
	}
	return c.DialAndSendWithContext(ctx, msg)
}

type MailAttachment struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

type SendMailInput struct {
	From        string           `json:"from"`
	FromName    string           `json:"from-name"`
	To          []string         `json:"to"`
	ReplyTo     string           `json:"reply-to,omitempty"`
	Subject     string           `json:"subject"`
	Body        string           `json:"body"`
	Html        bool             `json:"html"`
	Attachments []MailAttachment `json:"attachments,omitempty"`
}
