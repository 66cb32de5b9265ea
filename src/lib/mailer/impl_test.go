package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"hbs/src/lib"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	sent []*lib.SendMailInput
	err  error
}

func (r *recordingMailer) Send(_ context.Context, input *lib.SendMailInput) error {
	r.sent = append(r.sent, input)
	return r.err
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("MAIL_DRIVER", "")
	assert.IsType(t, SMTPMailer{}, NewFromEnv())

	t.Setenv("MAIL_DRIVER", "ses")
	assert.IsType(t, SESMailer{}, NewFromEnv())

	t.Setenv("MAIL_DRIVER", "sqs")
	t.Setenv("EMAIL_QUEUE", "emails-test")
	m := NewFromEnv()
	require.IsType(t, QueueMailer{}, m)
	assert.Equal(t, "emails-test", m.(QueueMailer).Queue)
}

func TestQueueHandlerDeliversDecodedMessage(t *testing.T) {
	rec := &recordingMailer{}
	body, _ := json.Marshal(&lib.SendMailInput{
		From:        "bookings@example.com",
		To:          []string{"guest@example.com"},
		Subject:     "Hotel Booking Confirmation",
		Attachments: []lib.MailAttachment{{Name: "booking.png", Data: []byte{1, 2, 3}}},
	})

	err := QueueHandler(rec)(context.Background(), string(body))
	require.NoError(t, err)
	require.Len(t, rec.sent, 1)
	assert.Equal(t, "Hotel Booking Confirmation", rec.sent[0].Subject)
	assert.Equal(t, []byte{1, 2, 3}, rec.sent[0].Attachments[0].Data)
}

func TestQueueHandler(t *testing.T) {
	t.Run("malformed body is dropped", func(t *testing.T) {
		rec := &recordingMailer{}
		assert.NoError(t, QueueHandler(rec)(context.Background(), "{"))
		assert.Empty(t, rec.sent)
	})
	t.Run("delivery failure is returned for redelivery", func(t *testing.T) {
		rec := &recordingMailer{err: errors.New("smtp down")}
		assert.Error(t, QueueHandler(rec)(context.Background(), `{"subject":"x"}`))
	})
}
