package common

import (
	"context"
	"hbs/src/lib"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// SendCheckInReminders mails every confirmed guest whose check-in is the day after now.
func SendCheckInReminders(ctx context.Context, ledger *Ledger, notifier *Notifier, now time.Time) (int, error) {
	bookings, err := ledger.ConfirmedCheckIns(ctx, now.UTC().Add(day))
	if err != nil {
		log.Printf("[Reminders] Error loading check-ins: %s\n", err.Error())
		return 0, err
	}
	if !notifier.CanMail() {
		log.Printf("[Reminders] No mailer configured, skipping %d check-in reminders\n", len(bookings))
		return 0, nil
	}
	sent := 0
	for i := range bookings {
		if err := notifier.CheckInReminder(ctx, &bookings[i]); err != nil {
			log.Printf("[Reminders] Booking %s reminder failed: %s\n", bookings[i].ID, err.Error())
			continue
		}
		sent++
	}
	log.Printf("[Reminders] Sent %d of %d check-in reminders\n", sent, len(bookings))
	return sent, nil
}

// ScheduleCheckInReminders registers the daily 09:00 reminder job.
func ScheduleCheckInReminders(ledger *Ledger, notifier *Notifier) (*string, error) {
	return lib.CreateDailyJob("check-in-reminders", 9, 0, gocron.NewTask(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		SendCheckInReminders(ctx, ledger, notifier, time.Now())
	}))
}
