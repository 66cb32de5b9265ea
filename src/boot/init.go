package boot

import (
	"context"
	"hbs/src/common"
	"hbs/src/config"
	"hbs/src/db"
	"hbs/src/lib"
	libaws "hbs/src/lib/aws"
	"hbs/src/lib/mailer"
	"hbs/src/models"
	"log"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(models.All()...)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	if n, err := common.UpdateMissingHotelSlugs(db); err == nil && n > 0 {
		log.Printf("Backfilled %d hotel slugs\n", n)
	}

	return db
}

// InitScheduler registers the recurring jobs and starts the scheduler.
// Nothing is scheduled unless REMINDERS_ENABLED is set.
func InitScheduler(svc *common.Bookings) {
	if !config.GetBool("REMINDERS_ENABLED", false) {
		return
	}
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	if _, err := common.ScheduleCheckInReminders(svc.Ledger, svc.Notifier); err != nil {
		log.Printf("Error scheduling check-in reminders: %s\n", err.Error())
		return
	}
	log.Println("Jobs in queue:", len(sched.Jobs()))
	sched.Start()
}

func StopScheduler() {
	if !config.GetBool("REMINDERS_ENABLED", false) {
		return
	}
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while shutting stopping Scheduler. Check logs for info")
		return
	}
}

// InitEmailWorker drains the email queue over SMTP when EMAIL_QUEUE_WORKER is set.
func InitEmailWorker(ctx context.Context) {
	if !config.GetBool("EMAIL_QUEUE_WORKER", false) {
		return
	}
	queue := config.GetEnv("EMAIL_QUEUE", "hbs-emails")
	libaws.NewSQSConsumer(queue, mailer.QueueHandler(mailer.SMTPMailer{})).Listen(ctx)
}
