package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/autocarehub/backend/models"
	"github.com/autocarehub/backend/utils"
)

// StartReminderJobs schedules the hourly sweep that emails customers about
// accepted bookings coming up within the next hour.
func StartReminderJobs(db *gorm.DB) {
	c := cron.New()
	_, err := c.AddFunc("0 * * * *", func() {
		sendBookingReminders(db)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron scheduler started for booking reminders")
}

// reminderWindow is how far ahead of a booking's date the sweep reminds
// the customer.
const reminderWindow = time.Hour

// upcomingAcceptedBookings returns the accepted bookings due between now
// and now+reminderWindow, with both parties preloaded for the email.
func upcomingAcceptedBookings(db *gorm.DB, now time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Preload("User").Preload("Provider").
		Where("status = ? AND date BETWEEN ? AND ?", models.StatusAccepted, now, now.Add(reminderWindow)).
		Find(&bookings).Error
	return bookings, err
}

func sendBookingReminders(db *gorm.DB) {
	bookings, err := upcomingAcceptedBookings(db, time.Now())
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.User.Email)
	}
}

func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Service Booking - %s", booking.Provider.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming service booking scheduled within the next hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Provider:</strong> %s (%s)</li>
			<li><strong>Location:</strong> %s</li>
			<li><strong>Vehicle:</strong> %s</li>
			<li><strong>Issue:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
		</ul>
		<p>If you need to cancel, please contact the provider as soon as possible.</p>
	`, booking.User.Name, booking.Provider.Name, booking.Provider.ServiceType,
		booking.Provider.Location, booking.VehicleType, booking.IssueDescription,
		booking.Date.Format("2006-01-02 15:04:05"))

	return utils.SendEmail(booking.User.Email, subject, body)
}
