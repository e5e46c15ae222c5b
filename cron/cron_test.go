package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/autocarehub/backend/db"
	"github.com/autocarehub/backend/models"
)

func seedBooking(t *testing.T, conn *gorm.DB, userID, providerID uint, date time.Time, status models.BookingStatus) uint {
	t.Helper()

	booking := models.Booking{
		UserID:           userID,
		ProviderID:       providerID,
		Date:             date,
		VehicleType:      "Sedan",
		IssueDescription: "brake noise",
		ContactPhone:     "555-0100",
	}
	// BeforeCreate pins the status to pending, so move it afterwards.
	require.NoError(t, conn.Omit("User", "Provider").Create(&booking).Error)
	require.NoError(t, conn.Model(&booking).Update("status", status).Error)
	return booking.ID
}

func TestUpcomingAcceptedBookings(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	user := models.User{Name: "Alice", Email: "alice@x.com", Password: "x"}
	require.NoError(t, conn.Create(&user).Error)
	provider := models.Provider{Name: "Joe's Garage", Email: "joe@x.com", Password: "x", ServiceType: "Mechanic"}
	require.NoError(t, conn.Create(&provider).Error)

	now := time.Now()
	dueID := seedBooking(t, conn, user.ID, provider.ID, now.Add(30*time.Minute), models.StatusAccepted)
	seedBooking(t, conn, user.ID, provider.ID, now.Add(2*time.Hour), models.StatusAccepted)
	seedBooking(t, conn, user.ID, provider.ID, now.Add(-time.Hour), models.StatusAccepted)
	seedBooking(t, conn, user.ID, provider.ID, now.Add(30*time.Minute), models.StatusPending)
	seedBooking(t, conn, user.ID, provider.ID, now.Add(30*time.Minute), models.StatusCompleted)

	bookings, err := upcomingAcceptedBookings(conn, now)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, dueID, bookings[0].ID)

	// Both parties come preloaded for the reminder email.
	assert.Equal(t, "alice@x.com", bookings[0].User.Email)
	assert.Equal(t, "Joe's Garage", bookings[0].Provider.Name)
}
