package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestBookingStatusValid(t *testing.T) {
	cases := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusAccepted, true},
		{StatusRejected, true},
		{StatusCompleted, true},
		{BookingStatus(""), false},
		{BookingStatus("paused"), false},
		{BookingStatus("Accepted"), false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.status.Valid(), "status %q", tc.status)
	}
}

func TestBookingCreateDefaultsToPending(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&User{}, &Provider{}, &Booking{}))

	booking := Booking{
		UserID:     1,
		ProviderID: 1,
		// A client-supplied status must not survive creation.
		Status: StatusCompleted,
	}
	require.NoError(t, conn.Omit("User", "Provider").Create(&booking).Error)

	var stored Booking
	require.NoError(t, conn.First(&stored, booking.ID).Error)
	assert.Equal(t, StatusPending, stored.Status)
}
