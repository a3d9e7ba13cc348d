//go:build integration

package main_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunci-cimahi/service-booking/internal/application"
	bookingEvents "github.com/kunci-cimahi/service-booking/internal/events"
	"github.com/kunci-cimahi/service-booking/internal/realtime"
	"github.com/kunci-cimahi/service-booking/internal/repository"
)

// TestCreateBooking_ReachesDashboard verifies the full path of a new
// booking: persisted to PostgreSQL, published to booking.events, and
// relayed through the realtime hub to a connected dashboard client with
// the alert flag set.
func TestCreateBooking_ReachesDashboard(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()
	defer func() { _ = stack.Consumer.Close() }()

	// Connect a dashboard client and start the consumer.
	client := &realtime.Client{ID: "dashboard", Send: make(chan []byte, 16)}
	stack.Hub.Register(client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = stack.Consumer.Start(ctx) }()
	time.Sleep(3 * time.Second) // Wait for consumer group join.

	// Submit a booking.
	result, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
		CustomerName: "Budi",
		PhoneNumber:  "081234567890",
		Location:     "Jl. Raya Cimahi No. 5",
		VehicleType:  "motor",
		ProblemType:  "kunci patah di lubang",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", result.Booking.Status)
	assert.Nil(t, result.Booking.Price)

	// Assert: row persisted with the generated ticket.
	model := waitForBookingStatus(t, infra.DB, result.Booking.ID, "pending", 10*time.Second)
	assert.Equal(t, result.Booking.TicketID, model.TicketID)

	// Assert: booking.created on booking.events.
	ce := consumeOneEvent(t, infra.KafkaBrokers, bookingEvents.TopicBookingEvents,
		bookingEvents.BookingCreated, 15*time.Second)

	var evt bookingEvents.BookingChangedEvent
	require.NoError(t, ce.ParseData(&evt))
	assert.Equal(t, result.Booking.ID, evt.BookingID)
	assert.Equal(t, result.Booking.TicketID, evt.TicketID)

	// Assert: dashboard client received the alert notification.
	select {
	case payload := <-client.Send:
		var n realtime.Notification
		require.NoError(t, json.Unmarshal(payload, &n))
		assert.Equal(t, bookingEvents.BookingCreated, n.Type)
		assert.True(t, n.Alert, "new bookings must raise the dashboard alert")
		assert.Equal(t, result.Booking.TicketID, n.TicketID)
	case <-time.After(15 * time.Second):
		t.Fatal("dashboard client never received the new booking notification")
	}
}

// TestBookingLifecycle_StatusPriceStats drives a booking through the
// admin lifecycle against real storage and checks the dashboard stats.
func TestBookingLifecycle_StatusPriceStats(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()
	defer func() { _ = stack.Consumer.Close() }()

	ctx := context.Background()
	created, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
		CustomerName: "Siti",
		PhoneNumber:  "08561112223",
		Location:     "Cimahi Utara",
		VehicleType:  "rumah",
		ProblemType:  "terkunci di luar",
	})
	require.NoError(t, err)

	_, err = stack.Service.UpdateStatus(ctx, created.Booking.ID, "on_the_way")
	require.NoError(t, err)
	_, err = stack.Service.UpdateStatus(ctx, created.Booking.ID, "completed")
	require.NoError(t, err)
	_, err = stack.Service.UpdatePrice(ctx, created.Booking.ID, 75000)
	require.NoError(t, err)

	model := waitForBookingStatus(t, infra.DB, created.Booking.ID, "completed", 10*time.Second)
	require.NotNil(t, model.Price)
	assert.Equal(t, int64(75000), *model.Price)

	stats, err := stack.Service.GetDashboardStats(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalBookings)
	assert.Equal(t, int64(0), stats.PendingBookings)
	assert.Equal(t, int64(1), stats.CompletedToday)
	assert.Equal(t, int64(75000), stats.RevenueToday)

	// Delete and confirm it is gone from storage and the event stream.
	require.NoError(t, stack.Service.DeleteBooking(ctx, created.Booking.ID))

	var count int64
	require.NoError(t, infra.DB.Model(&repository.BookingModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	ce := consumeOneEvent(t, infra.KafkaBrokers, bookingEvents.TopicBookingEvents,
		bookingEvents.BookingDeleted, 15*time.Second)
	var evt bookingEvents.BookingChangedEvent
	require.NoError(t, ce.ParseData(&evt))
	assert.Equal(t, created.Booking.ID, evt.BookingID)
}
