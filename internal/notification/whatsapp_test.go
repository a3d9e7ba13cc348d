package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"081234567890", "6281234567890"},
		{"6281234567890", "6281234567890"},
		{"+62 812-3456-7890", "6281234567890"},
		{"812 345 678", "62812345678"},
		{"(0812) 3456-789", "628123456789"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "input %q", tt.in)
	}
}

func TestOperatorMessage(t *testing.T) {
	msg := OperatorMessage(BookingSummary{
		TicketID:     "KC-ABC-1234",
		CustomerName: "Budi",
		Location:     "Leuwigajah",
		VehicleType:  "motor",
		ProblemType:  "kunci hilang",
	})

	assert.Contains(t, msg, "KC-ABC-1234")
	assert.Contains(t, msg, "Budi")
	assert.Contains(t, msg, "Leuwigajah")
	assert.Contains(t, msg, "motor")
	assert.Contains(t, msg, "kunci hilang")
}

func TestCustomerMessage(t *testing.T) {
	msg := CustomerMessage("KC-ABC-1234", "Budi")
	assert.Contains(t, msg, "KC-ABC-1234")
	assert.Contains(t, msg, "Halo Budi")
}

func TestLink(t *testing.T) {
	link := Link("6281234567890", "Tiket: KC-1 & selesai")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/6281234567890?text="))
	assert.NotContains(t, link[len("https://wa.me/6281234567890?text="):], " ")
	assert.NotContains(t, link[len("https://wa.me/6281234567890?text="):], "&")
}

func TestNotifyNewBooking(t *testing.T) {
	n := NewNotifier("0812000111", zap.NewNop())

	operatorLink, customerLink := n.NotifyNewBooking(BookingSummary{
		TicketID:     "KC-ABC-1234",
		CustomerName: "Budi",
		PhoneNumber:  "081234567890",
		Location:     "Leuwigajah",
		VehicleType:  "motor",
		ProblemType:  "kunci hilang",
	})

	assert.True(t, strings.HasPrefix(operatorLink, "https://wa.me/62812000111?text="))
	assert.True(t, strings.HasPrefix(customerLink, "https://wa.me/6281234567890?text="))
	assert.Contains(t, operatorLink, "KC-ABC-1234")
	assert.Contains(t, customerLink, "KC-ABC-1234")
}
