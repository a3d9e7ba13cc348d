// Package notification builds WhatsApp deep links for new-booking alerts.
// Delivery is best-effort: the service hands out wa.me compose links and
// logs them; there is no delivery confirmation, and a failure here never
// fails the booking.
package notification

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// BookingSummary carries the fields included in outbound messages.
type BookingSummary struct {
	TicketID     string
	CustomerName string
	PhoneNumber  string
	Location     string
	VehicleType  string
	ProblemType  string
}

// FormatNumber normalizes an Indonesian phone number for wa.me: strips
// non-digits, replaces a leading 0 with the 62 country code, and prefixes
// 62 when missing.
func FormatNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if strings.HasPrefix(cleaned, "0") {
		cleaned = "62" + cleaned[1:]
	}
	if !strings.HasPrefix(cleaned, "62") {
		cleaned = "62" + cleaned
	}
	return cleaned
}

// OperatorMessage builds the alert text sent to the on-call technician.
func OperatorMessage(s BookingSummary) string {
	return fmt.Sprintf(
		"*BOOKING BARU - KUNCI CIMAHI*\n\n"+
			"Tiket: %s\n"+
			"Nama: %s\n"+
			"Lokasi: %s\n"+
			"Kendaraan: %s\n"+
			"Masalah: %s\n\n"+
			"Mohon segera ditindaklanjuti. Terima kasih!",
		s.TicketID, s.CustomerName, s.Location, s.VehicleType, s.ProblemType,
	)
}

// CustomerMessage builds the confirmation text sent to the customer.
func CustomerMessage(ticketID, customerName string) string {
	return fmt.Sprintf(
		"Halo %s!\n\n"+
			"Terima kasih telah memesan layanan KUNCI-CIMAHI.\n\n"+
			"Nomor Tiket Anda: *%s*\n\n"+
			"Teknisi kami akan segera menghubungi Anda.\n\n"+
			"Layanan 24/7 - Bundaran Leuwigajah, Cimahi Selatan",
		customerName, ticketID,
	)
}

// Link builds a wa.me compose deep link for the given normalized number.
func Link(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

// Notifier dispatches new-booking notifications.
type Notifier struct {
	operatorNumber string
	logger         *zap.Logger
}

// NewNotifier creates a Notifier. operatorNumber is the technician's
// WhatsApp number in any local format.
func NewNotifier(operatorNumber string, logger *zap.Logger) *Notifier {
	return &Notifier{
		operatorNumber: FormatNumber(operatorNumber),
		logger:         logger,
	}
}

// NotifyNewBooking produces the operator and customer compose links for a
// fresh booking and logs them. Fire-and-forget: no error is ever returned,
// the booking record is the source of truth.
func (n *Notifier) NotifyNewBooking(s BookingSummary) (operatorLink, customerLink string) {
	operatorLink = Link(n.operatorNumber, OperatorMessage(s))
	customerLink = Link(FormatNumber(s.PhoneNumber), CustomerMessage(s.TicketID, s.CustomerName))

	n.logger.Info("whatsapp notifications prepared",
		zap.String("ticket_id", s.TicketID),
		zap.String("operator_number", n.operatorNumber),
	)
	return operatorLink, customerLink
}
