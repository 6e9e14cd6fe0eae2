package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"tripzy/internal/domain"
	"tripzy/internal/domain/models"
	"tripzy/internal/utils"
)

const (
	ticketTitle   = "TRIPVAN BOOKING TICKET"
	ticketRule    = "==========================================="
	ticketNote    = "Please present this ticket on your trip day."
	ticketContact = "Contact us: support@tripvan.com"
)

// TicketService backs the confirmation view: it loads one booking and renders
// the client-side ticket exports. Rendering never touches the network.
type TicketService struct {
	API       BookingAPI
	Currency  string
	RequestID string
}

// GetBooking loads the booking shown on the confirmation page.
func (s TicketService) GetBooking(ctx context.Context, id models.ID) (models.Booking, error) {
	if id.IsZero() {
		return models.Booking{}, domain.ValidationError{Field: "bookingId", Msg: "booking id is required"}
	}
	b, err := s.API.GetBooking(ctx, id)
	if err != nil {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if b.ID.IsZero() {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, nil
}

// TicketText formats the booking into the plain-text ticket and its filename.
func (s TicketService) TicketText(b models.Booking) (string, string) {
	var out strings.Builder
	out.WriteString(ticketRule + "\n")
	out.WriteString("           " + ticketTitle + "\n")
	out.WriteString(ticketRule + "\n\n")
	for _, line := range s.ticketLines(b) {
		out.WriteString(line + "\n")
	}
	out.WriteString("\n" + ticketRule + "\n")
	out.WriteString(ticketNote + "\n")
	out.WriteString(ticketContact + "\n")
	out.WriteString(ticketRule + "\n")

	utils.LogEvent(s.RequestID, "ticket", "export_text", "booking_id="+b.ID.String())
	return out.String(), ticketFilename(b, "txt")
}

// TicketPDF renders the same content as a one-page PDF.
func (s TicketService) TicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Ticket", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, ticketTitle)
	pdf.Ln(14)

	pdf.SetFont("Courier", "", 12)
	for _, line := range s.ticketLines(b) {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, ticketNote+" "+ticketContact, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render ticket", Err: err}
	}

	utils.LogEvent(s.RequestID, "ticket", "export_pdf", "booking_id="+b.ID.String())
	return buf.Bytes(), ticketFilename(b, "pdf"), nil
}

func (s TicketService) ticketLines(b models.Booking) []string {
	return []string{
		fmt.Sprintf("Booking ID: %s", b.ID),
		fmt.Sprintf("Trip: %s", b.TripName),
		fmt.Sprintf("Customer: %s", b.UserName),
		fmt.Sprintf("Email: %s", b.UserEmail),
		fmt.Sprintf("Date: %s", utils.FormatLongDate(b.Date)),
		fmt.Sprintf("Price: %s", utils.FormatPrice(s.currency(), b.Price)),
		fmt.Sprintf("Status: %s", strings.ToUpper(string(b.Status))),
	}
}

func (s TicketService) currency() string {
	if strings.TrimSpace(s.Currency) == "" {
		return "$"
	}
	return s.Currency
}

func ticketFilename(b models.Booking, ext string) string {
	return fmt.Sprintf("tripvan-ticket-%s.%s", utils.SafeFilenamePart(b.ID.String()), ext)
}
