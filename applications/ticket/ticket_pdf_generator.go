package ticket

import (
	"bytes"
	"fmt"

	"github.com/yaeboye/cityspark-events/applications/event"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateTicketPDF creates a single-page eTicket PDF with a QR code for
// entry verification. Only paid tickets get an eTicket.
func GenerateTicketPDF(ticketID string) (*Ticket, []byte, error) {
	tk, err := GetTicket(ticketID)
	if err != nil {
		return nil, nil, fmt.Errorf("ticket not found: %w", err)
	}
	if tk.PaymentStatus != StatusPaid {
		return nil, nil, fmt.Errorf("ticket %s is not paid (status: %s)", tk.TicketCode, tk.PaymentStatus)
	}

	// Event details are best-effort: the ticket still renders if the event
	// row has been deleted since purchase.
	var ev *event.Event
	if loaded, err := event.GetEvent(tk.EventID.String()); err == nil {
		ev = loaded
	} else {
		logger.Log.Warn(fmt.Sprintf("[ticket-pdf] Event %s missing for ticket %s: %v", tk.EventID, tk.TicketCode, err))
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	// --- Header ---
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "CITYSPARK OFFICIAL eTICKET")
	pdf.Ln(20)

	// --- Divider ---
	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	// --- Ticket Summary + QR ---
	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 55, "F")

	pdf.SetXY(20, yStart+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "TICKET SUMMARY")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Ticket Code: %s", tk.TicketCode))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Type: %s", tk.TicketType))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Quantity: %d", tk.Quantity))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total Paid: Rs. %.2f", float64(tk.TotalPrice)/100))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Purchased: %s", tk.PurchasedAt.Format("02 Jan 2006 15:04")))

	// QR encodes the verification URL an organizer scans at the gate.
	qrURL := fmt.Sprintf("https://cityspark.events/api/v1/admin/verify-ticket/%s", tk.TicketCode)
	qrBytes, err := qrcode.Encode(qrURL, qrcode.Medium, 256)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode ticket QR code: %w", err)
	}
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("qr", 145, yStart+5, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(yStart + 63)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Scan this QR code for entry verification.")
	pdf.Ln(10)

	// --- Event Details ---
	if ev != nil {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 10, "EVENT DETAILS")
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Event: %s", ev.Name))
		pdf.Ln(6)
		if ev.StartDate != nil {
			pdf.Cell(0, 8, fmt.Sprintf("Date: %s", ev.StartDate.Format("Monday, 02 January 2006")))
			pdf.Ln(6)
		}
		if ev.Venue != "" {
			pdf.Cell(0, 8, fmt.Sprintf("Venue: %s", ev.Venue))
			pdf.Ln(6)
		}
		pdf.Cell(0, 8, fmt.Sprintf("City: %s", ev.City))
		pdf.Ln(8)
	}

	// --- Footer pinned to the bottom ---
	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.MultiCell(0, 5, "This eTicket is valid only with the QR code above. Entry is subject to the organizer's terms. Keep this document safe; anyone with the code may claim entry.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, nil, fmt.Errorf("failed to render ticket PDF: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[ticket-pdf] Generated eTicket PDF for %s (%d bytes).", tk.TicketCode, buf.Len()))
	return tk, buf.Bytes(), nil
}
