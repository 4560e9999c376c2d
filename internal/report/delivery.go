package report

import (
	"fmt"
	"log"

	"examhall/internal/config"
)

// DeliverDutySlips renders and mails one duty slip per recipient, skipping
// (and logging) anyone with no email on file — spec §7's "Empty Email" case.
// The PDF itself is not attached through EmailService (which only sends
// HTML bodies); the slip's rows are rendered inline as the notice, and the
// PDF bytes are returned for a caller that wants to store or attach them
// through a richer channel.
func DeliverDutySlips(email *config.EmailService, slips []*DutySlip) (map[string][]byte, []string) {
	rendered := make(map[string][]byte, len(slips))
	var skipped []string

	for _, slip := range slips {
		pdf, err := RenderDutySlipPDF(slip)
		if err != nil {
			log.Printf("failed to render duty slip for %s: %v", slip.Recipient.Name, err)
			continue
		}
		rendered[slip.Recipient.Name] = pdf

		if slip.Recipient.Email == "" {
			log.Printf("skipping duty slip delivery for %s: no email on file", slip.Recipient.Name)
			skipped = append(skipped, slip.Recipient.Name)
			continue
		}

		body := dutySlipBody(slip)
		if err := email.SendEmail(slip.Recipient.Email, "Your exam duty slip", body); err != nil {
			log.Printf("failed to send duty slip to %s: %v", slip.Recipient.Email, err)
		}
	}

	return rendered, skipped
}

func dutySlipBody(slip *DutySlip) string {
	body := fmt.Sprintf("<p>Dear %s,</p><p>Your assigned duties:</p><table border=\"1\">", slip.Recipient.Name)
	for _, row := range slip.Rows {
		body += fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td></tr>", row.Room, row.Date, row.Period)
	}
	body += "</table>"
	return body
}
