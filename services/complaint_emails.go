package services

import (
	"fmt"

	"github.com/Aphia-Commerce/aphia-api/models"
)

func complaintShell(title, body string) string {
	return fmt.Sprintf(`<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>%s</title>
</head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 24px; font-weight: bold; color: #262622;">%s</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0; font-size: 14px; color: #262622;">%s</td>
    </tr>
    <tr>
      <td style="padding-top: 24px;">
        <p style="margin: 0; font-size: 12px; color: #79776d;">Aphia · this is an automated message, please do not reply.</p>
      </td>
    </tr>
  </table>
</body>
</html>`, title, title, body)
}

// BuildComplaintReceivedEmail confirms a new ticket to the complainant.
func BuildComplaintReceivedEmail(user models.User, ticketNo string) Email {
	body := fmt.Sprintf(`
        <p style="margin: 0;">Hi %s,</p>
        <p style="margin: 8px 0;">Your complaint has been received and assigned ticket
        <strong>%s</strong>. Our support team will get back to you shortly.</p>`,
		user.FirstName, ticketNo)

	return Email{
		To:      user.Email,
		Subject: "Complaint Received",
		HTML:    complaintShell("Complaint Received", body),
	}
}

// BuildComplaintResolvedEmail carries the resolution message back to the
// complainant.
func BuildComplaintResolvedEmail(user models.User, ticketNo, message string) Email {
	body := fmt.Sprintf(`
        <p style="margin: 0;">Hi %s,</p>
        <p style="margin: 8px 0;">Your complaint <strong>%s</strong> has been resolved:</p>
        <p style="margin: 8px 0; padding: 12px; background: #fafaf7;">%s</p>`,
		user.FirstName, ticketNo, message)

	return Email{
		To:      user.Email,
		Subject: "Complaint Resolved",
		HTML:    complaintShell("Complaint Resolved", body),
	}
}
