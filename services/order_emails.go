package services

import (
	"fmt"
	"strings"

	"github.com/Aphia-Commerce/aphia-api/models"
)

// BuildOrderCreatedEmail renders the order-confirmation email sent after a
// new order is persisted.
func BuildOrderCreatedEmail(user models.User, order models.Order) Email {
	var itemsRows strings.Builder
	for _, item := range order.Products {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%s %.2f</td>
      </tr>
    `, item.ProductID, item.Quantity, order.Currency, item.Price))
	}

	html := fmt.Sprintf(`<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Order Created - %s</title>
</head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 24px; font-weight: bold; color: #262622;">Order Created</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 0; font-size: 14px; color: #262622;">Hi %s,</p>
        <p style="margin: 8px 0; font-size: 14px; color: #262622;">
          Your order <strong>%s</strong> has been received. We will let you know once it ships to
          %s, %s, %s.
        </p>
      </td>
    </tr>
    <tr>
      <td>
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <th style="padding: 8px 0; font-size: 13px; text-align: left; color: #79776d;">Product</th>
            <th style="padding: 8px 0; font-size: 13px; text-align: right; color: #79776d;">Qty</th>
            <th style="padding: 8px 0; font-size: 13px; text-align: right; color: #79776d;">Price</th>
          </tr>
          %s
          <tr>
            <td colspan="2" style="padding: 12px 0 0 0; font-size: 14px; font-weight: 600; color: #262622; border-top: 1px solid #e5e5e0;">Total</td>
            <td style="padding: 12px 0 0 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622; border-top: 1px solid #e5e5e0;">%s %.2f</td>
          </tr>
        </table>
      </td>
    </tr>
    <tr>
      <td style="padding-top: 24px;">
        <p style="margin: 0; font-size: 12px; color: #79776d;">Aphia · this is an automated message, please do not reply.</p>
      </td>
    </tr>
  </table>
</body>
</html>`,
		order.OrderRef,
		user.FirstName,
		order.OrderRef,
		order.StreetAddress, order.City, order.State,
		itemsRows.String(),
		order.Currency, order.Amount,
	)

	return Email{
		To:      user.Email,
		Subject: "Order Created",
		HTML:    html,
	}
}
