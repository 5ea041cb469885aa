package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"artisanhub/config"

	"go.uber.org/zap"
)

const companyName = "ArtisanHub"

// Common header template for all emails
const emailHeader = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="text-align: center; margin-bottom: 30px; background-color: #f9f9f9; padding: 20px;">
			<h2 style="color: #4CAF50; margin: 0;">ArtisanHub</h2>
		</div>
`

// Common footer template for all emails
const emailFooter = `
		<div style="text-align: center; margin-top: 20px; font-size: 12px; color: #666; border-top: 1px solid #eee; padding-top: 20px;">
			<p>This is an automated message, please do not reply to this email.</p>
		</div>
	</div>
</body>
</html>
`

func sendEmail(to []string, subject, body string) error {
	cfg := config.AppConfig
	if cfg.EmailFrom == "" || cfg.EmailPass == "" || cfg.SMTPHost == "" || cfg.SMTPPort == "" {
		return fmt.Errorf("email configuration not set")
	}

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", companyName, cfg.EmailFrom),
		"To":           strings.Join(to, ","),
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	auth := smtp.PlainAuth("", cfg.EmailFrom, cfg.EmailPass, cfg.SMTPHost)

	if err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, cfg.EmailFrom, to, []byte(message)); err != nil {
		GetLogger().Warn("Failed to send email", zap.Strings("to", to), zap.Error(err))
		return err
	}
	return nil
}

func wrapBody(title, inner string) string {
	return fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">%s</h1>
					%s
					<p>Best regards,<br>The ArtisanHub Team</p>
				</div>`+emailFooter, title, inner)
}

// SendRegistrationReceivedEmail confirms an artisan registration is under review.
func SendRegistrationReceivedEmail(artisanEmail, artisanName string) error {
	subject := "Registration Received - ArtisanHub"
	inner := fmt.Sprintf(`<p>Hello %s,</p>
					<p>Your account is under review. We will let you know as soon as it is approved.</p>`,
		artisanName)
	return sendEmail([]string{artisanEmail}, subject, wrapBody("Registration Received", inner))
}

// SendAccountApprovedEmail tells an artisan their account was approved.
func SendAccountApprovedEmail(artisanEmail, artisanName string) error {
	subject := "Account Approved - ArtisanHub"
	inner := fmt.Sprintf(`<p>Congratulations %s, your account is now approved. You can start receiving bookings.</p>`,
		artisanName)
	return sendEmail([]string{artisanEmail}, subject, wrapBody("Account Approved", inner))
}

// SendAccountRejectedEmail tells an artisan their account was rejected.
func SendAccountRejectedEmail(artisanEmail, artisanName string) error {
	subject := "Account Rejected - ArtisanHub"
	inner := fmt.Sprintf(`<p>Sorry %s, your account was rejected. Contact support for details.</p>`,
		artisanName)
	return sendEmail([]string{artisanEmail}, subject, wrapBody("Account Rejected", inner))
}

// SendNotificationEmail delivers a plain notification message.
func SendNotificationEmail(to, message string) error {
	inner := fmt.Sprintf(`<p>%s</p>`, message)
	return sendEmail([]string{to}, "Notification - ArtisanHub", wrapBody("Notification", inner))
}
