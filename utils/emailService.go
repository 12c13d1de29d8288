package utils

import (
	"crowdfund/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers one HTML email. SendGrid is used when an API key is
// configured, otherwise plain SMTP.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridApiKey != "" {
		return sendViaSendGrid(to, subject, htmlBody)
	}
	return sendViaSmtp(to, subject, htmlBody)
}

func sendViaSendGrid(to []string, subject string, htmlBody string) error {
	from := mail.NewEmail("Crowdfund", config.AppConfig.EmailSender)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)

	for _, recipient := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", recipient), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("Error sending email to %s: %v", recipient, err)
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("SendGrid rejected email to %s: %d %s", recipient, resp.StatusCode, resp.Body)
			return fmt.Errorf("sendgrid rejected email, code: %d", resp.StatusCode)
		}
	}
	return nil
}

func sendViaSmtp(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Crowdfund <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outbound mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1E3A8A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1E293B; line-height: 1.6; }
			.content h2 { color: #1E3A8A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #3B82F6; margin: 20px 0; }
			.amount { color: #3B82F6; font-weight: bold; font-size: 18px; }
			.mono { font-family: monospace; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CROWDFUND</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Crowdfund. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, username string) {
	subject := "Welcome to Crowdfund"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Crowdfund</strong>! Your account has been created successfully.</p>
		<p>Browse active campaigns and support the causes that matter to you.</p>
	`, username)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. OTP for registration
func SendOTPEmail(otp, email string) error {
	subject := "OTP for registration"
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<h1 style="text-align: center; color: #3B82F6; font-size: 40px; margin: 20px 0;">%s</h1>
		<p>The code is valid for 10 minutes. Do not share it with anyone.</p>
	`, otp)

	return SendEmail([]string{email}, subject, getEmailTemplate("OTP Verification", body))
}

// 3. Donation receipt
func SendReceiptEmail(email, donorName, campaignTitle string, amount float64, transactionID, paymentID string) {
	subject := "Donation Receipt - " + campaignTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for your generous contribution!</p>
		<div class="info-box">
			<p><strong>Campaign:</strong> %s</p>
			<p><strong>Amount:</strong> <span class="amount">₹%.2f</span></p>
			<p><strong>Receipt ID:</strong> <span class="mono">%s</span></p>
			<p><strong>Payment ID:</strong> <span class="mono">%s</span></p>
			<p><strong>Date:</strong> %s</p>
		</div>
		<p>Your contribution will help make this campaign a success! You can view all your donations anytime in your account dashboard.</p>
	`, donorName, campaignTitle, amount, transactionID, paymentID, time.Now().Format("January 2, 2006"))

	go SendEmail([]string{email}, subject, getEmailTemplate("Donation Successful!", body))
}

// 4. Admin announcement (bulk)
func SendAnnouncementEmail(emails []string, subject, message string) {
	body := fmt.Sprintf(`
		<p>%s</p>
	`, message)

	go func() {
		for _, email := range emails {
			if err := SendEmail([]string{email}, subject, getEmailTemplate(subject, body)); err != nil {
				log.Printf("Announcement email to %s failed: %v", email, err)
			}
		}
	}()
}
