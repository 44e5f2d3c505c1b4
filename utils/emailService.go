package utils

import (
	"crimedge/config"
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Crim Edge <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper for the Crim Edge house style
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #C62828; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #C62828; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CRIM EDGE REVIEW HUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Crim Edge Review Hub. All rights reserved.<br>
				Your partner in criminology board-exam review.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendOTPEmail sends the email verification code
func SendOTPEmail(otp, email string) error {
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<h1 style="text-align: center; color: #C62828; font-size: 40px; margin: 20px 0;">%s</h1>
		<p>The code expires in 10 minutes. Do not share this OTP with anyone.</p>
	`, otp)

	return SendEmail([]string{email}, "OTP Verification Code for Crim Edge", getEmailTemplate("Verify Your Email", body))
}

// SendEnrollmentEmail sends a confirmation when a user enrolls in a course
func SendEnrollmentEmail(email, userName, courseName string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in:</p>
		<h3 style="text-align: center; color: #C62828; margin: 20px 0;">%s</h3>
		<p>You can now access all the course lessons. Complete every lecture to earn your certificate of completion.</p>
	`, userName, courseName)

	go SendEmail([]string{email}, "Course Enrollment Confirmation - Crim Edge", getEmailTemplate("Enrollment Successful", body))
}

// SendCertificateEmail sends certificate approval notification
func SendCertificateEmail(email, userName, courseName, certificateNumber string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing the course:</p>
		<h3 style="text-align: center; color: #C62828; margin: 20px 0;">%s</h3>
		<div class="info-box" style="text-align: center;">
			<p style="margin-bottom: 10px;">Your Certificate Number:</p>
			<h2 style="margin: 0;">%s</h2>
		</div>
		<p>You can use this certificate number for verification purposes.</p>
	`, userName, courseName, certificateNumber)

	go SendEmail([]string{email}, "Course Completion Certificate - Crim Edge", getEmailTemplate("Certificate of Completion", body))
}

// SendMembershipExpiryReminder warns a member of an upcoming expiry
func SendMembershipExpiryReminder(email, name, planName string, expiresAt *time.Time) {
	expiryStr := "soon"
	if expiresAt != nil {
		expiryStr = expiresAt.Format("02 Jan 2006")
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your <strong>%s</strong> membership expires on <strong>%s</strong>.</p>
		<div class="info-box">
			Renew before expiry to keep unlimited course access. After expiry your account
			returns to the Free tier and its course limit.
		</div>
		<a href="#" class="btn">Renew Membership</a>
	`, name, planName, expiryStr)

	go SendEmail([]string{email}, "Membership Expiry Reminder", getEmailTemplate("Membership Expiring Soon", body))
}

// SendMembershipExpiredEmail notifies a member their plan lapsed
func SendMembershipExpiredEmail(email, name, planName string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your <strong>%s</strong> membership has expired and your account is back on the Free tier.</p>
		<p>Resubscribe anytime to regain unlimited course access.</p>
		<a href="#" class="btn">View Plans</a>
	`, name, planName)

	go SendEmail([]string{email}, "Membership Expired", getEmailTemplate("Membership Expired", body))
}

// SendLoginNotificationEmail alerts a user about a new login
func SendLoginNotificationEmail(email, name, ip, device, timeStr string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We noticed a new login to your account.</p>
		<div class="info-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Time:</strong> %s</li>
				<li style="margin-bottom: 8px;"><strong>IP Address:</strong> %s</li>
				<li><strong>Device:</strong> %s</li>
			</ul>
		</div>
		<p>If this was you, you can safely ignore this email.</p>
		<p style="color: #DC3545; font-weight: bold;">If you did not authorize this login, please contact support immediately.</p>
	`, name, timeStr, ip, device)

	go SendEmail([]string{email}, "New Login Alert", getEmailTemplate("New Login Detected", body))
}
