package core

import (
	"bytes"
	"fmt"
	"net/mail"
)

type (
	Attachment struct {
		Content     *bytes.Buffer
		ContentType string
		Filename    string
	}

	EmailMessage struct {
		To          []mail.Address
		Cc          []mail.Address
		Bcc         []mail.Address
		Subject     string
		BodyStr     string // simple text/plain, non-templated content
		Attachments []Attachment

		// rendered contents
		TextContent string
		HTMLContent string
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages concurrently
		SendMessages(messages ...*EmailMessage)
	}
)

// Render prepares the message contents for sending.
func (m *EmailMessage) Render() error {
	if m.BodyStr != "" {
		m.TextContent = m.BodyStr
	}
	return nil
}

func (m *EmailMessage) HasRecipients() bool {
	return len(m.To) > 0 || len(m.Cc) > 0 || len(m.Bcc) > 0
}

func (m *EmailMessage) HasContent() bool {
	return m.TextContent != "" || m.HTMLContent != ""
}

func (m *EmailMessage) HasAttachments() bool {
	return len(m.Attachments) > 0
}

// PasswordResetEmailMessage builds the password reset email for a recipient.
func PasswordResetEmailMessage(to mail.Address, uid, token string) *EmailMessage {
	resetURL := fmt.Sprintf("%s/password-reset/%s/%s", Conf.FrontendBaseURL, uid, token)
	return &EmailMessage{
		To:      []mail.Address{to},
		Subject: "Password Reset",
		BodyStr: fmt.Sprintf(
			"You're receiving this email because you requested a password reset.\r\n\r\n"+
				"Please go to the following page and choose a new password:\r\n\r\n%s\r\n\r\n"+
				"If you did not make this request, you can safely ignore this email.", resetURL),
	}
}
