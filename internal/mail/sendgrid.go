package mail

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender delivers messages through the SendGrid v3 mail API.
type SendGridSender struct {
	client *sendgrid.Client
}

// NewSendGridSender returns a SendGridSender authenticated with apiKey.
func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{client: sendgrid.NewSendClient(apiKey)}
}

// Send sends msg via Sendgrid.
func (s *SendGridSender) Send(ctx context.Context, msg *Message) error {
	resp, err := s.client.SendWithContext(ctx, newV3Mail(msg))
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func newV3Mail(msg *Message) *sgmail.SGMailV3 {
	personalization := sgmail.NewPersonalization()
	personalization.AddTos(sgmail.NewEmail("", msg.To))

	message := sgmail.NewV3Mail()
	message.SetFrom(sgmail.NewEmail("", msg.From))
	message.Subject = msg.Subject
	message.AddPersonalizations(personalization)
	message.AddContent(sgmail.NewContent("text/plain", msg.Body))

	if a := msg.Attachment; a != nil {
		attachment := sgmail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(a.Data))
		attachment.SetType(a.ContentType)
		attachment.SetFilename(a.Filename)
		attachment.SetDisposition("attachment")
		message.AddAttachment(attachment)
	}
	return message
}
