// Package mail delivers filled workbooks as email attachments.
package mail

import "context"

//go:generate mockgen -source=sender.go -destination=mocks/mock_sender.go -package=mocks

// Attachment is a file attached to a Message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a plain-text email with at most one attachment.
type Message struct {
	From       string
	To         string
	Subject    string
	Body       string
	Attachment *Attachment
}

// Sender delivers a fully prepared Message.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
