package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Mailer sends one message; delivery is fire-and-forget from the caller's
// perspective.
type Mailer interface {
	Send(ctx context.Context, message Message) error
}

type Client struct {
	dialer *gomail.Dialer
}

func NewClient(host string, port int, username, password string, ssl bool) *Client {
	dialer := gomail.NewDialer(host, port, username, password)
	dialer.SSL = ssl

	return &Client{dialer: dialer}
}

func (c *Client) Send(ctx context.Context, message Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", message.From)
	m.SetHeader("To", message.To)
	m.SetHeader("Subject", message.Subject)
	m.SetBody("text/html", message.HTML)

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to '%v': %w", message.To, err)
	}

	return nil
}
