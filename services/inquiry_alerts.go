package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type emailer interface {
	Send(ctx context.Context, subject, body, replyTo string, recipients []string) error
}

type texter interface {
	Send(to, body string) error
}

// InquiryAlerter tells the site owner about new contact-form submissions by
// e-mail and SMS. Either channel is skipped when it is not configured.
type InquiryAlerter struct {
	email   emailer
	sms     texter
	emailTo string
	smsTo   string
	// ownerEmail supplies the recipient when ALERT_EMAIL_TO is unset
	ownerEmail func() string
	timeout    time.Duration

	wg sync.WaitGroup
}

func NewInquiryAlerter(c map[string]string, ownerEmail func() string) *InquiryAlerter {
	a := &InquiryAlerter{
		emailTo:    config.GetString(c, "ALERT_EMAIL_TO", ""),
		smsTo:      config.GetString(c, "ALERT_SMS_TO", ""),
		ownerEmail: ownerEmail,
		timeout:    30 * time.Second,
	}

	if sender, err := NewEmailSender(c); err != nil {
		log.Info().Err(err).Msg("E-mail inquiry alerts disabled")
	} else {
		a.email = sender
	}

	if a.smsTo != "" {
		if sender, err := NewSMSSender(c); err != nil {
			log.Warn().Err(err).Msg("ALERT_SMS_TO is set but Twilio is not configured, SMS alerts disabled")
		} else {
			a.sms = sender
		}
	}
	return a
}

// Enabled reports whether at least one channel can deliver
func (a *InquiryAlerter) Enabled() bool {
	return a.email != nil || a.sms != nil
}

// Notify sends every configured alert and keeps going when one channel
// fails. The returned error lists each failed channel.
func (a *InquiryAlerter) Notify(ctx context.Context, msg models.ContactSubmission) error {
	var failures []string
	var successes []string

	if a.email != nil {
		recipient := a.emailTo
		if recipient == "" && a.ownerEmail != nil {
			recipient = a.ownerEmail()
		}
		if recipient == "" {
			log.Warn().Msg("Skipping e-mail alert: no recipient configured")
			failures = append(failures, "email: no recipient configured")
		} else if err := a.email.Send(ctx, "New inquiry: "+msg.Subject, inquiryHTML(msg), msg.Email, []string{recipient}); err != nil {
			logChannelFailure("email", err)
			failures = append(failures, fmt.Sprintf("email: %v", err))
		} else {
			successes = append(successes, "email")
		}
	}

	if a.sms != nil {
		if err := a.sms.Send(a.smsTo, inquirySMS(msg)); err != nil {
			logChannelFailure("sms", err)
			failures = append(failures, fmt.Sprintf("sms: %v", err))
		} else {
			successes = append(successes, "sms")
		}
	}

	if len(successes) > 0 {
		log.Info().Strs("channels", successes).Int64("messageId", msg.ID).Msg("Inquiry alert delivered")
	}
	if len(failures) > 0 {
		return errs.NewPartialFailureError("inquiry alert", failures)
	}
	return nil
}

// NotifyAsync runs Notify on its own goroutine with a fresh deadline, since
// the request that stored msg is finished by the time alerts go out.
func (a *InquiryAlerter) NotifyAsync(msg models.ContactSubmission) {
	if !a.Enabled() {
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		if err := a.Notify(ctx, msg); err != nil {
			if errs.IsPartialFailureError(err) {
				log.Warn().Err(err).Int64("messageId", msg.ID).Msg("Inquiry alert incomplete")
				return
			}
			log.Error().Err(err).Int64("messageId", msg.ID).Msg("Inquiry alert failed")
		}
	}()
}

// logChannelFailure keeps provider outages apart from rejected requests
func logChannelFailure(channel string, err error) {
	if errs.IsServiceUnreachableError(err) {
		log.Warn().Err(err).Str("channel", channel).Msg("Alert provider unreachable")
		return
	}
	log.Error().Err(err).Str("channel", channel).Msg("Failed to send alert")
}

// Wait blocks until every alert started by NotifyAsync has finished
func (a *InquiryAlerter) Wait() {
	a.wg.Wait()
}

func inquiryHTML(msg models.ContactSubmission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>From:</strong> %s &lt;%s&gt;</p>", html.EscapeString(msg.Name), html.EscapeString(msg.Email))
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", html.EscapeString(msg.Subject))
	fmt.Fprintf(&b, "<p><strong>Received:</strong> %s</p>", html.EscapeString(msg.Timestamp))
	b.WriteString("<p>")
	b.WriteString(strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))
	b.WriteString("</p>")
	return b.String()
}

func inquirySMS(msg models.ContactSubmission) string {
	return fmt.Sprintf("New inquiry from %s <%s>: %s\n%s", msg.Name, msg.Email, msg.Subject, msg.Message)
}
