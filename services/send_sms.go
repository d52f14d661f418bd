package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
)

// smsMaxBody keeps an alert inside a handful of segments
const smsMaxBody = 480

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSSender texts through the Twilio REST API
type SMSSender struct {
	api  messageCreator
	from string
}

func NewSMSSender(c map[string]string) (*SMSSender, error) {
	sid := config.GetString(c, "TWILIO_ACCOUNT_SID", "")
	if sid == "" {
		return nil, errs.NewEnvironmentVariableError("TWILIO_ACCOUNT_SID")
	}
	token := config.GetString(c, "TWILIO_AUTH_TOKEN", "")
	if token == "" {
		return nil, errs.NewEnvironmentVariableError("TWILIO_AUTH_TOKEN")
	}
	from := config.GetString(c, "TWILIO_FROM_NUMBER", "")
	if from == "" {
		return nil, errs.NewEnvironmentVariableError("TWILIO_FROM_NUMBER")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})
	return &SMSSender{api: client.Api, from: from}, nil
}

func (s *SMSSender) Send(to, body string) error {
	if to == "" {
		return fmt.Errorf("sms recipient is required")
	}
	if r := []rune(body); len(r) > smsMaxBody {
		body = string(r[:smsMaxBody-1]) + "…"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return errs.NewServiceUnreachableError("twilio", err)
	}
	if resp != nil && resp.Sid != nil {
		log.Info().Str("messageSid", *resp.Sid).Msg("Successfully sent SMS via Twilio")
	}
	return nil
}
