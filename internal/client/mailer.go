package client

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Mailer delivers out-of-band codes. Delivery is a collaborator concern: the
// voting core only hands off the code and never waits on the result.
type Mailer interface {
	SendVerificationCode(ctx context.Context, email, code string) error
	SendResetCode(ctx context.Context, email, code string) error
}

// logMailer writes the would-be mail to the log. It is the default delivery
// backend for deployments without an outbound mail relay.
type logMailer struct{}

func NewLogMailer() Mailer {
	return &logMailer{}
}

func (m *logMailer) SendVerificationCode(ctx context.Context, email, code string) error {
	logrus.Infof("Verification code for %s: %s", email, code)
	return nil
}

func (m *logMailer) SendResetCode(ctx context.Context, email, code string) error {
	logrus.Infof("Password reset code for %s: %s", email, code)
	return nil
}
