// Package notification contains the concrete implementation of outbound
// notifications delivered over SMTP.
package notification

import (
	"context"
	"log/slog"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

// smtpNotifier implements the Notifier interface using go-mail.
type smtpNotifier struct {
	client *mail.Client
	from   string
	logger *slog.Logger
}

// Params defines the dependencies for the SMTP notifier, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSMTPNotifier is the constructor for smtpNotifier.
func NewSMTPNotifier(params Params) (service.Notifier, error) {
	mailCfg := params.Config.Mail
	if mailCfg == nil {
		return nil, errors.New("mail config must be provided")
	}
	if mailCfg.Host == "" || mailCfg.From == "" {
		return nil, errors.New("mail host and from address must be provided")
	}

	opts := []mail.Option{
		mail.WithPort(mailCfg.Port),
	}
	if mailCfg.Username != "" && mailCfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(mailCfg.Username),
			mail.WithPassword(mailCfg.Password),
		)
	}

	client, err := mail.NewClient(mailCfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mail client")
	}

	return &smtpNotifier{
		client: client,
		from:   mailCfg.From,
		logger: params.Logger,
	}, nil
}

// SendVerificationEmail delivers the 6-digit verification code.
func (n *smtpNotifier) SendVerificationEmail(ctx context.Context, email, code string) error {
	body := renderTemplate(verificationEmailTemplate, map[string]string{"verificationCode": code})

	return n.send(ctx, email, "Verify your email", body)
}

// SendWelcomeEmail confirms that an account has been verified.
func (n *smtpNotifier) SendWelcomeEmail(ctx context.Context, email, name string) error {
	body := renderTemplate(welcomeEmailTemplate, map[string]string{"name": name})

	return n.send(ctx, email, "Welcome aboard", body)
}

// SendPasswordResetEmail delivers the reset link for a password reset request.
func (n *smtpNotifier) SendPasswordResetEmail(ctx context.Context, email, resetURL string) error {
	body := renderTemplate(passwordResetRequestTemplate, map[string]string{"resetURL": resetURL})

	return n.send(ctx, email, "Reset your password", body)
}

// SendResetSuccessEmail confirms a completed password reset.
func (n *smtpNotifier) SendResetSuccessEmail(ctx context.Context, email string) error {
	return n.send(ctx, email, "Password reset successful", passwordResetSuccessTemplate)
}

func (n *smtpNotifier) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.From(n.from); err != nil {
		return errors.Wrap(err, "failed to set from address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "failed to set to address")
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		n.logger.ErrorContext(ctx, "Failed to deliver email",
			slog.String("subject", subject),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to deliver email")
	}

	n.logger.DebugContext(ctx, "Email delivered", slog.String("subject", subject))

	return nil
}
