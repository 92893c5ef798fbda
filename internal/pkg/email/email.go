package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/config"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendMonthlyStatement(to string, data MonthlyStatementData, csv []byte) error
}

// MonthlyStatementData fills templates/monthly_statement.html.
type MonthlyStatementData struct {
	EmployeeName          string
	Competency            string
	From                  string
	To                    string
	ExpectedHours         string
	WorkedHours           string
	PeriodBalance         string
	CarriedBalance        string
	BankedTotal           string
	VacationAvailableDays int
}

// Sender delivers a composed message. gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	sender    Sender
	templates *template.Template
	backoff   time.Duration
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	var sender Sender
	if cfg.Host != "" {
		sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return NewEmailServiceWithSender(cfg, sender)
}

// NewEmailServiceWithSender uses sender instead of dialing SMTP. A nil sender
// disables delivery.
func NewEmailServiceWithSender(cfg config.SMTPConfig, sender Sender) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		sender:    sender,
		templates: tmpl,
		backoff:   time.Second,
	}, nil
}

// SendMonthlyStatement sends the statement with the daily CSV attached.
func (s *emailServiceImpl) SendMonthlyStatement(to string, data MonthlyStatementData, csv []byte) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "monthly_statement.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Time bank statement %s", data.Competency))
	m.SetBody("text/html", body.String())
	m.Attach(fmt.Sprintf("timebank-%s.csv", data.Competency), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(csv)
		return err
	}))

	return s.send(to, m)
}

func (s *emailServiceImpl) send(to string, m *gomail.Message) error {
	subject := ""
	if h := m.GetHeader("Subject"); len(h) > 0 {
		subject = h[0]
	}

	if s.sender == nil {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := s.sender.DialAndSend(m)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Exponential backoff: 1s, 2s, 4s
		if attempt < maxRetries {
			time.Sleep(s.backoff * time.Duration(1<<(attempt-1)))
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
