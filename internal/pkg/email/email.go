package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"sync"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/settings"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails. Delivery settings
// are admin-managed: UpdateSettings swaps them at runtime without a restart.
type EmailService interface {
	SendLateNotice(to, employeeName, date, firstCheckIn, lateThreshold string) error
	SendPasswordReset(to, resetLink, expiresAt string) error
	UpdateSettings(cfg settings.EmailSettings)
}

type emailServiceImpl struct {
	mu        sync.RWMutex
	cfg       settings.EmailSettings
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg settings.EmailSettings) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

// UpdateSettings replaces the delivery settings, used when an administrator
// edits the email configuration.
func (s *emailServiceImpl) UpdateSettings(cfg settings.EmailSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

func (s *emailServiceImpl) settings() settings.EmailSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

type lateNoticeEmailData struct {
	EmployeeName  string
	Date          string
	FirstCheckIn  string
	LateThreshold string
}

// SendLateNotice notifies an employee that their day was classified late
func (s *emailServiceImpl) SendLateNotice(to, employeeName, date, firstCheckIn, lateThreshold string) error {
	data := lateNoticeEmailData{
		EmployeeName:  employeeName,
		Date:          date,
		FirstCheckIn:  firstCheckIn,
		LateThreshold: lateThreshold,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "late_notice.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Late arrival recorded on %s", date), body.String())
}

type passwordResetEmailData struct {
	ResetLink string
	ExpiresAt string
}

// SendPasswordReset sends a password reset email to the user
func (s *emailServiceImpl) SendPasswordReset(to, resetLink, expiresAt string) error {
	data := passwordResetEmailData{
		ResetLink: resetLink,
		ExpiresAt: expiresAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "password_reset.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Reset your AttendEase password", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	cfg := s.settings()

	// Skip sending if delivery is disabled or SMTP is not configured
	if !cfg.Enabled || cfg.Host == "" {
		slog.Warn("Email delivery disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	headers := fmt.Sprintf("From: AttendEase <%s>\r\n", cfg.From)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, cfg.From, []string{to}, message)
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

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
