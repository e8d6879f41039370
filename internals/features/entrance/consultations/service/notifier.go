package service

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/resend/resend-go/v2"

	"academy_backend/internals/configs"
	"academy_backend/internals/features/entrance/consultations/model"
)

// Notifier tells staff about a new consultation request.
type Notifier interface {
	NotifyConsultation(ctx context.Context, m model.ConsultationModel) error
}

// NewNotifier returns a Resend-backed notifier, or a no-op when the API key or
// the recipient list is missing.
func NewNotifier(cfg configs.Config) Notifier {
	if cfg.ResendAPIKey == "" || len(cfg.ConsultationNotifyTo) == 0 {
		return NoopNotifier{}
	}
	return &ResendNotifier{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   cfg.MailFrom,
		to:     cfg.ConsultationNotifyTo,
	}
}

type NoopNotifier struct{}

func (NoopNotifier) NotifyConsultation(context.Context, model.ConsultationModel) error { return nil }

type ResendNotifier struct {
	client *resend.Client
	from   string
	to     []string
}

func (n *ResendNotifier) NotifyConsultation(ctx context.Context, m model.ConsultationModel) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      n.to,
		Subject: fmt.Sprintf("[상담 신청] %s (%s)", m.StudentName, m.Grade),
		Html:    ConsultationHTML(m),
	}
	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	log.Printf("[Consultation.Notify] ✅ id=%d message_id=%s", m.ID, sent.Id)
	return nil
}

// ConsultationHTML renders the mail body; every value is HTML-escaped.
func ConsultationHTML(m model.ConsultationModel) string {
	rows := [][2]string{
		{"학생 이름", m.StudentName},
		{"연락처", m.Phone},
		{"학부모 이름", m.ParentName},
		{"학부모 연락처", m.ParentPhone},
		{"학년", m.Grade},
		{"기숙사", m.Dormitory},
		{"희망 날짜", m.DesiredDate},
		{"희망 시간", m.DesiredTime},
		{"문의 내용", m.Message},
	}

	var b strings.Builder
	b.WriteString("<h2>새 상담 신청</h2><table>")
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "<tr><th align=\"left\">%s</th><td>%s</td></tr>",
			html.EscapeString(r[0]),
			strings.ReplaceAll(html.EscapeString(r[1]), "\n", "<br>"))
	}
	b.WriteString("</table>")
	return b.String()
}
