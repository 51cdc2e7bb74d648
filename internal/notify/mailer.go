package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/luciddatattoo/studio-scheduler/internal/config"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send envia e-mail HTML genérico via SMTP. Sem credenciais
// configuradas (dev local) o envio vira no-op logado.
func (m *Mailer) Send(to []string, subject string, htmlBody string) error {
	if m.cfg.EmailUser == "" || m.cfg.EmailPass == "" {
		log.Printf("mailer disabled, skipping %q to %v", subject, to)
		return nil
	}

	from := m.cfg.EmailUser

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Lucidda Tattoo <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, m.cfg.EmailPass, m.cfg.SMTPHost)
	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort

	return smtp.SendMail(addr, auth, from, to, []byte(msg))
}

func emailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; background: #F6F6F6; margin: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #000000; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 2px; }
			.content { padding: 40px 30px; }
			.content h2 { margin-top: 0; }
			.details { background: #f8f8f8; padding: 20px; border-radius: 8px; margin: 20px 0; }
			.row { margin: 10px 0; }
			.label { font-weight: bold; }
			.footer { padding: 20px; text-align: center; font-size: 12px; color: #666; border-top: 1px solid #ddd; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>LUCIDDA TATTOO</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Lucidda Tattoo Studio — Jujuy, Argentina<br>
				<a href="https://lucidda.tattoo">lucidda.tattoo</a>
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

func formatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// --- Gatilhos ---

// SendBookingConfirmation confirma a cita para o cliente.
func (m *Mailer) SendBookingConfirmation(ap *models.Appointment) error {
	date := ap.Date.Format("02/01/2006")

	body := fmt.Sprintf(`
		<p>Olá %s! Sua sessão foi confirmada. Detalhes:</p>
		<div class="details">
			<div class="row"><span class="label">Data:</span> %s</div>
			<div class="row"><span class="label">Horário:</span> %s – %s</div>
			<div class="row"><span class="label">Duração:</span> %s</div>
			<div class="row"><span class="label">Tatuagem:</span> %s</div>
		</div>
		<p>Chegue 10 minutos antes, traga seu documento e venha
		alimentado. Para cancelar ou remarcar, fale com a Lucía
		pelo WhatsApp o quanto antes.</p>
	`,
		ap.ClientName, date, ap.StartTime, ap.EndTime,
		formatDuration(ap.DurationMinutes), ap.TattooDescription,
	)

	subject := fmt.Sprintf("Confirmação de Cita — %s %s", date, ap.StartTime)
	return m.Send([]string{ap.ClientEmail}, subject, emailTemplate("Cita confirmada", body))
}

// SendArtistNotice avisa a artista sobre a nova reserva.
func (m *Mailer) SendArtistNotice(artistEmail string, ap *models.Appointment) error {
	date := ap.Date.Format("02/01/2006")

	body := fmt.Sprintf(`
		<p>Nova cita reservada pelo link de agendamento:</p>
		<div class="details">
			<div class="row"><span class="label">Cliente:</span> %s (%s)</div>
			<div class="row"><span class="label">DNI:</span> %s</div>
			<div class="row"><span class="label">Data:</span> %s, %s – %s</div>
			<div class="row"><span class="label">Tatuagem:</span> %s</div>
		</div>
	`,
		ap.ClientName, ap.ClientEmail, ap.ClientDni,
		date, ap.StartTime, ap.EndTime, ap.TattooDescription,
	)

	subject := fmt.Sprintf("Nova cita — %s %s", date, ap.StartTime)
	return m.Send([]string{artistEmail}, subject, emailTemplate("Nova cita reservada", body))
}
