// Package delivery emails finished reports. Delivery is best-effort
// end to end: missing configuration skips the send, transport failures
// are logged, and neither ever fails the pipeline that produced the
// report.
package delivery

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"

	"agentic_roi/pkg/core/config"
)

const attachmentName = "Hammer_ROI_Report.pdf"

// Mailer sends report PDFs over SMTP with implicit TLS.
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer returns a mailer bound to the given SMTP settings.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send mails the report PDF to the recipient, copying the configured CC
// address when one is set. Returns whether the mail was handed off; a
// false return has already been logged and must not fail the caller.
func (m *Mailer) Send(to, clientName string, pdf []byte) bool {
	if !m.cfg.Configured() {
		fmt.Println("[DELIVERY] SMTP not configured. Skipping email delivery.")
		return false
	}
	if strings.TrimSpace(to) == "" {
		fmt.Println("[DELIVERY] No recipient address. Skipping email delivery.")
		return false
	}

	msg, err := m.buildMessage(to, clientName, pdf)
	if err != nil {
		fmt.Printf("[DELIVERY] Failed to build message: %v\n", err)
		return false
	}
	if err := m.transmit(to, msg); err != nil {
		fmt.Printf("[DELIVERY] Send to %s failed: %v\n", to, err)
		return false
	}
	fmt.Printf("[DELIVERY] Report emailed to %s\n", to)
	return true
}

// buildMessage assembles the MIME envelope: a plain-text body part and
// the PDF as a base64 attachment.
func (m *Mailer) buildMessage(to, clientName string, pdf []byte) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", m.cfg.Email)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	if m.cfg.CC != "" {
		fmt.Fprintf(&buf, "Cc: %s\r\n", m.cfg.CC)
	}
	fmt.Fprintf(&buf, "Subject: Hammer ROI Business Case: %s\r\n", clientName)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n", mw.Boundary())
	fmt.Fprintf(&buf, "\r\n")

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=utf-8")
	part, err := mw.CreatePart(textHeader)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(part,
		"Hello,\r\n\r\nPlease find the attached ROI Business Case for %s.\r\n\r\n"+
			"Generated by Hammer Intelligent Consultant.\r\n\r\n"+
			"Note: This is an AI-generated estimation based on public data.\r\n",
		clientName)

	fileHeader := textproto.MIMEHeader{}
	fileHeader.Set("Content-Type", fmt.Sprintf("application/pdf; name=%q", attachmentName))
	fileHeader.Set("Content-Transfer-Encoding", "base64")
	fileHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachmentName))
	part, err = mw.CreatePart(fileHeader)
	if err != nil {
		return nil, err
	}
	if err := writeBase64(part, pdf); err != nil {
		return nil, err
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// transmit speaks SMTP over an implicit-TLS connection (port 465 style;
// the usual Zoho/Gmail business setup).
func (m *Mailer) transmit(to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", m.cfg.Email, m.cfg.Password, m.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(m.cfg.Email); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, rcpt := range m.recipients(to) {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// recipients is the To address plus the optional comma-separated CC
// list from configuration.
func (m *Mailer) recipients(to string) []string {
	out := []string{to}
	for _, cc := range strings.Split(m.cfg.CC, ",") {
		if cc = strings.TrimSpace(cc); cc != "" {
			out = append(out, cc)
		}
	}
	return out
}

// writeBase64 encodes the payload wrapped at 76 columns.
func writeBase64(w io.Writer, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 0 {
		n := 76
		if len(encoded) < n {
			n = len(encoded)
		}
		if _, err := fmt.Fprintf(w, "%s\r\n", encoded[:n]); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}
