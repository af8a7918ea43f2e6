package delivery

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"agentic_roi/pkg/core/config"
)

func testConfig() config.SMTPConfig {
	return config.SMTPConfig{
		Host:     "smtp.zoho.com",
		Port:     465,
		Email:    "reports@example.com",
		Password: "secret",
		CC:       "sales@example.com",
	}
}

func TestSendSkipsWhenUnconfigured(t *testing.T) {
	m := NewMailer(config.SMTPConfig{Host: "smtp.zoho.com", Port: 465})
	if m.Send("someone@example.com", "Acme Co", []byte("%PDF")) {
		t.Error("expected send to be skipped without credentials")
	}
}

func TestSendSkipsEmptyRecipient(t *testing.T) {
	m := NewMailer(testConfig())
	if m.Send("  ", "Acme Co", []byte("%PDF")) {
		t.Error("expected send to be skipped without a recipient")
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	m := NewMailer(testConfig())
	pdf := []byte("%PDF-1.4 fake report body")

	msg, err := m.buildMessage("client@example.com", "Acme Co", pdf)
	if err != nil {
		t.Fatalf("expected message to build, got %v", err)
	}
	s := string(msg)

	for _, want := range []string{
		"From: reports@example.com\r\n",
		"To: client@example.com\r\n",
		"Cc: sales@example.com\r\n",
		"Subject: Hammer ROI Business Case: Acme Co\r\n",
		"MIME-Version: 1.0\r\n",
		"multipart/mixed",
		"Generated by Hammer Intelligent Consultant.",
		"attachment; filename=\"Hammer_ROI_Report.pdf\"",
		"Content-Transfer-Encoding: base64",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("expected message to contain %q", want)
		}
	}

	// The attachment payload survives the base64 round trip.
	if !strings.Contains(s, base64.StdEncoding.EncodeToString(pdf)) {
		t.Error("expected base64-encoded attachment in message")
	}
}

func TestBuildMessageOmitsEmptyCc(t *testing.T) {
	cfg := testConfig()
	cfg.CC = ""
	m := NewMailer(cfg)

	msg, err := m.buildMessage("client@example.com", "Acme Co", []byte("%PDF"))
	if err != nil {
		t.Fatalf("expected message to build, got %v", err)
	}
	if strings.Contains(string(msg), "Cc:") {
		t.Error("expected no Cc header without a configured copy address")
	}
}

func TestRecipients(t *testing.T) {
	cfg := testConfig()
	cfg.CC = " a@example.com , ,b@example.com "
	m := NewMailer(cfg)

	got := m.recipients("to@example.com")
	want := []string{"to@example.com", "a@example.com", "b@example.com"}
	if len(got) != len(want) {
		t.Fatalf("expected %d recipients, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recipient %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestWriteBase64LineLength(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBase64(&buf, bytes.Repeat([]byte{0xAB}, 500)); err != nil {
		t.Fatalf("expected encode to succeed, got %v", err)
	}

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\r\n") {
		if len(line) > 76 {
			t.Errorf("expected wrapped lines of at most 76 chars, got %d", len(line))
		}
		if len(line) == 0 {
			t.Error("expected no blank lines inside encoded payload")
		}
	}
}
