package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/astroya-scheduling/pkg/logger"
)

func testMessage() *Message {
	invite := &Invite{
		UID:       "abc@astroya.com.br",
		Stamp:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Start:     time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
		End:       time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC),
		Summary:   "Consultoria Astroya: ACME (Maria)",
		Organizer: Address{Name: "Astroya", Email: "agenda@astroya.com.br"},
		Attendee:  Address{Name: "Maria", Email: "maria@example.com"},
	}
	return &Message{
		From:        Address{Name: "Astroya", Email: "agenda@astroya.com.br"},
		To:          Address{Name: "Maria", Email: "maria@example.com"},
		Subject:     "Confirmação",
		HTML:        "<p>Olá</p>",
		Attachments: []Attachment{invite.Attachment("convite.ics")},
	}
}

func TestSendGridSender_Send(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender := NewSendGridSender("test-key", srv.URL, logger.NewNop())
	require.NoError(t, sender.Send(context.Background(), testMessage()))

	assert.Equal(t, "Confirmação", body["subject"])
	attachments, ok := body["attachments"].([]any)
	require.True(t, ok)
	require.Len(t, attachments, 1)

	att := attachments[0].(map[string]any)
	assert.Equal(t, "convite.ics", att["filename"])
	content, err := base64.StdEncoding.DecodeString(att["content"].(string))
	require.NoError(t, err)
	assert.Contains(t, string(content), "DTSTART:20250610T120000Z")
}

func TestSendGridSender_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer srv.Close()

	sender := NewSendGridSender("bad", srv.URL, logger.NewNop())
	err := sender.Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrDelivery)

	err = sender.Send(context.Background(), &Message{From: Address{Email: "a@b.c"}})
	assert.ErrorIs(t, err, ErrInvalidMessage)
}

func TestLogSender(t *testing.T) {
	sender := NewLogSender(logger.NewNop())
	require.NoError(t, sender.Send(context.Background(), testMessage()))

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "maria@example.com", sent[0].To.Email)
}

func TestInvite_Bytes(t *testing.T) {
	invite := &Invite{
		UID:         "uid-1@astroya.com.br",
		Stamp:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Start:       time.Date(2025, 6, 10, 9, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
		End:         time.Date(2025, 6, 10, 10, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
		Summary:     "Consultoria; ACME, Ltda",
		Description: "Linha 1\nLinha 2 " + strings.Repeat("é", 80),
		Location:    "Online / Videoconferência",
		Organizer:   Address{Name: "Astroya", Email: "agenda@astroya.com.br"},
		Attendee:    Address{Name: "Maria", Email: "maria@example.com"},
	}

	ics := string(invite.Bytes())

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
	assert.Contains(t, ics, "DTSTART:20250610T120000Z\r\n")
	assert.Contains(t, ics, "DTEND:20250610T130000Z\r\n")
	assert.Contains(t, ics, `SUMMARY:Consultoria\; ACME\, Ltda`)
	assert.Contains(t, ics, `DESCRIPTION:Linha 1\nLinha 2`)
	assert.Contains(t, ics, `ATTENDEE;CN="Maria";ROLE=REQ-PARTICIPANT:MAILTO:maria@example.com`)

	for _, line := range strings.Split(strings.TrimSuffix(ics, "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), icsLineLimit, line)
	}
}

func TestWriteLine_FoldsAt75Octets(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "ascii", line: "DESCRIPTION:" + strings.Repeat("a", 300)},
		{name: "multibyte", line: "DESCRIPTION:" + strings.Repeat("é", 150)},
		{name: "exact limit", line: strings.Repeat("b", icsLineLimit)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			writeLine(&b, tt.line)

			physical := strings.Split(strings.TrimSuffix(b.String(), "\r\n"), "\r\n")
			for i, line := range physical {
				assert.LessOrEqual(t, len(line), icsLineLimit, "line %d", i)
				assert.True(t, utf8.ValidString(line), "line %d", i)
				if i > 0 {
					assert.True(t, strings.HasPrefix(line, " "), "line %d", i)
				}
			}

			// разворачивание возвращает исходную строку
			unfolded := strings.ReplaceAll(strings.TrimSuffix(b.String(), "\r\n"), "\r\n ", "")
			assert.Equal(t, tt.line, unfolded)
		})
	}
}

func TestInvite_QuotesCommonName(t *testing.T) {
	invite := &Invite{
		UID:       "uid-2@astroya.com.br",
		Organizer: Address{Name: `Jo "Q" é`, Email: "o@x"},
		Attendee:  Address{Name: "Ana\nBeta", Email: "a@x"},
	}

	ics := string(invite.Bytes())

	assert.Contains(t, ics, "ORGANIZER;CN=\"Jo Q é\":MAILTO:o@x\r\n")
	assert.Contains(t, ics, "ATTENDEE;CN=\"AnaBeta\";ROLE=REQ-PARTICIPANT:MAILTO:a@x\r\n")
	assert.NotContains(t, ics, `\"`)
}

func TestFormatDatePtBR(t *testing.T) {
	assert.Equal(t, "10 de junho de 2025", FormatDatePtBR(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 de março de 2024", FormatDatePtBR(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}
