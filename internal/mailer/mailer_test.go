package mailer

import (
	"context"
	"testing"

	"gamejam-portal-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestNewSelectsDriver(t *testing.T) {
	m, err := New(&config.Config{MailDriver: "log"})
	require.NoError(t, err)
	assert.IsType(t, &LogMailer{}, m)

	m, err = New(&config.Config{MailDriver: "smtp", SMTPHost: "smtp.example.com", SMTPPort: 587, MailFrom: "jam@example.com"})
	require.NoError(t, err)
	assert.IsType(t, &SMTPMailer{}, m)

	_, err = New(&config.Config{MailDriver: "pigeon"})
	assert.Error(t, err)
}

func TestBuildMsg(t *testing.T) {
	msg, err := buildMsg("Game Jam", "jam@example.com", Message{
		To:      []string{"ayse@example.com"},
		Subject: "Başvurunuz onaylandı",
		Body:    "Merhaba",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Başvurunuz onaylandı"}, msg.GetGenHeader(mail.HeaderSubject))
	to := msg.GetToString()
	require.Len(t, to, 1)
	assert.Contains(t, to[0], "ayse@example.com")
}

func TestBuildMsgRejectsBadAddress(t *testing.T) {
	_, err := buildMsg("Game Jam", "jam@example.com", Message{To: []string{"not an address"}})
	assert.Error(t, err)
}

func TestLogMailerNeverFails(t *testing.T) {
	assert.NoError(t, NewLogMailer().Send(context.Background(), Message{To: []string{"a@b.co"}, Subject: "s", Body: "b"}))
}
