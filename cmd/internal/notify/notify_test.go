package notify

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
)

func TestDialogsDrainKeepsOrder(t *testing.T) {
	d := NewDialogs()
	ctx := context.Background()

	d.Notify(ctx, AudiencePatient, "first")
	d.Notify(ctx, AudienceDoctor, "second")

	assert.Equal(t, []Message{
		{Audience: AudiencePatient, Text: "first"},
		{Audience: AudienceDoctor, Text: "second"},
	}, d.Drain())
	assert.Empty(t, d.Drain())
}

func TestNotifyWritesNothingToLog(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	prev := log.Level()
	log.SetLevel(log.DEBUG)
	t.Cleanup(func() {
		log.SetOutput(os.Stdout)
		log.SetLevel(prev)
	})

	d := NewDialogs()
	d.Notify(context.Background(), AudiencePatient, "Dear Aziz, you are booked with Dr. Vali!")

	assert.Empty(t, buf.String())
	assert.Len(t, d.Drain(), 1)
}
