package notify

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_FanOut(t *testing.T) {
	b := NewBus(nil)
	var first, second []Notification
	b.Subscribe(func(n Notification) { first = append(first, n) })
	unsubscribe := b.Subscribe(func(n Notification) { second = append(second, n) })
	assert.Equal(t, 2, b.SubscribersCount())

	b.Success("Saved")
	unsubscribe()
	b.Error("Failed")

	require.Len(t, first, 2)
	require.Len(t, second, 1)
	assert.Equal(t, Success, first[0].Level)
	assert.Equal(t, "Failed", first[1].Message)
	assert.NotEqual(t, first[0].ID, first[1].ID)
	assert.Equal(t, 1, b.SubscribersCount())
}

func TestBus_PanickingHandlerIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	b := NewBus(log)
	var got []string
	b.Subscribe(func(Notification) { panic("boom") })
	b.Subscribe(func(n Notification) { got = append(got, n.Message) })

	require.NotPanics(t, func() { b.Info("hello") })
	assert.Equal(t, []string{"hello"}, got)
	assert.Contains(t, buf.String(), "panicked")
}

func TestRecorder_LoadingResolve(t *testing.T) {
	r := NewRecorder()
	id := r.Loading("Saving project...")
	r.Resolve(id, Success, "Project saved")

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, Loading, all[0].Level)
	assert.Equal(t, id, all[1].Replaces)
	assert.Equal(t, []string{"Project saved"}, r.Messages(Success))

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "Project saved", last.Message)
}
