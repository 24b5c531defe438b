package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/insiderwatch/internal/notify"
)

func sampleEvent() notify.Event {
	pct := 0.3

	return notify.Event{
		Symbol:       "AAPL",
		Code:         "P",
		DollarValue:  150000,
		PctADV:       &pct,
		IsOfficer:    true,
		OfficerTitle: "Chief Executive Officer",
		DocumentsURL: "https://example.com/filing",
		Score:        6,
	}
}

func TestDiscord_Notify(t *testing.T) {
	var received map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := notify.NewDiscord(srv.URL, "test@example.com")

	require.NoError(t, d.Notify(context.Background(), sampleEvent()))

	content := received["content"]
	assert.Contains(t, content, "AAPL")
	assert.Contains(t, content, "Code: P")
	assert.Contains(t, content, "$150000")
	assert.Contains(t, content, "%ADV: 0.3")
	assert.Contains(t, content, "Score: **6**")
	assert.Contains(t, content, "https://example.com/filing")
}

func TestDiscord_Notify_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	d := notify.NewDiscord(srv.URL, "test@example.com")

	err := d.Notify(context.Background(), sampleEvent())
	assert.Error(t, err)
}

type failingSink struct{ err error }

func (f *failingSink) Notify(context.Context, notify.Event) error { return f.err }

type countingSink struct{ calls int }

func (c *countingSink) Notify(context.Context, notify.Event) error {
	c.calls++
	return nil
}

func TestMulti_Notify_AttemptsAllSinks(t *testing.T) {
	boom := errors.New("boom")
	counter := &countingSink{}

	m := notify.Multi{&failingSink{err: boom}, counter}

	err := m.Notify(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, counter.calls)
}

func TestMulti_Notify_Empty(t *testing.T) {
	assert.NoError(t, notify.Multi{}.Notify(context.Background(), sampleEvent()))
}
