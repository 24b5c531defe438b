package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolVariants(t *testing.T) {
	tests := []struct {
		symbol string
		want   []string
	}{
		{symbol: "AAPL", want: []string{"AAPL"}},
		{symbol: "BRK.B", want: []string{"BRK.B", "BRK-B", "BRK"}},
		{symbol: "RDS/A", want: []string{"RDS/A", "RDS-A", "RDS"}},
		{symbol: "BF B", want: []string{"BF B", "BF-B", "BF"}},
		{symbol: " MSFT ", want: []string{"MSFT"}},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, symbolVariants(tt.symbol))
		})
	}
}

func chartBody(closes, volumes []float64) string {
	ts := ""
	cl := ""
	vo := ""

	for i := range closes {
		if i > 0 {
			ts += ","
			cl += ","
			vo += ","
		}

		ts += fmt.Sprintf("%d", 1700000000+i*86400)
		cl += fmt.Sprintf("%g", closes[i])
		vo += fmt.Sprintf("%g", volumes[i])
	}

	return fmt.Sprintf(`{"chart":{"result":[{"timestamp":[%s],"indicators":{"quote":[{"close":[%s],"volume":[%s]}]}}]}}`, ts, cl, vo)
}

func testClient(srv *httptest.Server) *ADVClient {
	return &ADVClient{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		now:        func() time.Time { return time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC) },
	}
}

func TestADVClient_ADV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/AAPL", r.URL.Path)
		fmt.Fprint(w, chartBody([]float64{100, 110, 120}, []float64{1000, 1000, 1000}))
	}))
	defer srv.Close()

	client := testClient(srv)

	got, err := client.ADV(context.Background(), "AAPL")
	require.NoError(t, err)
	require.NotNil(t, got)

	// mean of 100k, 110k, 120k
	assert.InDelta(t, 110000, *got, 1e-9)
}

func TestADVClient_ADV_VariantFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/BRK-B" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		fmt.Fprint(w, chartBody([]float64{400}, []float64{500}))
	}))
	defer srv.Close()

	client := testClient(srv)

	got, err := client.ADV(context.Background(), "BRK.B")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 200000, *got, 1e-9)
}

func TestADVClient_ADV_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[]}}`)
	}))
	defer srv.Close()

	client := testClient(srv)

	got, err := client.ADV(context.Background(), "ZZZZ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestADVClient_ADV_TrimsToLookbackWindow(t *testing.T) {
	closes := make([]float64, 40)
	volumes := make([]float64, 40)

	for i := range closes {
		closes[i] = 1
		volumes[i] = float64(i) // older days have lower volume
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, chartBody(closes, volumes))
	}))
	defer srv.Close()

	client := testClient(srv)

	got, err := client.ADV(context.Background(), "AAPL")
	require.NoError(t, err)
	require.NotNil(t, got)

	// mean of the last 30 values: 10..39
	assert.InDelta(t, 24.5, *got, 1e-9)
}
