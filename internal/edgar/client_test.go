package edgar_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/insiderwatch/internal/edgar"
)

const testUserAgent = "test@example.com"

func atomFeed(entries string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Latest Filings</title>` + entries + `
</feed>`
}

func atomEntry(title, link string) string {
	return fmt.Sprintf(`
	<entry>
		<title>%s</title>
		<link rel="alternate" type="text/html" href="%s"/>
		<id>%s</id>
	</entry>`, title, link, link)
}

func TestClient_Latest(t *testing.T) {
	entries := atomEntry("4 - COOK TIMOTHY D", "https://www.sec.gov/Archives/edgar/data/320193/0000320193-24-000123-index.htm") +
		atomEntry("no accession here", "https://www.sec.gov/cgi-bin/browse-edgar?action=getcompany") +
		atomEntry("4 - DOE JANE", "https://www.sec.gov/Archives/edgar/data/999999/0000999999-24-000001-index.htm")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, atomFeed(entries))
	}))
	defer srv.Close()

	client := edgar.NewClient(srv.URL, testUserAgent)

	refs, err := client.Latest(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, refs, 2)

	assert.Equal(t, "0000320193-24-000123", refs[0].AccessionNo)
	assert.Equal(t, "https://www.sec.gov/Archives/edgar/data/320193/0000320193-24-000123-index.htm", refs[0].DocumentsURL)
	assert.Equal(t, "https://www.sec.gov/Archives/edgar/data/320193/0000320193-24-000123", refs[0].DirectoryURL)
	assert.Equal(t, "4 - COOK TIMOTHY D", refs[0].Title)

	assert.Equal(t, "0000999999-24-000001", refs[1].AccessionNo)
}

func TestClient_Latest_Limit(t *testing.T) {
	var entries string
	for i := 0; i < 5; i++ {
		link := fmt.Sprintf("https://www.sec.gov/Archives/edgar/data/1/0000000001-24-%06d-index.htm", i)
		entries += atomEntry("4", link)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, atomFeed(entries))
	}))
	defer srv.Close()

	client := edgar.NewClient(srv.URL, testUserAgent)

	refs, err := client.Latest(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, refs, 3)
	assert.Equal(t, "0000000001-24-000000", refs[0].AccessionNo)
}

func TestClient_Latest_FeedUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "ServerError",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "NotAFeed",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, "<html><body>maintenance</body></html>")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := edgar.NewClient(srv.URL, testUserAgent)

			_, err := client.Latest(context.Background(), 10)
			require.Error(t, err)
			assert.ErrorIs(t, err, edgar.ErrFeedUnavailable)
		})
	}
}

func listingServer(t *testing.T, names ...string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/filing/index.json", r.URL.Path)

		fmt.Fprint(w, `{"directory":{"item":[`)
		for i, name := range names {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"name":%q}`, name)
		}
		fmt.Fprint(w, `]}}`)
	}))
}

func TestClient_ResolveDocument(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{
			name:  "SkipsStylesheetPrefersFirstTokenMatch",
			files: []string{"primary_doc.xsl.xml", "wk-form4_1717.xml", "ownership.xml"},
			want:  "wk-form4_1717.xml",
		},
		{
			name:  "Form4TokenBeatsPlainXML",
			files: []string{"other.xml", "form4.xml"},
			want:  "form4.xml",
		},
		{
			name:  "FallsBackToFirstEligible",
			files: []string{"filingsummary.xml", "doc1.xml", "doc2.xml"},
			want:  "doc1.xml",
		},
		{
			name:  "OnlySummaryAndSchema",
			files: []string{"filingsummary.xml", "schema.xsd.xml"},
			want:  "",
		},
		{
			name:  "NoXMLAtAll",
			files: []string{"form4.pdf", "report.htm"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := listingServer(t, tt.files...)
			defer srv.Close()

			client := edgar.NewClient(srv.URL, testUserAgent)

			got, err := client.ResolveDocument(context.Background(), srv.URL+"/filing")
			require.NoError(t, err)

			if tt.want == "" {
				assert.Empty(t, got)
				return
			}

			assert.Equal(t, srv.URL+"/filing/"+tt.want, got)
		})
	}
}

func TestClient_ResolveDocument_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := edgar.NewClient(srv.URL, testUserAgent)

	got, err := client.ResolveDocument(context.Background(), srv.URL+"/filing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_FetchDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/filing/ownership.xml":
			fmt.Fprint(w, "<ownershipDocument/>")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := edgar.NewClient(srv.URL, testUserAgent)

	raw, err := client.FetchDocument(context.Background(), srv.URL+"/filing/ownership.xml")
	require.NoError(t, err)
	assert.Equal(t, "<ownershipDocument/>", string(raw))

	_, err = client.FetchDocument(context.Background(), srv.URL+"/missing.xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, edgar.ErrFetchFailed)
}
