package eutils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/pkg/types"
)

func init() {
	// Skip the inter-chunk pause in tests; stubs below count invocations.
	sleep = func(time.Duration) {}
}

func fetchCfg(baseURL string) types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		BaseURL:  baseURL,
		Database: "pubmed",
	}
}

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", i+1)
	}
	return ids
}

func TestFetchRecordsChunking(t *testing.T) {
	tests := []struct {
		name         string
		numIDs       int
		wantRequests int
	}{
		{"single partial chunk", 10, 1},
		{"exactly one chunk", 50, 1},
		{"one full plus one", 51, 2},
		{"several chunks", 120, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var batchSizes []int
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ids := strings.Split(r.URL.Query().Get("id"), ",")
				batchSizes = append(batchSizes, len(ids))
				fmt.Fprintf(w, "<PubmedArticleSet>%s</PubmedArticleSet>", r.URL.Query().Get("id"))
			}))
			defer ts.Close()

			delays := 0
			sleep = func(d time.Duration) {
				assert.Equal(t, 340*time.Millisecond, d)
				delays++
			}
			t.Cleanup(func() { sleep = func(time.Duration) {} })

			batches, err := FetchRecords(context.Background(), ts.Client(), makeIDs(tt.numIDs), fetchCfg(ts.URL), zerolog.Nop())
			require.NoError(t, err)

			assert.Len(t, batches, tt.wantRequests)
			assert.Len(t, batchSizes, tt.wantRequests)
			for _, n := range batchSizes {
				assert.LessOrEqual(t, n, 50)
			}
			assert.Equal(t, tt.wantRequests-1, delays, "one delay between every two consecutive requests")
		})
	}
}

func TestFetchRecordsBatchOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Echo the first id of each chunk so order is observable.
		first := strings.SplitN(r.URL.Query().Get("id"), ",", 2)[0]
		fmt.Fprintf(w, "batch-%s", first)
	}))
	defer ts.Close()

	batches, err := FetchRecords(context.Background(), ts.Client(), makeIDs(101), fetchCfg(ts.URL), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"batch-1", "batch-51", "batch-101"}, batches)
}

func TestFetchRecordsParams(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "pubmed", q.Get("db"))
		assert.Equal(t, "xml", q.Get("retmode"))
		assert.Equal(t, "1,2,3", q.Get("id"))
		assert.Equal(t, "test/0.1", r.Header.Get("User-Agent"))
		fmt.Fprint(w, "<PubmedArticleSet></PubmedArticleSet>")
	}))
	defer ts.Close()

	_, err := FetchRecords(context.Background(), ts.Client(), []string{"1", "2", "3"}, fetchCfg(ts.URL), zerolog.Nop())
	require.NoError(t, err)
}

func TestFetchRecordsHTTPError(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, "<PubmedArticleSet></PubmedArticleSet>")
	}))
	defer ts.Close()

	batches, err := FetchRecords(context.Background(), ts.Client(), makeIDs(60), fetchCfg(ts.URL), zerolog.Nop())
	var rerr *RequestError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "efetch", rerr.Endpoint)
	assert.Equal(t, http.StatusServiceUnavailable, rerr.StatusCode)
	assert.Nil(t, batches, "no partial results on failure")
}

func TestFetchRecordsNoIDs(t *testing.T) {
	batches, err := FetchRecords(context.Background(), http.DefaultClient, nil, fetchCfg("http://unused.invalid"), zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, batches)
}
