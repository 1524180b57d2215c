package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/zakat-calculator/internal/model"
)

const feedPayload = `{"status":"success","currency":"INR","unit":"toz","metals":{"gold":228000.5,"silver":2650.25}}`

func TestFeedAdapter_Fetch(t *testing.T) {
	requests := make(chan *http.Request, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedPayload))
	}))
	defer srv.Close()

	adapter := NewFeedAdapter(NewClient(FeedPolicy, time.Second), srv.URL+"/v1/latest", "secret", 0)
	ctx := context.Background()

	t.Run("silver per gram with markup", func(t *testing.T) {
		rate := adapter.Fetch(ctx, model.SilverQuery("Chennai"))
		require.True(t, rate.Present)
		assert.InDelta(t, 2650.25/GramsPerTroyOunce*DefaultMarkup, rate.Value, 1e-9)
		req := <-requests
		assert.Equal(t, "secret", req.URL.Query().Get("api_key"))
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
	})

	t.Run("gold scaled by purity", func(t *testing.T) {
		perGram24 := 228000.5 / GramsPerTroyOunce * DefaultMarkup

		rate := adapter.Fetch(ctx, model.GoldQuery("Chennai", model.Carat24))
		require.True(t, rate.Present)
		assert.InDelta(t, perGram24, rate.Value, 1e-9)

		rate = adapter.Fetch(ctx, model.GoldQuery("Chennai", model.Carat22))
		require.True(t, rate.Present)
		assert.InDelta(t, perGram24*22/24, rate.Value, 1e-9)
	})
}

func TestFeedAdapter_CustomMarkup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feedPayload))
	}))
	defer srv.Close()

	adapter := NewFeedAdapter(NewClient(FeedPolicy, time.Second), srv.URL, "", 1)
	rate := adapter.Fetch(context.Background(), model.SilverQuery(""))
	assert.InDelta(t, 2650.25/GramsPerTroyOunce, rate.Value, 1e-9)
}

func TestFeedAdapter_Degrades(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		payload string
	}{
		{"server error", http.StatusInternalServerError, feedPayload},
		{"not json", http.StatusOK, `<html>rate limited</html>`},
		{"missing metals", http.StatusOK, `{"status":"failure"}`},
		{"negative spot", http.StatusOK, `{"unit":"toz","metals":{"gold":-1,"silver":-1}}`},
		{"per gram unit", http.StatusOK, `{"currency":"INR","unit":"g","metals":{"gold":7360,"silver":88.5}}`},
		{"missing unit", http.StatusOK, `{"currency":"INR","metals":{"gold":228000.5,"silver":2650.25}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.payload))
			}))
			defer srv.Close()

			adapter := NewFeedAdapter(NewClient(FeedPolicy, time.Second), srv.URL, "", 0)
			assert.Equal(t, model.Unknown, adapter.Fetch(context.Background(), model.SilverQuery("Delhi")))
			assert.Equal(t, model.Unknown, adapter.Fetch(context.Background(), model.GoldQuery("Delhi", model.Carat22)))
		})
	}

	t.Run("unconfigured url", func(t *testing.T) {
		adapter := NewFeedAdapter(NewClient(FeedPolicy, time.Second), "", "", 0)
		assert.Equal(t, model.Unknown, adapter.Fetch(context.Background(), model.SilverQuery("Delhi")))
	})
}

func TestFeedAdapter_UnitIsCaseInsensitive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"currency":"INR","unit":" TOZ ","metals":{"gold":228000.5,"silver":2650.25}}`))
	}))
	defer srv.Close()

	adapter := NewFeedAdapter(NewClient(FeedPolicy, time.Second), srv.URL, "", 0)
	rate := adapter.Fetch(context.Background(), model.SilverQuery("Delhi"))
	require.True(t, rate.Present)
	assert.InDelta(t, 2650.25/GramsPerTroyOunce*DefaultMarkup, rate.Value, 1e-9)
}
