package yahoo

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

func chartPayload(timestamps []int64, closes []string) string {
	ts := ""
	for i, t := range timestamps {
		if i > 0 {
			ts += ","
		}
		ts += fmt.Sprintf("%d", t)
	}
	cs := ""
	for i, c := range closes {
		if i > 0 {
			cs += ","
		}
		cs += c
	}
	return fmt.Sprintf(`{"chart":{"result":[{"timestamp":[%s],"indicators":{"quote":[{"close":[%s]}]}}],"error":null}}`, ts, cs)
}

func TestFetchDailyCloses(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/BTC-USD", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.NotEmpty(t, r.URL.Query().Get("period1"))
		assert.NotEmpty(t, r.URL.Query().Get("period2"))

		fmt.Fprint(w, chartPayload([]int64{day1.Unix(), day2.Unix()}, []string{"42000.5", "43100.25"}))
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)

	series, err := c.FetchDailyCloses(context.Background(), "BTC-USD", day1, day2)
	require.NoError(t, err)
	require.Equal(t, 2, series.Len())

	price, ok := series.Resolve(day1)
	assert.True(t, ok)
	assert.Equal(t, 42000.5, price)
}

func TestFetchDailyClosesSkipsNullBars(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timestamps := []int64{day1.Unix(), day1.AddDate(0, 0, 1).Unix(), day1.AddDate(0, 0, 2).Unix()}
		fmt.Fprint(w, chartPayload(timestamps, []string{"100", "null", "300"}))
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)

	series, err := c.FetchDailyCloses(context.Background(), "BTC-USD", day1, day1.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, series.Len())
}

func TestFetchDailyClosesAdjcloseFallback(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"chart":{"result":[{"timestamp":[%d],"indicators":{"quote":[{"close":[null]}],"adjclose":[{"adjclose":[123.45]}]}}],"error":null}}`, day1.Unix())
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)

	series, err := c.FetchDailyCloses(context.Background(), "BTC-USD", day1, day1)
	require.NoError(t, err)
	require.Equal(t, 1, series.Len())

	price, _ := series.Resolve(day1)
	assert.Equal(t, 123.45, price)
}

func TestFetchDailyClosesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)

	_, err := c.FetchDailyCloses(context.Background(), "NOPE", time.Now().AddDate(0, -1, 0), time.Now())
	assert.Error(t, err)
}

func TestFetchDailyClosesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)

	_, err := c.FetchDailyCloses(context.Background(), "BTC-USD", time.Now().AddDate(0, -1, 0), time.Now())
	assert.Error(t, err)
}

func TestFetchDailyClosesEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{"timestamp":[],"indicators":{"quote":[{"close":[]}]}}],"error":null}}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)

	_, err := c.FetchDailyCloses(context.Background(), "BTC-USD", time.Now().AddDate(0, -1, 0), time.Now())
	assert.Error(t, err)
}
