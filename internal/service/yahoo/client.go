package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"StackSim/internal/domain/models"
	xhttp "StackSim/pkg/http"
)

// Client fetches daily closes from the Yahoo Finance chart API.
type Client struct {
	baseURL   string
	userAgent string
	http      *xhttp.Client
}

// New creates a Yahoo Finance price source.
func New(baseURL, userAgent string, timeout time.Duration) *Client {
	if userAgent == "" {
		userAgent = "Mozilla/5.0"
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// chartResponse is the response structure from the Yahoo chart API.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
				Adjclose []struct {
					Adjclose []interface{} `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDailyCloses fetches the [from, to] daily close history for symbol and
// normalizes it to at most one strictly positive close per calendar day.
func (c *Client) FetchDailyCloses(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error) {
	// period2 is exclusive upstream; push it one day past the window end.
	opts := &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol)),
		Headers: map[string]string{
			"User-Agent": c.userAgent,
		},
		QueryParams: map[string][]string{
			"interval": {"1d"},
			"period1":  {strconv.FormatInt(from.Unix(), 10)},
			"period2":  {strconv.FormatInt(to.AddDate(0, 0, 1).Unix(), 10)},
		},
	}

	var chart chartResponse
	if err := c.http.SendAndParse(ctx, opts, &chart); err != nil {
		return models.PriceSeries{}, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	if chart.Chart.Error != nil {
		return models.PriceSeries{}, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return models.PriceSeries{}, fmt.Errorf("yahoo: no data for %s", symbol)
	}

	result := chart.Chart.Result[0]

	// The API serves closes either under quote.close or, on some payload
	// shapes, only under adjclose. Prefer quote and fill gaps from adjclose.
	var closes, adjcloses []interface{}
	if len(result.Indicators.Quote) > 0 {
		closes = result.Indicators.Quote[0].Close
	}
	if len(result.Indicators.Adjclose) > 0 {
		adjcloses = result.Indicators.Adjclose[0].Adjclose
	}

	points := make([]models.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		close := closeAt(closes, i)
		if close <= 0 {
			close = closeAt(adjcloses, i)
		}
		if close <= 0 {
			continue // null bar
		}
		points = append(points, models.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: close,
		})
	}

	return models.NewPriceSeries(points), nil
}

func closeAt(values []interface{}, i int) float64 {
	if i >= len(values) || values[i] == nil {
		return 0
	}
	switch n := values[i].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
