package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shoplens/shoplens/internal/dashboard/insights"
	"github.com/shoplens/shoplens/internal/dashboard/rates"
	"github.com/shoplens/shoplens/internal/httpx"
	"github.com/shoplens/shoplens/internal/logging"
	"github.com/shoplens/shoplens/internal/models"
)

func newDashboardApp(t *testing.T, loggedIn bool, handler http.Handler) (*App, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	log := logging.NewDefault()
	api := httpx.New(srv.URL, time.Second, 1, time.Millisecond, log)

	f := &fakeAuth{}
	if loggedIn {
		f.user = &models.User{ID: "u1", Email: "ann@example.org", Name: "Ann"}
	}

	return &App{
		auth:     f,
		rates:    rates.NewService(api),
		insights: insights.NewService(api),
		log:      log,
	}, &hits
}

func ratesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","date":"2025-06-30","rates":{"EUR":0.8,"GBP":0.5}}`))
	})
}

func insightsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/latest/USD":
			w.Write([]byte(`{"base":"USD","date":"2025-06-30","rates":{"EUR":0.8,"GBP":0.5}}`))
		case "/users":
			w.Write([]byte(`[{"id":1,"name":"Ann","email":"ann@corp.example","address":{"city":"Riga"},"company":{"name":"Corp"}}]`))
		case "/posts":
			w.Write([]byte(`[{"userId":1,"id":1,"title":"t","body":"b"}]`))
		case "/comments":
			w.Write([]byte(`[{"postId":1,"id":1,"email":"x@y.example","body":"ok"}]`))
		default:
			http.NotFound(w, r)
		}
	})
}

func TestRates_RequiresLogin(t *testing.T) {
	a, hits := newDashboardApp(t, false, ratesHandler())

	require.NoError(t, a.Rates(context.Background(), nil))
	require.Zero(t, hits.Load())
}

func TestRates_PrintsLatest(t *testing.T) {
	a, hits := newDashboardApp(t, true, ratesHandler())

	require.NoError(t, a.Rates(context.Background(), []string{"usd"}))
	require.Equal(t, int64(1), hits.Load())
}

func TestConvert_Usage(t *testing.T) {
	a, hits := newDashboardApp(t, true, ratesHandler())

	require.NoError(t, a.Convert(context.Background(), []string{"10", "EUR"}))
	require.NoError(t, a.Convert(context.Background(), []string{"abc", "EUR", "GBP"}))
	require.Zero(t, hits.Load())
}

func TestConvert_HappyPath(t *testing.T) {
	a, _ := newDashboardApp(t, true, ratesHandler())

	require.NoError(t, a.Convert(context.Background(), []string{"10", "eur", "gbp"}))
}

func TestSegments_UnknownKind(t *testing.T) {
	a, hits := newDashboardApp(t, true, insightsHandler())

	require.NoError(t, a.Segments(context.Background(), []string{"astrology"}))
	require.Zero(t, hits.Load())
}

func TestSegments_HappyPath(t *testing.T) {
	a, _ := newDashboardApp(t, true, insightsHandler())

	for _, kind := range []string{"domain", "city", "company", "engagement"} {
		require.NoError(t, a.Segments(context.Background(), []string{kind}), kind)
	}
}

func TestKPI_HappyPath(t *testing.T) {
	a, hits := newDashboardApp(t, true, insightsHandler())

	require.NoError(t, a.KPI(context.Background()))
	require.Equal(t, int64(3), hits.Load())
}

func TestTrend_HappyPath(t *testing.T) {
	a, hits := newDashboardApp(t, true, insightsHandler())

	require.NoError(t, a.Trend(context.Background(), nil))
	// Customers and posts only; no rates call for the default currency.
	require.Equal(t, int64(2), hits.Load())
}

func TestTrend_ConvertsCurrency(t *testing.T) {
	a, hits := newDashboardApp(t, true, insightsHandler())

	require.NoError(t, a.Trend(context.Background(), []string{"eur"}))
	require.Equal(t, int64(3), hits.Load())
}

func TestTrend_UnknownCurrency(t *testing.T) {
	a, _ := newDashboardApp(t, true, insightsHandler())

	// An unquoted currency reports to the user but is not an error.
	require.NoError(t, a.Trend(context.Background(), []string{"XXX"}))
}

func TestProducts_HappyPath(t *testing.T) {
	a, hits := newDashboardApp(t, true, insightsHandler())

	require.NoError(t, a.Products(context.Background(), nil))
	require.NoError(t, a.Products(context.Background(), []string{"categories"}))
	require.Equal(t, int64(2), hits.Load())
}

func TestProducts_UnknownView(t *testing.T) {
	a, hits := newDashboardApp(t, true, insightsHandler())

	require.NoError(t, a.Products(context.Background(), []string{"stock"}))
	require.Zero(t, hits.Load())
}
