package reports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mktrading/backoffice/client"
	"github.com/mktrading/backoffice/model"
	"github.com/mktrading/backoffice/session"
)

// reportStub serves canned report collections so the derived totals are
// deterministic.
type reportStub struct {
	mu              sync.Mutex
	lastMonth       []model.PartyPayment
	currentMonth    []model.PartyPayment
	outstanding     []model.Outstanding
	totalIncoming   float64
	failOutstanding bool
}

func (s *reportStub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch r.URL.Path {
		case "/api/reports/last-month-payments":
			json.NewEncoder(w).Encode(s.lastMonth)
		case "/api/reports/current-month-payments":
			json.NewEncoder(w).Encode(s.currentMonth)
		case "/api/reports/outstanding":
			if s.failOutstanding {
				w.WriteHeader(500)
				json.NewEncoder(w).Encode(map[string]string{"error": "backend down"})
				return
			}
			json.NewEncoder(w).Encode(s.outstanding)
		case "/api/reports/total-incoming":
			json.NewEncoder(w).Encode(model.TotalIncoming{Total_incoming: s.totalIncoming})
		default:
			w.WriteHeader(404)
		}
	})
}

func newAggregator(t *testing.T, s *reportStub) *Aggregator {
	t.Helper()
	ts := httptest.NewServer(s.handler())
	t.Cleanup(ts.Close)
	store := &session.MemStore{}
	store.Set("tok")
	return New(client.New(ts.URL, store, nil))
}

func TestTotalsAreSumsOfCollections(t *testing.T) {
	s := &reportStub{
		lastMonth: []model.PartyPayment{
			{Party_id: 1, Party_name: "Joshi Traders", Total_payment: 1200},
			{Party_id: 2, Party_name: "Gupta Metals", Total_payment: 300},
		},
		currentMonth: []model.PartyPayment{
			{Party_id: 1, Party_name: "Joshi Traders", Total_payment: 800},
		},
		outstanding: []model.Outstanding{
			{Party_id: 1, Party_name: "Joshi Traders", Total_challan: 5000, Total_paid: 2000, Outstanding: 3000},
			{Party_id: 3, Party_name: "Verma Steel", Total_challan: 700, Total_paid: 200, Outstanding: 500},
		},
		totalIncoming: 2300,
	}
	a := newAggregator(t, s)
	a.Load(context.Background())

	require.Empty(t, a.Err())
	assert.Equal(t, 1500.0, a.LastMonthTotal())
	assert.Equal(t, 800.0, a.CurrentMonthTotal())
	assert.Equal(t, 3500.0, a.OutstandingTotal())
	assert.Equal(t, 2300.0, a.TotalIncoming())
	// per-party figures pass through untouched
	assert.Equal(t, 3000.0, a.Outstanding()[0].Outstanding)
}

func TestRefreshIsIdempotent(t *testing.T) {
	s := &reportStub{
		lastMonth:     []model.PartyPayment{{Party_id: 1, Party_name: "Joshi Traders", Total_payment: 100}},
		totalIncoming: 100,
	}
	a := newAggregator(t, s)
	ctx := context.Background()

	a.Load(ctx)
	first := a.LastMonthTotal()
	a.Load(ctx)
	a.Load(ctx)
	assert.Equal(t, first, a.LastMonthTotal())
	assert.Equal(t, 100.0, a.TotalIncoming())
}

func TestEmptySectionsAreIndependent(t *testing.T) {
	s := &reportStub{
		currentMonth:  []model.PartyPayment{{Party_id: 1, Party_name: "Joshi Traders", Total_payment: 50}},
		totalIncoming: 50,
	}
	a := newAggregator(t, s)
	a.Load(context.Background())

	require.Empty(t, a.Err())
	assert.Empty(t, a.LastMonth()) // empty section
	assert.Len(t, a.CurrentMonth(), 1)
	assert.Empty(t, a.Outstanding())
	assert.Equal(t, 0.0, a.LastMonthTotal())
	assert.Equal(t, 50.0, a.CurrentMonthTotal())
}

func TestOneFailureAppliesNothing(t *testing.T) {
	s := &reportStub{
		lastMonth:     []model.PartyPayment{{Party_id: 1, Party_name: "Joshi Traders", Total_payment: 100}},
		totalIncoming: 100,
	}
	a := newAggregator(t, s)
	ctx := context.Background()
	a.Load(ctx)
	require.Empty(t, a.Err())

	s.mu.Lock()
	s.lastMonth = []model.PartyPayment{{Party_id: 1, Party_name: "Joshi Traders", Total_payment: 999}}
	s.failOutstanding = true
	s.mu.Unlock()

	a.Load(ctx)
	assert.Equal(t, "backend down", a.Err())
	// the load failed as a whole: the earlier collections remain
	assert.Equal(t, 100.0, a.LastMonthTotal())
}
