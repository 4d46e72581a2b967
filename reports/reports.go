// Package reports aggregates the four backend report collections and derives
// the display totals client-side. The derivation is pure: same backend data,
// same totals, on every refresh.
package reports

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/mktrading/backoffice/client"
	"github.com/mktrading/backoffice/model"
)

type Aggregator struct {
	api           *client.Client
	lastMonth     []model.PartyPayment
	currentMonth  []model.PartyPayment
	outstanding   []model.Outstanding
	totalIncoming float64
	errMsg        string
}

func New(api *client.Client) *Aggregator {
	return &Aggregator{api: api}
}

// Load issues the four report GETs concurrently and waits for all of them.
// If any one fails nothing is applied; the previous collections stay intact.
func (a *Aggregator) Load(ctx context.Context) {
	a.errMsg = ""
	var (
		last, current []model.PartyPayment
		out           []model.Outstanding
		incoming      model.TotalIncoming
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.api.Get(gctx, "/api/reports/last-month-payments", &last) })
	g.Go(func() error { return a.api.Get(gctx, "/api/reports/current-month-payments", &current) })
	g.Go(func() error { return a.api.Get(gctx, "/api/reports/outstanding", &out) })
	g.Go(func() error { return a.api.Get(gctx, "/api/reports/total-incoming", &incoming) })
	if err := g.Wait(); err != nil {
		if !errors.Is(err, client.ErrUnauthorized) {
			a.errMsg = err.Error()
		}
		return
	}
	a.lastMonth = last
	a.currentMonth = current
	a.outstanding = out
	a.totalIncoming = incoming.Total_incoming
}

func (a *Aggregator) LastMonth() []model.PartyPayment { return a.lastMonth }

func (a *Aggregator) CurrentMonth() []model.PartyPayment { return a.currentMonth }

func (a *Aggregator) Outstanding() []model.Outstanding { return a.outstanding }

func (a *Aggregator) TotalIncoming() float64 { return a.totalIncoming }

func (a *Aggregator) Err() string { return a.errMsg }

func (a *Aggregator) LastMonthTotal() float64 {
	var sum float64
	for _, r := range a.lastMonth {
		sum += r.Total_payment
	}
	return sum
}

func (a *Aggregator) CurrentMonthTotal() float64 {
	var sum float64
	for _, r := range a.currentMonth {
		sum += r.Total_payment
	}
	return sum
}

// OutstandingTotal sums the backend-computed per-party balances; the
// per-party figure itself is displayed verbatim.
func (a *Aggregator) OutstandingTotal() float64 {
	var sum float64
	for _, r := range a.outstanding {
		sum += r.Outstanding
	}
	return sum
}
