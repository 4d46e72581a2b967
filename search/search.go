// Package search implements the two cross-entity lookup views. Each search
// is stateless between runs: inputs are validated locally before any request
// goes out.
package search

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/mktrading/backoffice/client"
	"github.com/mktrading/backoffice/model"
)

// ChallanSearch resolves a challan number to its party, one composite
// record per search.
type ChallanSearch struct {
	api    *client.Client
	result *model.PartyChallan
	errMsg string
}

func NewChallanSearch(api *client.Client) *ChallanSearch {
	return &ChallanSearch{api: api}
}

func (s *ChallanSearch) Search(ctx context.Context, number string) {
	number = strings.TrimSpace(number)
	if number == "" {
		s.errMsg = "Enter challan number"
		return
	}
	s.errMsg = ""
	s.result = nil
	rec := model.PartyChallan{}
	err := s.api.Get(ctx, "/api/parties/search-by-challan?challanNumber="+url.QueryEscape(number), &rec)
	if err != nil {
		s.setErr(err)
		return
	}
	s.result = &rec
}

func (s *ChallanSearch) Result() *model.PartyChallan { return s.result }

func (s *ChallanSearch) Err() string { return s.errMsg }

func (s *ChallanSearch) setErr(err error) {
	if errors.Is(err, client.ErrUnauthorized) {
		return
	}
	s.errMsg = err.Error()
}

type Mode int

const (
	ByID Mode = iota
	ByName
)

// PartySearch lists a party's challans, queried either by selecting a party
// or by typing a name. The two modes are mutually exclusive and each
// validates its own input.
type PartySearch struct {
	api     *client.Client
	parties []model.Party
	mode    Mode
	partyID int
	name    string
	list    []model.Challan
	loaded  bool
	errMsg  string
}

func NewPartySearch(api *client.Client) *PartySearch {
	return &PartySearch{api: api}
}

// Init preloads the party selector. A failure here leaves the selector
// empty; the id-mode validation catches it at search time.
func (s *PartySearch) Init(ctx context.Context) {
	parties := []model.Party{}
	if err := s.api.Get(ctx, "/api/parties", &parties); err == nil {
		s.parties = parties
	}
}

func (s *PartySearch) SetMode(m Mode) { s.mode = m }

func (s *PartySearch) SetParty(id int) { s.partyID = id }

func (s *PartySearch) SetName(n string) { s.name = n }

func (s *PartySearch) Parties() []model.Party { return s.parties }

func (s *PartySearch) Search(ctx context.Context) {
	s.errMsg = ""
	s.list = nil
	s.loaded = false
	if s.mode == ByID && s.partyID == 0 {
		s.errMsg = "Select a party"
		return
	}
	if s.mode == ByName && strings.TrimSpace(s.name) == "" {
		s.errMsg = "Enter party name"
		return
	}
	var q string
	if s.mode == ByID {
		q = "partyId=" + strconv.Itoa(s.partyID)
	} else {
		q = "partyName=" + url.QueryEscape(strings.TrimSpace(s.name))
	}
	list := []model.Challan{}
	if err := s.api.Get(ctx, "/api/challans/search-by-party?"+q, &list); err != nil {
		if !errors.Is(err, client.ErrUnauthorized) {
			s.errMsg = err.Error()
		}
		return
	}
	s.list = list
	s.loaded = true
}

func (s *PartySearch) Results() []model.Challan { return s.list }

// Searched distinguishes "searched, zero results" from "not searched yet".
func (s *PartySearch) Searched() bool { return s.loaded }

func (s *PartySearch) Err() string { return s.errMsg }
