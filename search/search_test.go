package search

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mktrading/backoffice/client"
	"github.com/mktrading/backoffice/pages"
	"github.com/mktrading/backoffice/server"
	"github.com/mktrading/backoffice/session"
)

func newEnv(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := server.OpenDB(filepath.Join(t.TempDir(), "test.db3"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, server.SeedUser(db, "admin", "secret123"))
	ts := httptest.NewServer(server.Setup(db, "testkey"))
	t.Cleanup(ts.Close)

	api := client.New(ts.URL, &session.MemStore{}, nil)
	require.NoError(t, api.Login(context.Background(), "admin", "secret123"))
	return api
}

func seedChallan(t *testing.T, api *client.Client, party, number string, amount string) int {
	t.Helper()
	ctx := context.Background()
	p := pages.Parties(api)
	p.Load(ctx)
	p.OpenCreate()
	p.Draft().Name = party
	require.NoError(t, p.Save(ctx))
	var partyID int
	for _, rec := range p.List() {
		if rec.Name == party {
			partyID = rec.Id
		}
	}
	require.NotZero(t, partyID)

	c := pages.Challans(api)
	c.Load(ctx)
	c.OpenCreate()
	c.Draft().ChallanNumber = number
	c.Draft().PartyID = partyID
	c.Draft().Amount = amount
	require.NoError(t, c.Save(ctx))
	return partyID
}

func TestSearchByChallanBlankInput(t *testing.T) {
	api := newEnv(t)
	s := NewChallanSearch(api)
	s.Search(context.Background(), "   ")
	assert.Equal(t, "Enter challan number", s.Err())
	assert.Nil(t, s.Result())
}

func TestSearchByChallanFindsComposite(t *testing.T) {
	api := newEnv(t)
	seedChallan(t, api, "Sharma & Sons", "CH-007", "900")

	s := NewChallanSearch(api)
	s.Search(context.Background(), "CH-007")
	require.Empty(t, s.Err())
	require.NotNil(t, s.Result())
	assert.Equal(t, "Sharma & Sons", s.Result().Name)
	assert.Equal(t, "CH-007", s.Result().Challan_number)
	assert.Equal(t, 900.0, s.Result().Challan_amount)
}

func TestSearchByChallanMiss(t *testing.T) {
	api := newEnv(t)
	s := NewChallanSearch(api)
	s.Search(context.Background(), "CH-001")
	assert.Equal(t, "No challan found with that number", s.Err())
	assert.Nil(t, s.Result()) // no party panel to render
}

func TestSearchByPartyValidatesPerMode(t *testing.T) {
	api := newEnv(t)
	s := NewPartySearch(api)
	ctx := context.Background()
	s.Init(ctx)

	s.SetMode(ByID)
	s.Search(ctx)
	assert.Equal(t, "Select a party", s.Err())
	assert.False(t, s.Searched())

	s.SetMode(ByName)
	s.SetName("   ")
	s.Search(ctx)
	assert.Equal(t, "Enter party name", s.Err())
	assert.False(t, s.Searched())
}

func TestSearchByPartyBothModes(t *testing.T) {
	api := newEnv(t)
	partyID := seedChallan(t, api, "Gupta Metals", "G-1", "100")
	ctx := context.Background()

	s := NewPartySearch(api)
	s.Init(ctx)
	require.Len(t, s.Parties(), 1)

	s.SetMode(ByID)
	s.SetParty(partyID)
	s.Search(ctx)
	require.Empty(t, s.Err())
	assert.True(t, s.Searched())
	require.Len(t, s.Results(), 1)
	assert.Equal(t, "G-1", s.Results()[0].Challan_number)
	assert.Equal(t, "Gupta Metals", s.Results()[0].Party_name)

	s.SetMode(ByName)
	s.SetName("gupta")
	s.Search(ctx)
	require.Empty(t, s.Err())
	require.Len(t, s.Results(), 1)
}

func TestSearchByPartyZeroResultsIsStillSearched(t *testing.T) {
	api := newEnv(t)
	seedChallan(t, api, "Gupta Metals", "G-1", "100")
	ctx := context.Background()

	s := NewPartySearch(api)
	s.Init(ctx)
	s.SetMode(ByName)
	s.SetName("nonexistent")
	s.Search(ctx)
	require.Empty(t, s.Err())
	assert.True(t, s.Searched()) // searched, zero results
	assert.Empty(t, s.Results())
}
