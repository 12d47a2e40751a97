package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/ent/scrapingqueue"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

const searchBody = `{
	"status": "OK",
	"results": [
		{"place_id": "p1", "name": "Ótica Visão", "formatted_address": "R. Augusta, 1500 - Consolação, São Paulo - SP, 01304-001, Brasil"},
		{"place_id": "p2", "name": "Ótica Sem Fone", "formatted_address": "Av. Brasil, 10 - Centro, Campinas - SP, 13010-000, Brasil"}
	]
}`

func placesServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "pt-BR", r.URL.Query().Get("language"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/textsearch/json":
			if r.URL.Query().Get("query") == "ótica em Nowhere" {
				_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
				return
			}
			_, _ = w.Write([]byte(searchBody))
		case "/details/json":
			if r.URL.Query().Get("place_id") == "p1" {
				_, _ = w.Write([]byte(`{"status":"OK","result":{"name":"Ótica Visão Ltda","formatted_address":"R. Augusta, 1500 - Consolação, São Paulo - SP, 01304-001, Brasil","formatted_phone_number":"(11) 98765-4321","website":"https://visao.example","rating":4.6,"user_ratings_total":120}}`))
				return
			}
			_, _ = w.Write([]byte(`{"status":"OK","result":{"name":"Ótica Sem Fone","formatted_address":"Av. Brasil, 10 - Centro, Campinas - SP, 13010-000, Brasil"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRun_QueuesPlacesAndCreatesLeads(t *testing.T) {
	client := testdata.OpenDB(t)
	store := leads.NewService(client, nil, logger.Nop(), nil)
	server := placesServer(t)
	svc := NewService(NewPlacesClient("test-key", server.URL), store, logger.Nop()).
		WithPacing(0, 0).
		WithClock(func() time.Time { return testNow })
	ctx := context.Background()

	res, err := svc.Run(ctx, product.Occhiale, []string{"São Paulo", "Nowhere"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cities)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.New)
	assert.Equal(t, 1, res.NoPhone)
	assert.Zero(t, res.Errors)

	l, err := store.GetByPhone(ctx, "5511987654321", product.Occhiale)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StageScraped, l.Stage)
	assert.Equal(t, "Ótica Visão Ltda", l.CompanyName)
	assert.Equal(t, "São Paulo", l.City)
	assert.Equal(t, "SP", l.State)
	assert.Equal(t, "p1", l.GooglePlaceID)
	require.NotNil(t, l.NextFollowupAt)
	assert.True(t, l.NextFollowupAt.Equal(testNow.Add(24*time.Hour)))

	imported, err := client.ScrapingQueue.Query().Where(scrapingqueue.GooglePlaceID("p1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scrapingqueue.StatusImported, imported.Status)
	noPhone, err := client.ScrapingQueue.Query().Where(scrapingqueue.GooglePlaceID("p2")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scrapingqueue.StatusNoPhone, noPhone.Status)

	again, err := svc.Run(ctx, product.Occhiale, []string{"São Paulo"})
	require.NoError(t, err)
	assert.Equal(t, 2, again.Existing)
	assert.Zero(t, again.New)
}

func TestRun_SearchFailureCounted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`))
	}))
	defer server.Close()

	store := leads.NewService(testdata.OpenDB(t), nil, logger.Nop(), nil)
	svc := NewService(NewPlacesClient("k", server.URL), store, logger.Nop()).WithPacing(0, 0)

	res, err := svc.Run(context.Background(), product.Ekkle, []string{"Recife", "Natal"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Errors)
	assert.Zero(t, res.Total)
}

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		address, city, state string
	}{
		{"R. Augusta, 1500 - Consolação, São Paulo - SP, 01304-001, Brasil", "São Paulo", "SP"},
		{"Av. Boa Viagem, 100 - Boa Viagem, Recife - PE, 51011-000", "Recife", "PE"},
		{"Rua sem cidade", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			city, state := SplitAddress(tt.address)
			assert.Equal(t, tt.city, city)
			assert.Equal(t, tt.state, state)
		})
	}
}
