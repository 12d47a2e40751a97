package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) login(t *testing.T) map[string]string {
	t.Helper()
	rec := f.do(http.MethodPost, "/api/v1/dashboard/auth/login",
		fmt.Sprintf(`{"email":%q,"password":%q}`, adminEmail, adminPassword), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return map[string]string{"Authorization": "Bearer " + resp.Token}
}

func TestLogin(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"wrong password", fmt.Sprintf(`{"email":%q,"password":"errada"}`, adminEmail), http.StatusUnauthorized},
		{"unknown email", `{"email":"outro@example.com","password":"s3nha-forte"}`, http.StatusUnauthorized},
		{"invalid email", `{"email":"not-an-email","password":"x"}`, http.StatusBadRequest},
		{"missing password", fmt.Sprintf(`{"email":%q}`, adminEmail), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodPost, "/api/v1/dashboard/auth/login", tt.body, nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	f := setup(t)
	auth := f.login(t)

	rec := f.do(http.MethodGet, "/api/v1/dashboard/leads", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/dashboard/auth/logout", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/dashboard/leads", "", auth)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboard_RequiresToken(t *testing.T) {
	f := setup(t)
	rec := f.do(http.MethodGet, "/api/v1/dashboard/leads", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListLeads(t *testing.T) {
	f := setup(t)
	auth := f.login(t)
	for i := 0; i < 3; i++ {
		testdata.NewLead(t, f.client, testdata.WithProduct(product.Ekkle), testdata.WithStage(pipeline.StageQualified))
	}
	testdata.NewLead(t, f.client, testdata.WithProduct(product.Occhiale))

	rec := f.do(http.MethodGet, "/api/v1/dashboard/leads?product=ekkle&limit=2", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LeadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 3, resp.Pagination.Total)
	assert.True(t, resp.Pagination.HasNext)
	for _, l := range resp.Data {
		assert.Equal(t, "ekkle", l.Product)
	}

	rec = f.do(http.MethodGet, "/api/v1/dashboard/leads?product=other", "", auth)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadCRUD(t *testing.T) {
	f := setup(t)
	auth := f.login(t)

	rec := f.do(http.MethodPost, "/api/v1/dashboard/leads",
		`{"phone":"(11) 98765-4321","product":"occhiale","name":"Ótica Central","state":"sp"}`, auth)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "5511987654321", created.Phone)
	assert.Equal(t, "new", created.Stage)
	assert.Equal(t, "manual", created.Source)
	assert.Equal(t, "SP", created.State)

	path := fmt.Sprintf("/api/v1/dashboard/leads/%d", created.ID)

	rec = f.do(http.MethodPost, "/api/v1/dashboard/leads", `{"phone":"11987654321","product":"occhiale"}`, auth)
	assert.Equal(t, http.StatusConflict, rec.Code, "phone and product are unique")

	rec = f.do(http.MethodPatch, path, `{"stage":"contacted","score":40}`, auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "contacted", updated.Stage)
	assert.Equal(t, 40, updated.Score)

	rec = f.do(http.MethodPatch, path, `{"stage":"active"}`, auth)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "stage changes follow the pipeline")

	rec = f.do(http.MethodPatch, path, `{"score":101}`, auth)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"validation_error"`)

	rec = f.do(http.MethodPatch, path, `{"score":`, auth)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"invalid_request"`)

	rec = f.do(http.MethodGet, path, "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail models.LeadDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Ótica Central", detail.Lead.Name)

	rec = f.do(http.MethodDelete, path, "", auth)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodGet, path, "", auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = f.do(http.MethodGet, "/api/v1/dashboard/leads/abc", "", auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportLeads_QueryToken(t *testing.T) {
	f := setup(t)
	auth := f.login(t)
	for i := 0; i < 2; i++ {
		testdata.NewLead(t, f.client, testdata.WithProduct(product.Ekkle))
	}
	token := auth["Authorization"][len("Bearer "):]

	rec := f.do(http.MethodGet, "/api/v1/dashboard/leads/export?format=csv&token="+token, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "leads-")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")

	rows, err := csv.NewReader(bytes.NewReader(rec.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rec = f.do(http.MethodGet, "/api/v1/dashboard/leads/export?format=pdf", "", auth)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoints(t *testing.T) {
	f := setup(t)
	auth := f.login(t)
	testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageWon))
	testdata.NewLead(t, f.client, testdata.WithStage(pipeline.StageLost))

	for _, path := range []string{
		"/api/v1/dashboard/funnel",
		"/api/v1/dashboard/metrics?product=occhiale",
		"/api/v1/dashboard/metrics/daily?days=7",
		"/api/v1/dashboard/conversations",
		"/api/v1/dashboard/conversations/recent",
		"/api/v1/dashboard/conversations/stats",
	} {
		t.Run(path, func(t *testing.T) {
			rec := f.do(http.MethodGet, path, "", auth)
			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}

	rec := f.do(http.MethodGet, "/api/v1/dashboard/metrics/daily?days=0", "", auth)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "days must be between 1 and 365")

	keys := f.mr.Keys()
	assert.Contains(t, keys, "dashboard:metrics:occhiale", "dashboard totals are cached")
}
