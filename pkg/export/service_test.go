package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setup(t *testing.T) (*Service, *leads.Service) {
	t.Helper()
	client := testdata.OpenDB(t)
	store := leads.NewService(client, nil, logger.Nop(), nil)
	for i := 0; i < 3; i++ {
		testdata.NewLead(t, client, testdata.WithProduct(product.Ekkle), testdata.WithStage(pipeline.StageQualified))
	}
	testdata.NewLead(t, client, testdata.WithProduct(product.Occhiale))
	return NewService(store), store
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatCSV, false},
		{"CSV", FormatCSV, false},
		{"xlsx", FormatXLSX, false},
		{"excel", FormatXLSX, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite_CSV(t *testing.T) {
	svc, _ := setup(t)
	var buf bytes.Buffer

	n, err := svc.Write(context.Background(), &buf, FormatCSV, models.LeadListRequest{Product: "ekkle"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, headers, rows[0])
	for _, row := range rows[1:] {
		assert.Equal(t, "ekkle", row[2])
		assert.Equal(t, "qualified", row[8])
	}
}

func TestWrite_XLSX(t *testing.T) {
	svc, _ := setup(t)
	var buf bytes.Buffer

	n, err := svc.Write(context.Background(), &buf, FormatXLSX, models.LeadListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Leads"}, f.GetSheetList())
	rows, err := f.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Telefone", rows[0][1])
}

func TestWrite_Paginates(t *testing.T) {
	svc, store := setup(t)
	client := store.Client()
	for i := 0; i < pageSize; i++ {
		testdata.NewLead(t, client, testdata.WithProduct(product.Occhiale))
	}

	n, err := svc.Write(context.Background(), &bytes.Buffer{}, FormatCSV, models.LeadListRequest{Product: "occhiale"})
	require.NoError(t, err)
	assert.Equal(t, pageSize+1, n)
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 5, 11, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "leads-20260511-093000.xlsx", FormatXLSX.Filename(at))
	assert.Contains(t, FormatCSV.ContentType(), "text/csv")
}
