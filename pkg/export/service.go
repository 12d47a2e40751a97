// Package export writes filtered dashboard leads as CSV or XLSX.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/models"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/xuri/excelize/v2"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// MaxLeads caps one export.
const MaxLeads = 10000

const (
	pageSize  = 100
	sheetName = "Leads"
)

var headers = []string{
	"ID", "Telefone", "Produto", "Nome", "Empresa", "E-mail", "Cidade", "UF",
	"Estágio", "Score", "Agente", "Origem", "Follow-ups", "Último contato",
	"Plano", "Valor", "Motivo da perda", "Custo IA (centavos)", "Criado em",
}

// ParseFormat validates a requested format. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("invalid format %q: must be csv or xlsx", s)
}

// ContentType is the MIME type served for f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename names an export generated at t.
func (f Format) Filename(t time.Time) string {
	return fmt.Sprintf("leads-%s.%s", t.Format("20060102-150405"), f)
}

// Service handles export business logic
type Service struct {
	leads *leads.Service
}

// NewService creates a new export service
func NewService(leadService *leads.Service) *Service {
	return &Service{leads: leadService}
}

// Write streams the leads matching filters to w and returns how many were
// written. Pagination fields of filters are ignored.
func (s *Service) Write(ctx context.Context, w io.Writer, format Format, filters models.LeadListRequest) (int, error) {
	rows, err := s.collect(ctx, filters)
	if err != nil {
		return 0, err
	}
	switch format {
	case FormatCSV:
		err = writeCSV(w, rows)
	case FormatXLSX:
		err = writeExcel(w, rows)
	default:
		err = fmt.Errorf("invalid format %q", format)
	}
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *Service) collect(ctx context.Context, filters models.LeadListRequest) ([]models.LeadResponse, error) {
	filters.Limit = pageSize
	var out []models.LeadResponse
	for page := 1; len(out) < MaxLeads; page++ {
		filters.Page = page
		res, err := s.leads.List(ctx, filters)
		if err != nil {
			return nil, err
		}
		out = append(out, res.Data...)
		if !res.Pagination.HasNext {
			break
		}
	}
	if len(out) > MaxLeads {
		out = out[:MaxLeads]
	}
	return out, nil
}

func record(l models.LeadResponse) []string {
	value := ""
	if l.WonAmountCents > 0 {
		value = product.FormatPrice(l.WonAmountCents)
	}
	return []string{
		strconv.Itoa(l.ID),
		l.Phone,
		l.Product,
		l.Name,
		l.CompanyName,
		l.Email,
		l.City,
		l.State,
		l.Stage,
		strconv.Itoa(l.Score),
		l.AssignedAgent,
		l.Source,
		strconv.Itoa(l.FollowupCount),
		l.LastContactAt,
		l.WonPlan,
		value,
		l.LostReason,
		strconv.FormatFloat(l.AICostCents, 'f', 2, 64),
		l.CreatedAt,
	}
}

// writeCSV generates a CSV file from leads
func writeCSV(w io.Writer, leads []models.LeadResponse) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, l := range leads {
		if err := writer.Write(record(l)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeExcel generates an Excel file from leads
func writeExcel(w io.Writer, leads []models.LeadResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("failed to open stream writer: %w", err)
	}

	head := make([]any, len(headers))
	for i, h := range headers {
		head[i] = excelize.Cell{StyleID: headerStyle, Value: h}
	}
	if err := sw.SetRow("A1", head); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, l := range leads {
		rec := record(l)
		row := make([]any, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		// numeric columns stay numeric
		row[0] = l.ID
		row[9] = l.Score
		row[12] = l.FollowupCount
		row[17] = l.AICostCents

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
