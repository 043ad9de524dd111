// Package importer turns an order spreadsheet into calculated plan lines.
//
// The first sheet is read positionally: client, product, material and
// amount. Rows whose amount is not a number (headers, notes) are skipped.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/logger"
	"github.com/guttosm/planning-service/internal/metrics"
	"github.com/guttosm/planning-service/internal/planning"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Spreadsheet columns.
const (
	colClient = iota
	colProduct
	colMaterial
	colAmount
)

// DefaultBlowsPerMinute is the rate used when the target machine has none.
const DefaultBlowsPerMinute = 80

var (
	// ErrInvalidWorkbook is returned when the upload is not a readable .xlsx file.
	ErrInvalidWorkbook = errors.New("invalid workbook")
	// ErrNoSheets is returned for a workbook without sheets.
	ErrNoSheets = fmt.Errorf("%w: no sheets", ErrInvalidWorkbook)
)

// Catalog is the subset of catalog lookups the importer resolves rows with.
type Catalog interface {
	FindClients(ctx context.Context, query string) ([]model.Client, error)
	FindProducts(ctx context.Context, name, material string) ([]model.Product, error)
	FindRolls(ctx context.Context, materialID primitive.ObjectID) ([]model.Roll, error)
}

// Target is where imported lines are scheduled.
type Target struct {
	Domain  int
	Machine *model.Machine
	Date    time.Time
}

// Result holds the outcome of one import.
type Result struct {
	BatchID    string       `json:"batch_id"`
	Plans      []model.Plan `json:"plans"`
	Imported   int          `json:"imported"`
	Unresolved int          `json:"unresolved"`
	Skipped    int          `json:"skipped"`
	Warnings   []string     `json:"warnings,omitempty"`
}

// Option configures an Importer.
type Option func(*Importer)

// WithDefaultBlowsPerMinute sets the fallback machine rate.
func WithDefaultBlowsPerMinute(rate float64) Option {
	return func(im *Importer) {
		if rate > 0 {
			im.defaultRate = rate
		}
	}
}

// Importer reads order spreadsheets.
type Importer struct {
	catalog     Catalog
	defaultRate float64
}

// New creates an importer resolving rows through catalog.
func New(catalog Catalog, opts ...Option) *Importer {
	im := &Importer{catalog: catalog, defaultRate: DefaultBlowsPerMinute}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Import reads the first sheet of an .xlsx workbook and returns one plan per
// order row, numbered from 1 and calculated through the amount direction.
// Rows whose product cannot be resolved are still returned, zeroed.
func (im *Importer) Import(ctx context.Context, r io.Reader, target Target) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", ErrInvalidWorkbook, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrInvalidWorkbook, sheets[0], err)
	}

	result := &Result{
		BatchID: uuid.New().String(),
		Plans:   make([]model.Plan, 0, len(rows)),
	}
	l := logger.FromContext(ctx).With().
		Str("component", "importer").
		Str("batch_id", result.BatchID).
		Str("sheet", sheets[0]).
		Logger()

	rate := im.defaultRate
	if target.Machine != nil && target.Machine.BlowsPerMinute > 0 {
		rate = target.Machine.BlowsPerMinute
	}

	order := 1
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		amount, ok := amountOf(row)
		if !ok {
			result.Skipped++
			metrics.RecordImportRow(metrics.ImportRowSkipped)
			continue
		}

		line := i + 1
		p := planning.New(target.Domain, target.Machine, target.Date)
		p.Order = order
		p.Amount = amount
		p.BlowsPerMinute = rate

		client, err := im.client(ctx, cell(row, colClient))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if client == nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: no client matches %q", line, cell(row, colClient)))
		}
		p.Client = client

		product, matches, err := im.product(ctx, cell(row, colProduct), cell(row, colMaterial))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if product != nil {
			p.Product = product
			p.Material = product.Material
			roll, err := im.roll(ctx, product)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", line, err)
			}
			p.Roll = roll
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: product %q with material %q matched %d products",
				line, cell(row, colProduct), cell(row, colMaterial), matches))
		}

		p = planning.Calculate(p, planning.DirectionAmount)
		result.Plans = append(result.Plans, p)
		order++

		if p.UnitsPerCycle > 0 {
			result.Imported++
			metrics.RecordImportRow(metrics.ImportRowImported)
		} else {
			result.Unresolved++
			metrics.RecordImportRow(metrics.ImportRowUnresolved)
		}
	}

	l.Info().
		Int("imported", result.Imported).
		Int("unresolved", result.Unresolved).
		Int("skipped", result.Skipped).
		Msg("Spreadsheet imported")
	return result, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func amountOf(row []string) (float64, bool) {
	v, err := strconv.ParseFloat(cell(row, colAmount), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// client returns the first client whose name contains name.
func (im *Importer) client(ctx context.Context, name string) (*model.Client, error) {
	clients, err := im.catalog.FindClients(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find clients: %w", err)
	}
	if len(clients) == 0 {
		return nil, nil
	}
	return &clients[0], nil
}

// product returns the product matching both names only when the match is
// unambiguous. The match count is returned for reporting.
func (im *Importer) product(ctx context.Context, name, material string) (*model.Product, int, error) {
	products, err := im.catalog.FindProducts(ctx, name, material)
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	if len(products) != 1 {
		return nil, len(products), nil
	}
	return &products[0], 1, nil
}

// roll picks the roll of the product's material that the product width
// divides exactly, when there is only one such roll.
func (im *Importer) roll(ctx context.Context, product *model.Product) (*model.Roll, error) {
	if product.Material == nil || product.Material.ID.IsZero() || planning.IsZero(product.Width) {
		return nil, nil
	}
	rolls, err := im.catalog.FindRolls(ctx, product.Material.ID)
	if err != nil {
		return nil, fmt.Errorf("find rolls: %w", err)
	}

	var pick *model.Roll
	for i := range rolls {
		if !planning.IsZero(math.Mod(rolls[i].Width, product.Width)) {
			continue
		}
		if pick != nil {
			return nil, nil
		}
		pick = &rolls[i]
	}
	return pick, nil
}
