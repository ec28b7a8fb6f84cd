// Package sheet reads and writes the yearly attendance workbook.
package sheet

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/showmanager/internal/domain"
	"github.com/xuri/excelize/v2"
)

// DefaultFileName is the workbook name used when none is given.
const DefaultFileName = "ArquivoAnual_anaceci.xlsx"

// Columns is the header row of every year sheet, in display order.
var Columns = []string{
	"Dia", "Data", "Nome do Evento", "Sala", "Publico PCG", "Publico Comerciário",
	"Publico Adversos", "PCG+COM.", "Total", "Observações",
}

// SheetName returns the sheet that holds the sessions of year.
func SheetName(year int) string {
	return fmt.Sprintf("Ano_%d", year)
}

// Write stores sessions in a new workbook at path, one sheet per year in
// ascending order with rows sorted by date. It returns the sheet names.
func Write(path string, sessions []*domain.Session) ([]string, error) {
	byYear := make(map[int][]*domain.Session)
	for _, s := range sessions {
		byYear[s.Year()] = append(byYear[s.Year()], s)
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	names := make([]string, 0, len(years))
	for _, y := range years {
		name := SheetName(y)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("creating sheet %s: %w", name, err)
		}
		if err := writeYear(f, name, byYear[y], header); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if len(names) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("removing default sheet: %w", err)
		}
		f.SetActiveSheet(0)
	}
	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return names, nil
}

func writeYear(f *excelize.File, sheet string, sessions []*domain.Session, headerStyle int) error {
	sorted := append([]*domain.Session(nil), sessions...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header of %s: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", headerStyle); err != nil {
		return fmt.Errorf("styling header of %s: %w", sheet, err)
	}

	for i, s := range sorted {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			s.Weekday, s.DateString(), s.EventName, string(s.Room),
			s.AudiencePCG, s.AudienceCommercial, s.AudienceAdverse,
			s.Combined, s.Total, s.Notes,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d of %s: %w", i+2, sheet, err)
		}
	}
	if err := f.SetColWidth(sheet, "C", "C", 32); err != nil {
		return fmt.Errorf("sizing columns of %s: %w", sheet, err)
	}
	return nil
}

// Batch is the content read back from a workbook.
type Batch struct {
	Sessions []*domain.Session
	Sheets   int
	// Skipped counts non-blank rows dropped for lack of a valid date.
	Skipped int
}

type column int

const (
	colWeekday column = iota
	colDate
	colEvent
	colRoom
	colPCG
	colCommercial
	colAdverse
	colCombined
	colTotal
	colNotes
)

var headerKeys = map[string]column{
	"dia": colWeekday, "data": colDate,
	"nome do evento": colEvent, "evento": colEvent,
	"sala":        colRoom,
	"publico pcg": colPCG, "público pcg": colPCG,
	"publico comerciário": colCommercial, "publico comerciario": colCommercial, "público comerciário": colCommercial,
	"publico adversos": colAdverse, "público adversos": colAdverse,
	"pcg+com.": colCombined, "pcg com": colCombined,
	"total":       colTotal,
	"observações": colNotes, "observacoes": colNotes,
}

// Read loads every sheet of the workbook at path. Sheets without a Data
// column are ignored. Derived columns in the file are discarded and
// recomputed from the three audience segments.
func Read(path string) (*Batch, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	batch := &Batch{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		cols := mapHeader(rows[0])
		if _, ok := cols[colDate]; !ok {
			continue
		}
		batch.Sheets++
		for _, row := range rows[1:] {
			if blank(row) {
				continue
			}
			s, ok := parseRow(row, cols)
			if !ok {
				batch.Skipped++
				continue
			}
			batch.Sessions = append(batch.Sessions, s)
		}
	}
	return batch, nil
}

func mapHeader(row []string) map[column]int {
	cols := make(map[column]int)
	for i, cell := range row {
		key := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(cell, "_", " ")))
		if c, ok := headerKeys[key]; ok {
			if _, dup := cols[c]; !dup {
				cols[c] = i
			}
		}
	}
	return cols
}

func parseRow(row []string, cols map[column]int) (*domain.Session, bool) {
	get := func(c column) string {
		i, ok := cols[c]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	date, ok := parseCellDate(get(colDate))
	if !ok {
		return nil, false
	}
	s := &domain.Session{
		Date:               date,
		EventName:          get(colEvent),
		Room:               domain.NormalizeRoom(get(colRoom)),
		AudiencePCG:        parseCellCount(get(colPCG)),
		AudienceCommercial: parseCellCount(get(colCommercial)),
		AudienceAdverse:    parseCellCount(get(colAdverse)),
		Notes:              get(colNotes),
	}
	s.Recompute()
	return s, true
}

var dateLayouts = []string{
	domain.DateLayout,
	"2/1/2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"02-01-2006",
}

// parseCellDate accepts text dates (day first) and Excel serial numbers.
func parseCellDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return truncateDay(t), true
		}
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return truncateDay(t), true
		}
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// maxCellCount bounds a single audience cell; larger values are treated as
// garbage rather than overflowing the derived totals.
const maxCellCount = math.MaxInt32

// parseCellCount coerces a cell to a non-negative count; anything else is 0.
func parseCellCount(raw string) int {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > maxCellCount {
		return 0
	}
	return int(v)
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
