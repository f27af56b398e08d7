package importer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"tripkit/entities"
	"tripkit/pkg/catalog/repository"
)

// RateRow is one hotel room rate line from a partner rate sheet, either an
// xlsx workbook or a published HTML table.
type RateRow struct {
	Hotel    string
	Area     string
	RoomType string
	Peak     float64
	Mid      float64
	Off      float64
}

// ParseWorkbook reads the "Hotels" sheet of a catalog workbook. Expected
// columns: Hotel, Area, RoomType, Peak, Mid, Off (header row first).
func ParseWorkbook(path string) ([]RateRow, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	rows, err := x.GetRows("Hotels")
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("Hotels sheet has no data rows")
	}

	get := func(rec []string, i int) string {
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	var out []RateRow
	for _, rec := range rows[1:] {
		name := get(rec, 0)
		room := get(rec, 2)
		if name == "" || room == "" {
			continue // skip blank/partial rows
		}
		peak, _ := strconv.ParseFloat(get(rec, 3), 64)
		mid, _ := strconv.ParseFloat(get(rec, 4), 64)
		off, _ := strconv.ParseFloat(get(rec, 5), 64)
		out = append(out, RateRow{Hotel: name, Area: get(rec, 1), RoomType: room, Peak: peak, Mid: mid, Off: off})
	}
	return out, nil
}

// ParseRateTable scrapes the first <table> of an HTML rate sheet. Same column
// order as the workbook.
func ParseRateTable(r io.Reader) ([]RateRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var out []RateRow
	doc.Find("table").First().Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 6 {
			return // header or malformed row
		}
		cell := func(j int) string { return strings.TrimSpace(cells.Eq(j).Text()) }
		num := func(j int) float64 {
			v, _ := strconv.ParseFloat(strings.ReplaceAll(cell(j), ",", ""), 64)
			return v
		}
		if cell(0) == "" || cell(2) == "" {
			return
		}
		out = append(out, RateRow{
			Hotel: cell(0), Area: cell(1), RoomType: cell(2),
			Peak: num(3), Mid: num(4), Off: num(5),
		})
	})
	if len(out) == 0 {
		return nil, errors.New("no rate rows found in table")
	}
	return out, nil
}

// Import creates hotels and room types from rate rows. Hotels are deduped by
// name; an existing hotel just gets its room types appended.
func Import(repo repository.CatalogRepository, rows []RateRow) (int, error) {
	created := 0
	for _, row := range rows {
		h, err := repo.HotelByName(row.Hotel)
		if err != nil {
			h = &entities.Hotel{Name: row.Hotel, Area: row.Area}
			if err := repo.CreateHotel(h); err != nil {
				return created, fmt.Errorf("create hotel %q: %w", row.Hotel, err)
			}
			log.Printf("[import] new hotel %q (%s)", row.Hotel, row.Area)
		}
		rt := &entities.RoomType{
			HotelID:  h.HotelID,
			Name:     row.RoomType,
			PeakRate: row.Peak,
			MidRate:  row.Mid,
			OffRate:  row.Off,
		}
		if err := repo.CreateRoomType(rt); err != nil {
			return created, fmt.Errorf("create room type %q/%q: %w", row.Hotel, row.RoomType, err)
		}
		created++
	}
	return created, nil
}
