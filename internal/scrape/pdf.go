package scrape

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoPages reports a bulletin document without a single page.
var ErrNoPages = errors.New("pdf has no pages")

// Geometry tolerances for reassembling the bulletin table from positioned
// text fragments. Fragments within rowTolerance points of each other share a
// visual row; a horizontal gap above cellGap starts a new cell; a gap above
// wordGap inserts a space within a cell.
const (
	rowTolerance = 2.0
	cellGap      = 12.0
	wordGap      = 1.0
)

type fragment struct {
	x, w float64
	s    string
}

type textRow struct {
	y     float64
	frags []fragment
}

// parseBulletinTables reads the first page of the PDF and reassembles its
// positioned text into one table of rows and cells.
func parseBulletinTables(b []byte) (tables [][][]string, err error) {
	// ledongthuc/pdf reports malformed documents by panicking; a bad
	// bulletin download must abort the run, not the process.
	defer func() {
		if r := recover(); r != nil {
			tables, err = nil, fmt.Errorf("parsing pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	if r.NumPage() == 0 {
		return nil, ErrNoPages
	}

	page := r.Page(1)
	if page.V.IsNull() {
		return nil, ErrNoPages
	}

	rows := groupIntoRows(page.Content().Text)
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, splitCells(row))
	}
	return [][][]string{table}, nil
}

// groupIntoRows buckets text fragments into visual rows by Y coordinate.
// Rows come back top to bottom, fragments within a row left to right.
func groupIntoRows(texts []pdf.Text) []textRow {
	var rows []textRow
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}

		placed := false
		for i := range rows {
			if math.Abs(rows[i].y-t.Y) < rowTolerance {
				rows[i].frags = append(rows[i].frags, fragment{t.X, t.W, t.S})
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, textRow{y: t.Y, frags: []fragment{{t.X, t.W, t.S}}})
		}
	}

	// PDF coordinates grow upward, so larger Y means higher on the page.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	for i := range rows {
		frags := rows[i].frags
		sort.SliceStable(frags, func(a, b int) bool { return frags[a].x < frags[b].x })
	}
	return rows
}

// splitCells joins a row's fragments into cells, starting a new cell when the
// horizontal gap between neighboring fragments exceeds cellGap.
func splitCells(row textRow) []string {
	var cells []string
	var b strings.Builder
	var prevEnd float64

	for i, f := range row.frags {
		if i > 0 {
			gap := f.x - prevEnd
			if gap > cellGap {
				cells = append(cells, strings.TrimSpace(b.String()))
				b.Reset()
			} else if gap > wordGap {
				b.WriteString(" ")
			}
		}
		b.WriteString(f.s)
		prevEnd = f.x + f.w
	}
	if b.Len() > 0 {
		cells = append(cells, strings.TrimSpace(b.String()))
	}
	return cells
}
