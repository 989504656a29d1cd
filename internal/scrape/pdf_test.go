package scrape

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

// buildPDF assembles a minimal document from numbered objects, computing the
// xref offsets so the result is accepted by the reader.
func buildPDF(objects ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestGroupIntoRows(t *testing.T) {
	texts := []pdf.Text{
		{S: "Temperatur", X: 50, Y: 700, W: 60},
		{S: "-5°C", X: 200, Y: 700.8, W: 25},
		{S: "TAGES-NEWS - 22.11.2025", X: 50, Y: 760, W: 150},
		{S: "   ", X: 10, Y: 10, W: 5},
	}

	rows := groupIntoRows(texts)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// Rows ordered top of page first (descending Y).
	if rows[0].frags[0].s != "TAGES-NEWS - 22.11.2025" {
		t.Errorf("first row = %q", rows[0].frags[0].s)
	}
	if len(rows[1].frags) != 2 {
		t.Fatalf("second row should hold both fragments, got %d", len(rows[1].frags))
	}
	if rows[1].frags[0].s != "Temperatur" || rows[1].frags[1].s != "-5°C" {
		t.Errorf("second row fragments out of order: %+v", rows[1].frags)
	}
}

func TestSplitCells(t *testing.T) {
	row := textRow{
		y: 700,
		frags: []fragment{
			{x: 50, w: 30, s: "letzter"},
			{x: 83, w: 50, s: "Schneefall:"},
			{x: 300, w: 60, s: "20.11.2025"},
		},
	}

	got := splitCells(row)
	want := []string{"letzter Schneefall:", "20.11.2025"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitCells() = %q, want %q", got, want)
	}
}

func TestSplitCellsSingleCell(t *testing.T) {
	row := textRow{
		frags: []fragment{
			{x: 50, w: 90, s: "Uhrzeit: 08:00Uhr"},
		},
	}
	got := splitCells(row)
	if !reflect.DeepEqual(got, []string{"Uhrzeit: 08:00Uhr"}) {
		t.Fatalf("splitCells() = %q", got)
	}
}

func TestSplitCellsEmptyRow(t *testing.T) {
	if got := splitCells(textRow{}); got != nil {
		t.Fatalf("splitCells() = %q, want nil", got)
	}
}

func TestParseBulletinTablesRejectsGarbage(t *testing.T) {
	if _, err := parseBulletinTables([]byte("not a pdf")); err == nil {
		t.Fatal("expected an error for non-PDF input")
	}
}

func TestParseBulletinTablesZeroPages(t *testing.T) {
	doc := buildPDF(
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [] /Count 0 >>",
	)

	_, err := parseBulletinTables(doc)
	if !errors.Is(err, ErrNoPages) {
		t.Fatalf("expected ErrNoPages, got %v", err)
	}
}

func TestParseBulletinTablesMalformedStream(t *testing.T) {
	// The document opens fine, but its content stream declares a filter the
	// library cannot decode. That must surface as an error, not a panic.
	doc := buildPDF(
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /Contents 4 0 R /MediaBox [0 0 612 792] /Resources << >> >>",
		"<< /Length 4 /Filter /Bogus >>\nstream\nabcd\nendstream",
	)

	var tables [][][]string
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("parseBulletinTables panicked instead of returning an error: %v", r)
			}
		}()
		tables, err = parseBulletinTables(doc)
	}()

	if err == nil {
		t.Fatal("expected an error for an undecodable content stream")
	}
	if tables != nil {
		t.Errorf("tables should be nil on failure, got %v", tables)
	}
	if !strings.Contains(err.Error(), "parsing pdf") {
		t.Errorf("error should identify the parse stage, got %q", err)
	}
}
