package bulletin

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Label substrings appearing in the bulletin table. Markers are matched by
// substring containment because the publisher's cell layout drifts between
// documents.
const (
	markerDate      = "TAGES-NEWS"
	markerTemp      = "Temperatur"
	markerTime      = "Uhrzeit:"
	markerCondition = "Wetterlage:"
	markerSnowDepth = "durchschnittliche Schneehöhe"
	markerSnowType  = "Schneeart:"
	markerSnowfall  = "letzter Schneefall:"

	datePrefix = "TAGES-NEWS - "
	celsius    = "°C"
	hourSuffix = "Uhr"

	sourceDateLayout = "02.01.2006"
	isoDateLayout    = "2006-01-02"
)

// cellRule ties a marker to the handler that pulls the field value out of a
// matching cell. Rules are checked independently, so one cell may set several
// fields. The source document carries one instance per field; when it does
// not, the last match wins.
type cellRule struct {
	marker string
	apply  func(cell string, idx int, row []string, r *Report)
}

var cellRules = []cellRule{
	{markerDate, applyDate},
	{markerTemp, applyTemperature},
	{markerTime, applyUpdateTime},
	{markerCondition, labeledField(markerCondition, func(r *Report, v string) { r.WeatherCondition = v })},
	{markerSnowDepth, applySnowDepth},
	{markerSnowType, labeledField(markerSnowType, func(r *Report, v string) { r.SnowType = v })},
	{markerSnowfall, labeledField(markerSnowfall, func(r *Report, v string) { r.LastSnowfall = v })},
}

// Extract visits every cell of every row of every table, in order, and
// accumulates matches into a single report. Any number of Unknown fields is a
// valid outcome; the caller decides whether a partial report is worth keeping.
func Extract(tables [][][]string) Report {
	r := NewReport()
	for _, table := range tables {
		for _, row := range table {
			for idx, cell := range row {
				if strings.TrimSpace(cell) == "" {
					continue
				}
				applyCell(cell, idx, row, &r)
			}
		}
	}
	return r
}

func applyCell(cell string, idx int, row []string, r *Report) {
	for _, rule := range cellRules {
		if strings.Contains(cell, rule.marker) {
			rule.apply(cell, idx, row, r)
		}
	}
}

// applyDate normalizes "TAGES-NEWS - DD.MM.YYYY" to ISO form. An unparsable
// date leaves the field at its prior value.
func applyDate(cell string, _ int, _ []string, r *Report) {
	raw := strings.TrimSpace(strings.ReplaceAll(cell, datePrefix, ""))
	t, err := time.Parse(sourceDateLayout, raw)
	if err != nil {
		log.Warn().Str("value", raw).Msg("could not parse bulletin date")
		return
	}
	r.Date = t.Format(isoDateLayout)
}

// applyTemperature prefers the neighbor cell, then a second line within the
// same cell. Either way the candidate must carry the degree marker.
func applyTemperature(cell string, idx int, row []string, r *Report) {
	if v, ok := nextCell(row, idx); ok && strings.Contains(v, celsius) {
		r.Temperature = v
	}
	if r.Temperature != Unknown {
		return
	}
	if v, ok := lineAfter(cell, markerTemp); ok && strings.Contains(v, celsius) {
		r.Temperature = v
	}
}

// applyUpdateTime takes the same-line remainder when it already names an
// hour, falling back to the neighbor cell.
func applyUpdateTime(cell string, idx int, row []string, r *Report) {
	rest := afterMarker(cell, markerTime)
	if strings.Contains(rest, hourSuffix) {
		r.UpdateTime = strings.TrimSpace(rest)
		return
	}
	if v, ok := nextCell(row, idx); ok {
		r.UpdateTime = v
	}
}

func applySnowDepth(cell string, idx int, row []string, r *Report) {
	if v, ok := nextCell(row, idx); ok {
		r.SnowDepth = v
		return
	}
	if v, ok := lineAfter(cell, markerSnowDepth); ok {
		r.SnowDepth = v
	}
}

// labeledField builds the handler for the plain "label: value" fields, which
// read the neighbor cell first and the same-cell remainder second.
func labeledField(marker string, set func(*Report, string)) func(string, int, []string, *Report) {
	return func(cell string, idx int, row []string, r *Report) {
		if v, ok := nextCell(row, idx); ok {
			set(r, v)
			return
		}
		if v := strings.TrimSpace(afterMarker(cell, marker)); v != "" {
			set(r, v)
		}
	}
}

// nextCell returns the trimmed neighbor cell when it exists and is non-empty.
func nextCell(row []string, idx int) (string, bool) {
	if idx+1 >= len(row) {
		return "", false
	}
	v := strings.TrimSpace(row[idx+1])
	return v, v != ""
}

// afterMarker returns the raw text following the first occurrence of marker
// within the cell.
func afterMarker(cell, marker string) string {
	_, rest, ok := strings.Cut(cell, marker)
	if !ok {
		return ""
	}
	return rest
}

// lineAfter returns the first non-empty line following a line that contains
// marker, for cells where the value sits below the label.
func lineAfter(cell, marker string) (string, bool) {
	lines := strings.Split(cell, "\n")
	for i, line := range lines {
		if strings.Contains(line, marker) && i+1 < len(lines) {
			if v := strings.TrimSpace(lines[i+1]); v != "" {
				return v, true
			}
		}
	}
	return "", false
}
