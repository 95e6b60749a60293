// Package export turns fetched submissions into a CSV download. This is a
// pure transform on the client side of the API; there is no server export
// endpoint.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/eventtalk/formbuilder/internal/gateway"
	"github.com/eventtalk/formbuilder/internal/schema"
)

// Filename returns the download name for an export:
// submissions-<formID|all>-<epoch-millis>.csv.
func Filename(formID string, now time.Time) string {
	if formID == "" {
		formID = "all"
	}
	return fmt.Sprintf("submissions-%s-%d.csv", formID, now.UnixMilli())
}

// CSV renders submissions as comma-separated text. The header is
// "ID,Submission Date" followed by field labels in schema order, joined
// unquoted; keys submitted against fields no longer in the schema trail
// behind under their raw ids. String cells in data rows are quoted with
// embedded quotes doubled.
func CSV(fields []schema.Field, submissions []gateway.Submission) (string, error) {
	if len(submissions) == 0 {
		return "", fmt.Errorf("no data to export")
	}

	present := map[string]bool{}
	for _, sub := range submissions {
		for key := range sub.Data {
			present[key] = true
		}
	}

	var keys []string
	labels := map[string]string{}
	for _, f := range fields {
		if present[f.ID] {
			keys = append(keys, f.ID)
			labels[f.ID] = f.Label
			delete(present, f.ID)
		}
	}
	orphans := make([]string, 0, len(present))
	for key := range present {
		orphans = append(orphans, key)
	}
	sort.Strings(orphans)
	keys = append(keys, orphans...)

	header := make([]string, 0, len(keys)+2)
	header = append(header, "ID", "Submission Date")
	for _, key := range keys {
		label := labels[key]
		if label == "" {
			label = key
		}
		header = append(header, label)
	}

	lines := make([]string, 0, len(submissions)+1)
	lines = append(lines, strings.Join(header, ","))

	for _, sub := range submissions {
		row := make([]string, 0, len(keys)+2)
		row = append(row, quote(string(sub.ID)), quote(sub.CreatedAt))
		for _, key := range keys {
			row = append(row, cell(sub.Data[key]))
		}
		lines = append(lines, strings.Join(row, ","))
	}

	return strings.Join(lines, "\n"), nil
}

func cell(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return `""`
	case string:
		return quote(value)
	case bool:
		return fmt.Sprint(value)
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", value), "0"), ".")
	default:
		return quote(fmt.Sprint(value))
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
