// Package export serializes stored mood entries for display and handoff.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// Format names accepted by Write.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Lister is the part of storage.Storage export needs.
type Lister interface {
	ListAll(ctx context.Context) ([]mood.Entry, error)
}

var _ Lister = storage.Storage(nil)

// ExportAll returns every stored entry, newest first, as indented JSON.
// Missing coordinates are written as explicit nulls and an empty store
// produces "[]". A read failure returns the store's error and no output.
func ExportAll(ctx context.Context, store Lister) (string, error) {
	entries, err := store.ListAll(ctx)
	if err != nil {
		return "", err
	}
	data, err := JSON(entries)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// JSON encodes entries as an indented JSON array.
func JSON(entries []mood.Entry) ([]byte, error) {
	if entries == nil {
		entries = []mood.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding entries: %w", err)
	}
	return data, nil
}

// Write reads all entries and writes them to w in the given format.
// Nothing is written if the read fails.
func Write(ctx context.Context, w io.Writer, store Lister, format string) error {
	switch format {
	case "", FormatJSON:
		out, err := ExportAll(ctx, store)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case FormatCSV:
		entries, err := store.ListAll(ctx)
		if err != nil {
			return err
		}
		return WriteCSV(w, entries)
	default:
		return fmt.Errorf("invalid format: %s (valid values: json, csv)", format)
	}
}

// WriteCSV writes entries with a header row. Missing coordinates are empty cells.
func WriteCSV(w io.Writer, entries []mood.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "timestamp", "mood", "photoUri", "latitude", "longitude"}); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			strconv.FormatInt(e.ID, 10),
			e.Timestamp,
			strconv.Itoa(int(e.Mood)),
			e.PhotoURI,
			formatCoord(e.Latitude),
			formatCoord(e.Longitude),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCoord(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
