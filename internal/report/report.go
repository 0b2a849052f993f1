// Package report renders catalog and user listings for the console.
// It is the display layer on top of the catalog engine: the engine
// answers the queries, this package formats them, either as aligned
// text tables or as JSON documents.
package report

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"github.com/fdarre/tome-rater/internal/domain"
	"github.com/fdarre/tome-rater/internal/service"
	"github.com/fdarre/tome-rater/internal/store"
)

// ErrUnknownFormat is returned when an output format is not supported.
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects the output encoding of a Renderer.
type Format string

// The supported output formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat converts a configuration string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Renderer writes catalog reports to a writer in a fixed format.
type Renderer struct {
	w      io.Writer
	format Format
}

// NewRenderer creates a renderer targeting the given writer.
func NewRenderer(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format}
}

// jsonDocument is the envelope of every JSON-formatted report.
type jsonDocument struct {
	Report string      `json:"report"`
	Items  interface{} `json:"items"`
}

// Catalog renders the book catalog with read counts and average ratings.
func (r *Renderer) Catalog(entries []store.BookReadCount) error {
	if r.format == FormatJSON {
		return r.writeJSON("catalog", entries)
	}

	tw := r.newTable()
	fmt.Fprintln(tw, "BOOK\tISBN\tPRICE\tREADS\tAVG RATING")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%d\t%.2f\n",
			entry.Book.Title,
			entry.Book.ISBN,
			entry.Book.Price,
			entry.Reads,
			entry.Book.AverageRating())
	}
	return tw.Flush()
}

// Users renders the registered users with their read and rating stats.
func (r *Renderer) Users(users []*domain.User) error {
	if r.format == FormatJSON {
		return r.writeJSON("users", users)
	}

	tw := r.newTable()
	fmt.Fprintln(tw, "NAME\tEMAIL\tBOOKS READ\tAVG RATING")
	for _, user := range users {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\n",
			user.Name,
			user.Email,
			user.BooksRead(),
			user.AverageRating())
	}
	return tw.Flush()
}

// MostRead renders a most-read ranking.
func (r *Renderer) MostRead(entries []store.BookReadCount) error {
	if r.format == FormatJSON {
		return r.writeJSON("most_read", entries)
	}

	tw := r.newTable()
	fmt.Fprintln(tw, "RANK\tBOOK\tREADS")
	for i, entry := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", i+1, entry.Book.Title, entry.Reads)
	}
	return tw.Flush()
}

// MostExpensive renders a price ranking.
func (r *Renderer) MostExpensive(prices []service.BookPrice) error {
	if r.format == FormatJSON {
		return r.writeJSON("most_expensive", prices)
	}

	tw := r.newTable()
	fmt.Fprintln(tw, "RANK\tBOOK\tPRICE")
	for i, entry := range prices {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\n", i+1, entry.Title, entry.Price)
	}
	return tw.Flush()
}

// ProlificReaders renders a ranking of users by books read.
func (r *Renderer) ProlificReaders(users []*domain.User) error {
	if r.format == FormatJSON {
		return r.writeJSON("prolific_readers", users)
	}

	tw := r.newTable()
	fmt.Fprintln(tw, "RANK\tREADER\tBOOKS READ")
	for i, user := range users {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", i+1, user.Name, user.BooksRead())
	}
	return tw.Flush()
}

func (r *Renderer) newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
}

func (r *Renderer) writeJSON(name string, items interface{}) error {
	doc, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(jsonDocument{Report: name, Items: items})
	if err != nil {
		return fmt.Errorf("failed to encode %s report: %w", name, err)
	}

	if _, err := r.w.Write(append(doc, '\n')); err != nil {
		return fmt.Errorf("failed to write %s report: %w", name, err)
	}
	return nil
}
