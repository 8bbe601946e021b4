// Package isbndb implements a lookup driver over the ISBNdb XML API: one
// ISBN in, one normalized book record (or an explicit not-found) out.
package isbndb

import (
	"context"
	"errors"
	"strings"

	"isbndb/internal/drivers"
)

// Driver implements drivers.Driver against ISBNdb.
type Driver struct {
	client *Client
}

func NewDriver(client *Client) *Driver {
	return &Driver{client: client}
}

func (d *Driver) Name() string {
	return "isbndb"
}

// Search looks up a single ISBN. Each lookup is three sequential round-trips:
// the book details document, the authors document, and a publisher-details
// fetch keyed by the publisher id found in the first document — the last one
// cannot be issued earlier because it depends on extracted data. A details
// document without book data is a NotFound; a failed authors or publisher
// fetch degrades to empty fields once primary book data exists.
func (d *Driver) Search(ctx context.Context, isbn string) (drivers.Result, error) {
	details, detailsURL, err := d.client.fetch(ctx, searchTypeBooks, "isbn", isbn, resultsDetails)
	if errors.Is(err, ErrNoData) {
		return drivers.NotFound(), nil
	}
	if err != nil {
		return drivers.Result{}, err
	}
	if len(details.Books) == 0 {
		return drivers.NotFound(), nil
	}
	book := details.Books[0]

	rec := &drivers.Record{
		ISBN:         book.ISBN13,
		ISBN10:       book.ISBN,
		ISBN13:       book.ISBN13,
		EAN13:        book.ISBN13,
		DeweyDecimal: book.Details.DeweyDecimal,
		SourceURL:    detailsURL,
	}

	rec.Title = book.TitleLong
	if rec.Title == "" {
		rec.Title = book.Title
	}

	rec.Author, err = d.fetchAuthors(ctx, isbn)
	if err != nil {
		return drivers.Result{}, err
	}
	if rec.Author == "" {
		rec.Author = strings.TrimSpace(book.AuthorsText)
	}

	rec.Year = extractYear(book.Publisher.Text)
	if rec.Year == "" {
		rec.Year = extractYear(book.Details.EditionInfo)
	}

	if id := book.Publisher.PublisherID; id != "" {
		name, location, err := d.fetchPublisher(ctx, id)
		if err != nil {
			return drivers.Result{}, err
		}
		rec.Publisher = name
		rec.Location = location
	}

	rec.Binding, _ = parseEditionInfo(book.Details.EditionInfo)

	phys := book.Details.PhysicalDescriptionText
	if dims, ok := parseDimensions(phys); ok {
		rec.Height = &dims.height
		rec.Width = &dims.width
		rec.Depth = &dims.depth
	}
	if grams, ok := parseWeight(phys); ok {
		rec.Weight = &grams
	}
	if pages, ok := parsePages(phys); ok {
		rec.Pages = &pages
	}

	return drivers.Found(rec), nil
}

// fetchAuthors joins every Person node of the authors document with "; ".
// A miss yields an empty string, never an error.
func (d *Driver) fetchAuthors(ctx context.Context, isbn string) (string, error) {
	doc, _, err := d.client.fetch(ctx, searchTypeBooks, "isbn", isbn, resultsAuthors)
	if errors.Is(err, ErrNoData) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if len(doc.Books) == 0 {
		return "", nil
	}
	return strings.TrimSpace(strings.Join(doc.Books[0].Authors, "; ")), nil
}

// fetchPublisher resolves the canonical publisher name and location for a
// publisher id. A miss degrades to empty values.
func (d *Driver) fetchPublisher(ctx context.Context, publisherID string) (name, location string, err error) {
	doc, _, err := d.client.fetch(ctx, searchTypePublishers, "publisher_id", publisherID, resultsDetails)
	if errors.Is(err, ErrNoData) {
		return "", "", nil
	}
	if err != nil {
		return "", "", err
	}
	if len(doc.Publishers) == 0 {
		return "", "", nil
	}
	p := doc.Publishers[0]
	return p.Name, p.Details.Location, nil
}
