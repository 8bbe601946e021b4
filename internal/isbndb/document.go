package isbndb

import "encoding/xml"

// document mirrors the ISBNdb XML envelope. Only the elements the extractor
// reads are mapped; anything the API omits decodes to its zero value, so a
// missing optional node never aborts extraction.
type document struct {
	XMLName    xml.Name        `xml:"ISBNdb"`
	Books      []bookData      `xml:"BookList>BookData"`
	Publishers []publisherData `xml:"PublisherList>PublisherData"`
}

type bookData struct {
	ISBN        string        `xml:"isbn,attr"`
	ISBN13      string        `xml:"isbn13,attr"`
	Title       string        `xml:"Title"`
	TitleLong   string        `xml:"TitleLong"`
	AuthorsText string        `xml:"AuthorsText"`
	Publisher   publisherText `xml:"PublisherText"`
	Details     bookDetails   `xml:"Details"`
	// Authors holds the literal text of every Person node in an "authors"
	// results document.
	Authors []string `xml:"Authors>Person"`
}

type publisherText struct {
	PublisherID string `xml:"publisher_id,attr"`
	Text        string `xml:",chardata"`
}

type bookDetails struct {
	EditionInfo             string `xml:"edition_info,attr"`
	PhysicalDescriptionText string `xml:"physical_description_text,attr"`
	DeweyDecimal            string `xml:"dewey_decimal,attr"`
}

type publisherData struct {
	Name    string           `xml:"Name"`
	Details publisherDetails `xml:"Details"`
}

type publisherDetails struct {
	Location string `xml:"location,attr"`
}
