package isbndb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isbndb/internal/config"
)

const detailsXML = `<?xml version="1.0" encoding="UTF-8"?>
<ISBNdb server_time="2008-12-31T01:01:01Z">
<BookList total_results="1" page_size="10" page_number="1" shown_results="1">
<BookData book_id="learning_perl" isbn="0596101058" isbn13="9780596101053">
<Title>Learning Perl</Title>
<TitleLong>Learning Perl, 4th Edition</TitleLong>
<AuthorsText>Randal L. Schwartz, Tom Phoenix and brian d foy</AuthorsText>
<PublisherText publisher_id="oreilly">Sebastopol, CA : O'Reilly, 2005.</PublisherText>
<Details dewey_decimal="005.133" edition_info="(pbk.)" physical_description_text='416 pages, 6.5"x9.25"x1.5", 1.2 lbs'/>
</BookData>
</BookList>
</ISBNdb>`

const authorsXML = `<?xml version="1.0" encoding="UTF-8"?>
<ISBNdb server_time="2008-12-31T01:01:02Z">
<BookList total_results="1">
<BookData book_id="learning_perl" isbn="0596101058" isbn13="9780596101053">
<Title>Learning Perl</Title>
<Authors>
<Person person_id="schwartz_randal_l">Schwartz, Randal L.</Person>
<Person person_id="phoenix_tom">Tom Phoenix</Person>
<Person person_id="foy_brian_d">brian d foy</Person>
</Authors>
</BookData>
</BookList>
</ISBNdb>`

const publisherXML = `<?xml version="1.0" encoding="UTF-8"?>
<ISBNdb server_time="2008-12-31T01:01:03Z">
<PublisherList total_results="1">
<PublisherData publisher_id="oreilly">
<Name>O'Reilly Media</Name>
<Details location="Sebastopol, CA"/>
</PublisherData>
</PublisherList>
</ISBNdb>`

const emptyBookListXML = `<?xml version="1.0" encoding="UTF-8"?>
<ISBNdb server_time="2008-12-31T01:01:04Z">
<BookList total_results="0" page_size="10" page_number="1" shown_results="0">
</BookList>
</ISBNdb>`

// fakeAPI serves canned XML per search type and result shape and counts the
// calls it sees.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	details    func(w http.ResponseWriter)
	authors    func(w http.ResponseWriter)
	publishers func(w http.ResponseWriter)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:      make(map[string]int),
		details:    serveXML(detailsXML),
		authors:    serveXML(authorsXML),
		publishers: serveXML(publisherXML),
	}
}

func serveXML(body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(body))
	}
}

func serveStatus(code int) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.WriteHeader(code)
	}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	results := r.URL.Query().Get("results")
	key := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".xml") + "/" + results

	f.mu.Lock()
	f.calls[key]++
	f.mu.Unlock()

	switch {
	case r.URL.Path == "/books.xml" && results == "details":
		f.details(w)
	case r.URL.Path == "/books.xml" && results == "authors":
		f.authors(w)
	case r.URL.Path == "/publishers.xml":
		f.publishers(w)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) callCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func newTestDriver(t *testing.T, api *fakeAPI) *Driver {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	return NewDriver(NewClient(config.API{BaseURL: server.URL, AccessKey: "TESTKEY"}))
}

func TestDriver_Name(t *testing.T) {
	assert.Equal(t, "isbndb", NewDriver(nil).Name())
}

func TestSearch_FullRecord(t *testing.T) {
	api := newFakeAPI()
	driver := newTestDriver(t, api)

	result, err := driver.Search(context.Background(), "0596101058")
	require.NoError(t, err)
	require.True(t, result.Found)
	rec := result.Record

	assert.Equal(t, "9780596101053", rec.ISBN)
	assert.Equal(t, "0596101058", rec.ISBN10)
	assert.Equal(t, "9780596101053", rec.ISBN13)
	assert.Equal(t, "9780596101053", rec.EAN13)

	assert.Equal(t, "Learning Perl, 4th Edition", rec.Title)
	assert.Equal(t, "Schwartz, Randal L.; Tom Phoenix; brian d foy", rec.Author)

	assert.Equal(t, "O'Reilly Media", rec.Publisher)
	assert.Equal(t, "Sebastopol, CA", rec.Location)
	assert.Equal(t, "2005", rec.Year)

	assert.Equal(t, "Paperback", rec.Binding)
	require.NotNil(t, rec.Pages)
	assert.Equal(t, 416, *rec.Pages)

	require.NotNil(t, rec.Height)
	require.NotNil(t, rec.Width)
	require.NotNil(t, rec.Depth)
	assert.Equal(t, 92.5, *rec.Height)
	assert.Equal(t, 65.0, *rec.Width)
	assert.Equal(t, 15.0, *rec.Depth)

	require.NotNil(t, rec.Weight)
	assert.InDelta(t, 544.31, *rec.Weight, 0.01)

	assert.Equal(t, "005.133", rec.DeweyDecimal)
	assert.Contains(t, rec.SourceURL, "/books.xml?")
	assert.Contains(t, rec.SourceURL, "value1=0596101058")

	assert.Equal(t, 1, api.callCount("books/details"))
	assert.Equal(t, 1, api.callCount("books/authors"))
	assert.Equal(t, 1, api.callCount("publishers/details"))
}

func TestSearch_EmptyBookListIsNotFound(t *testing.T) {
	api := newFakeAPI()
	api.details = serveXML(emptyBookListXML)
	driver := newTestDriver(t, api)

	result, err := driver.Search(context.Background(), "0000000000")
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Nil(t, result.Record)

	// NotFound must short-circuit before the publisher path.
	assert.Equal(t, 0, api.callCount("publishers/details"))
}

func TestSearch_DetailsMissIsNotFound(t *testing.T) {
	api := newFakeAPI()
	api.details = serveStatus(http.StatusNotFound)
	driver := newTestDriver(t, api)

	result, err := driver.Search(context.Background(), "0596101058")
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, 0, api.callCount("publishers/details"))
}

func TestSearch_YearFallsBackToEditionInfo(t *testing.T) {
	api := newFakeAPI()
	api.details = serveXML(strings.NewReplacer(
		"Sebastopol, CA : O'Reilly, 2005.", "O'Reilly",
		`edition_info="(pbk.)"`, `edition_info="Hardcover; 2004-05-01"`,
	).Replace(detailsXML))
	driver := newTestDriver(t, api)

	result, err := driver.Search(context.Background(), "0596101058")
	require.NoError(t, err)
	require.True(t, result.Found)

	assert.Equal(t, "2004", result.Record.Year)
	assert.Equal(t, "Hardcover", result.Record.Binding)
}

func TestSearch_YearPrefersPublisherText(t *testing.T) {
	api := newFakeAPI()
	api.details = serveXML(strings.Replace(detailsXML,
		`edition_info="(pbk.)"`, `edition_info="Hardcover; 1999-01-01"`, 1))
	driver := newTestDriver(t, api)

	result, err := driver.Search(context.Background(), "0596101058")
	require.NoError(t, err)
	require.True(t, result.Found)

	// Both the publisher text and the edition info carry a year; the
	// publisher text wins.
	assert.Equal(t, "2005", result.Record.Year)
}

func TestSearch_PublisherMissDegradesGracefully(t *testing.T) {
	api := newFakeAPI()
	api.publishers = serveStatus(http.StatusInternalServerError)
	driver := newTestDriver(t, api)

	result, err := driver.Search(context.Background(), "0596101058")
	require.NoError(t, err)
	require.True(t, result.Found)

	assert.Empty(t, result.Record.Publisher)
	assert.Empty(t, result.Record.Location)
	assert.Equal(t, "Learning Perl, 4th Edition", result.Record.Title)
}

func TestSearch_AuthorsMissFallsBackToAuthorsText(t *testing.T) {
	api := newFakeAPI()
	api.authors = serveStatus(http.StatusNotFound)
	driver := newTestDriver(t, api)

	result, err := driver.Search(context.Background(), "0596101058")
	require.NoError(t, err)
	require.True(t, result.Found)

	assert.Equal(t, "Randal L. Schwartz, Tom Phoenix and brian d foy", result.Record.Author)
}

func TestSearch_ShortTitleFallback(t *testing.T) {
	api := newFakeAPI()
	api.details = serveXML(strings.Replace(detailsXML,
		"<TitleLong>Learning Perl, 4th Edition</TitleLong>", "<TitleLong></TitleLong>", 1))
	driver := newTestDriver(t, api)

	result, err := driver.Search(context.Background(), "0596101058")
	require.NoError(t, err)
	require.True(t, result.Found)

	assert.Equal(t, "Learning Perl", result.Record.Title)
}

func TestSearch_MalformedDetailsXMLIsAHardError(t *testing.T) {
	api := newFakeAPI()
	api.details = serveXML(`<?xml version="1.0"?><ISBNdb><BookList>`)
	driver := newTestDriver(t, api)

	_, err := driver.Search(context.Background(), "0596101058")
	require.Error(t, err)
}

func TestSearch_Idempotent(t *testing.T) {
	api := newFakeAPI()
	driver := newTestDriver(t, api)

	first, err := driver.Search(context.Background(), "0596101058")
	require.NoError(t, err)
	second, err := driver.Search(context.Background(), "0596101058")
	require.NoError(t, err)

	assert.Equal(t, first.Record, second.Record)
}
