package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"isbndb/internal/config"
	"isbndb/internal/isbndb"
)

// LookupCommand handles looking up a single ISBN from the command line.
type LookupCommand struct {
	ISBN      string
	AccessKey string
	AsJSON    bool
	Timeout   time.Duration
}

func NewLookupCommand() *LookupCommand {
	return &LookupCommand{}
}

func (cmd *LookupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)

	fs.StringVar(&cmd.ISBN, "isbn", "", "ISBN-10 or ISBN-13 to look up (required)")
	fs.StringVar(&cmd.AccessKey, "key", "", "ISBNdb access key (falls back to "+config.AccessKeyEnvVar+" or a "+config.AccessKeyFileName+" key file)")
	fs.BoolVar(&cmd.AsJSON, "json", false, "Print the record as JSON instead of a table")
	fs.DurationVar(&cmd.Timeout, "timeout", 30*time.Second, "Overall lookup timeout")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s lookup -isbn <isbn> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Look up a book on ISBNdb and print the normalized record.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s lookup -isbn 9780596101053\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s lookup -isbn 0596101058 -json\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ISBN == "" {
		return fmt.Errorf("required flag -isbn not provided")
	}

	return nil
}

func (cmd *LookupCommand) Run() error {
	cfg := config.NewConfig()
	if cmd.AccessKey != "" {
		cfg.API.AccessKey = cmd.AccessKey
	}

	client := isbndb.NewClient(cfg.API)
	driver := isbndb.NewDriver(client)

	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	result, err := driver.Search(ctx, cmd.ISBN)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if !result.Found {
		fmt.Printf("No book found for ISBN %s\n", cmd.ISBN)
		return nil
	}

	if cmd.AsJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result.Record)
	}

	renderRecordTable(result.Record.Fields())
	return nil
}

// fieldOrder fixes the display order of record fields in the table output.
var fieldOrder = []string{
	"isbn", "isbn10", "isbn13", "ean13",
	"title", "author", "publisher", "location", "year",
	"binding", "pages", "weight", "width", "height", "depth",
	"dewey_decimal", "book_link",
}

func renderRecordTable(fields map[string]any) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Field", "Value"})
	for _, key := range fieldOrder {
		value, ok := fields[key]
		if !ok {
			continue
		}
		t.AppendRow(table.Row{key, fmt.Sprintf("%v", value)})
	}
	t.Render()
}
