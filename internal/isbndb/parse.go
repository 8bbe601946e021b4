package isbndb

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// gramsPerPound matches the upstream conversion constant exactly.
const gramsPerPound = 1 / 0.00220462

// bindingCodes maps edition codes the API uses verbatim to binding names.
// A code only applies when it is the entire edition-info string.
var bindingCodes = map[string]string{
	"(pbk.)":           "Paperback",
	"(electronic bk.)": "eBook",
}

var (
	yearRe        = regexp.MustCompile(`\b\d{4}\b`)
	dimensionsRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)"x(\d+(?:\.\d+)?)"x(\d+(?:\.\d+)?)"`)
	weightRe      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*lbs?\b`)
	pagesRe       = regexp.MustCompile(`(\d+)\s+pages`)
	pagesAbbrevRe = regexp.MustCompile(`(\d+)\s+p\.`)
)

// extractYear returns the first 4-digit year found in s, or "".
func extractYear(s string) string {
	return yearRe.FindString(s)
}

// parseEditionInfo splits an edition-info string on ";" into the binding and
// a secondary date token. When the whole string is a recognized edition code,
// the mapped binding name wins over the split-derived one.
func parseEditionInfo(s string) (binding, date string) {
	binding, date, _ = strings.Cut(s, ";")
	binding = strings.TrimSpace(binding)
	date = strings.TrimSpace(date)
	if name, ok := bindingCodes[s]; ok {
		binding = name
	}
	return binding, date
}

// dimensions holds the three measurements after sorting and conversion.
type dimensions struct {
	height, width, depth float64
}

// parseDimensions extracts three inch measurements of the form N"xN"xN".
// Values are sorted descending and assigned largest to height, middle to
// width, smallest to depth, then scaled by 10. Both the assignment order and
// the multiplier follow the upstream convention and must not be corrected.
func parseDimensions(s string) (dimensions, bool) {
	m := dimensionsRe.FindStringSubmatch(s)
	if m == nil {
		return dimensions{}, false
	}
	values := make([]float64, 3)
	for i := range values {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return dimensions{}, false
		}
		values[i] = v
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))
	return dimensions{
		height: values[0] * 10,
		width:  values[1] * 10,
		depth:  values[2] * 10,
	}, true
}

// parseWeight converts a "N lb(s)" weight to grams.
func parseWeight(s string) (float64, bool) {
	m := weightRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	pounds, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return pounds * gramsPerPound, true
}

// parsePages finds a page count written as "N pages" or, failing that, "N p.".
func parsePages(s string) (int, bool) {
	m := pagesRe.FindStringSubmatch(s)
	if m == nil {
		m = pagesAbbrevRe.FindStringSubmatch(s)
	}
	if m == nil {
		return 0, false
	}
	pages, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return pages, true
}
