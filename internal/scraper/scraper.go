package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/umbcdata/degree-offerings/internal/offering"
)

const (
	DegreesURL    = "https://www.umbc.edu/degrees/"
	TableSelector = ".order-table"
	UserAgent     = "degree-offerings/1.0 (github.com/umbcdata/degree-offerings)"
	Timeout       = 30 * time.Second
)

var (
	ErrTableNotFound = errors.New("offerings table not found")
	ErrNoRows        = errors.New("offerings table has no program rows")
	ErrMissingTitle  = errors.New("row has no title cell")
)

// Scraper handles fetching and parsing the degree programs page
type Scraper struct {
	client   *http.Client
	url      string
	selector string
}

// Option configures a Scraper
type Option func(*Scraper)

// WithURL sets the page to fetch
func WithURL(url string) Option {
	return func(s *Scraper) {
		s.url = url
	}
}

// WithSelector sets the CSS selector of the offerings table
func WithSelector(selector string) Option {
	return func(s *Scraper) {
		s.selector = selector
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.client.Timeout = d
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scraper) {
		s.client = c
	}
}

// New creates a new Scraper instance
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url:      DegreesURL,
		selector: TableSelector,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the page the scraper fetches
func (s *Scraper) URL() string {
	return s.url
}

// Selector returns the CSS selector of the offerings table
func (s *Scraper) Selector() string {
	return s.selector
}

// FetchPage downloads the raw markup of the degree programs page
func (s *Scraper) FetchPage(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	return body, nil
}

// FetchRows fetches the page and extracts the program rows of its offerings table
func (s *Scraper) FetchRows(ctx context.Context) ([]offering.Row, error) {
	body, err := s.FetchPage(ctx)
	if err != nil {
		return nil, err
	}

	return ParseRows(bytes.NewReader(body), s.selector)
}

// ParseRows extracts the program rows from the first table matching selector.
// The first row is the column header and is not returned.
func ParseRows(r io.Reader, selector string) ([]offering.Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, selector)
	}

	trs := table.Find("tr")
	if trs.Length() < 2 {
		return nil, ErrNoRows
	}

	rows := make([]offering.Row, 0, trs.Length()-1)
	var rowErr error
	trs.Slice(1, goquery.ToEnd).EachWithBreak(func(i int, tr *goquery.Selection) bool {
		row, err := parseRow(tr)
		if err != nil {
			// i is relative to the first program row, +1 skips the header
			rowErr = fmt.Errorf("row %d: %w", i+1, err)
			return false
		}
		rows = append(rows, row)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return rows, nil
}

// parseRow reads the title and data cells of a single table row
func parseRow(tr *goquery.Selection) (offering.Row, error) {
	// Well-formed rows carry the program name in a <th>, a few only use <td>
	titleCell := tr.Find("th").First()
	if titleCell.Length() == 0 {
		titleCell = tr.Find("td").First()
	}
	if titleCell.Length() == 0 {
		return offering.Row{}, ErrMissingTitle
	}

	// Some titles have a subtitle on a second line
	title, _, _ := strings.Cut(titleCell.Text(), "\n")

	cells := make([]string, 0)
	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		if td.IsSelection(titleCell) {
			return
		}
		cells = append(cells, td.Text())
	})

	return offering.Row{Title: title, Cells: cells}, nil
}
