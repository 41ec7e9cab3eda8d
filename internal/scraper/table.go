package scraper

import (
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// Column name aliases for the finals table. The first entry is the name used
// on the source page.
var (
	YearColumns     = []string{"Year"}
	WinnerColumns   = []string{"Winners", "Winner"}
	RunnerUpColumns = []string{"Runners-up", "RunnerUp", "Runner-up"}
)

// footnotePattern matches bracketed footnote markers such as "[3]" or "[n 1]"
var footnotePattern = regexp.MustCompile(`\[[^\]]*\]`)

// noiseSelector matches nodes whose text never belongs in a cell value
const noiseSelector = `sup.reference, style, script, .sortkey, [style*="display:none"]`

// Table is one HTML table read into rows of equal width
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column returns the index of the first column matching any of names,
// compared case-insensitively, or -1.
func (t Table) Column(names ...string) int {
	for _, name := range names {
		for i, col := range t.Columns {
			if strings.EqualFold(col, name) {
				return i
			}
		}
	}
	return -1
}

// HasColumns reports whether every alias group has a matching column
func (t Table) HasColumns(groups ...[]string) bool {
	for _, names := range groups {
		if t.Column(names...) < 0 {
			return false
		}
	}
	return true
}

// ParseTables reads every <table> in the document, in document order
func ParseTables(r io.Reader) ([]Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{Reason: "reading HTML", Err: err}
	}

	doc.Find(noiseSelector).Remove()

	tables := make([]Table, 0)
	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		tables = append(tables, parseTable(tbl))
	})

	return tables, nil
}

// spanned is a cell value carried down into following rows by rowspan
type spanned struct {
	text string
	left int
}

// parseTable expands one table into a grid. Leading rows made only of <th>
// cells form the header; the first of them names the columns.
func parseTable(tbl *goquery.Selection) Table {
	// Rows of nested tables belong to those tables
	rows := tbl.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").IsSelection(tbl)
	})

	carry := make(map[int]*spanned)
	var table Table
	inHeader := true

	rows.Each(func(_ int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered("th, td")
		if cells.Length() == 0 {
			return
		}

		allHeader := cells.Length() == cells.Filter("th").Length()
		values := expandRow(cells, carry)

		if inHeader && allHeader {
			if table.Columns == nil {
				table.Columns = values
			}
			return
		}
		inHeader = false
		table.Rows = append(table.Rows, values)
	})

	// Pad ragged rows to the widest row or header
	width := len(table.Columns)
	for _, row := range table.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for len(table.Columns) < width {
		table.Columns = append(table.Columns, "")
	}
	for i, row := range table.Rows {
		for len(row) < width {
			row = append(row, "")
		}
		table.Rows[i] = row
	}

	return table
}

// expandRow lays out one row's cells, interleaving values carried down from
// rowspan cells above and repeating colspan cells.
func expandRow(cells *goquery.Selection, carry map[int]*spanned) []string {
	values := make([]string, 0, cells.Length())
	col := 0

	fill := func() {
		for {
			p, ok := carry[col]
			if !ok {
				return
			}
			values = append(values, p.text)
			p.left--
			if p.left == 0 {
				delete(carry, col)
			}
			col++
		}
	}

	cells.Each(func(_ int, cell *goquery.Selection) {
		fill()
		text := CleanText(cell.Text())
		colspan := spanAttr(cell, "colspan")
		rowspan := spanAttr(cell, "rowspan")
		for k := 0; k < colspan; k++ {
			values = append(values, text)
			if rowspan > 1 {
				carry[col] = &spanned{text: text, left: rowspan - 1}
			}
			col++
		}
	})
	fill()

	// Carried cells to the right of a short row, past a gap
	if len(carry) > 0 {
		rest := make([]int, 0, len(carry))
		for c := range carry {
			if c >= col {
				rest = append(rest, c)
			}
		}
		sort.Ints(rest)
		for _, c := range rest {
			for col < c {
				values = append(values, "")
				col++
			}
			fill()
		}
	}

	return values
}

func spanAttr(cell *goquery.Selection, name string) int {
	raw, ok := cell.Attr(name)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(raw, ";")))
	if err != nil || n < 1 {
		return 1
	}
	// Browsers clamp absurd spans; so do we
	if n > 1000 {
		return 1000
	}
	return n
}

// CleanText strips footnote markers, collapses whitespace and normalizes the
// text to Unicode NFC so that names compare equal across cells.
func CleanText(s string) string {
	s = footnotePattern.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	return norm.NFC.String(s)
}
