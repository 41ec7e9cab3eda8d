// Package scraper provides HTTP fetching and HTML table parsing for the World Cup finals page.
//
// The scraper package fetches the public list of FIFA World Cup finals and reads every
// table on the page into a rectangular Table, expanding rowspan and colspan cells and
// stripping footnote markers. SelectFinals then picks the table holding the finals
// results, preferring the configured position and falling back to a column match.
package scraper
