// Package finals provides the World Cup finals records and the win counts derived from them.
//
// Normalize turns the scraped finals table into Records keyed by year, folding
// historical country names into their present-day names. CountWins then counts
// titles per winning country. Both results are built once at startup and never
// mutated afterwards.
package finals
