// Package dashboard provides the update handlers behind the World Cup dashboard page.
//
// A Context is built once from the finals records. Its Map, Country and Year
// methods answer selector changes: they read the Context only, so repeated or
// concurrent calls with the same input return the same result.
package dashboard
