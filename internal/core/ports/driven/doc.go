// Package driven defines the outbound port interfaces the core depends
// on: the deck backend, the notes file codecs, and the import history
// store. Adapters implement these; the core never reaches past them.
package driven
