// Package aggregate owns the per-scan frequency tables and running totals.
//
// An Aggregator ingests raw text one block or line at a time and feeds every
// normalized line through the tokenizer into five domains: characters, words,
// punctuation, pairs and triplets. Totals track lines, qualifying words and
// raw characters. Callers that scan several corpora in parallel create one
// Aggregator per unit of work.
package aggregate
