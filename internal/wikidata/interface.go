package wikidata

import "context"

// DumpClient abstracts where the raw statement dump comes from, so the
// pipeline can run against the live SPARQL endpoint or a pre-exported file.
type DumpClient interface {
	FetchDump(ctx context.Context) ([]Statement, error)
}
