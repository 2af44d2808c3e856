package ports

import "rustdocset/internal/domain"

// SearchIndex materializes the search index inside a docset bundle.
type SearchIndex interface {
	// Write creates the index file under docsetRoot and inserts every
	// entry in one transaction. A duplicate (name, kind, path) triple
	// fails the whole write; no partially populated index survives.
	Write(docsetRoot string, entries []domain.Entry) error
}
