// Package database keeps a local sqlite snapshot of the published CMS
// content so pages can still be served while the CMS is unreachable.
//
// # Layout
//
//	database/
//	├── database.go   # Connection setup and migrations
//	├── content.go    # Vocabulary, sutras, pratisakhya sutras, shabdas
//	└── sync_runs.go  # Snapshot refresh history
//
// # Usage
//
//	db, err := database.NewDatabase("./vyakarana.db")
//
//	// Replace a whole collection after fetching it from the CMS
//	err = db.ReplaceVocabulary(entries)
//
//	// Read it back, published rows only, in CMS order
//	entries, err := db.ListVocabulary()
//
// Every Replace method runs in a single transaction, so readers never see a
// half-written collection.
//
// Lookups return gorm.ErrRecordNotFound when nothing matches.
package database
