package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures so the caller can decide whether to abort the run.
var (
	// ErrTagConfiguration marks missing or malformed configuration. Fatal.
	ErrTagConfiguration = goerr.NewTag("configuration")

	// ErrTagListing marks a failure while paging the source repository list. Fatal.
	ErrTagListing = goerr.NewTag("listing")

	// ErrTagMigration marks a failed migrate request for a single repository. Not fatal.
	ErrTagMigration = goerr.NewTag("migration")
)
