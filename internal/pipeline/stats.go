package pipeline

// RunStats reports the outcome of one compile: how much of the catalog was
// present, what was skipped, and the size of the produced document.
type RunStats struct {
	Cataloged   int   // Catalog entries considered.
	Included    int   // Sections resolved and merged.
	Skipped     int   // Catalog entries with no file present.
	OutputBytes int64 // Size of the combined document (0 on dry-run or failure).
	Failed      bool  // Any fatal condition; the command exits non-zero.
}
