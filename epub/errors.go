package epub

import "errors"

// Errors returned when an archive cannot be opened or an entry cannot be read.
var (
	// ErrNotFound indicates the archive path does not resolve to a file.
	ErrNotFound = errors.New("archive not found")

	// ErrInvalidFormat indicates the file exists but is not a readable zip archive.
	ErrInvalidFormat = errors.New("not a valid zip or epub file")

	// ErrEntryTooLarge indicates an entry decompresses past the read limit.
	ErrEntryTooLarge = errors.New("entry too large")

	// ErrDirectory indicates the entry is a directory placeholder with no payload.
	ErrDirectory = errors.New("entry is a directory")

	// ErrUnknownEntry indicates the Entry did not come from an Entries iterator.
	ErrUnknownEntry = errors.New("entry not in archive")
)
