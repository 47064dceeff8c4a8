package epub

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// maxEntrySize caps the decompressed size of a single entry (256 MB).
const maxEntrySize int64 = 256 * 1024 * 1024

// Archive is a read-only handle on an opened epub (zip) file
type Archive struct {
	path  string
	zr    *zip.ReadCloser
	files []*zip.File
	limit int64
}

// Entry describes a single member of an archive
type Entry struct {
	Name string `json:"name"`
	Size uint64 `json:"size"`
	Dir  bool   `json:"dir"`

	file *zip.File
}

// OpenArchive opens the zip archive at path. The caller must call Close.
//
// Errors wrap ErrNotFound when path does not exist and ErrInvalidFormat
// when the file is not a zip archive; anything else is returned as is.
func OpenArchive(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		// zip.OpenReader returns an open reader alongside ErrInsecurePath
		if zr != nil {
			zr.Close()
		}
		return nil, classifyOpenError(err)
	}

	return &Archive{
		path:  path,
		zr:    zr,
		files: zr.File,
		limit: maxEntrySize,
	}, nil
}

func classifyOpenError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, zip.ErrFormat),
		errors.Is(err, zip.ErrAlgorithm),
		errors.Is(err, zip.ErrChecksum):
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return err
}

// Path returns the filesystem path the archive was opened from.
func (a *Archive) Path() string {
	return a.path
}

// Entries returns a fresh iterator over the archive entries in the order
// they are stored in the central directory.
func (a *Archive) Entries() *Entries {
	return &Entries{files: a.files}
}

// ReadEntry reads the full payload of an entry returned by Entries.
// Directory entries and damaged entries return an error.
func (a *Archive) ReadEntry(e Entry) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("unknown error reading entry: %v", r)
		}
	}()

	if a.zr == nil {
		return nil, fs.ErrClosed
	}
	if e.file == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, e.Name)
	}
	if e.Dir {
		return nil, fmt.Errorf("%w: %s", ErrDirectory, e.Name)
	}

	rc, err := e.file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	// read one byte past the limit so oversized entries are detected
	data, err = io.ReadAll(io.LimitReader(rc, a.limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > a.limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrEntryTooLarge, e.Name, a.limit)
	}
	return data, nil
}

// Close releases the underlying file. Close is idempotent.
func (a *Archive) Close() error {
	if a.zr == nil {
		return nil
	}
	err := a.zr.Close()
	a.zr = nil
	return err
}

// Entries iterates over archive entries. It is not restartable; call
// Archive.Entries again to start over.
type Entries struct {
	files []*zip.File
	next  int
	cur   Entry
}

// Next advances to the next entry and reports whether there was one.
func (it *Entries) Next() bool {
	if it.next >= len(it.files) {
		it.cur = Entry{}
		return false
	}
	f := it.files[it.next]
	it.next++
	it.cur = Entry{
		Name: f.Name,
		Size: f.UncompressedSize64,
		Dir:  strings.HasSuffix(f.Name, "/"),
		file: f,
	}
	return true
}

// Entry returns the entry Next moved to.
func (it *Entries) Entry() Entry {
	return it.cur
}
