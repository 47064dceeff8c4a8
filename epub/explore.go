package epub

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const previewLength = 100

var separator = strings.Repeat("-", 20)

// Outcome is the archive level result of an exploration
type Outcome string

// Possible outcomes
const (
	OutcomeOK            Outcome = "ok"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeInvalidFormat Outcome = "invalid_format"
	OutcomeUnexpected    Outcome = "unexpected"
)

// Report summarises a single call to Explore
type Report struct {
	Path    string
	Outcome Outcome
	Entries int
	Failed  int
	Err     error
}

// Explorer prints the contents of epub archives
type Explorer struct {
	out io.Writer
	log logrus.FieldLogger
}

// NewExplorer returns an Explorer that writes its listing to out.
// A nil logger falls back to the logrus standard logger.
func NewExplorer(out io.Writer, logger logrus.FieldLogger) *Explorer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Explorer{
		out: out,
		log: logger,
	}
}

// Explore lists every entry of the archive at path together with a preview
// of its content. Every failure is printed; nothing is returned as an error.
// A broken entry is reported and skipped, the remaining entries are still
// listed.
func (e *Explorer) Explore(path string) (rep Report) {
	rep.Path = path
	l := e.log.WithField("path", path)

	defer func() {
		if r := recover(); r != nil {
			rep.Outcome = OutcomeUnexpected
			rep.Err = fmt.Errorf("%v", r)
			l.WithField("err", rep.Err).Error("explore panicked")
			e.printf("An unexpected error occurred: %v\n", rep.Err)
		}
	}()

	a, err := OpenArchive(path)
	if err != nil {
		rep.Err = err
		switch {
		case errors.Is(err, ErrNotFound):
			rep.Outcome = OutcomeNotFound
			e.printf("Error: File '%s' not found.\n", path)
		case errors.Is(err, ErrInvalidFormat):
			rep.Outcome = OutcomeInvalidFormat
			e.printf("Error: '%s' is not a valid ZIP or EPUB file.\n", path)
		default:
			rep.Outcome = OutcomeUnexpected
			e.printf("An unexpected error occurred: %v\n", err)
		}
		l.WithFields(logrus.Fields{
			"err":     err,
			"outcome": rep.Outcome,
		}).Debug("could not open archive")
		return rep
	}
	defer func() {
		if err := a.Close(); err != nil {
			l.WithField("err", err).Warn("could not close archive")
		}
	}()

	rep.Outcome = OutcomeOK
	it := a.Entries()
	for it.Next() {
		entry := it.Entry()
		rep.Entries++

		data, err := a.ReadEntry(entry)
		if err != nil {
			rep.Failed++
			l.WithFields(logrus.Fields{
				"entry": entry.Name,
				"err":   err,
			}).Debug("could not read entry")
			e.printf("Error reading '%s': %v\n", entry.Name, err)
			continue
		}
		e.printEntry(entry.Name, Decode(data))
	}

	l.WithFields(logrus.Fields{
		"entries": rep.Entries,
		"failed":  rep.Failed,
	}).Debug("explored archive")
	return rep
}

func (e *Explorer) printEntry(name, content string) {
	e.printf("Filename: %s\n", name)
	if preview, cut := Preview(content, previewLength); cut {
		e.printf("Content (first %d chars): %s\n", previewLength, preview)
	} else {
		e.printf("Content: %s\n", content)
	}
	e.printf("%s\n", separator)
}

func (e *Explorer) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.out, format, args...)
}
