// Package rapidreader holds the records shared by the epub tools.
package rapidreader

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("Query no results")

// ScanResult holds the result of exploring one archive
type ScanResult struct {
	ID        int    `storm:"id,increment"`
	RunID     string `storm:"index"`
	Path      string `storm:"index"`
	Outcome   string
	Entries   int
	Failed    int
	Error     string
	StartTime time.Time
	StopTime  time.Time
}

// Duration returns how long the scan took
func (sr ScanResult) Duration() time.Duration {
	return sr.StopTime.Sub(sr.StartTime)
}
