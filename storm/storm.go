package storm

import (
	"fmt"

	"github.com/asdine/storm"
	rapidreader "github.com/itsurkan/RapidReader"
	log "github.com/sirupsen/logrus"
)

type ScanResult = rapidreader.ScanResult

// DB stores scan history in a bolt file
type DB struct {
	db *storm.DB
}

// New opens or creates the history database at path
func New(path string) (*DB, error) {
	db, err := storm.Open(path)
	if err != nil {
		log.WithFields(log.Fields{
			"err":  err,
			"path": path,
		}).Error("could not open filedb")
		return nil, fmt.Errorf("Unable to open scan history: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the underlying bolt file
func (db *DB) Close() error {
	return db.db.Close()
}

// AddScan stores sr and sets its ID
func (db *DB) AddScan(sr *ScanResult) error {
	return db.db.Save(sr)
}

// GetScans returns the most recent scans first. A limit of 0 returns all.
func (db *DB) GetScans(limit int) ([]ScanResult, error) {
	var scans []ScanResult
	var err error
	if limit > 0 {
		err = db.db.All(&scans, storm.Limit(limit), storm.Reverse())
	} else {
		err = db.db.All(&scans, storm.Reverse())
	}
	return scans, err
}

// GetScansForPath returns every stored scan of a single archive
func (db *DB) GetScansForPath(path string) ([]ScanResult, error) {
	var scans []ScanResult
	err := db.db.Find("Path", path, &scans)
	if err == storm.ErrNotFound {
		return nil, rapidreader.ErrNotFound
	}
	return scans, err
}
