package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gofrs/uuid"
	rapidreader "github.com/itsurkan/RapidReader"
	"github.com/itsurkan/RapidReader/epub"
	"github.com/itsurkan/RapidReader/storm"
	"github.com/jaffee/commandeer"
	"github.com/kelseyhightower/envconfig"
	"github.com/mattn/go-zglob"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("service", "epubscan")

// Configuration holds the command line flags
type Configuration struct {
	Dir      string `help:"Directory to search for epub files"`
	Quiet    bool   `help:"Only print the summary, not the archive contents"`
	Database string `help:"Path of the scan history database, empty disables history"`
	Debug    bool   `help:"Enable debug logging, disables the progress bar"`
}

type environment struct {
	LogLevel string `default:"info"`
}

func newConfig() *Configuration {
	return &Configuration{
		Dir: ".",
	}
}

func main() {
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = "15:04:05.999"
	customFormatter.FullTimestamp = true
	logrus.SetFormatter(customFormatter)

	var env environment
	err := envconfig.Process("epubscan", &env)
	if err != nil {
		log.WithField("err", err).Fatal("Could not parse config from environment")
	}
	logLevel, err := logrus.ParseLevel(env.LogLevel)
	if err == nil {
		logrus.SetLevel(logLevel)
	}

	err = commandeer.Run(newConfig())
	if err != nil {
		log.WithField("err", err).Fatal("scan failed")
	}
}

// Run explores every epub below Dir
func (cfg *Configuration) Run() error {
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return cfg.scan(os.Stdout)
}

func (cfg *Configuration) scan(out io.Writer) error {
	matches, err := zglob.Glob(filepath.Join(cfg.Dir, "**/*.epub"))
	if err != nil {
		return fmt.Errorf("glob of %s failed: %w", cfg.Dir, err)
	}
	if len(matches) == 0 {
		log.WithField("dir", cfg.Dir).Info("no epub files found")
		return nil
	}
	sort.Strings(matches)

	runID, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("could not generate run id: %w", err)
	}
	l := log.WithField("run", runID.String())

	var history *storm.DB
	if cfg.Database != "" {
		history, err = storm.New(cfg.Database)
		if err != nil {
			return err
		}
		defer history.Close()
	}

	listing := out
	if cfg.Quiet {
		listing = io.Discard
	}
	explorer := epub.NewExplorer(listing, l)

	// the bar shares the terminal with the listing, so only show it in quiet mode
	var bar *pb.ProgressBar
	if cfg.Quiet && !cfg.Debug {
		bar = pb.Full.New(len(matches))
		bar.Start()
	}

	l.WithField("archives", len(matches)).Info("starting scan")
	reports := make([]epub.Report, 0, len(matches))
	for _, path := range matches {
		start := time.Now()
		rep := explorer.Explore(path)
		reports = append(reports, rep)

		if history != nil {
			sr := newScanResult(runID.String(), rep, start, time.Now())
			if err := history.AddScan(&sr); err != nil {
				l.WithFields(logrus.Fields{
					"err":  err,
					"path": path,
				}).Error("could not store scan result")
			}
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	for _, rep := range reports {
		fmt.Fprintf(out, "%s: %s (%d entries, %d failed)\n", rep.Path, rep.Outcome, rep.Entries, rep.Failed)
	}
	return nil
}

func newScanResult(runID string, rep epub.Report, start, stop time.Time) rapidreader.ScanResult {
	sr := rapidreader.ScanResult{
		RunID:     runID,
		Path:      rep.Path,
		Outcome:   string(rep.Outcome),
		Entries:   rep.Entries,
		Failed:    rep.Failed,
		StartTime: start,
		StopTime:  stop,
	}
	if rep.Err != nil {
		sr.Error = rep.Err.Error()
	}
	return sr
}
