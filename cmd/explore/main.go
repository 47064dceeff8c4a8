package main

import (
	"fmt"
	"io"
	"os"

	"github.com/itsurkan/RapidReader/epub"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// epubFile is explored relative to the working directory
const epubFile = "file.epub"

var log = logrus.WithField("service", "explore")

type configuration struct {
	LogLevel string `default:"warn"`
}

func main() {
	var cfg configuration
	err := envconfig.Process("explore", &cfg)
	if err != nil {
		log.WithField("err", err).Fatal("Could not parse config from environment")
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err == nil {
		logrus.SetLevel(logLevel)
	}

	run(os.Stdout, epubFile)
}

func run(out io.Writer, path string) {
	if _, err := os.Stat(path); err != nil {
		log.WithField("err", err).Debug("epub file missing")
		fmt.Fprintf(out, "Error: '%s' does not exist. Please ensure this file is in the same directory or replace with the correct filepath.\n", path)
		return
	}
	epub.NewExplorer(out, log).Explore(path)
}
