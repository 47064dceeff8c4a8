package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEPub(t *testing.T, path string, files map[string]string) {
	t.Helper()
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for name, content := range files {
		fw, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}

func TestRun_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), epubFile)

	var buf bytes.Buffer
	run(&buf, path)

	want := "Error: '" + path + "' does not exist. Please ensure this file is in the same directory or replace with the correct filepath.\n"
	if buf.String() != want {
		t.Errorf("run() output = %q, want %q", buf.String(), want)
	}
}

func TestRun_ExploresFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), epubFile)
	writeEPub(t, path, map[string]string{"mimetype": "application/epub+zip"})

	var buf bytes.Buffer
	run(&buf, path)

	want := "Filename: mimetype\nContent: application/epub+zip\n--------------------\n"
	if buf.String() != want {
		t.Errorf("run() output = %q, want %q", buf.String(), want)
	}
}

func TestRun_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), epubFile)
	if err := os.WriteFile(path, []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	run(&buf, path)

	if !strings.HasSuffix(buf.String(), "is not a valid ZIP or EPUB file.\n") {
		t.Errorf("run() output = %q", buf.String())
	}
}

func TestEpubFileIsFixed(t *testing.T) {
	if epubFile != "file.epub" {
		t.Errorf("epubFile = %q, want %q", epubFile, "file.epub")
	}
}
