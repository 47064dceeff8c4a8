package epub

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

type testEntry struct {
	name    string
	content string
	method  uint16
}

// buildTestArchive writes entries, in order, into an in-memory zip archive.
func buildTestArchive(t *testing.T, entries []testEntry) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:   e.name,
			Method: e.method,
		})
		if err != nil {
			t.Fatalf("buildTestArchive: create %s: %v", e.name, err)
		}
		if _, err := io.WriteString(fw, e.content); err != nil {
			t.Fatalf("buildTestArchive: write %s: %v", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("buildTestArchive: close writer: %v", err)
	}
	return buf.Bytes()
}

// writeTestFile writes data to a file in a fresh temporary directory and
// returns its path.
func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fp, data, 0644); err != nil {
		t.Fatalf("writeTestFile: %v", err)
	}
	return fp
}

// buildTestEPubFile writes entries into a zip archive on disk.
func buildTestEPubFile(t *testing.T, entries []testEntry) string {
	t.Helper()
	return writeTestFile(t, "test.epub", buildTestArchive(t, entries))
}

// corrupt flips the first byte of payload inside data. payload must be the
// content of a stored (uncompressed) entry so it appears verbatim.
func corrupt(t *testing.T, data []byte, payload string) []byte {
	t.Helper()
	i := bytes.Index(data, []byte(payload))
	if i < 0 {
		t.Fatalf("corrupt: payload %q not found in archive", payload)
	}
	out := append([]byte(nil), data...)
	out[i] ^= 0xFF
	return out
}
