// Package tests locates the external test files shared by package tests,
// downloading them on first use.
package tests

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

// ProcTestsURL is the location of the per-opcode test files, %s being the
// opcode as 2 lowercase hex digits.
const ProcTestsURL = `https://raw.githubusercontent.com/SingleStepTests/65x02/main/nes6502/v1/%s.json`

// download one test file per opcode into dest dir.
func downloadProcTests(tb testing.TB, dest string, legal func(uint8) bool) {
	tempdir, err := os.MkdirTemp(filepath.Dir(dest), "proctests.*")
	if err != nil {
		tb.Fatal(err)
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for opcode := range 256 {
		if legal != nil && !legal(uint8(opcode)) {
			continue
		}

		opstr := fmt.Sprintf("%02x", opcode)
		url := fmt.Sprintf(ProcTestsURL, opstr)

		g.Go(func() error {
			resp, err := http.Get(url)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("GET %s: %s", url, resp.Status)
			}

			f, err := os.Create(filepath.Join(tempdir, opstr+".json"))
			if err != nil {
				return err
			}
			defer f.Close()

			if _, err := io.Copy(f, resp.Body); err != nil {
				return err
			}

			tb.Log("downloaded", url, "to", f.Name())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		os.RemoveAll(tempdir)
		tb.Fatalf("failed to download all files: %s", err)
	}

	if err := os.Rename(tempdir, dest); err != nil {
		tb.Fatal(err)
	}

	tb.Log("renaming", tempdir, "to", dest)
}

var procTestsMu sync.Mutex

// ProcTestsPath returns the directory holding the processor tests,
// downloading them if needed. If legal is non-nil, only the files of the
// opcodes it reports are downloaded.
func ProcTestsPath(tb testing.TB, legal func(opcode uint8) bool) string {
	procTestsMu.Lock()
	defer procTestsMu.Unlock()

	_, b, _, _ := runtime.Caller(0)
	testsDir := filepath.Join(filepath.Dir(b), "proctests")

	if _, err := os.Stat(testsDir); errors.Is(err, fs.ErrNotExist) {
		tb.Log("proctests directory not found, downloading it...")
		downloadProcTests(tb, testsDir, legal)
		tb.Log("Processor tests downloaded in", testsDir)
	}

	return testsDir
}
