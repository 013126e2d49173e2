package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/momoluna444/csv2sfz"
)

// fileResult is one *.csv file's outcome.
type fileResult struct {
	path    string
	outPath string
	dryRun  bool
	err     error
}

// treeResult collects every file's outcome from one convertTree run.
type treeResult struct {
	results  []fileResult
	failures int
}

// convertTree walks root for *.csv files and converts each to a sibling
// *.sfz file, processing up to jobs files concurrently. One file's
// structural error does not stop the walk: it is recorded and the walk
// continues, so a single malformed table never hides failures in the
// rest of the tree.
func convertTree(root string, jobs int, dryRun bool) treeResult {
	paths, err := findCSVFiles(root)
	if err != nil {
		return treeResult{results: []fileResult{{path: root, err: err}}, failures: 1}
	}

	work := make(chan string, len(paths))
	out := make(chan fileResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range work {
				out <- convertFile(path, dryRun)
			}
		}()
	}
	for _, p := range paths {
		work <- p
	}
	close(work)

	go func() {
		wg.Wait()
		close(out)
	}()

	var tr treeResult
	for r := range out {
		if r.err != nil {
			tr.failures++
		}
		tr.results = append(tr.results, r)
	}
	return tr
}

// convertFile converts a single CSV file, isolating its error from the
// rest of the tree walk.
func convertFile(path string, dryRun bool) fileResult {
	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".sfz"

	csvBytes, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, outPath: outPath, err: fmt.Errorf("reading: %w", err)}
	}

	sfzBytes, err := csv2sfz.Convert(csvBytes, filepath.Dir(path))
	if err != nil {
		return fileResult{path: path, outPath: outPath, err: err}
	}

	if dryRun {
		return fileResult{path: path, outPath: outPath, dryRun: true}
	}

	if err := os.WriteFile(outPath, sfzBytes, 0o644); err != nil {
		return fileResult{path: path, outPath: outPath, err: fmt.Errorf("writing: %w", err)}
	}
	return fileResult{path: path, outPath: outPath}
}

func findCSVFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".csv") {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
