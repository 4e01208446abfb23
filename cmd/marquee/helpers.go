package main

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var labelDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// labelFromPath derives a human label for a snapshot from its file path.
// Run directories are named by date, so a date embedded anywhere in the
// path wins; otherwise the file stem is used.
func labelFromPath(path string) string {
	base := filepath.Base(path)
	if m := labelDatePattern.FindString(base); m != "" {
		return m
	}
	if m := labelDatePattern.FindString(path); m != "" {
		return m
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}

func defaultDiffOutputPath(newPath, oldLabel, newLabel string) string {
	name := fmt.Sprintf("catalog_diff_%s_to_%s.html", oldLabel, newLabel)
	return filepath.Join(filepath.Dir(newPath), name)
}
