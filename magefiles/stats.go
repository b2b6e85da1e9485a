//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Stats prints Go lines of code per package group as one JSON line.
func Stats() error {
	counts := map[string]int{}

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			switch path {
			case "vendor", ".git", binaryDir, "_examples", "magefiles":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		n, countErr := countLines(path)
		if countErr != nil {
			return nil
		}
		kind := "prod"
		if strings.HasSuffix(path, "_test.go") {
			kind = "test"
		}
		counts["go_loc_"+kind] += n
		counts["go_loc_"+topDir(path)] += n
		counts["go_loc"] += n
		return nil
	})
	if err != nil {
		return err
	}

	line, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

// topDir returns the first path element (cmd, internal, pkg).
func topDir(path string) string {
	first, _, _ := strings.Cut(filepath.ToSlash(path), "/")
	return first
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
