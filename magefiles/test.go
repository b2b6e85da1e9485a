//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const coverProfile = "coverage.out"

// Test groups test targets.
type Test mg.Namespace

// All runs every test with the race detector.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Unit runs every test verbosely, bypassing the test cache.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-v", "-count=1", "./...")
}

// Cover runs the tests and prints per-function coverage.
func (Test) Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverProfile)
}
