//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the memok project using Mage.
//
// Usage:
//
//	mage build       Compile the memok binary to bin/
//	mage test:all    Run every test
//	mage test:unit   Run tests without the race detector or cache
//	mage test:cover  Run tests and write coverage.out
//	mage lint        Run golangci-lint
//	mage vet         Run go vet
//	mage clean       Remove build artifacts
//	mage install     Install memok to GOPATH/bin
//	mage stats       Print Go lines of code
package main

// Default target when mage runs without arguments.
var Default = Build
