// Package dev holds development-only tooling for this repository. The
// mutation test gate runs with: go test -tags mutation ./dev
package dev
