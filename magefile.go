//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary.
var Default = Build

// Build compiles the statline binary into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/statline", "./cmd/statline")
}

// Test runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// QA runs format and vet checks, then the tests.
func QA() error {
	mg.Deps(Fmt, Vet)
	return Test()
}

// Fmt formats all packages.
func Fmt() error {
	return sh.RunV("go", "fmt", "./...")
}

// Vet vets all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
