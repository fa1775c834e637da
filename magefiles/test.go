//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package test with the race detector.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs only the matrix library tests.
func (Test) Math() error {
	if _, err := executeCmd("go", withArgs("test", "-v", "."), withDir("engine/math"), withStream()); err != nil {
		return err
	}
	return nil
}
