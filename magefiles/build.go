//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the headless driver into bin/transformation.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/transformation", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go mod tidy and go vet over every package.
func (Build) Tidy() error {
	if _, err := executeCmd("go", withArgs("mod", "tidy")); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
