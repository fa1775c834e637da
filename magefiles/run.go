//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Renders a few seconds of the orbiting quad to stdout.
func (Run) Demo() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run demo...")
	if _, err := executeCmd("bin/transformation", withArgs("-frames", "180"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the driver against a config file and reloads it on change.
func (Run) Watch(path string) error {
	mg.Deps(Build.Binary)
	if _, err := executeCmd("bin/transformation", withArgs("-config", path, "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}
