// swatch - perceptual shade ramps from a single colour
//
// swatch turns one input colour into a palette of tonal variants for
// design-system tooling and UI themes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	cli.Execute()
}
