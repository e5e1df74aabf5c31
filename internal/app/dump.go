package app

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump writes the rate index and postal code resolutions to w for debugging.
func Dump(w io.Writer, c Computation) {
	fmt.Fprintln(w, "rate index:")
	dumpConfig.Fdump(w, c.Index)
	fmt.Fprintln(w, "resolutions:")
	dumpConfig.Fdump(w, c.Resolutions)
}
