package app

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"slcsp/internal/store"
)

// Environment variables consulted when a flag is not set.
const (
	EnvDir     = "SLCSP_DIR"
	EnvZips    = "SLCSP_ZIPS"
	EnvPlans   = "SLCSP_PLANS"
	EnvTargets = "SLCSP_TARGETS"
	EnvOut     = "SLCSP_OUT"
)

// DefaultEnvFile is loaded when no --env-file is given.
const DefaultEnvFile = ".env"

// Config holds runtime wiring options for building the app.
type Config struct {
	Dir     string // dataset directory; relative file names resolve against it
	Zips    string // postal-code table, e.g. zips.csv
	Plans   string // plan table, e.g. plans.csv
	Targets string // target table, e.g. slcsp.csv
	Out     string // report path; empty means stdout

	Dump   bool      // dump the rate index and resolutions
	DumpTo io.Writer // optional; defaults to os.Stderr
}

// LoadEnvFile loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Resolve fills unset fields from the environment, then from defaults.
func (c Config) Resolve() Config {
	c.Dir = firstNonEmpty(c.Dir, os.Getenv(EnvDir), ".")
	c.Zips = firstNonEmpty(c.Zips, os.Getenv(EnvZips), store.DefaultPostalFile)
	c.Plans = firstNonEmpty(c.Plans, os.Getenv(EnvPlans), store.DefaultPlanFile)
	c.Targets = firstNonEmpty(c.Targets, os.Getenv(EnvTargets), store.DefaultTargetFile)
	c.Out = firstNonEmpty(c.Out, os.Getenv(EnvOut))
	if c.DumpTo == nil {
		c.DumpTo = os.Stderr
	}
	return c
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
