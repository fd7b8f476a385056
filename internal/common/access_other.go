//go:build !unix

package common

import (
	"os"
)

// checkWritable probes with a throwaway file where access(2) is unavailable.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".storeconf-probe-*")
	if err != nil {
		return WrapError(err, "no write access to: "+dir)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
