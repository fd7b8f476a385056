//go:build unix

package common

import (
	"golang.org/x/sys/unix"
)

func checkWritable(dir string) error {
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return WrapError(err, "no write access to: "+dir)
	}
	return nil
}
