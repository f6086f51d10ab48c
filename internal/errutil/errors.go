package errutil

import (
	"errors"
	"syscall"
)

// IsBrokenPipe tells whether err comes from writing to a pipe or socket
// whose reader went away.
func IsBrokenPipe(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	return isErrBrokenPipe(errno)
}
