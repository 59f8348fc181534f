//go:build unix

package debug

import (
	"golang.org/x/sys/unix"
)

// residentSetSize reports the peak resident set size. Getrusage reports
// ru_maxrss in kilobytes on Linux and bytes on Darwin.
func residentSetSize() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	return maxRSSBytes(uint64(ru.Maxrss)), nil
}
