//go:build !windows
// +build !windows

package diskstat

import "golang.org/x/sys/unix"

// Usage returns the total and available bytes of the filesystem holding path.
func Usage(path string) (total, free int64, err error) {
	var st unix.Statfs_t
	if err = unix.Statfs(path, &st); err != nil {
		return 0, 0, err
	}

	total = int64(st.Blocks) * int64(st.Bsize)
	free = int64(st.Bavail) * int64(st.Bsize)
	return total, free, nil
}
