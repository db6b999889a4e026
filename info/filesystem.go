package info

import (
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Filesystem is the abstract, possibly-remote file system the archive
// lives on (spec §1). It is satisfied by *osfs.ChrootOS and by any other
// go-billy implementation (in-memory, chroot, a caller's own remote-backed
// adapter), which is why the core never imports "os" directly when it needs
// to resolve a chunk path.
type Filesystem = billy.Filesystem

// LocalFilesystem returns a Filesystem rooted at root on the local disk,
// for callers that don't need a remote backend.
func LocalFilesystem(root string) Filesystem {
	return osfs.New(root)
}

// Exists reports whether path exists on fs, swallowing "not found" but
// propagating any other stat failure.
func Exists(fs Filesystem, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// readAll opens path on fs and reads it fully, closing the handle even on
// a read error.
func readAll(fs Filesystem, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
