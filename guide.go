package modulebestpractices

import (
	"embed"
	"io"
	"io/fs"
)

// documentName is the guide's file name inside the bundle.
const documentName = "README.md"

// The guide travels inside the compiled binary, so a partial install
// cannot separate the command from its document.
//
//go:embed README.md
var bundle embed.FS

// Open returns a fresh read-only stream over the guide document. The
// stream carries the document's bytes exactly as they were at build
// time, start to end, and is not restartable: call Open again to read
// the document another time. The caller owns the stream and should
// close it when done.
//
// A missing document surfaces as an error satisfying
// errors.Is(err, fs.ErrNotExist); an unreadable one as fs.ErrPermission.
// Either means this package was built wrong, and neither is retryable.
func Open() (io.ReadCloser, error) {
	return open(bundle, documentName)
}

func open(fsys fs.FS, name string) (io.ReadCloser, error) {
	return fsys.Open(name)
}
