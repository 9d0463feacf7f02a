// This command writes every compact piece token, one per line, so other
// tools can use the full set as an index or a fixture.

package main

import (
	"bufio"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/notation/epin"
)

var (
	piecesPath = pflag.String("path", "pieces.txt", "file to write the tokens to")
	nativeOnly = pflag.Bool("native_only", false, "leave out tokens with a derivation marker")
)

func main() {
	pflag.Parse()

	n, err := writePieces(*piecesPath, *nativeOnly)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d tokens to %s", n, *piecesPath)
}

// writePieces writes the tokens to path and returns how many it wrote.
func writePieces(path string, nativeOnly bool) (int, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	w := bufio.NewWriter(f)
	n := 0
	for _, id := range epin.Enumerate() {
		if nativeOnly && id.Derived() {
			continue
		}
		if _, err := w.WriteString(id.String() + "\n"); err != nil {
			f.Close()
			return n, errors.WithStack(err)
		}
		n++
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return n, errors.WithStack(err)
	}
	if err := f.Close(); err != nil {
		return n, errors.Wrapf(err, "closing %s", path)
	}
	return n, nil
}
