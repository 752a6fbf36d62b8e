//go:build !unix

package wordlist

import (
	"fmt"
	"os"

	"github.com/elementchain/prince/prince"
)

func loadFile(path string, store *prince.Store) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadReader(f, store)
}
