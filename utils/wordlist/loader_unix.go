//go:build unix

package wordlist

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/elementchain/prince/prince"
)

func loadFile(path string, store *prince.Store) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("wordlist: stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return 0, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return 0, fmt.Errorf("wordlist: mmap %s: %w", path, err)
	}
	defer unix.Munmap(data)

	return LoadReader(bytes.NewReader(data), store)
}
