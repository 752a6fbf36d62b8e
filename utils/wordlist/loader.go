// Package wordlist loads newline-delimited dictionaries into a
// prince.Store. Framing and whitespace trimming are this package's job, not
// the core engine's: prince.Store.Insert only ever sees already-trimmed
// words and silently drops anything outside [1, prince.LMax] bytes.
package wordlist

import (
	"bufio"
	"fmt"
	"io"

	"github.com/elementchain/prince/prince"
)

const maxLineSize = 1 << 20

// LoadReader reads newline-delimited words from r, trims a trailing \r
// and/or \n from each line, and inserts the result into store. It returns
// the number of words store actually kept (not the number of lines read).
func LoadReader(r io.Reader, store *prince.Store) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		if store.Insert(trimCRLF(scanner.Bytes())) {
			n++
		}
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("wordlist: scan: %w", err)
	}
	return n, nil
}

// LoadFile loads the dictionary at path into store. On unix build targets
// it memory-maps the file read-only so loading a rockyou-scale dictionary
// doesn't require a full buffered copy; elsewhere it falls back to a
// buffered read. Both paths insert words in identical file order.
func LoadFile(path string, store *prince.Store) (int, error) {
	return loadFile(path, store)
}

func trimCRLF(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
