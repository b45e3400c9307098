package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load reads a file from disk once and returns its Text.
// A UTF-8 BOM is dropped; UTF-16 input (detected by its BOM) is decoded to UTF-8.
// Line breaks are kept as they are so that the text round-trips.
func Load(path string) (*Text, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// offsets must fit into uint32 for the serialized token/diagnostic records
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		return nil, fmt.Errorf("%s: file too large: %w", path, err)
	}

	content, err = decode(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return From(string(content), normalizePath(path)), nil
}

// decode turns raw file bytes into UTF-8 without a BOM.
func decode(content []byte) ([]byte, error) {
	if hasUTF16BOM(content) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, content)
		if err != nil {
			return nil, fmt.Errorf("decode utf-16: %w", err)
		}
		return out, nil
	}
	content, _ = removeBOM(content)
	return content, nil
}
