package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var languageSeeds = []string{
	"Project p { database_type: 'PostgreSQL'\n Note: 'n' }",
	"Table public.users as U [note: 'x'] {\n id int [pk, increment]\n name varchar(255) [not null, default: 'a']\n}",
	"Table t { a int [ref: > b.c, note: '''\n  multi\n  line\n'''] }",
	"enum status { active [note: 'on'] \"with space\" }",
	"Table t { indexes { (a, `lower(b)`) [type: hash, name: 'i'] c [unique] } }",
	"Ref r: a.b.c < d.e.f [delete: set null, update: no action]",
	"Ref { a.b <> c.d\n e.f - g.h }",
	"Table t { a decimal(1_000.5, 2) [default: null] }",
	"/* comment */ // line\r\nTable t {}\r",
	"'''unterminated \\q",
	"\"unterminated\n'also",
	"99999999999999999999999999999999.5",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.dbml файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".dbml" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) string {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return string(input)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
