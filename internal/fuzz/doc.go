// Package fuzztests houses Go fuzz harnesses for the lexer and parser.
// The goal is to smoke test robustness: no panics, no hangs, and the
// structural invariants of the tree hold on arbitrary input.
//
// Назначение: прогонять произвольные байты через лексер и парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.

package fuzztests
