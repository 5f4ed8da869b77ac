// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordList is the ordered, normalized set of name fragments loaded at startup.
//
// A WordList is immutable once built: it holds no mutating methods and
// [WordList.Words] returns a copy, so a single value can be shared between
// request goroutines without locking.
type WordList struct {
	words []string
}

// NewWordList builds a [WordList] from raw entries as they were read from the
// word source.
//
// Every entry is normalized with [NormalizeWord]; entries that normalize to
// an empty string are dropped. Encounter order is preserved.
func NewWordList(raw ...string) WordList {
	words := make([]string, 0, len(raw))
	for _, entry := range raw {
		if word := NormalizeWord(entry); word != "" {
			words = append(words, word)
		}
	}

	return WordList{words: words}
}

// NormalizeWord removes every space from entry and upper-cases its first
// character, leaving the rest untouched.
//
//	" john smith" -> "Johnsmith"
//	"mcDonald"    -> "McDonald"
func NormalizeWord(entry string) string {
	word := strings.ReplaceAll(entry, " ", "")
	if word == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(first)) + word[size:]
}

// Len returns the number of words in the list.
func (l WordList) Len() int {
	return len(l.words)
}

// IsEmpty reports whether the list holds no words.
func (l WordList) IsEmpty() bool {
	return len(l.words) == 0
}

// At returns the i-th word. It panics if i is out of range.
func (l WordList) At(i int) string {
	return l.words[i]
}

// Words returns a copy of the underlying words.
func (l WordList) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}
