// Package embedding derives the small deterministic vectors used to order
// catalog search results in Postgres.
package embedding

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// Dimensions is the length of every vector returned by Generate.
const Dimensions = 3

// Generate returns a deterministic embedding for the given text.
// It counts the total length, vowels and consonants.
func Generate(text string) pgvector.Vector {
	text = strings.ToLower(text)
	var vowels, consonants float32
	for _, r := range text {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		} else if r >= 'a' && r <= 'z' {
			consonants++
		}
	}
	length := float32(len(text))
	return pgvector.NewVector([]float32{length, vowels, consonants})
}
