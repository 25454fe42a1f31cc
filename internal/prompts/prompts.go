// Package prompts serves canned reflection captions for the capture flow.
// Everything is local; no generation service is involved.
package prompts

import "math/rand"

var captions = []string{
	"A quiet moment of reflection, capturing the beauty of now.",
	"Time stands still in this memory, woven with light and shadow.",
	"A fleeting instant, preserved forever in the heart.",
	"The world moves on, but this feeling remains.",
	"Soft light and gentle thoughts fill this space.",
	"A pause in the journey to appreciate the view.",
}

// Random returns one caption from the fixed pool.
func Random() string {
	return captions[rand.Intn(len(captions))]
}

// All returns the full caption pool in definition order.
func All() []string {
	out := make([]string, len(captions))
	copy(out, captions)
	return out
}
