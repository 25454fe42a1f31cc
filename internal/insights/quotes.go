package insights

import "math/rand"

// quotePools holds closing quotes keyed by dominant mood. Moods without a
// pool of their own borrow the Dynamic pool.
var quotePools = map[string][]string{
	"Joyful": {
		"Happiness is not something ready made. It comes from your own actions.",
		"Let your joy burst forth like flowers in the spring.",
		"The most wasted of all days is one without laughter.",
	},
	"Calm": {
		"Quiet the mind, and the soul will speak.",
		"Peace comes from within. Do not seek it without.",
		"Within you, there is a stillness and a sanctuary to which you can retreat at any time.",
	},
	"Pensive": {
		"In silence, we find the answers we didn't know we sought.",
		"The unexamined life is not worth living.",
		"Reflection is the lamp of the heart.",
	},
	"Dynamic": {
		"Life is a balance of holding on and letting go.",
		"The only way to make sense of change is to plunge into it.",
		"Action is the foundational key to all success.",
	},
	"Sad": {
		"Tears are words that need to be written.",
		"Every storm runs out of rain.",
		"Healing takes courage, and we all have courage, even if we have to dig a little to find it.",
	},
}

// pickQuote selects a random quote for the mood. The quote is the only
// non-deterministic part of a digest.
func pickQuote(mood string) string {
	pool, ok := quotePools[mood]
	if !ok {
		pool = quotePools["Dynamic"]
	}
	return pool[rand.Intn(len(pool))]
}
