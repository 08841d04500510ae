package tokenizer

// Timing weights keyed by a word's final character.
const (
	SentenceEndWeight = 3.0
	ClauseBreakWeight = 2.0
	CommaWeight       = 1.5
	DashWeight        = 1.2
	LongWordWeight    = 1.2
)

// LongWordThreshold is the rune length above which a word without trailing
// punctuation gets LongWordWeight.
const LongWordThreshold = 10

// Per-extra-word growth of a group's timing weight.
const (
	fixedGroupFactor = 0.3
	smartGroupFactor = 0.15
)

// Smart chunking thresholds.
const (
	SmartSoftWords = 3
	SmartHardWords = 5
	SmartMaxChars  = 20
)

const chunkIDPrefixLen = 20

var punctuationWeights = map[rune]float64{
	'.': SentenceEndWeight,
	'!': SentenceEndWeight,
	'?': SentenceEndWeight,
	';': ClauseBreakWeight,
	':': ClauseBreakWeight,
	',': CommaWeight,
	'-': DashWeight,
	'–': DashWeight,
	'—': DashWeight,
}

// glueWords are short function words a smart chunk should not end on.
var glueWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "or": {}, "but": {}, "nor": {}, "so": {},
	"of": {}, "to": {}, "in": {}, "on": {}, "at": {}, "by": {},
	"for": {}, "with": {}, "from": {}, "as": {}, "into": {},
	"is": {}, "was": {}, "be": {}, "if": {}, "that": {}, "than": {},
	"my": {}, "your": {}, "his": {}, "her": {}, "its": {}, "our": {}, "their": {},
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// isHardBoundary reports whether r closes a smart chunk.
func isHardBoundary(r rune) bool {
	switch r {
	case '.', '!', '?', ',', ';', ':':
		return true
	}
	return false
}
