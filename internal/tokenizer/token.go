package tokenizer

// Token is one display unit: a single word or a small group of words.
type Token struct {
	ID              string  `json:"id" yaml:"id" msgpack:"id"`
	Text            string  `json:"text" yaml:"text" msgpack:"text"`
	CleanText       string  `json:"clean_text" yaml:"clean_text" msgpack:"clean_text"`
	FocalIndex      int     `json:"focal_index" yaml:"focal_index" msgpack:"focal_index"`
	TimingWeight    float64 `json:"timing_weight" yaml:"timing_weight" msgpack:"timing_weight"`
	IsGroup         bool    `json:"is_group" yaml:"is_group" msgpack:"is_group"`
	EndsSentence    bool    `json:"ends_sentence" yaml:"ends_sentence" msgpack:"ends_sentence"`
	FollowedBySpace bool    `json:"followed_by_space" yaml:"followed_by_space" msgpack:"followed_by_space"`

	words int
}

// WordCount returns the number of source words in the token.
func (t Token) WordCount() int {
	if t.words == 0 && t.Text != "" {
		return 1
	}
	return t.words
}

// FocalParts splits Text around the focal rune. All three parts are empty
// for an empty token; out-of-range focal indexes clamp to the last rune.
func (t Token) FocalParts() (before, focal, after string) {
	r := []rune(t.Text)
	if len(r) == 0 {
		return "", "", ""
	}
	i := min(max(t.FocalIndex, 0), len(r)-1)
	return string(r[:i]), string(r[i]), string(r[i+1:])
}
