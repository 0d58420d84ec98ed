package automod

import "strings"

// MatchBannedWord checks content against the banned-word list with pure
// case-insensitive substring semantics ("spam" matches "spammer"). The
// first match wins; order among the words is irrelevant since any match is
// terminal for the message.
func MatchBannedWord(content string, bannedWords []string) (string, bool) {
	if len(bannedWords) == 0 {
		return "", false
	}

	lowered := strings.ToLower(content)
	for _, word := range bannedWords {
		if word == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(word)) {
			return word, true
		}
	}
	return "", false
}
