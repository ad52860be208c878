// Package classifier decides whether a question is in scope for the
// educational assistant.
//
// Classification is a fixed ordered ruleset over one vocabulary table:
// greetings win, then subject keywords, then follow-up phrases, then
// interrogative patterns; anything else is off-topic. The function is
// pure: same input, same result.
package classifier

import (
	"strings"
	"unicode"
)

// Topic is the classification of a question.
type Topic int

const (
	Greeting Topic = iota
	Educational
	OffTopic
)

// String returns a label for metrics and logs.
func (t Topic) String() string {
	switch t {
	case Greeting:
		return "greeting"
	case Educational:
		return "educational"
	default:
		return "off_topic"
	}
}

// greetingPrefixes match only when anchored at the start of the text
// and followed by a non-letter (so "hi" does not swallow "history").
var greetingPrefixes = []string{
	"hi",
	"hello",
	"hey",
	"good morning",
	"good afternoon",
	"good evening",
	"greetings",
	"howdy",
	"hola",
	"bonjour",
	"hallo",
	"ciao",
	"salut",
	"namaste",
	"ni hao",
	"ola",
}

// subjectKeywords is the educational vocabulary. It mirrors the subject
// taxonomy in the assistant's system instruction.
var subjectKeywords = []string{
	// Mathematics & statistics
	"math", "algebra", "calculus", "geometry", "trigonometry",
	"statistics", "probability", "equation", "theorem", "integral",
	"derivative", "matrix", "fraction",
	// Natural sciences
	"science", "physics", "chemistry", "biology", "astronomy",
	"photosynthesis", "molecule", "atom", "gravity", "evolution",
	"ecosystem", "cell", "energy", "velocity", "experiment",
	// Computer science
	"programming", "algorithm", "data structure", "software",
	"computer science", "database", "recursion", "compiler",
	// Humanities & social sciences
	"history", "geography", "literature", "philosophy", "economics",
	"psychology", "sociology", "civilization", "revolution",
	// Languages & linguistics
	"grammar", "syntax", "vocabulary", "etymology", "linguistics",
	"essay", "writing",
	// Formal arts
	"music theory", "art history",
	// General academic terms
	"study", "studies", "homework", "exam", "lesson", "lecture",
	"course", "textbook", "thesis",
}

// followUpPhrases mark continuation requests that are implicitly
// in-context.
var followUpPhrases = []string{
	"tell me more",
	"more about",
	"elaborate",
	"go on",
	"continue",
	"keep going",
	"what else",
	"more detail",
	"more details",
	"more examples",
	"another example",
	"can you expand",
	"and then",
}

// interrogativePatterns mark academic-style requests.
var interrogativePatterns = []string{
	"what is",
	"what are",
	"what was",
	"who is",
	"who was",
	"when did",
	"when was",
	"where is",
	"where was",
	"why do",
	"why does",
	"why is",
	"why are",
	"how to",
	"how do",
	"how does",
	"how can",
	"explain",
	"define",
	"describe",
	"calculate",
	"solve",
	"compare",
	"summarize",
	"analyze",
	"prove",
	"derive",
	"translate",
	"tutorial",
	"teach me",
	"help me understand",
	"help me with",
	"difference between",
	"meaning of",
}

// Classify applies the ordered ruleset to text. First match wins.
func Classify(text string) Topic {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return OffTopic
	}

	for _, prefix := range greetingPrefixes {
		if hasWordPrefix(t, prefix) {
			return Greeting
		}
	}

	for _, keyword := range subjectKeywords {
		if strings.Contains(t, keyword) {
			return Educational
		}
	}

	for _, phrase := range followUpPhrases {
		if strings.Contains(t, phrase) {
			return Educational
		}
	}

	for _, pattern := range interrogativePatterns {
		if strings.Contains(t, pattern) {
			return Educational
		}
	}

	return OffTopic
}

// hasWordPrefix reports whether s starts with prefix ending on a word
// boundary.
func hasWordPrefix(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	if len(s) == len(prefix) {
		return true
	}
	next := []rune(s[len(prefix):])[0]
	return !unicode.IsLetter(next) && !unicode.IsDigit(next)
}
