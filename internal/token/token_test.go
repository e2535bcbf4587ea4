package token

import "testing"

func TestKeywordsRoundTripThroughNames(t *testing.T) {
	for phrase, tt := range Keywords {
		if got := tt.String(); got != phrase {
			t.Errorf("names[%s] = %q, want %q", tt, got, phrase)
		}
	}
}

func TestMaxKeywordWordsMatchesLongestPhrase(t *testing.T) {
	longest := 0
	for phrase := range Keywords {
		words := 1
		for _, r := range phrase {
			if r == ' ' {
				words++
			}
		}
		if words > longest {
			longest = words
		}
	}
	if longest != MaxKeywordWords {
		t.Fatalf("longest phrase has %d words, MaxKeywordWords = %d", longest, MaxKeywordWords)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if got := p.String(); got != "3:7" {
		t.Fatalf("got %q", got)
	}
}
