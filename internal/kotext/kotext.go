// Package kotext holds the Korean text helpers used by insight
// generation: particle (josa) selection by final phoneme, and
// human-readable number formatting with 억/만 scaling.
package kotext

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// digitFinal records whether the Korean reading of each digit ends in a
// final consonant (받침): 영 일 이 삼 사 오 육 칠 팔 구.
var digitFinal = map[rune]bool{
	'0': true, '1': true, '2': false, '3': true, '4': false,
	'5': false, '6': true, '7': true, '8': true, '9': false,
}

// trailing characters that are not the phonetic end of the word: digits,
// separators, and counting units whose reading the digit table covers.
const particleStrip = "0123456789,. 원명건개점%"

// Particle selects between the two forms of a grammatical particle based
// on the final phoneme of word: jong when the word ends in a consonant
// sound (받침 있음), vowel otherwise. Deterministic over the word's
// final character; formatted numbers resolve through the digit reading
// table.
func Particle(word, jong, vowel string) string {
	if word == "" {
		return vowel
	}
	trimmed := strings.TrimRight(word, particleStrip)
	if trimmed == "" {
		// Purely numeric tail: use the reading of the last digit.
		runes := []rune(word)
		for i := len(runes) - 1; i >= 0; i-- {
			if final, ok := digitFinal[runes[i]]; ok {
				if final {
					return jong
				}
				return vowel
			}
		}
		return vowel
	}
	runes := []rune(trimmed)
	last := runes[len(runes)-1]
	if last >= 0xAC00 && last <= 0xD7A3 {
		if (last-0xAC00)%28 != 0 {
			return jong
		}
		return vowel
	}
	return vowel
}

// TopicParticle returns 은 or 는 for word.
func TopicParticle(word string) string { return Particle(word, "은", "는") }

// InstrumentalParticle returns 으로 or 로 for word.
func InstrumentalParticle(word string) string { return Particle(word, "으로", "로") }

// SubjectParticle returns 이 or 가 for word.
func SubjectParticle(word string) string { return Particle(word, "이", "가") }

// DirectionVerb phrases whether a deviation is above or below average.
func DirectionVerb(diffPct float64) string {
	if diffPct > 0 {
		return "상회합니다"
	}
	return "하회합니다"
}

var printer = message.NewPrinter(language.Korean)

// FormatNumber renders v in compact Korean notation: 억 for hundreds of
// millions, 만 for tens of thousands, grouped digits below that. Nil is
// rendered as "N/A".
func FormatNumber(v *float64, unit string) string {
	if v == nil || math.IsNaN(*v) {
		return "N/A"
	}
	val := *v
	abs := math.Abs(val)
	switch {
	case abs >= 100_000_000:
		return fmt.Sprintf("%.1f억%s", val/100_000_000, unit)
	case abs >= 10_000:
		return fmt.Sprintf("%.0f만%s", val/10_000, unit)
	case abs >= 1000:
		return printer.Sprintf("%v%s", number.Decimal(val, number.MaxFractionDigits(0)), unit)
	case val == math.Trunc(val):
		return fmt.Sprintf("%d%s", int64(val), unit)
	default:
		return fmt.Sprintf("%.1f%s", val, unit)
	}
}

// FormatValue is FormatNumber for a plain float.
func FormatValue(v float64, unit string) string {
	return FormatNumber(&v, unit)
}

// FormatPercent renders a ratio (0.42 → "42.0%"). Nil is "N/A".
func FormatPercent(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", *v*100)
}
