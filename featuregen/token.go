package featuregen

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Token emits the lowercased surface form of the current token.
type Token struct {
	stateless
}

var _ Generator = Token{}

func (Token) Features(features []string, tokens []string, index int, prior []string) []string {
	return append(features, "w="+strings.ToLower(tokens[index]))
}

// TokenClass emits the coarse character-class of the current token and,
// optionally, the combined word-and-class feature.
type TokenClass struct {
	stateless

	// WordAndClass additionally emits "w&c=<word>,<class>".
	WordAndClass bool
}

var _ Generator = TokenClass{}

func (g TokenClass) Features(features []string, tokens []string, index int, prior []string) []string {
	class := TokenClassOf(tokens[index])
	features = append(features, "wc="+class)
	if g.WordAndClass {
		features = append(features, "w&c="+strings.ToLower(tokens[index])+","+class)
	}
	return features
}

// TokenClassOf returns a coarse class for a token:
//
//	lc    all lowercase letters
//	2d    two digits
//	4d    four digits
//	an    digits and letters
//	dd    digits and a dash
//	ds    digits and a slash
//	dc    digits and a comma
//	dp    digits and a period
//	num   digits only (other lengths)
//	sc    a single capital letter
//	ac    all capital letters
//	ic    initial capital
//	other anything else
//
// The token is NFKC-normalized first so that compatibility forms (full-width
// digits, ligatures) classify like their plain equivalents.
func TokenClassOf(token string) string {
	runes := []rune(norm.NFKC.String(token))

	digits := 0
	var hasLetter, hasDash, hasSlash, hasComma, hasPeriod, hasLower, hasNonUpper bool
	for _, r := range runes {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			hasLetter = true
			if unicode.IsLower(r) {
				hasLower = true
			}
		}
		if !unicode.IsUpper(r) {
			hasNonUpper = true
		}
		switch r {
		case '-':
			hasDash = true
		case '/':
			hasSlash = true
		case ',':
			hasComma = true
		case '.':
			hasPeriod = true
		}
	}

	switch {
	case len(runes) > 0 && hasLetter && !hasLower && digits == 0 && !hasNonUpper:
		if len(runes) == 1 {
			return "sc"
		}
		return "ac"
	case len(runes) > 0 && hasLetter && digits == 0 && allLower(runes):
		return "lc"
	case digits == 2 && digits == len(runes):
		return "2d"
	case digits == 4 && digits == len(runes):
		return "4d"
	case digits > 0 && hasLetter:
		return "an"
	case digits > 0 && hasDash:
		return "dd"
	case digits > 0 && hasSlash:
		return "ds"
	case digits > 0 && hasComma:
		return "dc"
	case digits > 0 && hasPeriod:
		return "dp"
	case digits > 0:
		return "num"
	case len(runes) > 0 && unicode.IsUpper(runes[0]):
		return "ic"
	default:
		return "other"
	}
}

func allLower(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
