package alphabet

import (
	"sort"

	"github.com/fillword/fillwordgame-go/internal/dependencies/random"
)

// DefaultLanguage is the fallback for unknown language codes
const DefaultLanguage = "en"

// alphabets maps language codes to their filler letter sets
var alphabets = map[string][]rune{
	"en": []rune("abcdefghijklmnopqrstuvwxyz"),
	"ru": []rune("абвгдеёжзийклмнопрстуфхцчшщъыьэюя"),
	"es": []rune("abcdefghijklmnñopqrstuvwxyz"),
	"de": []rune("abcdefghijklmnopqrstuvwxyzäöüß"),
}

// Service provides per-language filler letters for grid generation
type Service struct {
	random random.Random
}

// New creates a new alphabet service
func New(rnd random.Random) *Service {
	return &Service{random: rnd}
}

// Letter returns one uniformly random letter from the language's alphabet.
// Unknown languages fall back to DefaultLanguage.
func (s *Service) Letter(language string) rune {
	runes := lettersFor(language)
	return runes[s.random.Intn(len(runes))]
}

// Runes returns a copy of the language's letter set
func (s *Service) Runes(language string) []rune {
	runes := lettersFor(language)
	result := make([]rune, len(runes))
	copy(result, runes)
	return result
}

// IsLetter returns true if r belongs to the language's alphabet
func (s *Service) IsLetter(language string, r rune) bool {
	for _, letter := range lettersFor(language) {
		if letter == r {
			return true
		}
	}
	return false
}

// Supported returns the known language codes in sorted order
func (s *Service) Supported() []string {
	codes := make([]string, 0, len(alphabets))
	for code := range alphabets {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func lettersFor(language string) []rune {
	runes, ok := alphabets[language]
	if !ok {
		return alphabets[DefaultLanguage]
	}
	return runes
}

// Interface check
type ServiceInterface interface {
	Letter(language string) rune
	Runes(language string) []rune
	IsLetter(language string, r rune) bool
	Supported() []string
}

var _ ServiceInterface = (*Service)(nil)
