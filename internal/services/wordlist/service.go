package wordlist

import (
	"bufio"
	"context"
	"embed"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fillword/fillwordgame-go/internal/dependencies/random"
	"github.com/fillword/fillwordgame-go/internal/model"
	"github.com/fillword/fillwordgame-go/internal/storage"
)

//go:embed words/*.txt
var defaultPools embed.FS

// LetterChecker reports alphabet membership for a language
type LetterChecker interface {
	IsLetter(language string, r rune) bool
}

// Service maintains the per-language word pools rounds draw from
type Service struct {
	storage  storage.Storage
	alphabet LetterChecker
	random   random.Random

	mu    sync.RWMutex
	pools map[string][]string
}

// New creates a new word list service
func New(store storage.Storage, alphabet LetterChecker, rnd random.Random) *Service {
	return &Service{
		storage:  store,
		alphabet: alphabet,
		random:   rnd,
		pools:    make(map[string][]string),
	}
}

// LoadDefaults loads the word pools embedded in the binary
func (s *Service) LoadDefaults() error {
	entries, err := fs.ReadDir(defaultPools, "words")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		language := strings.TrimSuffix(entry.Name(), ".txt")
		data, err := defaultPools.ReadFile("words/" + entry.Name())
		if err != nil {
			return err
		}
		s.loadWords(language, parseWords(string(data)))
	}
	return nil
}

// LoadFromStorage loads a language's pool from storage
func (s *Service) LoadFromStorage(ctx context.Context, language string) error {
	words, err := s.storage.GetWordPool(ctx, language)
	if err != nil {
		return err
	}
	s.loadWords(language, words)
	return nil
}

// LoadFromFile loads a language's pool from a file (one word per line)
// and persists the cleaned-up pool to storage for future runs
func (s *Service) LoadFromFile(ctx context.Context, language, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	pool := s.loadWords(language, words)

	return s.storage.SaveWordPool(ctx, language, pool)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(language string, words []string) error {
	s.loadWords(language, words)
	return nil
}

// loadWords normalizes, filters, and installs a pool, returning what
// survived. Entries must be at least two runes and use only letters from
// the language's alphabet.
func (s *Service) loadWords(language string, words []string) []string {
	seen := make(map[string]struct{}, len(words))
	pool := make([]string, 0, len(words))

	for _, raw := range words {
		word := strings.ToLower(strings.TrimSpace(raw))
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		if !s.allLetters(language, word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		pool = append(pool, word)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pools[language] = pool
	return pool
}

func (s *Service) allLetters(language, word string) bool {
	for _, r := range word {
		if !s.alphabet.IsLetter(language, r) {
			return false
		}
	}
	return true
}

// Sample returns up to count distinct random words from the language's
// pool, restricted to rune length maxLen when maxLen is positive
func (s *Service) Sample(language string, count, maxLen int) ([]string, error) {
	s.mu.RLock()
	pool, ok := s.pools[language]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrWordPoolNotFound
	}

	eligible := make([]string, 0, len(pool))
	for _, word := range pool {
		if maxLen > 0 && utf8.RuneCountInString(word) > maxLen {
			continue
		}
		eligible = append(eligible, word)
	}
	if len(eligible) == 0 {
		return nil, model.ErrWordPoolEmpty
	}

	if count > len(eligible) {
		count = len(eligible)
	}

	words := make([]string, 0, count)
	for _, idx := range s.random.Perm(len(eligible))[:count] {
		words = append(words, eligible[idx])
	}
	return words, nil
}

// Contains checks pool membership, case-insensitively
func (s *Service) Contains(language, word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(word)
	for _, entry := range s.pools[language] {
		if entry == needle {
			return true
		}
	}
	return false
}

// PoolSize returns the number of words loaded for the language
func (s *Service) PoolSize(language string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pools[language])
}

// Languages returns the loaded language codes in sorted order
func (s *Service) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	languages := make([]string, 0, len(s.pools))
	for language := range s.pools {
		languages = append(languages, language)
	}
	sort.Strings(languages)
	return languages
}

func parseWords(data string) []string {
	lines := strings.Split(data, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

// Interface check
type ServiceInterface interface {
	LoadDefaults() error
	LoadFromStorage(ctx context.Context, language string) error
	LoadFromFile(ctx context.Context, language, path string) error
	LoadWords(language string, words []string) error
	Sample(language string, count, maxLen int) ([]string, error)
	Contains(language, word string) bool
	PoolSize(language string) int
	Languages() []string
}

var _ ServiceInterface = (*Service)(nil)
