package wordlist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/suite"

	"github.com/fillword/fillwordgame-go/internal/dependencies/mocks"
	"github.com/fillword/fillwordgame-go/internal/model"
	"github.com/fillword/fillwordgame-go/internal/services/alphabet"
	"github.com/fillword/fillwordgame-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, alphabet.New(s.random), s.random)
	s.ctx = context.Background()
}

// Load tests

func (s *ServiceSuite) TestLoadWords() {
	err := s.service.LoadWords("en", []string{"cat", "dog", "bird"})
	s.Require().NoError(err)

	s.Equal(3, s.service.PoolSize("en"))
	s.True(s.service.Contains("en", "cat"))
	s.False(s.service.Contains("en", "horse"))
}

func (s *ServiceSuite) TestLoadWordsNormalizesAndFilters() {
	// " CAT " is trimmed and lowercased, "a" is too short, "ice-cream"
	// contains a non-letter, "кот" is outside the en alphabet, and "DOG"
	// is a duplicate after normalization.
	err := s.service.LoadWords("en", []string{" CAT ", "dog", "a", "ice-cream", "кот", "DOG"})
	s.Require().NoError(err)

	s.Equal(2, s.service.PoolSize("en"))
	s.True(s.service.Contains("en", "cat"))
	s.True(s.service.Contains("en", "Dog"))
	s.False(s.service.Contains("en", "кот"))
}

func (s *ServiceSuite) TestLoadWordsReplacesPool() {
	_ = s.service.LoadWords("en", []string{"cat", "dog"})
	_ = s.service.LoadWords("en", []string{"bird"})

	s.Equal(1, s.service.PoolSize("en"))
	s.False(s.service.Contains("en", "cat"))
}

func (s *ServiceSuite) TestLoadDefaults() {
	err := s.service.LoadDefaults()
	s.Require().NoError(err)

	s.True(s.service.PoolSize("en") > 100)
	s.True(s.service.PoolSize("ru") > 50)
	s.Equal([]string{"en", "ru"}, s.service.Languages())
	s.True(s.service.Contains("en", "mountain"))
	s.True(s.service.Contains("ru", "река"))
}

func (s *ServiceSuite) TestLoadFromStorage() {
	_ = s.storage.SaveWordPool(s.ctx, "en", []string{"cat", "dog"})

	err := s.service.LoadFromStorage(s.ctx, "en")
	s.Require().NoError(err)

	s.Equal(2, s.service.PoolSize("en"))
}

func (s *ServiceSuite) TestLoadFromStorageWhenMissing() {
	err := s.service.LoadFromStorage(s.ctx, "en")
	s.ErrorIs(err, model.ErrWordPoolNotFound)
}

func (s *ServiceSuite) TestLoadFromFilePersistsCleanPool() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	content := "cat\n\n  DOG  \nx\nbird\n"
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))

	err := s.service.LoadFromFile(s.ctx, "en", path)
	s.Require().NoError(err)

	s.Equal(3, s.service.PoolSize("en"))

	stored, err := s.storage.GetWordPool(s.ctx, "en")
	s.Require().NoError(err)
	s.Equal([]string{"cat", "dog", "bird"}, stored)
}

func (s *ServiceSuite) TestLoadFromFileMissingFile() {
	err := s.service.LoadFromFile(s.ctx, "en", filepath.Join(s.T().TempDir(), "missing.txt"))
	s.Error(err)
}

// Sample tests

func (s *ServiceSuite) TestSampleReturnsDistinctWords() {
	_ = s.service.LoadWords("en", []string{"cat", "dog", "bird", "horse"})
	s.random.QueuePerm([]int{2, 0, 3, 1})

	words, err := s.service.Sample("en", 3, 0)
	s.Require().NoError(err)
	s.Equal([]string{"bird", "cat", "horse"}, words)
}

func (s *ServiceSuite) TestSampleRespectsMaxLen() {
	_ = s.service.LoadWords("en", []string{"cat", "mountain", "dog"})
	s.random.QueuePerm([]int{0, 1})

	words, err := s.service.Sample("en", 5, 4)
	s.Require().NoError(err)
	s.Equal([]string{"cat", "dog"}, words)
}

func (s *ServiceSuite) TestSampleCountsRunesNotBytes() {
	_ = s.service.LoadWords("ru", []string{"река", "облако"})
	s.random.QueuePerm([]int{0})

	words, err := s.service.Sample("ru", 5, 4)
	s.Require().NoError(err)
	s.Require().Len(words, 1)
	s.Equal(4, utf8.RuneCountInString(words[0]))
}

func (s *ServiceSuite) TestSampleUnknownLanguage() {
	_, err := s.service.Sample("xx", 3, 0)
	s.ErrorIs(err, model.ErrWordPoolNotFound)
}

func (s *ServiceSuite) TestSampleNoEligibleWords() {
	_ = s.service.LoadWords("en", []string{"mountain", "elephant"})

	_, err := s.service.Sample("en", 3, 4)
	s.ErrorIs(err, model.ErrWordPoolEmpty)
}
