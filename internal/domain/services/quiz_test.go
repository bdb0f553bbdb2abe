package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizSessionCoversAllItems(t *testing.T) {
	q := NewQuizEngine(1)

	s := q.Session()
	require.Equal(t, q.Len(), s.Total)
	require.Len(t, s.Questions, q.Len())

	seen := make(map[int]bool)
	for _, question := range s.Questions {
		assert.False(t, seen[question.Index], "duplicate index %d", question.Index)
		seen[question.Index] = true
		assert.NotEmpty(t, question.Subject)
		assert.NotEmpty(t, question.Body)
	}
	assert.Len(t, seen, q.Len())
}

func TestQuizSessionsShuffleIndependently(t *testing.T) {
	q := NewQuizEngine(42)

	// with a few draws at least one ordering must differ
	first := q.Session()
	different := false
	for i := 0; i < 10 && !different; i++ {
		next := q.Session()
		for j := range next.Questions {
			if next.Questions[j].Index != first.Questions[j].Index {
				different = true
				break
			}
		}
	}
	assert.True(t, different)
}

func TestQuizScoreAllCorrect(t *testing.T) {
	q := NewQuizEngine(7)
	s := q.Session()

	order := make([]int, len(s.Questions))
	answers := make([]bool, len(s.Questions))
	for i, question := range s.Questions {
		order[i] = question.Index
		answers[i] = defaultQuizItems[question.Index].IsPhishing
	}

	result := q.Score(order, answers)
	assert.Equal(t, len(s.Questions), result.Score)
	assert.Equal(t, q.Len(), result.Total)
	assert.Len(t, result.Explanations, len(s.Questions))
}

func TestQuizScoreAllWrong(t *testing.T) {
	q := NewQuizEngine(7)
	s := q.Session()

	order := make([]int, len(s.Questions))
	answers := make([]bool, len(s.Questions))
	for i, question := range s.Questions {
		order[i] = question.Index
		answers[i] = !defaultQuizItems[question.Index].IsPhishing
	}

	result := q.Score(order, answers)
	assert.Equal(t, 0, result.Score)
}

func TestQuizScoreIgnoresOutOfRangeIndexes(t *testing.T) {
	q := NewQuizEngine(7)

	result := q.Score([]int{-1, 9999, 0}, []bool{true, true, defaultQuizItems[0].IsPhishing})
	assert.Equal(t, 1, result.Score)
	assert.Len(t, result.Explanations, 1)
}

func TestQuizScoreMismatchedLengths(t *testing.T) {
	q := NewQuizEngine(7)

	// only positions present in both slices are graded
	result := q.Score([]int{0, 1, 2}, []bool{defaultQuizItems[0].IsPhishing})
	assert.Equal(t, 1, result.Score)
}
