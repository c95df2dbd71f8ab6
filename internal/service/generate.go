package service

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

// Sentence-split generation. This is the deliberately simple fallback
// generator: it takes the leading sentences of the document and turns them
// into a summary, flashcards, and multiple-choice items.

const (
	summarySentenceLimit   = 5
	summaryMinSentenceLen  = 20
	flashcardSentenceLimit = 10
	quizSentenceLimit      = 5
	minSentenceLen         = 30
)

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

var quizDistractors = []string{
	"This is an incorrect option",
	"This is also incorrect",
	"Not the correct answer",
}

type FlashcardDraft struct {
	Term       string
	Definition string
}

type QuizItemDraft struct {
	Question      string
	Choices       []string
	CorrectAnswer string
}

func splitSentences(text string) []string {
	return sentenceSplitter.Split(text, -1)
}

// GenerateSummary produces a numbered key-points block from the first few
// substantial sentences of the text.
func GenerateSummary(text string) string {
	var b strings.Builder
	b.WriteString("KEY POINTS:\n\n")

	count := 0
	for _, sentence := range splitSentences(text) {
		trimmed := strings.TrimSpace(sentence)
		if len(trimmed) > summaryMinSentenceLen && count < summarySentenceLimit {
			count++
			fmt.Fprintf(&b, "%d. %s.\n\n", count, trimmed)
		}
	}

	if count == 0 {
		b.WriteString("Summary could not be generated. Content may be too short.")
	}

	return b.String()
}

// GenerateFlashcards builds term/definition pairs: the term is the opening
// words of a sentence, the definition the full sentence.
func GenerateFlashcards(text string) []FlashcardDraft {
	sentences := splitSentences(text)
	limit := flashcardSentenceLimit
	if len(sentences) < limit {
		limit = len(sentences)
	}

	var cards []FlashcardDraft
	for i := 0; i < limit; i++ {
		sentence := strings.TrimSpace(sentences[i])
		if len(sentence) <= minSentenceLen {
			continue
		}

		words := strings.Fields(sentence)
		n := len(words)
		if n > 5 {
			n = 5
		}

		cards = append(cards, FlashcardDraft{
			Term:       "Q: " + strings.Join(words[:n], " ") + "...",
			Definition: sentence,
		})
	}

	return cards
}

// GenerateQuizItems builds four-choice questions where the correct answer is
// the source sentence mixed with canned distractors.
func GenerateQuizItems(text string) []QuizItemDraft {
	sentences := splitSentences(text)
	limit := quizSentenceLimit
	if len(sentences) < limit {
		limit = len(sentences)
	}

	var items []QuizItemDraft
	for i := 0; i < limit; i++ {
		sentence := strings.TrimSpace(sentences[i])
		if len(sentence) <= minSentenceLen {
			continue
		}

		choices := make([]string, 0, len(quizDistractors)+1)
		choices = append(choices, sentence)
		choices = append(choices, quizDistractors...)
		rand.Shuffle(len(choices), func(a, b int) {
			choices[a], choices[b] = choices[b], choices[a]
		})

		items = append(items, QuizItemDraft{
			Question:      "What is the main idea of this statement?",
			Choices:       choices,
			CorrectAnswer: sentence,
		})
	}

	return items
}
