package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz writer producing multiple-choice questions.

Rules:
- Every question has exactly 4 options and exactly one correct answer.
- The correct_answer field must repeat the text of the correct option verbatim.
- Output one question per line, nothing else: no preamble, no markdown, no blank lines.
- Do not number the questions.`

// rowFormat is the exact shape the ingestion layer expects per line.
const rowFormat = `"question","option1","option2","option3","option4","correct_answer"`

// buildDocumentPrompt constructs the user message for document-based generation.
func buildDocumentPrompt(documentText string, n int, maxChars int) string {
	if len(documentText) > maxChars {
		documentText = documentText[:maxChars]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d quiz questions based on the following document content:\n", n)
	b.WriteString(documentText)
	b.WriteString("\nEach question should be formatted exactly as:\n")
	b.WriteString(rowFormat)
	b.WriteString("\nDo not include question numbers, do not prefix numbers to the questions.")
	return b.String()
}

// buildTopicPrompt constructs the user message for topic-based generation.
func buildTopicPrompt(topic string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d quiz questions on the topic: %s\n", n, topic)
	b.WriteString("Each question should be formatted exactly as:\n")
	b.WriteString(rowFormat)
	b.WriteString("\nDo not include question numbers, do not prefix numbers to the questions.")
	return b.String()
}
