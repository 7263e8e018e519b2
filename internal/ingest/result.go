package ingest

import "github.com/abhisek/quizstation/internal/question"

// Result holds the accepted question records of one ingestion attempt
// together with its per-line diagnostics. The boundary layer decides how
// warnings are surfaced; adapters never print or log themselves.
type Result struct {
	Questions []question.Question
	Warnings  []LineWarning
}
