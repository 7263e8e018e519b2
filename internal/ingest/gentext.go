package ingest

import (
	"regexp"
	"strings"

	"github.com/abhisek/quizstation/internal/question"
)

// generatedFields is the exact field count of a well-formed generated line:
// "question","option1","option2","option3","option4","correct_answer"
const generatedFields = 6

// ordinalPrefix matches a leading question number such as "1. ", "2) " or "3 ".
var ordinalPrefix = regexp.MustCompile(`^\d+[.)]?\s*`)

// ParseGenerated turns raw model output into question records, one intended
// record per line. The upstream generator is unreliable, so parsing is
// tolerant: a line that does not split into exactly 6 quoted fields is
// dropped with a LineWarning instead of aborting the batch. Accidental
// header echoes (a line whose stem is the literal "question") are discarded
// silently. If nothing usable remains the whole attempt fails with
// ErrEmptyResult.
func ParseGenerated(text string) (Result, error) {
	var res Result

	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fields := strings.Split(line, `","`)
		if len(fields) != generatedFields {
			res.Warnings = append(res.Warnings, LineWarning{LineNo: i + 1, Line: line})
			continue
		}
		for j, f := range fields {
			fields[j] = strings.Trim(strings.TrimSpace(f), `"`)
		}

		stem := cleanStem(fields[0])
		if stem == "question" {
			// Header row echoed back by the model.
			continue
		}

		var opts [question.NumOptions]string
		copy(opts[:], fields[1:5])
		res.Questions = append(res.Questions, question.New(stem, opts, fields[5]))
	}

	if len(res.Questions) == 0 {
		return Result{Warnings: res.Warnings}, ErrEmptyResult
	}
	return res, nil
}

// cleanStem strips stray quotes and a leading ordinal ("3) Who..." → "Who...").
func cleanStem(s string) string {
	s = strings.Trim(s, `"`)
	return ordinalPrefix.ReplaceAllString(s, "")
}
