package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quizstation/internal/question"
)

// requiredColumns are the CSV columns every quiz file must provide.
// Matching is case-sensitive after trimming whitespace from header cells.
var requiredColumns = []string{
	"question", "option1", "option2", "option3", "option4", "correct_answer",
}

// LoadCSV parses an uploaded Q&A CSV into question records.
//
// The first row is the header. Header cells are whitespace-trimmed before
// matching; columns beyond the required six are ignored. A missing required
// column fails the whole attempt with *FormatError. Rows are converted
// as-is apart from the "none" normalization; empty stems or options pass
// through and downstream code must tolerate them.
func LoadCSV(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return Result{}, ErrEmptyResult
	}

	index, ferr := columnIndex(rows[0])
	if ferr != nil {
		return Result{}, ferr
	}

	var res Result
	for _, row := range rows[1:] {
		res.Questions = append(res.Questions, rowToQuestion(row, index))
	}
	if len(res.Questions) == 0 {
		return Result{}, ErrEmptyResult
	}

	return res, nil
}

// columnIndex maps each required column name to its position in the header.
func columnIndex(header []string) (map[string]int, *FormatError) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &FormatError{Missing: missing}
	}
	return index, nil
}

func rowToQuestion(row []string, index map[string]int) question.Question {
	field := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var opts [question.NumOptions]string
	for i := 0; i < question.NumOptions; i++ {
		opts[i] = field(fmt.Sprintf("option%d", i+1))
	}

	return question.New(field("question"), opts, field("correct_answer"))
}
