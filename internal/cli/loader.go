package cli

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Error codes for job file loading.
const (
	ErrCodeNotFound   = "E001" // job file missing or unreadable
	ErrCodeCompile    = "E002" // CUE syntax or evaluation error
	ErrCodeInvalid    = "E003" // job does not satisfy the schema
	ErrCodeIncomplete = "E004" // job has non-concrete fields
)

// LoadError is a coded job-loading failure.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// jobSchema constrains job documents. A job names a view, a comparator, and
// two inputs; an input is either a line file or a SQLite query.
const jobSchema = `
#Input: {
	file: string
} | {
	sqlite: {
		path:  string
		query: string
	}
}

job: {
	view:    "merge" | "join"
	compare: string | *"natural"
	left:    #Input
	right:   #Input
}
`

// Job describes one merge or join invocation loaded from a CUE job file.
type Job struct {
	View    string `json:"view"`
	Compare string `json:"compare"`
	Left    Input  `json:"left"`
	Right   Input  `json:"right"`
}

// Input is one side of a job: exactly one of File or SQLite is set.
type Input struct {
	File   string       `json:"file,omitempty"`
	SQLite *SQLiteInput `json:"sqlite,omitempty"`
}

// SQLiteInput names a database file and an ordered query over it.
type SQLiteInput struct {
	Path  string `json:"path"`
	Query string `json:"query"`
}

// LoadJob reads a CUE job file, validates it against the job schema, and
// decodes it.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading job file: %v", err)}
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(jobSchema)
	if err := schema.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeCompile, Message: fmt.Sprintf("compiling job schema: %v", err)}
	}

	doc := ctx.CompileBytes(data, cue.Filename(path))
	if err := doc.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeCompile, Message: fmt.Sprintf("compiling job file: %v", err)}
	}

	unified := schema.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("job does not match schema: %v", err)}
	}

	var job Job
	if err := unified.LookupPath(cue.ParsePath("job")).Decode(&job); err != nil {
		return nil, &LoadError{Code: ErrCodeIncomplete, Message: fmt.Sprintf("decoding job: %v", err)}
	}

	return &job, nil
}
