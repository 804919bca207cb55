package ast_builder

import "fmt"

// DefectError means the parse tree does not have the shape the grammar
// promises: a required sub-rule or token is missing, or a context type is
// unknown. It points at a bug in the parser/builder pairing, not at the
// user's program.
type DefectError struct {
	Rule    string
	Missing string

	FileName string
	Line     int
	Column   int
}

func (e *DefectError) Error() string {
	return fmt.Sprintf("internal error: malformed parse tree: %s", e.GetMessage())
}

func (e *DefectError) GetMessage() string {
	return fmt.Sprintf("rule '%s' is missing %s", e.Rule, e.Missing)
}

func (e *DefectError) GetFileName() string { return e.FileName }
func (e *DefectError) GetLine() int        { return e.Line }
func (e *DefectError) GetColumn() int      { return e.Column }
func (e *DefectError) GetLength() int      { return 0 }
