package compiler_errors

import (
	"bytes"
	"testing"
)

type plainError struct{ message string }

func (e plainError) GetMessage() string { return e.message }

type positionedError struct {
	plainError
	file         string
	line, column int
}

func (e positionedError) GetFileName() string { return e.file }
func (e positionedError) GetLine() int        { return e.line }
func (e positionedError) GetColumn() int      { return e.column }
func (e positionedError) GetLength() int      { return 1 }

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  CompilerError
		want string
	}{
		{"plain", plainError{"boom"}, "boom"},
		{"positioned", positionedError{plainError{"boom"}, "a.cl", 3, 7}, "a.cl:3:7: boom"},
		{"no file name", positionedError{plainError{"boom"}, "", 3, 7}, "3:7: boom"},
		{"no position", positionedError{plainError{"boom"}, "a.cl", 0, 0}, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFailNow(t *testing.T) {
	var out bytes.Buffer
	exited := false
	eh := NewErrorHandlerWithExit(&out, func() {
		exited = true
		panic("exit")
	})

	if eh.HasErrors() {
		t.Fatal("new handler has errors")
	}

	eh.AddError(plainError{"first"})
	eh.AddError(positionedError{plainError{"second"}, "a.cl", 1, 2})

	func() {
		defer func() { _ = recover() }()
		eh.FailNow()
	}()

	if !exited {
		t.Error("exit hook was not called")
	}
	if len(eh.Errors()) != 2 {
		t.Errorf("got %d errors, want 2", len(eh.Errors()))
	}

	want := "Build failed with errors:\nERROR: first\nERROR: a.cl:1:2: second\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
