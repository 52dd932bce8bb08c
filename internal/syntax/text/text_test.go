package text_test

import (
	"testing"

	"go.followtheprocess.codes/quill/internal/syntax"
	"go.followtheprocess.codes/quill/internal/syntax/text"
	"go.followtheprocess.codes/test"
)

func TestLineIndex(t *testing.T) {
	src := "x := 1;\ny := 22;\n\nz"
	txt := text.New(src)

	test.Equal(t, txt.LineCount(), 4)

	tests := []struct {
		name   string // Name of the test case
		line   string // Expected line contents
		offset int    // Offset to resolve
		want   int    // Expected line index
		start  int    // Expected line start
	}{
		{name: "start of text", offset: 0, want: 0, start: 0, line: "x := 1;"},
		{name: "middle of first line", offset: 5, want: 0, start: 0, line: "x := 1;"},
		{name: "newline belongs to its line", offset: 7, want: 0, start: 0, line: "x := 1;"},
		{name: "start of second line", offset: 8, want: 1, start: 8, line: "y := 22;"},
		{name: "empty line", offset: 17, want: 2, start: 17, line: ""},
		{name: "last line", offset: 18, want: 3, start: 18, line: "z"},
		{name: "end of text", offset: len(src), want: 3, start: 18, line: "z"},
		{name: "past the end", offset: 500, want: 3, start: 18, line: "z"},
		{name: "negative", offset: -3, want: 0, start: 0, line: "x := 1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := txt.LineIndex(tt.offset)
			test.Equal(t, got, tt.want)
			test.Equal(t, txt.LineStart(got), tt.start)
			test.Equal(t, txt.Line(got), tt.line)
		})
	}
}

func TestEmpty(t *testing.T) {
	txt := text.New("")

	test.Equal(t, txt.LineCount(), 1)
	test.Equal(t, txt.LineIndex(0), 0)
	test.Equal(t, txt.LineStart(0), 0)
	test.Equal(t, txt.Line(0), "")
	test.Equal(t, txt.Line(12), "")
}

func TestTrailingNewline(t *testing.T) {
	txt := text.New("1 + 2\n")

	test.Equal(t, txt.LineCount(), 2)
	test.Equal(t, txt.Line(0), "1 + 2")
	test.Equal(t, txt.LineIndex(6), 1)
	test.Equal(t, txt.Line(1), "")
}

func TestPosition(t *testing.T) {
	src := "1 + 2\nx := @@;"
	txt := text.New(src)

	tests := []struct {
		name string          // Name of the test case
		span syntax.Span     // Span to convert
		want syntax.Position // Expected position
	}{
		{
			name: "single character",
			span: syntax.NewSpan(src, 2, 3),
			want: syntax.Position{Name: "test.ql", Offset: 2, Line: 1, StartCol: 3, EndCol: 3},
		},
		{
			name: "range on second line",
			span: syntax.NewSpan(src, 11, 13),
			want: syntax.Position{Name: "test.ql", Offset: 11, Line: 2, StartCol: 6, EndCol: 7},
		},
		{
			name: "empty span at end",
			span: syntax.NewSpan(src, len(src), len(src)),
			want: syntax.Position{Name: "test.ql", Offset: 14, Line: 2, StartCol: 9, EndCol: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := txt.Position("test.ql", tt.span)
			test.Equal(t, got, tt.want)
			test.True(t, got.IsValid())
		})
	}
}
