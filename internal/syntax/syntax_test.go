package syntax_test

import (
	"math/rand/v2"
	"testing"

	"go.followtheprocess.codes/quill/internal/syntax"
	"go.followtheprocess.codes/test"
)

func TestPositionString(t *testing.T) {
	tests := []struct {
		name string          // Name of the test case
		want string          // Expected return value
		pos  syntax.Position // Position under test
	}{
		{
			name: "empty",
			pos:  syntax.Position{},
			want: `BadPosition: {Name: "", Line: 0, StartCol: 0, EndCol: 0}`,
		},
		{
			name: "missing name",
			pos:  syntax.Position{Line: 12, StartCol: 2, EndCol: 6},
			want: `BadPosition: {Name: "", Line: 12, StartCol: 2, EndCol: 6}`,
		},
		{
			name: "zero line",
			pos:  syntax.Position{Name: "file.ql", Line: 0, StartCol: 12, EndCol: 19},
			want: `BadPosition: {Name: "file.ql", Line: 0, StartCol: 12, EndCol: 19}`,
		},
		{
			name: "zero start column",
			pos:  syntax.Position{Name: "file.ql", Line: 4, StartCol: 0, EndCol: 19},
			want: `BadPosition: {Name: "file.ql", Line: 4, StartCol: 0, EndCol: 19}`,
		},
		{
			name: "end less than start",
			pos:  syntax.Position{Name: "test.ql", Line: 1, StartCol: 6, EndCol: 4},
			want: `BadPosition: {Name: "test.ql", Line: 1, StartCol: 6, EndCol: 4}`,
		},
		{
			name: "valid single column",
			pos:  syntax.Position{Name: "demo.ql", Line: 1, StartCol: 6, EndCol: 6},
			want: "demo.ql:1:6",
		},
		{
			name: "valid column range",
			pos:  syntax.Position{Name: "demo.ql", Line: 17, StartCol: 20, EndCol: 26},
			want: "demo.ql:17:20-26",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.pos.String(), tt.want)
		})
	}
}

func TestComparePosition(t *testing.T) {
	a := syntax.Position{Name: "a.ql", Offset: 10, Line: 1, StartCol: 11, EndCol: 11}
	b := syntax.Position{Name: "a.ql", Offset: 20, Line: 2, StartCol: 3, EndCol: 3}
	c := syntax.Position{Name: "b.ql", Offset: 0, Line: 1, StartCol: 1, EndCol: 1}

	test.Equal(t, syntax.ComparePosition(a, a), 0)
	test.Equal(t, syntax.ComparePosition(a, b), -1)
	test.Equal(t, syntax.ComparePosition(b, a), 1)
	test.Equal(t, syntax.ComparePosition(b, c), -1)
}

func TestNewSpan(t *testing.T) {
	tests := []struct {
		name       string      // Name of the test case
		src        string      // Source text
		want       syntax.Span // Expected span
		start, end int         // Requested offsets
	}{
		{
			name:  "empty source",
			src:   "",
			start: 0,
			end:   0,
			want:  syntax.Span{Start: 0, End: 0, Literal: ""},
		},
		{
			name:  "whole source",
			src:   "1 + 2",
			start: 0,
			end:   5,
			want:  syntax.Span{Start: 0, End: 5, Literal: "1 + 2"},
		},
		{
			name:  "middle",
			src:   "x := 42;",
			start: 5,
			end:   7,
			want:  syntax.Span{Start: 5, End: 7, Literal: "42"},
		},
		{
			name:  "end past source",
			src:   "abc",
			start: 1,
			end:   12,
			want:  syntax.Span{Start: 1, End: 3, Literal: "bc"},
		},
		{
			name:  "inverted",
			src:   "abc",
			start: 2,
			end:   1,
			want:  syntax.Span{Start: 2, End: 2, Literal: ""},
		},
		{
			name:  "negative start",
			src:   "abc",
			start: -4,
			end:   1,
			want:  syntax.Span{Start: 0, End: 1, Literal: "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := syntax.NewSpan(tt.src, tt.start, tt.end)
			test.Equal(t, got, tt.want)
			test.Equal(t, got.Len(), len(got.Literal))
		})
	}
}

func FuzzNewSpan(f *testing.F) {
	for range 50 {
		f.Add("some source text", rand.IntN(40)-10, rand.IntN(40)-10)
	}

	f.Fuzz(func(t *testing.T, src string, start, end int) {
		span := syntax.NewSpan(src, start, end)

		test.True(t, span.Start <= span.End, test.Context("start %d after end %d", span.Start, span.End))
		test.True(t, span.Start >= 0)
		test.True(t, span.End <= len(src))
		test.Equal(t, span.Literal, src[span.Start:span.End])
	})
}
