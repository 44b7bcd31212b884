package logger

import "testing"

func TestTruncateForLog(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short string untouched", in: "hello", limit: 10, want: "hello"},
		{name: "exact limit untouched", in: "hello", limit: 5, want: "hello"},
		{name: "long string truncated", in: "hello world", limit: 5, want: "hello..."},
		{name: "zero limit yields empty", in: "hello", limit: 0, want: ""},
		{name: "whitespace trimmed first", in: "  hello  ", limit: 10, want: "hello"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateForLog(tc.in, tc.limit); got != tc.want {
				t.Fatalf("TruncateForLog(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, json := range []bool{true, false} {
		for _, debug := range []bool{true, false} {
			logger, err := New(json, debug)
			if err != nil {
				t.Fatalf("New(%v, %v): %v", json, debug, err)
			}
			if logger == nil {
				t.Fatalf("New(%v, %v) returned nil logger", json, debug)
			}
		}
	}
}
