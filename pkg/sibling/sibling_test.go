package sibling

import (
	"path/filepath"
	"testing"
)

func TestTarget(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "No extension", file: "tool", want: "tool.run-suid"},
		{name: "Single extension", file: "tool.bin", want: "tool.run-suid.bin"},
		{name: "Multiple dots", file: "a.b.c", want: "a.b.run-suid.c"},
		{name: "Leading dot", file: ".cfg", want: ".run-suid.cfg"},
		{name: "Trailing dot", file: "tool.", want: "tool.run-suid."},
	}

	dir := filepath.FromSlash("/opt/app")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := filepath.Join(dir, tt.want)
			if got := Target(dir, tt.file); got != want {
				t.Errorf("Target(%q, %q) = %q, want %q", dir, tt.file, got, want)
			}
			// pure function, same input same output
			if again := Target(dir, tt.file); again != want {
				t.Errorf("Target not deterministic: %q then %q", want, again)
			}
		})
	}
}
