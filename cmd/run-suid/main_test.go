package main

import (
	"reflect"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		flags []string
		pass  []string
	}{
		{name: "Empty", args: nil, flags: nil, pass: nil},
		{name: "Flags only", args: []string{"-v", "--dry-run"}, flags: []string{"-v", "--dry-run"}, pass: nil},
		{name: "Separator only", args: []string{"--"}, flags: []string{}, pass: []string{}},
		{name: "Pass through", args: []string{"--", "a", "-v"}, flags: []string{}, pass: []string{"a", "-v"}},
		{name: "Both sides", args: []string{"-v", "--", "x"}, flags: []string{"-v"}, pass: []string{"x"}},
		{name: "Second separator passed", args: []string{"--", "--", "y"}, flags: []string{}, pass: []string{"--", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, pass := splitArgs(tt.args)
			if !equal(flags, tt.flags) {
				t.Errorf("flags = %v, want %v", flags, tt.flags)
			}
			if !equal(pass, tt.pass) {
				t.Errorf("pass = %v, want %v", pass, tt.pass)
			}
		})
	}
}

func equal(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

func TestDryRunLine(t *testing.T) {
	got := dryRunLine("/opt/app/tool.run-suid", []string{"a", "b c"})
	want := `Dry run: would have succeeded in starting the process: "/opt/app/tool.run-suid" "a" "b c"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = dryRunLine("/opt/app/tool.run-suid", nil)
	want = `Dry run: would have succeeded in starting the process: "/opt/app/tool.run-suid"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
