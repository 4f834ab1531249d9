package secpath

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestSecureMode(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		mode uint32
		want bool
	}{
		{name: "File minimal", kind: KindFile, mode: 0o4500, want: true},
		{name: "File owner write unchecked", kind: KindFile, mode: 0o4700, want: true},
		{name: "File group other exec unchecked", kind: KindFile, mode: 0o4511, want: true},
		{name: "File no setuid", kind: KindFile, mode: 0o500, want: false},
		{name: "File no owner exec", kind: KindFile, mode: 0o4400, want: false},
		{name: "File no owner read", kind: KindFile, mode: 0o4100, want: false},
		{name: "File group writable", kind: KindFile, mode: 0o4520, want: false},
		{name: "File other writable", kind: KindFile, mode: 0o4502, want: false},
		{name: "File world writable", kind: KindFile, mode: 0o4777, want: false},
		{name: "Dir minimal", kind: KindDir, mode: 0o500, want: true},
		{name: "Dir owner write unchecked", kind: KindDir, mode: 0o700, want: true},
		{name: "Dir group other read exec unchecked", kind: KindDir, mode: 0o755, want: true},
		{name: "Dir group writable", kind: KindDir, mode: 0o520, want: false},
		{name: "Dir other writable", kind: KindDir, mode: 0o502, want: false},
		{name: "Dir no owner exec", kind: KindDir, mode: 0o400, want: false},
		{name: "Other never secure", kind: KindOther, mode: 0o4500, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SecureMode(tt.kind, tt.mode); got != tt.want {
				t.Errorf("SecureMode(%v, %#o) = %t, want %t", tt.kind, tt.mode, got, tt.want)
			}
		})
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	info, err := Check(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Kind != KindFile {
		t.Errorf("kind = %v, want %v", info.Kind, KindFile)
	}
	if info.Secure {
		t.Error("0644 file reported secure")
	}
	if info.UID != uint32(os.Getuid()) {
		t.Errorf("uid = %d, want %d", info.UID, os.Getuid())
	}

	if err := os.Chmod(path, 0o500|os.ModeSetuid); err != nil {
		t.Fatal(err)
	}
	info, err = Check(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.Secure {
		t.Error("4500 file reported insecure")
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()

	info, err := Check(dir)
	if err != nil {
		t.Fatal(err)
	}
	if info.Kind != KindDir {
		t.Errorf("kind = %v, want %v", info.Kind, KindDir)
	}
	if !info.Secure {
		t.Error("private temp dir reported insecure")
	}

	if err := os.Chmod(dir, 0o770); err != nil {
		t.Fatal(err)
	}
	info, err = Check(dir)
	if err != nil {
		t.Fatal(err)
	}
	if info.Secure {
		t.Error("group-writable dir reported secure")
	}
}

func TestCheckNotExist(t *testing.T) {
	_, err := Check(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestCheckOtherKind(t *testing.T) {
	info, err := Check(os.DevNull)
	if err != nil {
		t.Skipf("cannot stat %s: %v", os.DevNull, err)
	}
	if info.Kind != KindOther {
		t.Errorf("kind = %v, want %v", info.Kind, KindOther)
	}
	if info.Secure {
		t.Error("device node reported secure")
	}
}
