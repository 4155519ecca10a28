// Package testutil provides fake external collaborators for tests: a compiler
// and a host toolchain implemented as small shell scripts.
//
// The fake compiler copies the source file into the object artifact, and the
// fake linker turns the concatenated objects into a shell script executable.
// A "source" file is therefore a shell snippet, e.g. `printf 5`, which lets each
// test control what the produced binary prints and how it exits.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"sushitest/internal/domain"
)

// SyntaxErrorMarker makes the fake compiler reject a source file
const SyntaxErrorMarker = "SYNTAX ERROR"

// LinkErrorMarker makes the fake linker reject an object file
const LinkErrorMarker = "UNDEFINED SYMBOL"

const fakeCompiler = `#!/bin/sh
case "$1" in
  /*) ;;
  *) echo "expected absolute path, got $1"; exit 2 ;;
esac
[ -f "$1" ] || { echo "Could not open file $1"; exit 1; }
if grep -q '` + SyntaxErrorMarker + `' "$1"; then
  echo "error: unexpected token"
  echo "1 error generated" >&2
  exit 1
fi
cp "$1" output.o
`

const fakeLinker = `#!/bin/sh
harness="$1"
shift
[ -f "$harness" ] || { echo "no such file: $harness" >&2; exit 1; }
out=""
objs=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift 2 ;;
    *)
      [ -f "$1" ] || { echo "no such file: $1" >&2; exit 1; }
      if grep -q '` + LinkErrorMarker + `' "$1"; then
        echo "ld: undefined symbol: main" >&2
        exit 1
      fi
      objs="$objs $1"
      shift ;;
  esac
done
[ -n "$out" ] || { echo "missing -o" >&2; exit 1; }
{ echo '#!/bin/sh'; cat $objs; } > "$out"
chmod +x "$out"
`

// FakeToolchain holds the paths of an installed fake toolchain
type FakeToolchain struct {
	CompilerPath string
	Dir          string
	HarnessPath  string
	LinkerPath   string
}

// SkipUnlessShell skips tests that need a POSIX shell
func SkipUnlessShell(tb testing.TB) {
	tb.Helper()
	if runtime.GOOS == "windows" {
		tb.Skip("fake toolchain requires /bin/sh")
	}
}

// NewFakeToolchain installs the fake compiler, linker and harness in a temp directory
func NewFakeToolchain(tb testing.TB) *FakeToolchain {
	tb.Helper()
	SkipUnlessShell(tb)

	dir := tb.TempDir()
	ft := &FakeToolchain{
		CompilerPath: filepath.Join(dir, "sushi"),
		Dir:          dir,
		HarnessPath:  filepath.Join(dir, "clang_harness.cpp"),
		LinkerPath:   filepath.Join(dir, "clang++"),
	}

	WriteExecutable(tb, ft.CompilerPath, fakeCompiler)
	WriteExecutable(tb, ft.LinkerPath, fakeLinker)
	WriteFile(tb, ft.HarnessPath, "int main() { return 0; }\n")

	return ft
}

// Toolchain returns the domain description pointing at the fakes
func (ft *FakeToolchain) Toolchain() domain.Toolchain {
	return domain.Toolchain{
		CompilerPath:  ft.CompilerPath,
		HarnessPath:   ft.HarnessPath,
		ToolchainPath: ft.LinkerPath,
	}.WithDefaults()
}

// Source writes a source file whose compiled executable runs body
func (ft *FakeToolchain) Source(tb testing.TB, dir, name, body string) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	WriteFile(tb, path, body+"\n")
	return path
}

// WriteFile writes content to path, creating parent directories
func WriteFile(tb testing.TB, path, content string) {
	tb.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tb.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tb.Fatalf("Failed to write %s: %v", path, err)
	}
}

// WriteExecutable writes an executable script to path
func WriteExecutable(tb testing.TB, path, content string) {
	tb.Helper()
	WriteFile(tb, path, content)
	if err := os.Chmod(path, 0755); err != nil {
		tb.Fatalf("Failed to chmod %s: %v", path, err)
	}
}
