package arm64

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrToolchainUnavailable is returned when clang, or both llvm-objcopy and
// objcopy, cannot be found on PATH.
var ErrToolchainUnavailable = errors.New("jit/arm64: no aarch64-capable assembler toolchain found")

// ToolchainError wraps a failure from an external assembler invocation,
// carrying the command's combined output for diagnosis.
type ToolchainError struct {
	Cmd    string
	Output string
	Err    error
}

func (e *ToolchainError) Error() string {
	return fmt.Sprintf("jit/arm64: %s failed: %v\n%s", e.Cmd, e.Err, e.Output)
}

func (e *ToolchainError) Unwrap() error { return e.Err }

// Assemble hands source (as produced by AssemblyText) to an external
// assembler targeting aarch64 and returns the raw bytes of the resulting
// .text section.
//
// This is the Go-ified, hardened form of original_source/rjit.c's
// regex_compile_jit: that function shells out to "clang asm/foo.s -c -o
// asm/foo.o" then "otool -tX asm/foo.o" and parses the hex dump with
// fscanf. Assemble keeps the same two external-tool shape (assemble, then
// extract .text) but extracts the section with objcopy's --dump-section
// instead of parsing a hex-dump text format, and cross-assembles for
// aarch64 regardless of host architecture via clang's --target flag.
func Assemble(source string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "rjit-jit-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	srcPath := filepath.Join(dir, "code.s")
	objPath := filepath.Join(dir, "code.o")
	binPath := filepath.Join(dir, "code.bin")

	if err := os.WriteFile(srcPath, []byte(source), 0o600); err != nil {
		return nil, err
	}

	clang, err := exec.LookPath("clang")
	if err != nil {
		return nil, ErrToolchainUnavailable
	}
	asCmd := exec.Command(clang, "--target=aarch64-none-elf", "-c", srcPath, "-o", objPath)
	if out, err := asCmd.CombinedOutput(); err != nil {
		return nil, &ToolchainError{Cmd: "clang", Output: string(out), Err: err}
	}

	objcopy, err := findObjcopy()
	if err != nil {
		return nil, err
	}
	dumpCmd := exec.Command(objcopy, "-O", "binary", "--only-section=.text", objPath, binPath)
	if out, err := dumpCmd.CombinedOutput(); err != nil {
		return nil, &ToolchainError{Cmd: filepath.Base(objcopy), Output: string(out), Err: err}
	}

	return os.ReadFile(binPath)
}

func findObjcopy() (string, error) {
	for _, name := range []string{"llvm-objcopy", "objcopy"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrToolchainUnavailable
}
