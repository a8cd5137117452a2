package beautylog

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// maxStackDepth bounds captured call stacks
const maxStackDepth = 32

// CallStack is a captured sequence of program counters, innermost frame first.
type CallStack []uintptr

// CaptureStack records the call stack of its caller.
// skip 0 makes frame 0 the function calling CaptureStack, 1 its caller, and so on.
func CaptureStack(skip int) CallStack {
	pc := make([]uintptr, maxStackDepth)
	// +2 skips runtime.Callers and CaptureStack
	n := runtime.Callers(skip+2, pc)
	return CallStack(pc[:n])
}

// frame returns the index-th frame of the stack, expanding inlined calls
func (s CallStack) frame(index int) (runtime.Frame, bool) {
	if index < 0 || len(s) == 0 {
		return runtime.Frame{}, false
	}
	frames := runtime.CallersFrames(s)
	for i := 0; ; i++ {
		f, more := frames.Next()
		if i == index {
			return f, f.Function != ""
		}
		if !more {
			return runtime.Frame{}, false
		}
	}
}

// DescribeStack renders the index-th frame of stack as
// "file:(<name>) -> class:(<type>) -> func:(<method>) -> line:(<n>)".
// It returns "" when the frame cannot be resolved.
func DescribeStack(stack CallStack, index int) string {
	f, ok := stack.frame(index)
	if !ok {
		return ""
	}
	class, method := splitFunction(f.Function)
	if method == "" {
		return ""
	}
	if f.File == "" || f.Line == 0 {
		return describeShort(class, method)
	}
	return fmt.Sprintf("file:(%s) -> class:(%s) -> func:(%s) -> line:(%d)",
		baseFileName(f.File), class, method, f.Line)
}

// describeCaller renders the short "class:(<type>) -> func:(<method>)" form
// for the index-th frame, used for implicitly captured call sites
func describeCaller(stack CallStack, index int) string {
	f, ok := stack.frame(index)
	if !ok {
		return ""
	}
	class, method := splitFunction(f.Function)
	if method == "" {
		return ""
	}
	return describeShort(class, method)
}

func describeShort(class, method string) string {
	return fmt.Sprintf("class:(%s) -> func:(%s)", class, method)
}

// baseFileName normalizes separators for the host and keeps the last element
func baseFileName(path string) string {
	return filepath.Base(filepath.FromSlash(path))
}

// splitFunction splits a runtime function name such as
// "github.com/a/b.(*T).M.func1" into class "github.com/a/b.T" and method "M.func1".
// Plain functions and closures of plain functions have the package path as class.
func splitFunction(fn string) (class, method string) {
	if fn == "" {
		return "", ""
	}
	slash := strings.LastIndex(fn, "/")
	dot := strings.Index(fn[slash+1:], ".")
	if dot < 0 {
		return "", fn
	}
	pkg := fn[:slash+1+dot]
	// Generic instantiations appear as "[...]" and may contain dots
	rest := strings.ReplaceAll(fn[slash+1+dot+1:], "[...]", "")

	// Pointer receiver: (*T).M
	if strings.HasPrefix(rest, "(") {
		end := strings.Index(rest, ").")
		if end < 0 {
			return pkg, rest
		}
		typeName := strings.TrimPrefix(rest[1:end], "*")
		return pkg + "." + stripTypeParams(typeName), rest[end+2:]
	}

	parts := strings.SplitN(rest, ".", 2)
	if len(parts) == 1 || isAnonymous(parts[1]) {
		return pkg, rest
	}
	// Value receiver: T.M
	return pkg + "." + stripTypeParams(parts[0]), parts[1]
}

// isAnonymous reports whether name starts with a compiler-generated closure segment
func isAnonymous(name string) bool {
	seg, _, _ := strings.Cut(name, ".")
	if !strings.HasPrefix(seg, "func") || len(seg) == 4 {
		return false
	}
	for _, r := range seg[4:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// stripTypeParams drops the "[...]" instantiation of generic receiver types
func stripTypeParams(name string) string {
	if i := strings.Index(name, "["); i >= 0 {
		return name[:i]
	}
	return name
}
