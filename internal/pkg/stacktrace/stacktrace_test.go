package stacktrace

import "testing"

const sample = `goroutine 7 [running]:
runtime/debug.Stack()
	/usr/local/go/src/runtime/debug/stack.go:26 +0x5e
github.com/shandysiswandi/academia/internal/pkg/router.middlewareRecover.func1.1()
	/app/internal/pkg/router/middleware_recover.go:28 +0x4c
panic({0x1, 0x2})
	/usr/local/go/src/runtime/panic.go:792 +0x132
github.com/shandysiswandi/academia/internal/career/usecase.(*Usecase).ListJobs(...)
	/app/internal/career/usecase/job.go:41 +0x1f
`

func TestInternalPaths(t *testing.T) {
	// Act
	got := InternalPaths([]byte(sample))

	// Assert
	want := []string{
		"internal/pkg/router/middleware_recover.go:28",
		"internal/career/usecase/job.go:41",
	}
	if len(got) != len(want) {
		t.Fatalf("InternalPaths() = %#v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("InternalPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInternalPaths_Empty(t *testing.T) {
	if got := InternalPaths(nil); len(got) != 0 {
		t.Fatalf("InternalPaths(nil) = %#v", got)
	}
}
