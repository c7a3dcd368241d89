package ioutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ismailceylan/urlify/internal/ioutil"
)

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.NewCountingWriter(&sb)

	cw.Write([]byte("ab"))       //nolint:errcheck
	cw.WriteString("cd")         //nolint:errcheck
	cw.Fprint("ef", "gh")        //nolint:errcheck
	cw.Call(func(w io.Writer) (int, error) {
		return io.WriteString(w, "ij")
	})

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}
	if num != 10 {
		t.Errorf("Result() num = %d, want 10", num)
	}
	if got := sb.String(); got != "abcdefghij" {
		t.Errorf("written = %q, want %q", got, "abcdefghij")
	}
}

func TestCountingWriter_StopsAfterError(t *testing.T) {
	t.Parallel()

	cw := ioutil.NewCountingWriter(failingWriter{})

	if _, err := cw.WriteString("ab"); !errors.Is(err, errWrite) {
		t.Fatalf("WriteString error = %v, want %v", err, errWrite)
	}

	called := false
	cw.Call(func(io.Writer) (int, error) {
		called = true
		return 0, nil
	})
	if called {
		t.Error("Call ran its function after a write error")
	}

	if _, err := cw.Result(); !errors.Is(err, errWrite) {
		t.Errorf("Result() error = %v, want %v", err, errWrite)
	}
}

func TestCountingWriter_Pool(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.GetCountingWriter(&sb)
	cw.WriteString("x") //nolint:errcheck
	ioutil.FreeCountingWriter(cw)

	cw = ioutil.GetCountingWriter(&sb)
	defer ioutil.FreeCountingWriter(cw)
	num, err := cw.Result()
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}
	if num != 0 {
		t.Errorf("reused writer num = %d, want 0", num)
	}
}
