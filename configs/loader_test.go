package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var str string
	if err := loader.AssignFirst("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.AssignFirst("list", &list); err != nil {
		t.Fatal(err)
	}
	if s := fmt.Sprintf("%v", list); s != "[1 2 3]" {
		t.Fatalf("got %s", s)
	}

	err := loader.AssignFirst("nope", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderPriority(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var strs []string
	for str := range All[string](loader, "str") {
		strs = append(strs, str)
	}
	if s := fmt.Sprintf("%v", strs); s != "[bar foo]" {
		t.Fatalf("got %s", s)
	}

	if First[string](loader, "str") != "bar" {
		t.Fatal()
	}
}

func TestLoaderSchemaViolation(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, `
str?: int
`)
	var str string
	if err := loader.AssignFirst("str", &str); err == nil {
		t.Fatal("expected schema error")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/absent.cue"}, "")
	var str string
	if err := loader.AssignFirst("str", &str); err == nil {
		t.Fatal("expected error")
	}
}

func TestFirstDefaultsToZero(t *testing.T) {
	loader := NewLoader(nil, "")
	if First[int](loader, "anything") != 0 {
		t.Fatal()
	}
}
