package res

import (
	"strconv"
	"testing"
)

func TestMapOnSuccess(t *testing.T) {
	t.Parallel()

	r := Map(Success[int, string](21), func(v int) string { return strconv.Itoa(v * 2) })
	if !r.Equal(Success[string, string]("42")) {
		t.Errorf("Map = %v, want Success(42)", r)
	}
}

func TestMapOnFailureSkipsFn(t *testing.T) {
	t.Parallel()

	calls := 0
	r := Map(Failure[int, string]("nope"), func(v int) string {
		calls++
		return ""
	})

	if !r.Equal(Failure[string, string]("nope")) {
		t.Errorf("Map on Failure = %v, want Failure(nope)", r)
	}
	if calls != 0 {
		t.Errorf("fn invoked %d times on Failure, want 0", calls)
	}
}

func TestMapFailureOnFailure(t *testing.T) {
	t.Parallel()

	r := MapFailure(Failure[int, string]("nope"), func(e string) int { return len(e) })
	if !r.Equal(Failure[int, int](4)) {
		t.Errorf("MapFailure = %v, want Failure(4)", r)
	}
}

func TestMapFailureOnSuccessSkipsFn(t *testing.T) {
	t.Parallel()

	calls := 0
	r := MapFailure(Success[int, string](7), func(e string) int {
		calls++
		return 0
	})

	if !r.Equal(Success[int, int](7)) {
		t.Errorf("MapFailure on Success = %v, want Success(7)", r)
	}
	if calls != 0 {
		t.Errorf("fn invoked %d times on Success, want 0", calls)
	}
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	parse := func(s string) Result[int, string] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Failure[int, string]("not a number: " + s)
		}
		return Success[int, string](n)
	}

	if r := AndThen(Success[string, string]("12"), parse); !r.IsSuccessAnd(12) {
		t.Errorf("AndThen on Success = %v, want Success(12)", r)
	}
	if r := AndThen(Success[string, string]("x"), parse); !r.IsFailureAnd("not a number: x") {
		t.Errorf("AndThen with failing fn = %v", r)
	}
	if r := AndThen(Failure[string, string]("upstream"), parse); !r.IsFailureAnd("upstream") {
		t.Errorf("AndThen on Failure = %v, want Failure(upstream)", r)
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	inner := Success[int, string](5)
	if r := Flatten(Success[Result[int, string], string](inner)); !r.Equal(inner) {
		t.Errorf("Flatten(Success(Success(5))) = %v, want Success(5)", r)
	}

	innerFail := Failure[int, string]("inner")
	if r := Flatten(Success[Result[int, string], string](innerFail)); !r.Equal(innerFail) {
		t.Errorf("Flatten(Success(Failure)) = %v, want Failure(inner)", r)
	}

	if r := Flatten(Failure[Result[int, string], string]("outer")); !r.IsFailureAnd("outer") {
		t.Errorf("Flatten(Failure) = %v, want Failure(outer)", r)
	}
}
