package httpflow

import "testing"

func TestResponse_ZeroValueIsWaiting(t *testing.T) {
	var r Response[string, Failure]
	if r.State() != StateWaiting {
		t.Errorf("zero value should be waiting, got %s", r.State())
	}
	if _, ok := r.Value(); ok {
		t.Error("waiting should carry no value")
	}
	if _, ok := r.Reason(); ok {
		t.Error("waiting should carry no failure")
	}
}

func TestResponse_Success(t *testing.T) {
	r := Success[string, Failure]("hi")
	if r.State() != StateSuccess {
		t.Fatalf("expected success, got %s", r.State())
	}
	v, ok := r.Value()
	if !ok || v != "hi" {
		t.Errorf("expected (hi, true), got (%q, %v)", v, ok)
	}
	if _, ok := r.Reason(); ok {
		t.Error("success should carry no failure")
	}
}

func TestResponse_Failed(t *testing.T) {
	r := Failed[string](HTTPFailure(404, "Not Found"))
	if r.State() != StateFailure {
		t.Fatalf("expected failure, got %s", r.State())
	}
	f, ok := r.Reason()
	if !ok {
		t.Fatal("expected a failure reason")
	}
	if f.Kind != FailureHTTP || f.StatusCode != 404 || f.StatusMessage != "Not Found" {
		t.Errorf("unexpected failure: %+v", f)
	}
	if _, ok := r.Value(); ok {
		t.Error("failure should carry no value")
	}
}

func TestMatch(t *testing.T) {
	describe := func(r HTTPResponse[string]) string {
		return Match(r,
			func() string { return "waiting" },
			func(v string) string { return "success:" + v },
			func(f Failure) string { return "failure:" + f.Kind.String() },
		)
	}

	if got := describe(Waiting[string, Failure]()); got != "waiting" {
		t.Errorf("expected waiting, got %s", got)
	}
	if got := describe(Success[string, Failure]("hi")); got != "success:hi" {
		t.Errorf("expected success:hi, got %s", got)
	}
	if got := describe(Failed[string](NoConversion("raw"))); got != "failure:no_conversion" {
		t.Errorf("expected failure:no_conversion, got %s", got)
	}
}

func TestState_String(t *testing.T) {
	cases := map[State]string{
		StateWaiting: "waiting",
		StateSuccess: "success",
		StateFailure: "failure",
		State(99):    "unknown",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("State(%d): expected %s, got %s", s, want, got)
		}
	}
}
