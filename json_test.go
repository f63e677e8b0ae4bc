package httpflow

import "testing"

func TestEncodeJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"object", map[string]int{"a": 1}, `{"a":1}`},
		{"string", "hi", `"hi"`},
		{"number", 42, "42"},
		{"nil", nil, "null"},
		{"unencodable", make(chan int), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeJSON(tt.in); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	valid := []string{`{"a":1}`, `[1,2]`, `"hi"`, "42", "null", "true"}
	for _, s := range valid {
		v, ok := DecodeJSON(s).Get()
		if !ok {
			t.Errorf("%q should decode", s)
			continue
		}
		if string(v) != s {
			t.Errorf("expected %s, got %s", s, v)
		}
	}

	invalid := []string{"", "not-json", "{", `{"a":}`, "tru"}
	for _, s := range invalid {
		if DecodeJSON(s).IsSome() {
			t.Errorf("%q should not decode", s)
		}
	}
}
