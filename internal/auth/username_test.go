package auth

import (
	"strings"
	"testing"
)

func TestEmailToUsername(t *testing.T) {
	cases := map[string]string{
		"jane.doe@example.com":  "jane.doe",
		"JDoe@Example.COM":      "jdoe",
		"  spaced@example.com ": "spaced",
		"noatsign":              "noatsign",
	}
	for in, want := range cases {
		if got := EmailToUsername(in); got != want {
			t.Errorf("EmailToUsername(%q) = %q, beklenen %q", in, got, want)
		}
	}
}

func TestEmailToUsernameTruncates(t *testing.T) {
	long := strings.Repeat("a", 200) + "@example.com"
	if got := EmailToUsername(long); len(got) != 150 {
		t.Errorf("uzunluk = %d, beklenen 150", len(got))
	}
}
