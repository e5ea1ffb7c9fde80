package codes

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var reOrderRef = regexp.MustCompile(`^ORDER-\d{8}-[A-HJ-NP-Z2-9]{6}$`)
var reTicketRef = regexp.MustCompile(`^TICKET-\d{8}-[A-HJ-NP-Z2-9]{6}$`)

func TestGenerateOrderReference(t *testing.T) {
	at := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	ref, err := GenerateOrderReference(at)
	if err != nil {
		t.Fatalf("GenerateOrderReference() error = %v", err)
	}
	if !reOrderRef.MatchString(ref) {
		t.Errorf("reference %q does not match expected format", ref)
	}
	if !strings.Contains(ref, "20250901") {
		t.Errorf("reference %q does not embed the date", ref)
	}
}

func TestGenerateTicketReference(t *testing.T) {
	ref, err := GenerateTicketReference(time.Now())
	if err != nil {
		t.Fatalf("GenerateTicketReference() error = %v", err)
	}
	if !reTicketRef.MatchString(ref) {
		t.Errorf("reference %q does not match expected format", ref)
	}
}

func TestReferencesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	at := time.Now()
	for i := 0; i < 100; i++ {
		ref, err := GenerateOrderReference(at)
		if err != nil {
			t.Fatalf("GenerateOrderReference() error = %v", err)
		}
		if seen[ref] {
			t.Fatalf("duplicate reference %q after %d generations", ref, i)
		}
		seen[ref] = true
	}
}

func TestShortID(t *testing.T) {
	cases := map[string]string{
		"ORDER-20250901-7KQ2M3":  "20250901-7KQ2M3",
		"TICKET-20250901-XJ4P9W": "20250901-XJ4P9W",
		"no-dashes":              "dashes",
		"plain":                  "plain",
	}
	for in, want := range cases {
		if got := ShortID(in); got != want {
			t.Errorf("ShortID(%q) = %q, want %q", in, got, want)
		}
	}
}
