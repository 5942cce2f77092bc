package domain

import (
	"errors"
	"testing"
)

func TestErasOrderIsFixed(t *testing.T) {
	want := []Era{Era1950s, Era1960s, Era1970s, Era1980s, Era1990s, Era2000s}
	got := Eras()
	if len(got) != len(want) {
		t.Fatalf("Eras() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Eras()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestErasReturnsACopy(t *testing.T) {
	first := Eras()
	first[0] = Era2000s
	if second := Eras(); second[0] != Era1950s {
		t.Fatal("mutating the returned slice must not change the canonical order")
	}
}

func TestParseEra(t *testing.T) {
	cases := []struct {
		in      string
		want    Era
		wantErr bool
	}{
		{in: "1950s", want: Era1950s},
		{in: " 1970s ", want: Era1970s},
		{in: "1990S", want: Era1990s},
		{in: "1850s", wantErr: true},
		{in: "", wantErr: true},
		{in: "sixties", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseEra(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownEra) {
				t.Fatalf("ParseEra(%q) err = %v, want ErrUnknownEra", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseEra(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseEra(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := Era1950s.DisplayName(); got != "The Fifties" {
		t.Fatalf("DisplayName(1950s) = %q", got)
	}
	if got := Era2000s.DisplayName(); got != "The Two Thousands" {
		t.Fatalf("DisplayName(2000s) = %q", got)
	}
	for _, era := range Eras() {
		if era.DisplayName() == "" {
			t.Fatalf("era %s has no display name", era)
		}
	}
}

func TestStatusLifecycleHelpers(t *testing.T) {
	pending := GenerationStatus{Kind: StatusPending}
	if !pending.Pending() || pending.Settled() {
		t.Fatal("pending status misreported")
	}
	done := GenerationStatus{Kind: StatusDone, Image: &ImageAsset{Data: []byte{1}}}
	if done.Pending() || !done.Settled() {
		t.Fatal("done status misreported")
	}
	failed := GenerationStatus{Kind: StatusError, ErrorMessage: "boom"}
	if failed.Pending() || !failed.Settled() {
		t.Fatal("error status misreported")
	}
}
