package maps

import (
	"errors"
	"strings"
	"testing"
)

func TestQueryURL(t *testing.T) {
	tests := map[string]struct {
		q    Query
		want string
	}{
		"empty": {
			want: "maps://maps.apple.com/",
		},
		"coordinates": {
			q:    Query{Coordinates: &Coordinates{Lat: 47.3769, Long: 8.5417}},
			want: "maps://maps.apple.com/?ll=47.3769,8.5417",
		},
		"coordinates and type": {
			q:    Query{Coordinates: &Coordinates{Lat: -33.8568, Long: 151.2153}, Type: Satellite},
			want: "maps://maps.apple.com/?ll=-33.8568,151.2153&t=k",
		},
		"type only": {
			q:    Query{Type: Transit},
			want: "maps://maps.apple.com/?t=r",
		},
		"unknown type ignored": {
			q:    Query{Type: "Moon"},
			want: "maps://maps.apple.com/",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.q.URL(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMapTypeCodes(t *testing.T) {
	want := map[MapType]string{Standard: "m", Satellite: "k", Hybrid: "h", Transit: "r"}
	for mt, code := range want {
		if got := mt.Code(); got != code {
			t.Fatalf("%s: expected %q, got %q", mt, code, got)
		}
	}
}

func TestParseMapType(t *testing.T) {
	got, err := ParseMapType("hybrid")
	if err != nil || got != Hybrid {
		t.Fatalf("expected Hybrid, got %q %v", got, err)
	}
	if got, err := ParseMapType(""); err != nil || got != "" {
		t.Fatalf("expected empty type, got %q %v", got, err)
	}
	_, err = ParseMapType("satelite")
	if !errors.Is(err, ErrUnknownMapType) {
		t.Fatalf("expected ErrUnknownMapType, got %v", err)
	}
	if !strings.Contains(err.Error(), `"Satellite"`) {
		t.Fatalf("expected suggestion in %q", err.Error())
	}
}
