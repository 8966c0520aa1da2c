// Package maps builds Apple Maps links.
package maps

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownMapType is returned by ParseMapType.
var ErrUnknownMapType = errors.New("maps: unknown map type")

const baseURL = "maps://maps.apple.com/"

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat  float64 `json:"lat" yaml:"lat"`
	Long float64 `json:"long" yaml:"long"`
}

func (c Coordinates) String() string {
	return formatDegrees(c.Lat) + "," + formatDegrees(c.Long)
}

// MapType selects the map rendering.
type MapType string

const (
	Standard  MapType = "Standard"
	Satellite MapType = "Satellite"
	Hybrid    MapType = "Hybrid"
	Transit   MapType = "Transit"
)

// MapTypes lists the known types.
var MapTypes = []MapType{Standard, Satellite, Hybrid, Transit}

// Code is the value of the t query parameter, or "" for an unknown type.
func (t MapType) Code() string {
	switch t {
	case Standard:
		return "m"
	case Satellite:
		return "k"
	case Hybrid:
		return "h"
	case Transit:
		return "r"
	}
	return ""
}

// ParseMapType accepts a type name in any case. Unknown names fail with a
// suggestion of the closest known name.
func ParseMapType(s string) (MapType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, t := range MapTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	best, score := MapTypes[0], -1
	for _, t := range MapTypes {
		d := levenshtein.ComputeDistance(strings.ToLower(s), strings.ToLower(string(t)))
		if score < 0 || d < score {
			best, score = t, d
		}
	}
	return "", fmt.Errorf("%w %q, did you mean %q?", ErrUnknownMapType, s, best)
}

// Query is what to show.
type Query struct {
	Coordinates *Coordinates
	Type        MapType
}

// URL builds the maps:// link. Missing parts are left out.
func (q Query) URL() string {
	var params []string
	if q.Coordinates != nil {
		params = append(params, "ll="+q.Coordinates.String())
	}
	if code := q.Type.Code(); code != "" {
		params = append(params, "t="+code)
	}
	if len(params) == 0 {
		return baseURL
	}
	return baseURL + "?" + strings.Join(params, "&")
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
