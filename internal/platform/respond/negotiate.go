package respond

import (
	"strconv"
	"strings"
)

type mediaRange struct {
	cbor        bool
	specificity int
}

// ranges the problem renderer understands. Wildcards resolve to JSON.
var mediaRanges = map[string]mediaRange{
	"*/*":                      {cbor: false, specificity: 0},
	"application/*":            {cbor: false, specificity: 1},
	"application/json":         {cbor: false, specificity: 2},
	"application/cbor":         {cbor: true, specificity: 2},
	"application/problem+json": {cbor: false, specificity: 3},
	"application/problem+cbor": {cbor: true, specificity: 3},
}

// prefersCBOR reports whether the Accept header ranks a CBOR type above every
// JSON type. The q-value decides first and specificity breaks ties; a full tie
// or an unusable header falls back to JSON. q=0 excludes a type and a
// malformed q counts as 1.
func prefersCBOR(accept string) bool {
	if strings.TrimSpace(accept) == "" {
		return false
	}

	found := false
	var (
		best        mediaRange
		bestQuality float64
	)
	for _, part := range strings.Split(accept, ",") {
		fields := strings.Split(part, ";")
		mr, ok := mediaRanges[strings.ToLower(strings.TrimSpace(fields[0]))]
		if !ok {
			continue
		}
		q := quality(fields[1:])
		if q <= 0 {
			continue
		}
		switch {
		case !found,
			q > bestQuality,
			q == bestQuality && mr.specificity > best.specificity,
			q == bestQuality && mr.specificity == best.specificity && !mr.cbor:
			best, bestQuality, found = mr, q, true
		}
	}
	return found && best.cbor
}

func quality(params []string) float64 {
	for _, p := range params {
		key, value, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 1
		}
		return q
	}
	return 1
}
