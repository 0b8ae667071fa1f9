package domain

import (
	"sort"

	"github.com/light-bringer/smt-console/internal/pkg/coerce"
)

// Signature is a line leader's sign-off of a daily check.
type Signature struct {
	Date      string
	Line      string
	Signer    string
	Data      string
	Timestamp string
}

// LatestSignatures keeps, for the given date and line, the newest signature
// of each signer. Signatures are appended, never replaced, so the newest
// timestamp is the current one. The result is sorted by signer.
func LatestSignatures(all []Signature, date, line string) []Signature {
	latest := make(map[string]Signature)
	for _, s := range all {
		if s.Date != date || s.Line != line {
			continue
		}
		if prev, ok := latest[s.Signer]; ok && !newer(s.Timestamp, prev.Timestamp) {
			continue
		}
		latest[s.Signer] = s
	}

	out := make([]Signature, 0, len(latest))
	for _, s := range latest {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Signer < out[j].Signer })
	return out
}

// newer reports whether timestamp a is later than or equal to b. Equal
// timestamps favor the later row. Unparseable values compare as text.
func newer(a, b string) bool {
	ta, okA := coerce.ParseTimestamp(a)
	tb, okB := coerce.ParseTimestamp(b)
	if okA && okB {
		return !ta.Before(tb)
	}
	return a >= b
}
