package sampler

import "strings"

// LastBatch selects how a pass treats a final batch shorter than BatchSize.
// The empty value means "not specified"; BatchSampler rejects it, the
// loader substitutes Keep.
type LastBatch string

// Supported last-batch policies.
const (
	Keep     LastBatch = "keep"
	Discard  LastBatch = "discard"
	Rollover LastBatch = "rollover"
)

// Valid reports whether p is one of Keep, Discard or Rollover.
func (p LastBatch) Valid() bool {
	switch p {
	case Keep, Discard, Rollover:
		return true
	default:
		return false
	}
}

// String returns the policy name.
func (p LastBatch) String() string {
	return string(p)
}

// ParseLastBatch parses a policy name, ignoring case and surrounding spaces.
func ParseLastBatch(name string) (LastBatch, error) {
	p := LastBatch(strings.ToLower(strings.TrimSpace(name)))
	if !p.Valid() {
		return "", configErrorf("last_batch", "%q is not one of keep, discard, rollover", name)
	}
	return p, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so policies can be read
// from YAML or flags. Empty text leaves the policy unset.
func (p *LastBatch) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*p = ""
		return nil
	}
	parsed, err := ParseLastBatch(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p LastBatch) MarshalText() ([]byte, error) {
	return []byte(p), nil
}
