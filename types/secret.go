package types

import "encoding/json"

// redacted replaces secret values in every rendered form.
const redacted = "[REDACTED]"

// SecretString holds a sensitive value such as an API access key. Every
// textual rendering (fmt verbs, JSON encoding, %#v) produces a redacted
// placeholder; the wrapped value is only reachable through Reveal.
type SecretString struct {
	value string
}

// NewSecretString wraps a sensitive value.
func NewSecretString(value string) SecretString {
	return SecretString{value: value}
}

// Reveal returns the wrapped value. Call sites should pass the result
// directly to where it is consumed and avoid storing or logging it.
func (s SecretString) Reveal() string {
	return s.value
}

// IsZero reports whether the secret is empty.
func (s SecretString) IsZero() bool {
	return s.value == ""
}

// String implements fmt.Stringer with a redacted placeholder.
func (s SecretString) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v does not leak the value.
func (s SecretString) GoString() string {
	return redacted
}

// MarshalJSON encodes the redacted placeholder, never the value.
func (s SecretString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// UnmarshalJSON accepts a plain JSON string.
func (s *SecretString) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	s.value = v

	return nil
}
