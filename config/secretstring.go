package config

// SecretStringValue replaces secret values in anything we write out.
const SecretStringValue = "<secret>"

// SecretString holds sensitive values, like the Figma access token, which
// must not appear in logs or dumped configurations. Convert to a plain
// string to get the real value.
type SecretString string

// String implements fmt.Stringer hiding the actual value.
func (s SecretString) String() string {
	if len(s) == 0 {
		return ""
	}
	return SecretStringValue
}

// MarshalJSON hides the actual value, only tells whether it is set.
func (s SecretString) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return []byte(`"` + SecretStringValue + `"`), nil
}

// MarshalYAML hides the actual value, only tells whether it is set.
func (s SecretString) MarshalYAML() (any, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return SecretStringValue, nil
}
