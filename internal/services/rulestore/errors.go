package rulestore

import "errors"

const (
	// ErrRulesIO is returned when the rules file cannot be read or written.
	ErrRulesIO = constError("rules file i/o failed")
	// ErrMalformedRules is returned when the rules file exists but is not a JSON array of rules.
	ErrMalformedRules = constError("malformed rules file")
)

// IsMalformedRulesError checks if the error came from an unparsable rules file.
func IsMalformedRulesError(err error) bool {
	return errors.Is(err, ErrMalformedRules)
}

// IsIOError checks if the error came from reading or writing the rules file.
func IsIOError(err error) bool {
	return errors.Is(err, ErrRulesIO)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
