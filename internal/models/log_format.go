package models

import "fmt"

type LogFormat string

const (
	// FormatCommon is the Common Log Format: address, ident, user and the
	// bracketed timestamp.
	FormatCommon LogFormat = "common"
	// FormatCombined extends FormatCommon with request, status, size,
	// referrer and the quoted user agent.
	FormatCombined LogFormat = "combined"
)

func (f LogFormat) Valid() bool {
	switch f {
	case FormatCommon, FormatCombined:
		return true
	}
	return false
}

// HasAgent reports whether records parsed in this format carry an agent.
func (f LogFormat) HasAgent() bool {
	switch f {
	case FormatCommon:
		return false
	case FormatCombined:
		return true
	default:
		panic(fmt.Sprintf("invalid LogFormat: %q", f))
	}
}
