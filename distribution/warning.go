// SPDX-License-Identifier: MIT

package distribution

import "fmt"

// Warning is a non-fatal advisory about a field. Warnings never alter sampled
// values and never stop instantiation.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Warnf builds a Warning with a formatted message.
func Warnf(field, format string, args ...any) Warning {
	return Warning{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (w Warning) String() string {
	if w.Field == "" {
		return w.Message
	}
	return w.Field + ": " + w.Message
}
