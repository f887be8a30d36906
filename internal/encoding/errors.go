package encoding

import (
	"fmt"
	"strings"
)

// DecodeError reports that no codec in the fallback chain could decode a
// subtitle source. Address is filled in by the caller that knows it.
type DecodeError struct {
	Address   string
	Attempted []string
}

func (e *DecodeError) Error() string {
	if e.Address != "" {
		return fmt.Sprintf("cannot decode %s: tried %s", e.Address, strings.Join(e.Attempted, ", "))
	}
	return fmt.Sprintf("cannot decode subtitle data: tried %s", strings.Join(e.Attempted, ", "))
}
