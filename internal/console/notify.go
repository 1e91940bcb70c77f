package console

import (
	"fmt"

	pkgerrors "github.com/kjramos5310/inventario-console/pkg/errors"
)

// FormatError renders the transient notification shown when a command fails:
// the public message for the error's code, the specific message, and details
// only when the code permits exposing them.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		return err.Error()
	}

	meta := pkgerrors.MetadataFor(typed.Code())
	line := fmt.Sprintf("%s: %s", meta.PublicMessage, typed.Message())
	if meta.DetailsAllowed && typed.Details() != nil {
		line = fmt.Sprintf("%s (%v)", line, typed.Details())
	}
	if meta.Retryable {
		line += " - intente de nuevo"
	}
	return line
}
