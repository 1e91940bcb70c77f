package console

import (
	"errors"
	"strings"
	"testing"

	pkgerrors "github.com/kjramos5310/inventario-console/pkg/errors"
)

func TestFormatErrorUsesPublicMessagePerCode(t *testing.T) {
	err := pkgerrors.New(pkgerrors.CodeUnauthorized, "sin sesion: inicie sesion primero")

	got := FormatError(err)
	if !strings.Contains(got, "authentication required") {
		t.Fatalf("expected the unauthorized public message, got %q", got)
	}
	if !strings.Contains(got, "sin sesion") {
		t.Fatalf("expected the specific message, got %q", got)
	}
}

func TestFormatErrorShowsDetailsOnlyWhenAllowed(t *testing.T) {
	withDetails := pkgerrors.New(pkgerrors.CodeValidation, "datos incompletos").
		WithDetails([]string{"nombre es obligatorio"})
	if got := FormatError(withDetails); !strings.Contains(got, "nombre es obligatorio") {
		t.Fatalf("validation errors should surface their details, got %q", got)
	}

	hidden := pkgerrors.New(pkgerrors.CodeForbidden, "pantalla restringida").
		WithDetails("ruta interna /usuario")
	if got := FormatError(hidden); strings.Contains(got, "ruta interna") {
		t.Fatalf("forbidden errors must not leak details, got %q", got)
	}
}

func TestFormatErrorMarksRetryableCodes(t *testing.T) {
	err := pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("connection refused"), "el servidor no responde")
	if got := FormatError(err); !strings.Contains(got, "intente de nuevo") {
		t.Fatalf("dependency failures should invite a retry, got %q", got)
	}
}

func TestFormatErrorPassesThroughPlainErrors(t *testing.T) {
	if got := FormatError(errors.New("boom")); got != "boom" {
		t.Fatalf("plain errors render as-is, got %q", got)
	}
	if got := FormatError(nil); got != "" {
		t.Fatalf("nil renders empty, got %q", got)
	}
}
