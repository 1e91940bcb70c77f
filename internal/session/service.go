package session

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/kjramos5310/inventario-console/pkg/errors"
	"github.com/kjramos5310/inventario-console/pkg/logger"
	"github.com/kjramos5310/inventario-console/pkg/rest"

	"github.com/kjramos5310/inventario-console/internal/resources"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Service implements authenticate, register, and logout against the usuario
// collection and the session store.
type Service struct {
	users resources.Resource[resources.Usuario]
	store *Store
	logg  *logger.Logger
	now   func() time.Time
}

func NewService(client *rest.Client, store *Store, logg *logger.Logger) *Service {
	return &Service{
		users: resources.Usuarios(client),
		store: store,
		logg:  logg,
		now:   time.Now,
	}
}

// Authenticate fetches the full usuario collection and scans it in collection
// order for the first record whose nombre_completo equals username and whose
// password_hash equals the supplied password. The backend stores that field
// unhashed, so this is plain equality; behavior parity with the existing
// frontend requires keeping it. A match persists the record as the session.
// A miss and a transport failure signal the same way, with no state change.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*resources.Usuario, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "fetching usuarios for login failed", err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "authentication failed")
	}

	for i := range users {
		if users[i].NombreCompleto == username && users[i].PasswordHash == password {
			match := users[i]
			if err := s.store.Set(&match); err != nil {
				return nil, err
			}
			if s.logg != nil {
				s.logg.Info(s.logg.WithUser(ctx, match.NombreCompleto), "session started")
			}
			return &match, nil
		}
	}

	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication failed")
}

// RegisterInput is the profile required to create an account. Every field must
// be non-empty; validation runs before any network call.
type RegisterInput struct {
	NombreCompleto string `json:"nombre_completo" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Telefono       string `json:"telefono" validate:"required"`
	Password       string `json:"password" validate:"required"`
	IDEmpresa      int64  `json:"id_empresa" validate:"required"`
}

// Register creates a usuario with estado "activo" and both password fields set
// to the raw supplied password, matching the backend contract. It does not log
// the new account in.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*resources.Usuario, error) {
	if err := validate.Struct(input); err != nil {
		return nil, formatValidationErrors(err)
	}

	record := resources.Partial{
		"nombre_completo": input.NombreCompleto,
		"email":           input.Email,
		"telefono":        input.Telefono,
		"estado":          "activo",
		"fecha_creacion":  s.now().UTC().Format(time.RFC3339),
		"ultima_conexion": nil,
		"password":        input.Password,
		"password_hash":   input.Password,
		"id_empresa":      input.IDEmpresa,
	}

	created, err := s.users.Create(ctx, record)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "register failed", err)
		}
		return nil, err
	}
	return &created, nil
}

// Logout clears the persisted session.
func (s *Service) Logout() error {
	return s.store.Clear()
}

func formatValidationErrors(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = "is required"
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "all fields are required").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}
