package console

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	pkgerrors "github.com/kjramos5310/inventario-console/pkg/errors"

	"github.com/kjramos5310/inventario-console/internal/resources"
	"github.com/kjramos5310/inventario-console/internal/session"
)

// record is the dynamic row shape the generic screens operate on.
type record = map[string]any

// guard enforces the route gate: unauthenticated sessions reach nothing, and
// extended collections require the admin identity.
func (c *Console) guard(name string) (resources.Spec, error) {
	spec, ok := resources.Lookup(name)
	if !ok {
		return resources.Spec{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("coleccion desconocida: %s", name))
	}

	user := c.store.Current()
	if user == nil {
		return resources.Spec{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "sin sesion: inicie sesion primero")
	}
	if !session.CanAccess(user, "/"+spec.Name) {
		return resources.Spec{}, pkgerrors.New(pkgerrors.CodeForbidden, fmt.Sprintf("la pantalla %s requiere la cuenta admin", spec.Name))
	}
	return spec, nil
}

func (c *Console) resource(spec resources.Spec) resources.Resource[record] {
	return resources.New[record](c.client, spec)
}

// screenContext tags every log line emitted under a screen with its
// collection.
func (c *Console) screenContext(ctx context.Context, spec resources.Spec) context.Context {
	if c.logg == nil {
		return ctx
	}
	return c.logg.WithCollection(ctx, spec.Name)
}

// reload is the refetch step every mutation ends with: the screen's list is
// replaced wholesale.
func (c *Console) reload(ctx context.Context, spec resources.Spec) error {
	items, err := c.resource(spec).FindAll(ctx)
	if err != nil {
		return err
	}
	return c.renderTable(items)
}

func (c *Console) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <coleccion>",
		Short: "Listar los registros de una coleccion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := c.guard(args[0])
			if err != nil {
				return err
			}
			return c.reload(c.screenContext(cmd.Context(), spec), spec)
		},
	}
}

func (c *Console) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <coleccion> <id>",
		Short: "Mostrar un registro",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := c.guard(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			item, err := c.resource(spec).FindOne(c.screenContext(cmd.Context(), spec), id)
			if err != nil {
				return err
			}
			return c.renderRecord(item)
		},
	}
}

func (c *Console) createCommand() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "create <coleccion>",
		Short: "Crear un registro a partir de un json parcial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := c.guard(args[0])
			if err != nil {
				return err
			}
			input, err := parsePartial(data)
			if err != nil {
				return err
			}
			ctx := c.screenContext(cmd.Context(), spec)
			if _, err := c.resource(spec).Create(ctx, input); err != nil {
				return err
			}
			return c.reload(ctx, spec)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "{}", "registro parcial en json")
	return cmd
}

func (c *Console) updateCommand() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update <coleccion> <id>",
		Short: "Actualizar un registro a partir de un json parcial",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := c.guard(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			changes, err := parsePartial(data)
			if err != nil {
				return err
			}
			ctx := c.screenContext(cmd.Context(), spec)
			if _, err := c.resource(spec).Update(ctx, id, changes); err != nil {
				return err
			}
			return c.reload(ctx, spec)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "{}", "cambios en json")
	return cmd
}

func (c *Console) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <coleccion> <id>",
		Short: "Eliminar un registro",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := c.guard(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			ctx := c.screenContext(cmd.Context(), spec)
			if err := c.resource(spec).Remove(ctx, id); err != nil {
				return err
			}
			return c.reload(ctx, spec)
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("id invalido: %s", raw))
	}
	return id, nil
}

func parsePartial(raw string) (resources.Partial, error) {
	var input resources.Partial
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "el json parcial no es valido")
	}
	return input, nil
}
