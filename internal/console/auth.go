package console

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kjramos5310/inventario-console/internal/session"
)

func (c *Console) loginCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <nombre-completo>",
		Short: "Iniciar sesion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.auth.Authenticate(cmd.Context(), args[0], password)
			if err != nil {
				return fmt.Errorf("credenciales incorrectas")
			}
			fmt.Fprintf(c.out, "Bienvenido, %s\n", user.NombreCompleto)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "contrasena")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *Console) registerCommand() *cobra.Command {
	var input session.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Crear una cuenta",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.auth.Register(cmd.Context(), input); err != nil {
				return err
			}
			// Registration never auto-logs-in.
			fmt.Fprintln(c.out, "Usuario registrado correctamente")
			return nil
		},
	}
	cmd.Flags().StringVar(&input.NombreCompleto, "nombre", "", "nombre completo")
	cmd.Flags().StringVar(&input.Email, "email", "", "correo electronico")
	cmd.Flags().StringVar(&input.Telefono, "telefono", "", "telefono")
	cmd.Flags().StringVarP(&input.Password, "password", "p", "", "contrasena")
	cmd.Flags().Int64Var(&input.IDEmpresa, "empresa", 0, "id de la empresa")
	return cmd
}

func (c *Console) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesion",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Sesion cerrada")
			return nil
		},
	}
}

func (c *Console) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar la sesion actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := c.store.Current()
			if user == nil {
				fmt.Fprintln(c.out, "Sin sesion")
				return nil
			}
			fmt.Fprintf(c.out, "%s <%s>\n", user.NombreCompleto, user.Email)
			return nil
		},
	}
}

func (c *Console) tabsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "Listar las pantallas visibles para la sesion actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			tabs := session.Tabs(c.store.Current())
			if len(tabs) == 0 {
				fmt.Fprintln(c.out, "Sin sesion: inicie sesion o registrese")
				return nil
			}
			for _, tab := range tabs {
				fmt.Fprintf(c.out, "%-22s %s\n", tab.Name, tab.Path)
			}
			return nil
		},
	}
}
