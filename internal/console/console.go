package console

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kjramos5310/inventario-console/pkg/config"
	"github.com/kjramos5310/inventario-console/pkg/logger"
	"github.com/kjramos5310/inventario-console/pkg/rest"

	"github.com/kjramos5310/inventario-console/internal/session"
)

// Console wires the session model and the resource layer behind a command
// tree. Each collection command is a screen: fetch a list, render a table,
// mutate, refetch.
type Console struct {
	cfg    *config.Config
	logg   *logger.Logger
	client *rest.Client
	store  *session.Store
	auth   *session.Service
	out    io.Writer
}

func New(cfg *config.Config, logg *logger.Logger) (*Console, error) {
	client, err := rest.NewClient(cfg.API.BaseURL,
		rest.WithLogger(logg),
		rest.WithTimeout(cfg.API.Timeout),
	)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(cfg.Session.File, logg)
	return &Console{
		cfg:    cfg,
		logg:   logg,
		client: client,
		store:  store,
		auth:   session.NewService(client, store, logg),
		out:    os.Stdout,
	}, nil
}

// RootCommand builds the full command tree.
func (c *Console) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "inventario",
		Short:         "Consola de inventario",
		Long:          "Terminal console for the inventario REST backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		c.loginCommand(),
		c.registerCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.tabsCommand(),
		c.listCommand(),
		c.getCommand(),
		c.createCommand(),
		c.updateCommand(),
		c.deleteCommand(),
		c.pedidoTotalCommand(),
	)
	return root
}
