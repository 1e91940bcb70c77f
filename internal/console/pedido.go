package console

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kjramos5310/inventario-console/internal/resources"
)

// pedidoTotalCommand totals an order's line items. Quantities times unit
// prices are summed with decimal arithmetic so display totals carry no float
// artifacts.
func (c *Console) pedidoTotalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pedido-total <id>",
		Short: "Calcular el total de un pedido a partir de sus detalles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.guard("detalle-pedido"); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			detalles, err := resources.DetallesPedido(c.client).FindAll(cmd.Context())
			if err != nil {
				return err
			}

			total := decimal.Zero
			lines := 0
			for _, detalle := range detalles {
				if detalle.IDPedido.ID != id {
					continue
				}
				lines++
				subtotal := detalle.PrecioUnitario.Mul(decimal.NewFromInt(int64(detalle.Cantidad)))
				fmt.Fprintf(c.out, "detalle %d: %d x %s = %s\n",
					detalle.ID, detalle.Cantidad, detalle.PrecioUnitario.String(), subtotal.String())
				total = total.Add(subtotal)
			}

			if lines == 0 {
				fmt.Fprintf(c.out, "pedido %d sin detalles\n", id)
				return nil
			}
			fmt.Fprintf(c.out, "total: %s\n", total.String())
			return nil
		},
	}
}
