package resources

import "github.com/kjramos5310/inventario-console/pkg/rest"

// Typed accessors, one per collection.

func Categorias(c *rest.Client) Resource[Categoria] {
	return New[Categoria](c, Catalog["categoria"])
}

func Empresas(c *rest.Client) Resource[Empresa] {
	return New[Empresa](c, Catalog["empresa"])
}

func Inventarios(c *rest.Client) Resource[Inventario] {
	return New[Inventario](c, Catalog["inventario"])
}

func MovimientosInventario(c *rest.Client) Resource[MovimientoInventario] {
	return New[MovimientoInventario](c, Catalog["movimiento-inventario"])
}

func Pedidos(c *rest.Client) Resource[Pedido] {
	return New[Pedido](c, Catalog["pedido"])
}

func Productos(c *rest.Client) Resource[Producto] {
	return New[Producto](c, Catalog["producto"])
}

func Proveedores(c *rest.Client) Resource[Proveedor] {
	return New[Proveedor](c, Catalog["proveedor"])
}

func Reportes(c *rest.Client) Resource[Reporte] {
	return New[Reporte](c, Catalog["reporte"])
}

func Roles(c *rest.Client) Resource[Rol] {
	return New[Rol](c, Catalog["rol"])
}

func Usuarios(c *rest.Client) Resource[Usuario] {
	return New[Usuario](c, Catalog["usuario"])
}

func DetallesPedido(c *rest.Client) Resource[DetallePedido] {
	return New[DetallePedido](c, Catalog["detalle-pedido"])
}
