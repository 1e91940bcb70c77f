package resources

import (
	"github.com/shopspring/decimal"

	"github.com/kjramos5310/inventario-console/pkg/types"
)

func init() {
	// Money fields travel as plain JSON numbers on this API.
	decimal.MarshalJSONWithoutQuotes = true
}

// Categoria is a product category.
type Categoria struct {
	IDCategoria   int64  `json:"id_categoria,omitempty"`
	Nombre        string `json:"nombre"`
	Descripcion   string `json:"descripcion"`
	FechaCreacion string `json:"fecha_creacion,omitempty"`
}

// Empresa is a company.
type Empresa struct {
	IDEmpresa     int64  `json:"id_empresa,omitempty"`
	Nombre        string `json:"nombre"`
	RUC           int64  `json:"ruc"`
	Direccion     string `json:"direccion"`
	Telefono      string `json:"telefono"`
	EmailContacto string `json:"email_contacto"`
	Sector        string `json:"sector"`
	FechaCreacion string `json:"fecha_creacion,omitempty"`
	Estado        string `json:"estado,omitempty"`
}

// Proveedor is a supplier. The backend names its id id_proveedor; reads are
// re-keyed onto ID.
type Proveedor struct {
	ID            int64  `json:"id,omitempty"`
	Nombre        string `json:"nombre"`
	Contacto      string `json:"contacto"`
	Direccion     string `json:"direccion"`
	Telefono      string `json:"telefono"`
	Email         string `json:"email"`
	FechaCreacion string `json:"fecha_creacion,omitempty"`
}

// Producto is a sellable product.
type Producto struct {
	ID                  int64           `json:"id,omitempty"`
	CodigoBarras        string          `json:"codigo_barras"`
	Nombre              string          `json:"nombre"`
	Descripcion         string          `json:"descripcion"`
	IDCategoria         types.Ref       `json:"id_categoria"`
	PrecioCompra        decimal.Decimal `json:"precio_compra"`
	PrecioVenta         decimal.Decimal `json:"precio_venta"`
	StockMinimo         int             `json:"stock_minimo"`
	StockMaximo         int             `json:"stock_maximo"`
	IDEmpresa           types.Ref       `json:"id_empresa"`
	IDProveedor         types.Ref       `json:"id_proveedor"`
	FechaCreacion       string          `json:"fecha_creacion,omitempty"`
	UltimaActualizacion string          `json:"ultima_actualizacion,omitempty"`
}

// Inventario is a per-company inventory record.
type Inventario struct {
	ID                 int64     `json:"id,omitempty"`
	IDEmpresa          types.Ref `json:"id_empresa"`
	FechaActualizacion string    `json:"fecha_actualizacion,omitempty"`
}

// MovimientoInventario is a stock movement.
type MovimientoInventario struct {
	ID              int64           `json:"id,omitempty"`
	IDProducto      types.Ref       `json:"id_producto"`
	TipoMovimiento  string          `json:"tipo_movimiento"`
	Cantidad        int             `json:"cantidad"`
	FechaMovimiento string          `json:"fecha_movimiento"`
	Motivo          string          `json:"motivo,omitempty"`
	IDUsuario       types.Ref       `json:"id_usuario"`
	CostoUnitario   decimal.Decimal `json:"costo_unitario"`
	Ubicacion       string          `json:"ubicacion,omitempty"`
}

// Pedido is an order with optional embedded line items.
type Pedido struct {
	ID             int64           `json:"id,omitempty"`
	IDEmpresa      types.Ref       `json:"id_empresa"`
	FechaSolicitud string          `json:"fecha_solicitud"`
	FechaEntrega   string          `json:"fecha_entrega"`
	Estado         string          `json:"estado"`
	Detalles       []DetallePedido `json:"detalles,omitempty"`
}

// DetallePedido is an order line item.
type DetallePedido struct {
	ID             int64           `json:"id,omitempty"`
	IDPedido       types.Ref       `json:"id_pedido"`
	IDProducto     types.Ref       `json:"id_producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"preciounitario"`
}

// Usuario is an account record. Password fields travel on the wire exactly as
// the backend stores them.
type Usuario struct {
	ID             int64     `json:"id,omitempty"`
	NombreCompleto string    `json:"nombre_completo"`
	Email          string    `json:"email"`
	Telefono       string    `json:"telefono"`
	Estado         string    `json:"estado"`
	FechaCreacion  string    `json:"fecha_creacion,omitempty"`
	UltimaConexion string    `json:"ultima_conexion,omitempty"`
	Password       string    `json:"password,omitempty"`
	PasswordHash   string    `json:"password_hash,omitempty"`
	IDEmpresa      types.Ref `json:"id_empresa"`
}

// Rol is a role definition.
type Rol struct {
	ID          int64  `json:"id,omitempty"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// Reporte is a generated report.
type Reporte struct {
	ID              int64     `json:"id,omitempty"`
	IDEmpresa       types.Ref `json:"id_empresa"`
	FechaGeneracion string    `json:"fecha_generacion"`
	Tipo            string    `json:"tipo"`
	ArchivoPDF      string    `json:"archivo_pdf"`
	IDUsuario       types.Ref `json:"id_usuario"`
}
