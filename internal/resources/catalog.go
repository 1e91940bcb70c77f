package resources

// Spec declares the full contract of one collection: its endpoint path, the
// backend-native id field copied into a uniform "id" on reads, and the payload
// fields permitted on each write verb. A nil allowlist means the partial input
// passes through unmodified.
type Spec struct {
	Name        string
	Path        string
	RekeyFrom   string
	CreateAllow []string
	UpdateAllow []string
}

// Catalog enumerates every collection the backend serves. The allowlists and
// re-keying follow the backend's inconsistencies field for field; note the
// camel-cased fechaActualizacion on inventario writes against the snake-cased
// read field, and the create-only allowlists on proveedor and reporte.
var Catalog = map[string]Spec{
	"categoria": {
		Name:        "categoria",
		Path:        "/categoria",
		CreateAllow: []string{"nombre", "descripcion"},
		UpdateAllow: []string{"nombre", "descripcion"},
	},
	"empresa": {
		Name: "empresa",
		Path: "/empresa",
	},
	"inventario": {
		Name:        "inventario",
		Path:        "/inventario",
		RekeyFrom:   "id_inventario",
		CreateAllow: []string{"id_empresa", "fechaActualizacion"},
		UpdateAllow: []string{"id_empresa", "fechaActualizacion"},
	},
	"movimiento-inventario": {
		Name: "movimiento-inventario",
		Path: "/movimiento-inventario",
	},
	"pedido": {
		Name:        "pedido",
		Path:        "/pedido",
		RekeyFrom:   "id_pedido",
		CreateAllow: []string{"id_empresa", "fecha_solicitud", "fecha_entrega", "estado", "detalles"},
		UpdateAllow: []string{"id_empresa", "fecha_solicitud", "fecha_entrega", "estado", "detalles"},
	},
	"producto": {
		Name: "producto",
		Path: "/producto",
	},
	"proveedor": {
		Name:        "proveedor",
		Path:        "/proveedor",
		RekeyFrom:   "id_proveedor",
		CreateAllow: []string{"nombre", "contacto", "direccion", "telefono", "email"},
	},
	"reporte": {
		Name:        "reporte",
		Path:        "/reporte",
		CreateAllow: []string{"id_empresa", "fecha_generacion", "tipo", "archivo_pdf", "id_usuario"},
	},
	"rol": {
		Name:        "rol",
		Path:        "/rol",
		CreateAllow: []string{"nombre", "descripcion"},
		UpdateAllow: []string{"nombre", "descripcion"},
	},
	"usuario": {
		Name:        "usuario",
		Path:        "/usuario",
		CreateAllow: []string{"nombre_completo", "email", "telefono", "estado", "password", "password_hash", "id_empresa"},
		UpdateAllow: []string{"nombre_completo", "email", "telefono", "estado", "password", "password_hash", "id_empresa"},
	},
	"detalle-pedido": {
		Name:        "detalle-pedido",
		Path:        "/detalle_pedido",
		CreateAllow: []string{"id_pedido", "id_producto", "cantidad", "preciounitario"},
		UpdateAllow: []string{"id_pedido", "id_producto", "cantidad", "preciounitario"},
	},
}

// Lookup returns the spec for a collection name.
func Lookup(name string) (Spec, bool) {
	spec, ok := Catalog[name]
	return spec, ok
}
