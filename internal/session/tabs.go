package session

import "github.com/kjramos5310/inventario-console/internal/resources"

// Tab is one navigation destination.
type Tab struct {
	Name string
	Path string
}

// AdminName is the distinguished identity whose sessions unlock the extended
// navigation set. The check is literal name equality against nombre_completo,
// not a role lookup: any account named exactly "admin" is elevated, and
// renaming the admin account changes authorization.
const AdminName = "admin"

var baseTabs = []Tab{
	{Name: "Inicio", Path: "/inicio"},
	{Name: "Categoria", Path: "/categoria"},
	{Name: "Empresa", Path: "/empresa"},
	{Name: "Proveedor", Path: "/proveedor"},
	{Name: "AcercaDe", Path: "/AboutUs"},
}

var adminTabs = []Tab{
	{Name: "Inventario", Path: "/inventario"},
	{Name: "Pedido", Path: "/pedido"},
	{Name: "Producto", Path: "/producto"},
	{Name: "Reporte", Path: "/reporte"},
	{Name: "Rol", Path: "/rol"},
	{Name: "Usuario", Path: "/usuario"},
	{Name: "Movimiento Inventario", Path: "/movimiento-inventario"},
	{Name: "Detalle Pedido", Path: "/detalle-pedido"},
}

// IsAdmin reports whether the session belongs to the distinguished identity.
func IsAdmin(user *resources.Usuario) bool {
	return user != nil && user.NombreCompleto == AdminName
}

// Tabs returns the navigation destinations visible to the session: none when
// logged out, the base set for any authenticated user, and the union of base
// and extended sets for the admin identity.
func Tabs(user *resources.Usuario) []Tab {
	if user == nil {
		return nil
	}
	tabs := append([]Tab(nil), baseTabs...)
	if IsAdmin(user) {
		tabs = append(tabs, adminTabs...)
	}
	return tabs
}

// CanAccess reports whether the session may reach the given route path.
func CanAccess(user *resources.Usuario, path string) bool {
	for _, tab := range Tabs(user) {
		if tab.Path == path {
			return true
		}
	}
	return false
}
