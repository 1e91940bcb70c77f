package session

import (
	"testing"

	"github.com/kjramos5310/inventario-console/internal/resources"
)

func tabPaths(tabs []Tab) map[string]bool {
	paths := make(map[string]bool, len(tabs))
	for _, tab := range tabs {
		paths[tab.Path] = true
	}
	return paths
}

func TestTabsLoggedOutSeesNothing(t *testing.T) {
	if tabs := Tabs(nil); tabs != nil {
		t.Fatalf("logged out session should have no tabs, got %v", tabs)
	}
	if CanAccess(nil, "/inicio") {
		t.Fatalf("logged out session must not reach any route")
	}
}

func TestTabsRegularUserGetsExactlyBaseSet(t *testing.T) {
	user := &resources.Usuario{NombreCompleto: "ana"}
	tabs := Tabs(user)

	expected := []string{"/inicio", "/categoria", "/empresa", "/proveedor", "/AboutUs"}
	if len(tabs) != len(expected) {
		t.Fatalf("expected %d tabs, got %d", len(expected), len(tabs))
	}
	paths := tabPaths(tabs)
	for _, path := range expected {
		if !paths[path] {
			t.Fatalf("missing base tab %s", path)
		}
	}
	if CanAccess(user, "/producto") {
		t.Fatalf("regular user must not reach extended routes")
	}
}

func TestTabsAdminGetsUnionOfBaseAndExtended(t *testing.T) {
	admin := &resources.Usuario{NombreCompleto: "admin"}
	paths := tabPaths(Tabs(admin))

	all := []string{
		"/inicio", "/categoria", "/empresa", "/proveedor", "/AboutUs",
		"/inventario", "/pedido", "/producto", "/reporte", "/rol", "/usuario",
		"/movimiento-inventario", "/detalle-pedido",
	}
	for _, path := range all {
		if !paths[path] {
			t.Fatalf("admin missing tab %s", path)
		}
	}
	if len(paths) != len(all) {
		t.Fatalf("expected %d tabs, got %d", len(all), len(paths))
	}
}

func TestAdminCheckIsLiteralNameEquality(t *testing.T) {
	for _, name := range []string{"Admin", "admin ", "administrator"} {
		if IsAdmin(&resources.Usuario{NombreCompleto: name}) {
			t.Fatalf("%q must not pass the literal admin check", name)
		}
	}
	if !IsAdmin(&resources.Usuario{NombreCompleto: "admin"}) {
		t.Fatalf("literal admin must pass")
	}
}
