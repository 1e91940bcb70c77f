package mockapi

import "time"

// SeedFixtures loads a small working data set: the admin account, a regular
// account, and enough master data to exercise every screen.
func (s *Server) SeedFixtures() {
	now := time.Now().UTC().Format(time.RFC3339)

	s.Seed("empresa",
		map[string]any{"nombre": "Distribuidora Andina", "ruc": 1790012345, "direccion": "Av. Amazonas 100", "telefono": "022555100", "email_contacto": "ventas@andina.ec", "sector": "Distribucion", "fecha_creacion": now, "estado": "Activo"},
	)
	s.Seed("usuario",
		map[string]any{"nombre_completo": "admin", "email": "admin@andina.ec", "telefono": "0999000001", "estado": "activo", "fecha_creacion": now, "password": "admin", "password_hash": "admin", "id_empresa": 1},
		map[string]any{"nombre_completo": "ana torres", "email": "ana@andina.ec", "telefono": "0999000002", "estado": "activo", "fecha_creacion": now, "password": "ana123", "password_hash": "ana123", "id_empresa": 1},
	)
	s.Seed("categoria",
		map[string]any{"nombre": "Bebidas", "descripcion": "Gaseosas, jugos y agua", "fecha_creacion": now},
		map[string]any{"nombre": "Snacks", "descripcion": "Productos de paso", "fecha_creacion": now},
	)
	s.Seed("proveedor",
		map[string]any{"nombre": "Acme Import", "contacto": "Carlos Ruiz", "direccion": "Calle 10 #45", "telefono": "022555200", "email": "contacto@acme.ec", "fecha_creacion": now},
	)
	s.Seed("producto",
		map[string]any{"codigo_barras": "7861001234567", "nombre": "Agua 500ml", "descripcion": "Botella 500ml", "id_categoria": 1, "precio_compra": 0.25, "precio_venta": 0.5, "stock_minimo": 24, "stock_maximo": 480, "id_empresa": 1, "id_proveedor": 1, "fecha_creacion": now},
	)
	s.Seed("inventario",
		map[string]any{"id_empresa": 1, "fecha_actualizacion": now},
	)
	s.Seed("rol",
		map[string]any{"nombre": "administrador", "descripcion": "Acceso completo"},
		map[string]any{"nombre": "operador", "descripcion": "Acceso base"},
	)
	s.Seed("pedido",
		map[string]any{"id_empresa": 1, "fecha_solicitud": now, "fecha_entrega": now, "estado": "pendiente", "detalles": "Reposicion semanal"},
	)
	s.Seed("detalle_pedido",
		map[string]any{"id_pedido": 1, "id_producto": 1, "cantidad": 48, "preciounitario": 0.25},
	)
	s.Seed("movimiento-inventario",
		map[string]any{"id_producto": 1, "tipo_movimiento": "entrada", "cantidad": 48, "fecha_movimiento": now, "motivo": "Compra a proveedor", "id_usuario": 1, "costo_unitario": 0.25, "ubicacion": "Bodega 1"},
	)
	s.Seed("reporte",
		map[string]any{"id_empresa": 1, "fecha_generacion": now, "tipo": "inventario", "archivo_pdf": "reportes/inventario-001.pdf", "id_usuario": 1},
	)
}
