package main

// Bits de permiso de un acceso. Solo se consulta el bit de escritura;
// el resto del código de acceso se ignora.
const (
	PermisoLectura   = 0x01
	PermisoEscritura = 0x02
)

// EntradaPagina representa una entrada de la tabla de páginas (PTE)
type EntradaPagina struct {
	Valida         bool // Indica si la entrada mapea un marco
	Escribible     bool // Permite accesos de escritura
	Marco          int  // Número de marco físico asignado
	CopiaPendiente bool // Solo-lectura por compartir copy-on-write, no por diseño
}

// DirectorioPaginas es el nivel interno de la tabla: un arreglo fijo de PTEs
type DirectorioPaginas struct {
	Entradas []EntradaPagina
}

// TablaPaginas es el nivel externo: directorios creados a demanda.
// Un slot en nil significa directorio ausente.
type TablaPaginas struct {
	Directorios []*DirectorioPaginas
}

// Proceso agrupa el PID con su tabla de páginas
type Proceso struct {
	PID   int
	Tabla *TablaPaginas
}

// MetricasProceso acumula estadísticas de memoria virtual por proceso
type MetricasProceso struct {
	Asignaciones       int
	Liberaciones       int
	FallosAtendidos    int
	FallosRechazados   int
	PromocionesEnSitio int
	DivisionesCOW      int
	CambiosDeContexto  int
	Forks              int
}
