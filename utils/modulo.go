package utils

import (
	"fmt"
	"log/slog"
	"os"
)

// Modulo representa un módulo genérico del sistema
type Modulo struct {
	Nombre      string
	Server      *HTTPServer
	Clientes    map[string]*HTTPClient
	ConfigPath  string
	HandlerFunc map[int]HTTPHandlerFunc
}

// NuevoModulo crea una nueva instancia de un módulo
func NuevoModulo(nombre string, configPath string) *Modulo {
	return &Modulo{
		Nombre:      nombre,
		Clientes:    make(map[string]*HTTPClient),
		ConfigPath:  configPath,
		HandlerFunc: make(map[int]HTTPHandlerFunc),
	}
}

// RegistrarHandler registra un handler para un tipo de mensaje
func (m *Modulo) RegistrarHandler(tipo int, handler HTTPHandlerFunc) {
	m.HandlerFunc[tipo] = handler
}

// ConectarCon crea y registra un cliente hacia otro módulo
func (m *Modulo) ConectarCon(nombre string, ip string, puerto int) *HTTPClient {
	cliente := NewHTTPClient(ip, puerto, m.Nombre)
	m.Clientes[nombre] = cliente
	return cliente
}

// IniciarServidor crea e inicializa el servidor HTTP del módulo
func (m *Modulo) IniciarServidor(ip string, puerto int) {
	m.Server = NewHTTPServer(ip, puerto, m.Nombre)

	for tipo, handler := range m.HandlerFunc {
		m.Server.RegisterHTTPHandler(tipo, handler)
	}

	go func() {
		if err := m.Server.Start(); err != nil {
			slog.Error("Error al iniciar servidor HTTP", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Servidor HTTP iniciado", "módulo", m.Nombre, "dirección", fmt.Sprintf("%s:%d", ip, puerto))
}

// ============================================================================
// Constantes para tipos de mensajes entre módulos
// ============================================================================
const (
	// === COMUNICACIÓN BÁSICA (1-9) ===
	MensajeHandshake = 1 // Conexión inicial
	MensajeOperacion = 2 // Operaciones genéricas

	// === OPERACIONES DE MEMORIA VIRTUAL (10-19) ===
	MensajeAcceso        = 10 // Acceso de lectura/escritura a una página
	MensajeAsignarPagina = 11 // Asignar un marco a una página
	MensajeLiberarPagina = 12 // Liberar la página de un proceso
	MensajeMemoryDump    = 13 // Volcado de tablas y marcos
	MensajeEstado        = 14 // Consultar estado global

	// === GESTIÓN DE PROCESOS (20-29) ===
	MensajeCambiarProceso = 20 // Cambio de contexto o fork
)
