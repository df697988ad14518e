package utils

import (
	"net"
	"os"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	InicializarLogger("error", "utils-test")
	os.Exit(m.Run())
}

func TestMensajeBus(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}

	server := NewHTTPServer("127.0.0.1", 0, "memoria-prueba")
	server.Listener = listener
	server.RegisterHTTPHandler(MensajeAcceso, func(msg *Mensaje) (interface{}, error) {
		vpn, ok := ObtenerEntero(msg, "vpn")
		if !ok {
			return map[string]interface{}{"error": "vpn faltante"}, nil
		}
		return map[string]interface{}{"status": "OK", "vpn": vpn, "operacion": msg.Operacion}, nil
	})

	go server.Start()
	defer server.Detener()

	puerto := listener.Addr().(*net.TCPAddr).Port
	cliente := NewHTTPClient("127.0.0.1", puerto, "cpu-prueba")

	// El servidor arranca en una goroutine
	for i := 0; i < 50; i++ {
		if cliente.VerificarConexion() == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	respuesta, err := cliente.EnviarHTTPMensaje(MensajeAcceso, "LEER", map[string]interface{}{"vpn": 7})
	if err != nil {
		t.Fatalf("EnviarHTTPMensaje: %v", err)
	}
	if respuesta["status"] != "OK" {
		t.Errorf("status = %v, esperaba OK", respuesta["status"])
	}
	if vpn, _ := respuesta["vpn"].(float64); int(vpn) != 7 {
		t.Errorf("vpn = %v, esperaba 7", respuesta["vpn"])
	}
	if respuesta["operacion"] != "LEER" {
		t.Errorf("operacion = %v, esperaba LEER", respuesta["operacion"])
	}

	// Tipo de mensaje sin handler registrado
	if _, err := cliente.EnviarHTTPMensaje(MensajeMemoryDump, "DUMP", nil); err == nil {
		t.Error("esperaba error para un tipo de mensaje sin handler")
	}
}

func TestObtenerCampos(t *testing.T) {
	msg := &Mensaje{
		Tipo:  MensajeAsignarPagina,
		Datos: map[string]interface{}{"vpn": float64(3), "permisos": "rw"},
	}

	if vpn, ok := ObtenerEntero(msg, "vpn"); !ok || vpn != 3 {
		t.Errorf("ObtenerEntero(vpn) = %d, %t", vpn, ok)
	}
	if _, ok := ObtenerEntero(msg, "pid"); ok {
		t.Error("ObtenerEntero debía fallar para un campo ausente")
	}
	if permisos, ok := ObtenerCadena(msg, "permisos"); !ok || permisos != "rw" {
		t.Errorf("ObtenerCadena(permisos) = %q, %t", permisos, ok)
	}

	msg.Datos = nil
	if _, ok := ObtenerEntero(msg, "vpn"); ok {
		t.Error("ObtenerEntero debía fallar sin datos")
	}
}

func TestSemaforo(t *testing.T) {
	s := NewSemaforo(2)

	if !s.TryWait() || !s.TryWait() {
		t.Fatal("el semáforo debía admitir dos adquisiciones")
	}
	if s.TryWait() {
		t.Error("el semáforo admitió más que su capacidad")
	}

	s.Signal()
	if !s.TryWait() {
		t.Error("el semáforo no se liberó con Signal")
	}
}
