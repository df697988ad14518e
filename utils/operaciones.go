package utils

import (
	"log/slog"
	"time"
)

// AplicarRetardo aplica un retardo simulado y lo registra
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	slog.Debug("Aplicando retardo", "operación", operacion, "duración_ms", duracionMs)
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
}

// ObtenerEntero extrae un campo numérico de los datos de un mensaje.
// JSON decodifica los números como float64.
func ObtenerEntero(msg *Mensaje, campo string) (int, bool) {
	datosMap, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return 0, false
	}
	valor, ok := datosMap[campo].(float64)
	if !ok {
		return 0, false
	}
	return int(valor), true
}

// ObtenerCadena extrae un campo de texto de los datos de un mensaje
func ObtenerCadena(msg *Mensaje, campo string) (string, bool) {
	datosMap, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return "", false
	}
	valor, ok := datosMap[campo].(string)
	return valor, ok
}
