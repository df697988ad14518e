package main

import (
	"fmt"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

var memoriaClient *utils.HTTPClient

// ejecutarInstruccion envía una instrucción al módulo Memoria y valida
// la respuesta
func ejecutarInstruccion(instruccion Instruccion) error {
	var respuesta map[string]interface{}
	var err error

	switch instruccion.Operacion {
	case "ASIGNAR":
		respuesta, err = memoriaClient.EnviarHTTPMensaje(utils.MensajeAsignarPagina, "ASIGNAR",
			map[string]interface{}{"vpn": instruccion.VPN, "permisos": instruccion.Permisos})

	case "LIBERAR":
		respuesta, err = memoriaClient.EnviarHTTPMensaje(utils.MensajeLiberarPagina, "LIBERAR",
			map[string]interface{}{"vpn": instruccion.VPN})

	case "LEER", "ESCRIBIR":
		respuesta, err = memoriaClient.EnviarHTTPMensaje(utils.MensajeAcceso, instruccion.Operacion,
			map[string]interface{}{"vpn": instruccion.VPN})

	case "CAMBIAR":
		respuesta, err = memoriaClient.EnviarHTTPMensaje(utils.MensajeCambiarProceso, "CAMBIAR",
			map[string]interface{}{"pid": instruccion.PID})

	case "DUMP":
		respuesta, err = memoriaClient.EnviarHTTPMensaje(utils.MensajeMemoryDump, "DUMP",
			map[string]interface{}{})

	default:
		return fmt.Errorf("instrucción no soportada: %s", instruccion.Operacion)
	}

	if err != nil {
		return err
	}
	if mensajeError, hayError := respuesta["error"].(string); hayError {
		return fmt.Errorf("memoria rechazó %s: %s", instruccion.Operacion, mensajeError)
	}

	if marco, ok := respuesta["marco"].(float64); ok {
		utils.InfoLog.Info(fmt.Sprintf("## %s - VPN: %d - Marco: %d",
			instruccion.Operacion, instruccion.VPN, int(marco)))
	}

	return nil
}

// ejecutarScript lee un script de carga y ejecuta sus instrucciones en
// orden. Las instrucciones rechazadas por memoria se registran y la
// ejecución continúa: decidir qué hacer con un fallo es tarea del
// script, no del modelo.
func ejecutarScript(ruta string) error {
	utils.InfoLog.Info("Ejecutando script", "archivo", ruta)

	contenido, err := os.ReadFile(ruta)
	if err != nil {
		return fmt.Errorf("error al leer el script %s: %v", ruta, err)
	}

	instrucciones, err := parsearScript(string(contenido))
	if err != nil {
		return fmt.Errorf("error al parsear el script %s: %v", ruta, err)
	}

	for i, instruccion := range instrucciones {
		utils.InfoLog.Info("Ejecutando instrucción",
			"script", ruta, "numero", i+1, "operacion", instruccion.Operacion)

		if err := ejecutarInstruccion(instruccion); err != nil {
			utils.ErrorLog.Error("Instrucción fallida",
				"script", ruta, "numero", i+1, "error", err)
		}

		utils.AplicarRetardo("instrucción", config.RetardoInstruccion)
	}

	utils.InfoLog.Info("Script finalizado", "archivo", ruta, "instrucciones", len(instrucciones))
	return nil
}
