package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

func handlerHandshake(msg *utils.Mensaje) (interface{}, error) {
	utils.InfoLog.Info("Handshake recibido", "origen", msg.Origen)

	utils.AplicarRetardo("handshake", config.RetardoMemoria)

	return map[string]interface{}{
		"status":             "OK",
		"cantidad_marcos":    config.CantidadMarcos,
		"entradas_por_tabla": config.EntradasPorTabla,
	}, nil
}

// permisosDesdeOperacion mapea la operación del mensaje a los bits de
// permiso del acceso
func permisosDesdeOperacion(operacion string) (int, error) {
	switch operacion {
	case "LEER", "r":
		return PermisoLectura, nil
	case "ESCRIBIR", "rw":
		return PermisoLectura | PermisoEscritura, nil
	default:
		return 0, fmt.Errorf("operación de acceso desconocida: %s", operacion)
	}
}

func handlerAcceso(msg *utils.Mensaje) (interface{}, error) {
	vpn, ok := utils.ObtenerEntero(msg, "vpn")
	if !ok {
		return map[string]interface{}{"error": "VPN no proporcionado o formato incorrecto"}, nil
	}

	permisos, err := permisosDesdeOperacion(msg.Operacion)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}, nil
	}

	utils.AplicarRetardo("acceso", config.RetardoMemoria)

	marco, err := mmu.Acceder(vpn, permisos)
	if err != nil {
		utils.ErrorLog.Error("Acceso no resuelto", "vpn", vpn, "operacion", msg.Operacion, "error", err)
		return map[string]interface{}{"error": err.Error()}, nil
	}

	return map[string]interface{}{
		"status": "OK",
		"marco":  marco,
	}, nil
}

func handlerAsignarPagina(msg *utils.Mensaje) (interface{}, error) {
	vpn, ok := utils.ObtenerEntero(msg, "vpn")
	if !ok {
		return map[string]interface{}{"error": "VPN no proporcionado o formato incorrecto"}, nil
	}

	permisosStr, ok := utils.ObtenerCadena(msg, "permisos")
	if !ok {
		permisosStr = "r"
	}
	permisos, err := permisosDesdeOperacion(permisosStr)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}, nil
	}

	utils.AplicarRetardo("asignación", config.RetardoMemoria)

	marco, err := mmu.AsignarPagina(vpn, permisos)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}, nil
	}

	return map[string]interface{}{
		"status": "OK",
		"marco":  marco,
	}, nil
}

func handlerLiberarPagina(msg *utils.Mensaje) (interface{}, error) {
	vpn, ok := utils.ObtenerEntero(msg, "vpn")
	if !ok {
		return map[string]interface{}{"error": "VPN no proporcionado o formato incorrecto"}, nil
	}

	utils.AplicarRetardo("liberación", config.RetardoMemoria)

	mmu.LiberarPagina(vpn)

	return map[string]interface{}{"status": "OK"}, nil
}

func handlerCambiarProceso(msg *utils.Mensaje) (interface{}, error) {
	pid, ok := utils.ObtenerEntero(msg, "pid")
	if !ok {
		return map[string]interface{}{"error": "PID no proporcionado o formato incorrecto"}, nil
	}

	utils.AplicarRetardo("cambio de proceso", config.RetardoMemoria)

	mmu.CambiarProceso(pid)

	return map[string]interface{}{
		"status": "OK",
		"pid":    mmu.ProcesoActual(),
	}, nil
}

func handlerMemoryDump(msg *utils.Mensaje) (interface{}, error) {
	pid, ok := utils.ObtenerEntero(msg, "pid")
	if !ok {
		pid = mmu.ProcesoActual()
	}

	ruta, err := mmu.CrearDump(pid, config.DumpPath)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}, nil
	}

	return map[string]interface{}{
		"status":  "OK",
		"archivo": ruta,
	}, nil
}

func handlerEstado(msg *utils.Mensaje) (interface{}, error) {
	estado := map[string]interface{}{
		"status":      "OK",
		"pid_actual":  mmu.ProcesoActual(),
		"cola_listos": mmu.ColaDeListos(),
		"marcos":      mmu.Marcos(),
	}

	if pid, ok := utils.ObtenerEntero(msg, "pid"); ok {
		estado["metricas"] = mmu.MetricasDeProceso(pid)
	}

	return estado, nil
}
