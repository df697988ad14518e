package main

import (
	"fmt"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

func inicializarModulo(rutaConfig string) {
	if _, err := os.Stat(rutaConfig); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: El archivo de configuración no existe: %s\n", rutaConfig)
		os.Exit(1)
	}

	modulo = utils.NuevoModulo("Memoria", rutaConfig)

	config = utils.CargarConfiguracion[MemoriaConfig](rutaConfig)

	utils.InicializarLogger(config.LogLevel, "Memoria")
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	if err := os.MkdirAll(config.DumpPath, 0755); err != nil {
		utils.InfoLog.Warn("No se pudo crear directorio para dumps", "error", err)
	}

	mmu = NuevaMemoriaVirtual(config.CantidadMarcos, config.EntradasPorTabla, config.PIDInicial)

	registrarHandlers()

	modulo.IniciarServidor(config.IPMemoria, config.PuertoMemoria)
}

func registrarHandlers() {
	modulo.RegistrarHandler(utils.MensajeHandshake, handlerHandshake)
	modulo.RegistrarHandler(utils.MensajeAcceso, handlerAcceso)
	modulo.RegistrarHandler(utils.MensajeAsignarPagina, handlerAsignarPagina)
	modulo.RegistrarHandler(utils.MensajeLiberarPagina, handlerLiberarPagina)
	modulo.RegistrarHandler(utils.MensajeCambiarProceso, handlerCambiarProceso)
	modulo.RegistrarHandler(utils.MensajeMemoryDump, handlerMemoryDump)
	modulo.RegistrarHandler(utils.MensajeEstado, handlerEstado)

	utils.InfoLog.Info("Handlers registrados correctamente")
}
