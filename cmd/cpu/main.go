package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion> [scripts...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/cpu-config.json scripts/ejemplo.txt\n", os.Args[0])
		os.Exit(1)
	}

	utils.InicializarLogger("info", "CPU")

	config = utils.CargarConfiguracion[CPUConfig](os.Args[1])
	utils.InicializarLogger(config.LogLevel, "CPU")

	memoriaClient = utils.NewHTTPClient(config.IPMemoria, config.PuertoMemoria, "CPU")

	if err := memoriaClient.VerificarConexion(); err != nil {
		utils.ErrorLog.Error("Memoria no disponible", "error", err)
		os.Exit(1)
	}

	respuesta, err := memoriaClient.EnviarHTTPMensaje(utils.MensajeHandshake, "handshake", map[string]interface{}{})
	if err != nil {
		utils.ErrorLog.Error("Handshake con memoria fallido", "error", err)
		os.Exit(1)
	}
	utils.InfoLog.Info("Handshake con memoria completado",
		"cantidad_marcos", respuesta["cantidad_marcos"],
		"entradas_por_tabla", respuesta["entradas_por_tabla"])

	scripts := os.Args[2:]
	if len(scripts) == 0 {
		scripts = buscarScripts(config.ScriptsPath)
	}
	if len(scripts) == 0 {
		utils.ErrorLog.Error("No hay scripts para ejecutar", "ruta", config.ScriptsPath)
		os.Exit(1)
	}

	// El contrato de memoria asume operaciones estrictamente
	// secuenciales: con capacidad 1 el semáforo serializa los scripts
	semaforo := utils.NewSemaforo(config.MaxScriptsConcurrentes)
	var wg sync.WaitGroup

	for _, script := range scripts {
		wg.Add(1)
		go func(ruta string) {
			defer wg.Done()
			semaforo.Wait()
			defer semaforo.Signal()

			if err := ejecutarScript(ruta); err != nil {
				utils.ErrorLog.Error("Script abortado", "archivo", ruta, "error", err)
			}
		}(script)
	}

	wg.Wait()
	utils.InfoLog.Info("Todos los scripts finalizados", "cantidad", len(scripts))
}

// buscarScripts lista los archivos .txt del directorio de scripts
func buscarScripts(ruta string) []string {
	entradas, err := os.ReadDir(ruta)
	if err != nil {
		utils.ErrorLog.Error("Error leyendo directorio de scripts", "ruta", ruta, "error", err)
		return nil
	}

	var scripts []string
	for _, entrada := range entradas {
		if !entrada.IsDir() && filepath.Ext(entrada.Name()) == ".txt" {
			scripts = append(scripts, filepath.Join(ruta, entrada.Name()))
		}
	}
	return scripts
}
