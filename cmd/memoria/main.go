package main

import (
	"fmt"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

var (
	modulo *utils.Modulo
	mmu    *MemoriaVirtual
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/memoria-config.json\n", os.Args[0])
		os.Exit(1)
	}

	utils.InicializarLogger("info", "Memoria")

	utils.InfoLog.Info("Iniciando módulo Memoria")

	inicializarModulo(os.Args[1])

	utils.InfoLog.Info("Memoria inicializada correctamente")

	// Mantener el módulo corriendo
	select {}
}
