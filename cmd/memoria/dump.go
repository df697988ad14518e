package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// buscarProceso localiza un proceso por PID entre el actual y la cola.
// Debe llamarse con el mutex tomado.
func (mv *MemoriaVirtual) buscarProceso(pid int) *Proceso {
	if mv.actual.PID == pid {
		return mv.actual
	}
	return mv.buscarEnListos(pid)
}

// renderizarDump arma el volcado de metadatos de un proceso: sus mapeos
// válidos y el estado global de los marcos. El modelo no guarda
// contenido de páginas, así que el dump es de tablas, no de bytes.
func (mv *MemoriaVirtual) renderizarDump(pid int) (string, error) {
	mv.mu.Lock()
	defer mv.mu.Unlock()

	proceso := mv.buscarProceso(pid)
	if proceso == nil {
		return "", fmt.Errorf("no existe el proceso %d", pid)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PID: %d\n", pid)

	for indiceDir, directorio := range proceso.Tabla.Directorios {
		if directorio == nil {
			continue
		}
		for indiceEntrada := range directorio.Entradas {
			entrada := &directorio.Entradas[indiceEntrada]
			if !entrada.Valida {
				continue
			}
			vpn := indiceDir*mv.entradasPorTabla + indiceEntrada
			fmt.Fprintf(&b, "VPN: %d -> Marco: %d | escribible=%t cow=%t\n",
				vpn, entrada.Marco, entrada.Escribible, entrada.CopiaPendiente)
		}
	}

	b.WriteString("Marcos:")
	for marco, referencias := range mv.marcos {
		fmt.Fprintf(&b, " %d:%d", marco, referencias)
	}
	b.WriteString("\n")

	return b.String(), nil
}

// CrearDump escribe el volcado del proceso en un archivo con timestamp
// bajo el directorio pedido y devuelve la ruta generada
func (mv *MemoriaVirtual) CrearDump(pid int, rutaDir string) (string, error) {
	contenido, err := mv.renderizarDump(pid)
	if err != nil {
		utils.ErrorLog.Error("Error generando dump", "pid", pid, "error", err)
		return "", err
	}

	if err := os.MkdirAll(rutaDir, 0755); err != nil {
		return "", fmt.Errorf("error al crear directorio para dumps: %v", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	ruta := filepath.Join(rutaDir, fmt.Sprintf("%d-%s.dmp", pid, timestamp))

	if err := os.WriteFile(ruta, []byte(contenido), 0644); err != nil {
		return "", fmt.Errorf("error al escribir archivo de dump: %v", err)
	}

	utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Memory dump solicitado", pid), "archivo", ruta)
	return ruta, nil
}
