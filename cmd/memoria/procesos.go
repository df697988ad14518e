package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// CambiarProceso cambia el contexto al proceso pedido. Si el PID está en
// la cola de listos se trata de una rotación pura: el proceso actual
// pasa al final de la cola y el elegido toma el ptbr. Si no existe, se
// hace fork del proceso actual hacia un hijo nuevo con ese PID y la
// ejecución continúa en el hijo; el padre queda encolado al final.
func (mv *MemoriaVirtual) CambiarProceso(pid int) {
	mv.mu.Lock()
	defer mv.mu.Unlock()

	if siguiente := mv.buscarEnListos(pid); siguiente != nil {
		mv.removerDeListos(siguiente)
		mv.listos = append(mv.listos, mv.actual)

		anterior := mv.actual.PID
		mv.actual = siguiente
		mv.ptbr = siguiente.Tabla

		mv.metricasDe(pid).CambiosDeContexto++

		utils.InfoLog.Info(fmt.Sprintf("## Cambio de contexto - PID: %d -> PID: %d", anterior, pid))
		return
	}

	mv.forkDesdeActual(pid)
}

// forkDesdeActual duplica la tabla del proceso actual en un hijo nuevo.
// Cada entrada válida suma una referencia a su marco; las entradas
// escribibles del padre se degradan a solo-lectura con CopiaPendiente
// antes de copiarse, de modo que padre e hijo queden compartiendo el
// marco en modo copy-on-write. Las páginas de solo-lectura por diseño
// se comparten sin marcar.
func (mv *MemoriaVirtual) forkDesdeActual(pid int) {
	hijo := nuevoProceso(pid, mv.entradasPorTabla)

	for indiceDir, directorio := range mv.ptbr.Directorios {
		if directorio == nil {
			continue
		}
		directorioHijo := mv.directorioPara(hijo.Tabla, indiceDir)

		for indiceEntrada := range directorio.Entradas {
			entrada := &directorio.Entradas[indiceEntrada]
			if !entrada.Valida {
				continue
			}

			mv.marcos[entrada.Marco]++

			if entrada.Escribible {
				entrada.Escribible = false
				entrada.CopiaPendiente = true
			}

			directorioHijo.Entradas[indiceEntrada] = EntradaPagina{
				Valida:         true,
				Escribible:     entrada.Escribible,
				Marco:          entrada.Marco,
				CopiaPendiente: entrada.CopiaPendiente,
			}
		}
	}

	mv.listos = append(mv.listos, mv.actual)

	padre := mv.actual.PID
	mv.actual = hijo
	mv.ptbr = hijo.Tabla

	mv.metricasDe(padre).Forks++

	utils.InfoLog.Info(fmt.Sprintf("## Proceso creado por fork - PID: %d - Padre: %d", pid, padre))
}
