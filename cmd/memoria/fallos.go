package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// AtenderFallo resuelve un fallo de página para el proceso actual.
// Solo son resolubles los fallos de escritura sobre una entrada válida
// marcada CopiaPendiente: si el proceso es el único referenciador del
// marco se le concede escritura en el lugar; si el marco sigue
// compartido, la entrada se reasigna a un marco libre nuevo. Los fallos
// de lectura, las entradas inválidas y las páginas de solo-lectura por
// diseño no se resuelven. En todo camino de falla no se muta nada.
func (mv *MemoriaVirtual) AtenderFallo(vpn int, permisos int) bool {
	mv.mu.Lock()
	defer mv.mu.Unlock()

	if permisos&PermisoEscritura == 0 {
		mv.metricasDe(mv.actual.PID).FallosRechazados++
		return false
	}

	entrada := mv.entradaPara(vpn)
	if entrada == nil || !entrada.Valida {
		mv.metricasDe(mv.actual.PID).FallosRechazados++
		return false
	}

	if entrada.Escribible || !entrada.CopiaPendiente {
		mv.metricasDe(mv.actual.PID).FallosRechazados++
		return false
	}

	if mv.marcos[entrada.Marco] == 1 {
		// Único referenciador: promoción en el lugar, sin cambio de marco
		entrada.Escribible = true
		entrada.CopiaPendiente = false

		metricas := mv.metricasDe(mv.actual.PID)
		metricas.FallosAtendidos++
		metricas.PromocionesEnSitio++

		utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Fallo atendido - VPN: %d - Escritura concedida en marco %d",
			mv.actual.PID, vpn, entrada.Marco))
		return true
	}

	marcoNuevo, err := mv.buscarMarcoLibre()
	if err != nil {
		utils.ErrorLog.Error("Sin marcos libres para dividir la página compartida",
			"pid", mv.actual.PID, "vpn", vpn, "marco", entrada.Marco)
		mv.metricasDe(mv.actual.PID).FallosRechazados++
		return false
	}

	// El modelo no copia contenido: solo se reasigna la propiedad del marco
	mv.marcos[entrada.Marco]--
	entrada.Marco = marcoNuevo
	mv.marcos[marcoNuevo]++
	entrada.Escribible = true
	entrada.CopiaPendiente = false

	metricas := mv.metricasDe(mv.actual.PID)
	metricas.FallosAtendidos++
	metricas.DivisionesCOW++

	utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Fallo atendido - VPN: %d - Copia en escritura al marco %d",
		mv.actual.PID, vpn, marcoNuevo))
	return true
}
