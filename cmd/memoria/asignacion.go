package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// AsignarPagina mapea el VPN pedido al marco libre de menor número en la
// tabla del proceso actual. Devuelve el marco asignado, o ErrSinMarcos
// sin mutar ningún contador ni entrada si todos están referenciados.
func (mv *MemoriaVirtual) AsignarPagina(vpn int, permisos int) (int, error) {
	mv.mu.Lock()
	defer mv.mu.Unlock()

	indiceDir, indiceEntrada := mv.indicesDePagina(vpn)
	directorio := mv.directorioPara(mv.ptbr, indiceDir)

	marco, err := mv.buscarMarcoLibre()
	if err != nil {
		utils.ErrorLog.Error("Sin marcos libres", "pid", mv.actual.PID, "vpn", vpn)
		return -1, err
	}

	entrada := &directorio.Entradas[indiceEntrada]
	entrada.Valida = true
	entrada.Escribible = permisos&PermisoEscritura != 0
	entrada.Marco = marco
	entrada.CopiaPendiente = false
	mv.marcos[marco]++

	mv.metricasDe(mv.actual.PID).Asignaciones++

	utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Página asignada - VPN: %d - Marco: %d",
		mv.actual.PID, vpn, marco), "escribible", entrada.Escribible)

	return marco, nil
}

// LiberarPagina desmapea el VPN de la tabla del proceso actual. El
// directorio debe existir: liberar un VPN nunca asignado es
// responsabilidad del llamador. El marco compartido solo pierde una
// referencia; las entradas de otros procesos no se tocan. El bit
// CopiaPendiente se conserva tal cual.
func (mv *MemoriaVirtual) LiberarPagina(vpn int) {
	mv.mu.Lock()
	defer mv.mu.Unlock()

	indiceDir, indiceEntrada := mv.indicesDePagina(vpn)
	entrada := &mv.ptbr.Directorios[indiceDir].Entradas[indiceEntrada]

	mv.marcos[entrada.Marco]--
	entrada.Valida = false
	entrada.Escribible = false
	entrada.Marco = 0

	mv.metricasDe(mv.actual.PID).Liberaciones++

	utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Página liberada - VPN: %d", mv.actual.PID, vpn))
}
