package main

import (
	"errors"
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// ErrAccesoInvalido indica un acceso que la traducción no pudo resolver
// ni siquiera atendiendo el fallo
var ErrAccesoInvalido = errors.New("acceso inválido a la página")

// traducir camina la tabla activa para el VPN. Falla si el directorio
// está ausente, la entrada es inválida, o se pide escritura sobre una
// entrada no escribible. Debe llamarse con el mutex tomado.
func (mv *MemoriaVirtual) traducir(vpn int, permisos int) (int, bool) {
	entrada := mv.entradaPara(vpn)
	if entrada == nil || !entrada.Valida {
		return -1, false
	}
	if permisos&PermisoEscritura != 0 && !entrada.Escribible {
		return -1, false
	}
	return entrada.Marco, true
}

// Acceder resuelve un acceso del proceso actual: traduce el VPN y, si la
// traducción falla, atiende el fallo de página y reintenta una vez.
// Devuelve el marco accedido.
func (mv *MemoriaVirtual) Acceder(vpn int, permisos int) (int, error) {
	mv.mu.Lock()
	marco, ok := mv.traducir(vpn, permisos)
	pid := mv.actual.PID
	mv.mu.Unlock()

	if ok {
		utils.InfoLog.Debug("Acceso resuelto por traducción directa",
			"pid", pid, "vpn", vpn, "marco", marco)
		return marco, nil
	}

	if !mv.AtenderFallo(vpn, permisos) {
		return -1, fmt.Errorf("%w: pid %d, vpn %d", ErrAccesoInvalido, pid, vpn)
	}

	mv.mu.Lock()
	marco, ok = mv.traducir(vpn, permisos)
	mv.mu.Unlock()

	if !ok {
		return -1, fmt.Errorf("%w: pid %d, vpn %d tras atender el fallo", ErrAccesoInvalido, pid, vpn)
	}
	return marco, nil
}
