package main

import (
	"errors"
)

// ErrSinMarcos indica que todos los marcos físicos están referenciados
var ErrSinMarcos = errors.New("no hay marcos libres disponibles")

// buscarMarcoLibre recorre los marcos en orden ascendente y devuelve el
// primero sin referencias. El orden determinístico hace verificable la
// política de asignación.
func (mv *MemoriaVirtual) buscarMarcoLibre() (int, error) {
	for marco, referencias := range mv.marcos {
		if referencias == 0 {
			return marco, nil
		}
	}
	return -1, ErrSinMarcos
}

// contarMarcosLibres cuenta los marcos sin referencias
func (mv *MemoriaVirtual) contarMarcosLibres() int {
	libres := 0
	for _, referencias := range mv.marcos {
		if referencias == 0 {
			libres++
		}
	}
	return libres
}
