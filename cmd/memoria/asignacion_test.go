package main

import (
	"errors"
	"testing"
)

func TestAsignacionMarcoMasBajo(t *testing.T) {
	mv := nuevaMemoriaDePrueba(t)

	// Sin liberaciones de por medio, los marcos salen en orden ascendente
	for vpn := 0; vpn < 5; vpn++ {
		marco, err := mv.AsignarPagina(vpn, PermisoLectura|PermisoEscritura)
		if err != nil {
			t.Fatalf("AsignarPagina(%d): %v", vpn, err)
		}
		if marco != vpn {
			t.Errorf("AsignarPagina(%d) devolvió marco %d, esperaba %d", vpn, marco, vpn)
		}
	}

	// Al liberar un marco intermedio, la próxima asignación lo reutiliza
	mv.LiberarPagina(2)
	marco, err := mv.AsignarPagina(6, PermisoLectura)
	if err != nil {
		t.Fatalf("AsignarPagina(6): %v", err)
	}
	if marco != 2 {
		t.Errorf("tras liberar el marco 2, AsignarPagina devolvió %d", marco)
	}

	verificarConsistencia(t, mv)
}

func TestAsignacionRegistraEntrada(t *testing.T) {
	mv := nuevaMemoriaDePrueba(t)

	casos := []struct {
		nombre     string
		vpn        int
		permisos   int
		escribible bool
	}{
		{"lectura y escritura", 5, PermisoLectura | PermisoEscritura, true},
		{"solo lectura", 9, PermisoLectura, false},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			marco, err := mv.AsignarPagina(caso.vpn, caso.permisos)
			if err != nil {
				t.Fatalf("AsignarPagina: %v", err)
			}

			entrada := mv.entradaPara(caso.vpn)
			if entrada == nil || !entrada.Valida {
				t.Fatal("la entrada no quedó válida")
			}
			if entrada.Escribible != caso.escribible {
				t.Errorf("escribible = %t, esperaba %t", entrada.Escribible, caso.escribible)
			}
			if entrada.CopiaPendiente {
				t.Error("una asignación nueva no debe quedar marcada CopiaPendiente")
			}
			if entrada.Marco != marco {
				t.Errorf("la entrada apunta al marco %d, la asignación devolvió %d", entrada.Marco, marco)
			}
			if mv.marcos[marco] != 1 {
				t.Errorf("referencias del marco %d = %d, esperaba 1", marco, mv.marcos[marco])
			}
		})
	}
}

func TestAsignacionSinMarcosLibres(t *testing.T) {
	mv := nuevaMemoriaDePrueba(t)

	for vpn := 0; vpn < len(mv.marcos); vpn++ {
		if _, err := mv.AsignarPagina(vpn, PermisoLectura|PermisoEscritura); err != nil {
			t.Fatalf("AsignarPagina(%d): %v", vpn, err)
		}
	}

	antes := mv.Marcos()

	_, err := mv.AsignarPagina(len(mv.marcos), PermisoLectura)
	if !errors.Is(err, ErrSinMarcos) {
		t.Fatalf("esperaba ErrSinMarcos, obtuve %v", err)
	}

	// La falla no debe mutar contadores ni la entrada pedida
	for marco, referencias := range mv.Marcos() {
		if referencias != antes[marco] {
			t.Errorf("marco %d: contador cambió de %d a %d tras la falla", marco, antes[marco], referencias)
		}
	}
	if entrada := mv.entradaPara(len(mv.marcos)); entrada != nil && entrada.Valida {
		t.Error("la entrada quedó válida a pesar de la falla")
	}

	verificarConsistencia(t, mv)
}

func TestLiberarPaginaLimpiaCampos(t *testing.T) {
	mv := nuevaMemoriaDePrueba(t)

	marco, err := mv.AsignarPagina(4, PermisoLectura|PermisoEscritura)
	if err != nil {
		t.Fatalf("AsignarPagina: %v", err)
	}

	mv.LiberarPagina(4)

	entrada := mv.entradaPara(4)
	if entrada.Valida {
		t.Error("la entrada sigue válida tras liberar")
	}
	if entrada.Escribible {
		t.Error("la entrada sigue escribible tras liberar")
	}
	if entrada.Marco != 0 {
		t.Errorf("el campo marco quedó en %d, esperaba 0", entrada.Marco)
	}
	if mv.marcos[marco] != 0 {
		t.Errorf("referencias del marco %d = %d tras liberar", marco, mv.marcos[marco])
	}

	verificarConsistencia(t, mv)
}

func TestLiberarConservaCopiaPendiente(t *testing.T) {
	mv := nuevaMemoriaDePrueba(t)

	if _, err := mv.AsignarPagina(0, PermisoLectura|PermisoEscritura); err != nil {
		t.Fatalf("AsignarPagina: %v", err)
	}

	mv.CambiarProceso(1) // fork: la entrada del hijo queda CopiaPendiente

	mv.LiberarPagina(0)

	// Comportamiento heredado del modelo de referencia: el bit
	// CopiaPendiente no se limpia al liberar
	entrada := mv.entradaPara(0)
	if !entrada.CopiaPendiente {
		t.Error("LiberarPagina no debe tocar el bit CopiaPendiente")
	}

	verificarConsistencia(t, mv)
}

func TestLiberarNoAfectaOtrosProcesos(t *testing.T) {
	mv := nuevaMemoriaDePrueba(t)

	marco, err := mv.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	if err != nil {
		t.Fatalf("AsignarPagina: %v", err)
	}

	mv.CambiarProceso(1) // fork: marco compartido entre padre e hijo

	if mv.marcos[marco] != 2 {
		t.Fatalf("referencias del marco %d = %d tras fork, esperaba 2", marco, mv.marcos[marco])
	}

	mv.LiberarPagina(0) // libera el mapeo del hijo

	if mv.marcos[marco] != 1 {
		t.Errorf("referencias del marco %d = %d, esperaba 1", marco, mv.marcos[marco])
	}

	// El mapeo del padre sigue intacto
	mv.CambiarProceso(0)
	entrada := mv.entradaPara(0)
	if entrada == nil || !entrada.Valida || entrada.Marco != marco {
		t.Error("el mapeo del padre cambió al liberar el del hijo")
	}

	verificarConsistencia(t, mv)
}
