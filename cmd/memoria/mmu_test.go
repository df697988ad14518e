package main

import (
	"os"
	"testing"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

func TestMain(m *testing.M) {
	utils.InicializarLogger("error", "memoria-test")
	os.Exit(m.Run())
}

func nuevaMemoriaDePrueba(t *testing.T) *MemoriaVirtual {
	t.Helper()
	return NuevaMemoriaVirtual(8, 4, 0)
}

// verificarConsistencia comprueba que cada contador de marco coincida
// con la cantidad de entradas válidas que lo referencian en todas las
// tablas del sistema
func verificarConsistencia(t *testing.T, mv *MemoriaVirtual) {
	t.Helper()

	referencias := make([]int, len(mv.marcos))

	procesos := append([]*Proceso{mv.actual}, mv.listos...)
	for _, proceso := range procesos {
		for _, directorio := range proceso.Tabla.Directorios {
			if directorio == nil {
				continue
			}
			for i := range directorio.Entradas {
				if directorio.Entradas[i].Valida {
					referencias[directorio.Entradas[i].Marco]++
				}
			}
		}
	}

	for marco, esperado := range referencias {
		if mv.marcos[marco] != esperado {
			t.Errorf("marco %d: contador %d, pero hay %d entradas válidas que lo referencian",
				marco, mv.marcos[marco], esperado)
		}
		if mv.marcos[marco] < 0 {
			t.Errorf("marco %d: contador negativo %d", marco, mv.marcos[marco])
		}
	}
}

func TestAccederTraduccionDirecta(t *testing.T) {
	mv := nuevaMemoriaDePrueba(t)

	marco, err := mv.AsignarPagina(3, PermisoLectura|PermisoEscritura)
	if err != nil {
		t.Fatalf("AsignarPagina: %v", err)
	}

	obtenido, err := mv.Acceder(3, PermisoEscritura)
	if err != nil {
		t.Fatalf("Acceder: %v", err)
	}
	if obtenido != marco {
		t.Errorf("Acceder devolvió marco %d, esperaba %d", obtenido, marco)
	}
}

func TestAccederResuelveFalloCOW(t *testing.T) {
	mv := nuevaMemoriaDePrueba(t)

	marcoOriginal, err := mv.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	if err != nil {
		t.Fatalf("AsignarPagina: %v", err)
	}

	mv.CambiarProceso(1) // fork: el hijo queda en ejecución

	marcoHijo, err := mv.Acceder(0, PermisoEscritura)
	if err != nil {
		t.Fatalf("Acceder tras fork: %v", err)
	}
	if marcoHijo == marcoOriginal {
		t.Errorf("el acceso de escritura del hijo debía dividir el marco compartido %d", marcoOriginal)
	}

	verificarConsistencia(t, mv)
}

func TestAccederLecturaInvalidaFalla(t *testing.T) {
	mv := nuevaMemoriaDePrueba(t)

	if _, err := mv.Acceder(7, PermisoLectura); err == nil {
		t.Error("esperaba error al leer una página nunca mapeada")
	}
}

func TestDumpDeProceso(t *testing.T) {
	mv := nuevaMemoriaDePrueba(t)

	if _, err := mv.AsignarPagina(1, PermisoLectura|PermisoEscritura); err != nil {
		t.Fatalf("AsignarPagina: %v", err)
	}

	contenido, err := mv.renderizarDump(0)
	if err != nil {
		t.Fatalf("renderizarDump: %v", err)
	}
	if contenido == "" {
		t.Fatal("dump vacío")
	}

	ruta, err := mv.CrearDump(0, t.TempDir())
	if err != nil {
		t.Fatalf("CrearDump: %v", err)
	}
	if _, err := os.Stat(ruta); err != nil {
		t.Errorf("el archivo de dump no existe: %v", err)
	}

	if _, err := mv.renderizarDump(99); err == nil {
		t.Error("esperaba error para un PID inexistente")
	}
}

func TestMetricasAcumuladas(t *testing.T) {
	mv := nuevaMemoriaDePrueba(t)

	mv.AsignarPagina(0, PermisoLectura|PermisoEscritura)
	mv.AsignarPagina(1, PermisoLectura)
	mv.CambiarProceso(1)                 // fork del PID 0
	mv.AtenderFallo(0, PermisoEscritura) // división COW en el hijo
	mv.CambiarProceso(0)                 // rotación de vuelta al padre
	mv.LiberarPagina(1)

	padre := mv.MetricasDeProceso(0)
	if padre.Asignaciones != 2 {
		t.Errorf("asignaciones del padre: %d, esperaba 2", padre.Asignaciones)
	}
	if padre.Forks != 1 {
		t.Errorf("forks del padre: %d, esperaba 1", padre.Forks)
	}
	if padre.Liberaciones != 1 {
		t.Errorf("liberaciones del padre: %d, esperaba 1", padre.Liberaciones)
	}
	if padre.CambiosDeContexto != 1 {
		t.Errorf("cambios de contexto del padre: %d, esperaba 1", padre.CambiosDeContexto)
	}

	hijo := mv.MetricasDeProceso(1)
	if hijo.FallosAtendidos != 1 || hijo.DivisionesCOW != 1 {
		t.Errorf("métricas de fallos del hijo: %+v, esperaba 1 fallo con división", hijo)
	}
}
