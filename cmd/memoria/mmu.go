package main

import (
	"sync"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// MemoriaVirtual concentra todo el estado compartido del modelo: los
// contadores de referencias por marco, el proceso en ejecución, la cola
// de listos y el puntero base a la tabla activa (ptbr). Cada operación
// pública toma el mutex global; las operaciones son cortas y no se
// bloquean entre sí.
type MemoriaVirtual struct {
	mu sync.Mutex

	entradasPorTabla int
	marcos           []int // referencias por marco; 0 = libre

	actual *Proceso
	listos []*Proceso
	ptbr   *TablaPaginas

	metricas map[int]*MetricasProceso
}

// NuevaMemoriaVirtual inicializa el administrador con el proceso inicial
// ya en ejecución y todos los marcos libres
func NuevaMemoriaVirtual(cantidadMarcos int, entradasPorTabla int, pidInicial int) *MemoriaVirtual {
	inicial := nuevoProceso(pidInicial, entradasPorTabla)

	mv := &MemoriaVirtual{
		entradasPorTabla: entradasPorTabla,
		marcos:           make([]int, cantidadMarcos),
		actual:           inicial,
		listos:           []*Proceso{},
		ptbr:             inicial.Tabla,
		metricas:         make(map[int]*MetricasProceso),
	}

	utils.InfoLog.Info("Memoria virtual inicializada",
		"cantidad_marcos", cantidadMarcos,
		"entradas_por_tabla", entradasPorTabla,
		"pid_inicial", pidInicial)

	return mv
}

func nuevoProceso(pid int, entradasPorTabla int) *Proceso {
	return &Proceso{
		PID: pid,
		Tabla: &TablaPaginas{
			Directorios: make([]*DirectorioPaginas, entradasPorTabla),
		},
	}
}

// ProcesoActual devuelve el PID del proceso en ejecución
func (mv *MemoriaVirtual) ProcesoActual() int {
	mv.mu.Lock()
	defer mv.mu.Unlock()
	return mv.actual.PID
}

// ColaDeListos devuelve los PIDs encolados en orden
func (mv *MemoriaVirtual) ColaDeListos() []int {
	mv.mu.Lock()
	defer mv.mu.Unlock()

	pids := make([]int, 0, len(mv.listos))
	for _, p := range mv.listos {
		pids = append(pids, p.PID)
	}
	return pids
}

// Marcos devuelve una copia de los contadores de referencias por marco
func (mv *MemoriaVirtual) Marcos() []int {
	mv.mu.Lock()
	defer mv.mu.Unlock()

	copia := make([]int, len(mv.marcos))
	copy(copia, mv.marcos)
	return copia
}

// buscarEnListos busca un proceso por PID en la cola de listos
func (mv *MemoriaVirtual) buscarEnListos(pid int) *Proceso {
	for _, p := range mv.listos {
		if p.PID == pid {
			return p
		}
	}
	return nil
}

// removerDeListos quita un proceso de la cola preservando el orden relativo
func (mv *MemoriaVirtual) removerDeListos(proceso *Proceso) bool {
	for i, p := range mv.listos {
		if p == proceso {
			mv.listos = append(mv.listos[:i], mv.listos[i+1:]...)
			return true
		}
	}
	return false
}
