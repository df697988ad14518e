package main

// metricasDe devuelve las métricas del PID, creándolas en el primer uso.
// Debe llamarse con el mutex tomado.
func (mv *MemoriaVirtual) metricasDe(pid int) *MetricasProceso {
	if _, existe := mv.metricas[pid]; !existe {
		mv.metricas[pid] = &MetricasProceso{}
	}
	return mv.metricas[pid]
}

// MetricasDeProceso devuelve una copia de las métricas acumuladas del PID
func (mv *MemoriaVirtual) MetricasDeProceso(pid int) MetricasProceso {
	mv.mu.Lock()
	defer mv.mu.Unlock()

	if metricas, existe := mv.metricas[pid]; existe {
		return *metricas
	}
	return MetricasProceso{}
}
