package main

// MemoriaConfig representa la configuración del módulo Memoria
type MemoriaConfig struct {
	IPMemoria        string `json:"IP_MEMORIA"`
	PuertoMemoria    int    `json:"PUERTO_MEMORIA"`
	LogLevel         string `json:"LOG_LEVEL"`
	CantidadMarcos   int    `json:"CANTIDAD_MARCOS"`    // Marcos físicos totales
	EntradasPorTabla int    `json:"ENTRADAS_POR_TABLA"` // Entradas por directorio
	RetardoMemoria   int    `json:"RETARDO_MEMORIA"`    // Retardo simulado por operación
	DumpPath         string `json:"DUMP_PATH"`          // Ruta para los archivos de dump
	PIDInicial       int    `json:"PID_INICIAL"`        // PID del proceso en ejecución al arrancar
}

var config *MemoriaConfig
