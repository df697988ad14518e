package main

// CPUConfig representa la configuración del módulo CPU
type CPUConfig struct {
	IPMemoria              string `json:"IP_MEMORIA"`
	PuertoMemoria          int    `json:"PUERTO_MEMORIA"`
	LogLevel               string `json:"LOG_LEVEL"`
	ScriptsPath            string `json:"SCRIPTS_PATH"`             // Directorio con los scripts de carga
	RetardoInstruccion     int    `json:"RETARDO_INSTRUCCION"`      // Retardo entre instrucciones
	MaxScriptsConcurrentes int    `json:"MAX_SCRIPTS_CONCURRENTES"` // Scripts ejecutados en paralelo
}

var config *CPUConfig
