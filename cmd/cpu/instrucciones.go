package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Instruccion es una operación de memoria decodificada de un script
type Instruccion struct {
	Operacion string // ASIGNAR, LIBERAR, LEER, ESCRIBIR, CAMBIAR, DUMP
	VPN       int
	PID       int
	Permisos  string // "r" o "rw", solo para ASIGNAR
}

// parsearInstruccion decodifica una línea de script. Las líneas vacías y
// los comentarios (#) devuelven nil sin error.
func parsearInstruccion(linea string) (*Instruccion, error) {
	linea = strings.TrimSpace(linea)
	if linea == "" || strings.HasPrefix(linea, "#") {
		return nil, nil
	}

	partes := strings.Fields(linea)
	operacion := strings.ToUpper(partes[0])

	switch operacion {
	case "ASIGNAR":
		if len(partes) < 3 {
			return nil, fmt.Errorf("ASIGNAR requiere VPN y permisos: %q", linea)
		}
		vpn, err := strconv.Atoi(partes[1])
		if err != nil {
			return nil, fmt.Errorf("VPN inválido en %q: %v", linea, err)
		}
		permisos := strings.ToLower(partes[2])
		if permisos != "r" && permisos != "rw" {
			return nil, fmt.Errorf("permisos inválidos en %q: se espera r o rw", linea)
		}
		return &Instruccion{Operacion: operacion, VPN: vpn, Permisos: permisos}, nil

	case "LIBERAR", "LEER", "ESCRIBIR":
		if len(partes) < 2 {
			return nil, fmt.Errorf("%s requiere VPN: %q", operacion, linea)
		}
		vpn, err := strconv.Atoi(partes[1])
		if err != nil {
			return nil, fmt.Errorf("VPN inválido en %q: %v", linea, err)
		}
		return &Instruccion{Operacion: operacion, VPN: vpn}, nil

	case "CAMBIAR":
		if len(partes) < 2 {
			return nil, fmt.Errorf("CAMBIAR requiere PID: %q", linea)
		}
		pid, err := strconv.Atoi(partes[1])
		if err != nil {
			return nil, fmt.Errorf("PID inválido en %q: %v", linea, err)
		}
		return &Instruccion{Operacion: operacion, PID: pid}, nil

	case "DUMP":
		return &Instruccion{Operacion: operacion}, nil

	default:
		return nil, fmt.Errorf("instrucción desconocida: %q", linea)
	}
}

// parsearScript decodifica un script completo, línea por línea
func parsearScript(contenido string) ([]Instruccion, error) {
	var instrucciones []Instruccion

	for numero, linea := range strings.Split(contenido, "\n") {
		instruccion, err := parsearInstruccion(linea)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %v", numero+1, err)
		}
		if instruccion != nil {
			instrucciones = append(instrucciones, *instruccion)
		}
	}

	return instrucciones, nil
}
