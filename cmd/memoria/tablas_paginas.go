package main

// indicesDePagina descompone un número de página virtual en el índice de
// directorio y el índice de entrada dentro del directorio
func (mv *MemoriaVirtual) indicesDePagina(vpn int) (int, int) {
	return vpn / mv.entradasPorTabla, vpn % mv.entradasPorTabla
}

// directorioPara devuelve el directorio que cubre el VPN en la tabla
// activa, creándolo si todavía no existe. Los directorios nunca se
// liberan una vez creados.
func (mv *MemoriaVirtual) directorioPara(tabla *TablaPaginas, indiceDir int) *DirectorioPaginas {
	if tabla.Directorios[indiceDir] == nil {
		tabla.Directorios[indiceDir] = &DirectorioPaginas{
			Entradas: make([]EntradaPagina, mv.entradasPorTabla),
		}
	}
	return tabla.Directorios[indiceDir]
}

// entradaPara devuelve la entrada de la tabla activa para el VPN, o nil
// si el directorio está ausente
func (mv *MemoriaVirtual) entradaPara(vpn int) *EntradaPagina {
	indiceDir, indiceEntrada := mv.indicesDePagina(vpn)

	directorio := mv.ptbr.Directorios[indiceDir]
	if directorio == nil {
		return nil
	}
	return &directorio.Entradas[indiceEntrada]
}
