package store

import "strings"

// PrioridadeForMotivo maps a motivo to a default prioridade when the caller
// did not choose one. Matching is case-insensitive and trimmed; anything
// outside the known set lands on low priority. The video entry accepts both
// spellings because the suggestion list shipped without the accent at one
// point and old clients still send it that way.
func PrioridadeForMotivo(motivo string) int {
	switch strings.ToLower(strings.TrimSpace(motivo)) {
	case "problemas com o mouse":
		return 3
	case "problemas com som":
		return 4
	case "problema com video", "problema com vídeo":
		return 2
	case "problemas com a internet":
		return 1
	default:
		return 4
	}
}
