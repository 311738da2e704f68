package appointment

import (
	"context"

	"github.com/styllus/barber-site/internal/models"
)

// Repository é a coleção ordenada de agendamentos da sessão. A implementação
// vive em memória: nenhuma operação falha, e update/delete de id inexistente
// são no-ops documentados, não erros.
type Repository interface {
	// -------- Escrita --------

	// Insert coloca o registro no início da coleção (mais recente primeiro).
	Insert(ctx context.Context, ap *models.Appointment)

	// Replace substitui o registro de mesmo id. Retorna false se não existe.
	Replace(ctx context.Context, ap *models.Appointment) bool

	// Remove apaga definitivamente. Retorna false se não existe.
	Remove(ctx context.Context, id string) bool

	// -------- Leitura --------

	GetByID(ctx context.Context, id string) *models.Appointment

	List(ctx context.Context) []models.Appointment

	// FilterByStatus devolve os registros com o status dado, preservando a
	// ordem da coleção. O sentinela FilterAll devolve tudo.
	FilterByStatus(ctx context.Context, status string) []models.Appointment

	// Search busca por nome (case-insensitive) OU telefone (substring
	// literal). Termo vazio/só espaços devolve a coleção inteira.
	Search(ctx context.Context, term string) []models.Appointment
}
