package service

import "errors"

var (
	// Bootstrap errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrTenantNotFound  = errors.New("tenant not found")

	// Password reset errors. The lookup messages are user-facing; the
	// underlying datastore error is only logged.
	ErrInvalidName  = errors.New("Nome é obrigatório e deve ter pelo menos 2 caracteres")
	ErrUserLookup   = errors.New("Erro ao buscar usuário")
	ErrTenantLookup = errors.New("Erro ao buscar informações do tenant")
	ErrAdminLookup  = errors.New("Erro ao buscar email do administrador")
	ErrRecoveryLink = errors.New("Erro ao gerar link de recuperação")

	// Commission errors
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")
)

// WorkbookRowError aborts a spreadsheet import at the first invalid row.
// The message is user-facing and uses the sheet's own row numbering.
type WorkbookRowError struct {
	Message string
}

func (e *WorkbookRowError) Error() string {
	return e.Message
}
