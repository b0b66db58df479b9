package interpreting

import "github.com/vfg2006/sales-reporting-api/internal/domain"

// Interpreter é o ponto de entrada do pipeline de consulta: extrai as
// entidades do texto, decide qual agregação executar e formata a resposta.
type Interpreter interface {
	// Interpret responde a consulta contra o snapshot informado. Texto não
	// compreendido não é erro: a resposta carrega a frase de esclarecimento.
	// Erros retornados são falhas de infraestrutura, não de consulta.
	Interpret(text string, ds *domain.SalesDataset) (*domain.QueryResponse, error)
}
