package aggregating

import "github.com/pkg/errors"

// Erros de argumento das operações de agregação. São os únicos absorvidos
// pelo interpretador na fronteira da consulta.
var (
	ErrInvalidMonth = errors.New("mês inválido: deve estar entre 1 e 12")
)
