package domain

// RecognizedEntities é o resultado da extração de entidades sobre o texto
// da consulta. Product, quando presente, é sempre um valor canônico do
// catálogo; TimePeriod é um nome de mês capitalizado ou um ano de quatro
// dígitos informado pelo canal estruturado.
type RecognizedEntities struct {
	Product    *string
	TimePeriod *string
}
