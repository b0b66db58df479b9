package domain

import "strings"

// Catálogo canônico de produtos reconhecidos pelas consultas. É
// configuração fixa do serviço, nunca derivada do dataset carregado.
var CatalogProducts = []string{
	"Product A",
	"Product B",
	"Product C",
	"Product D",
}

// MonthNames contém os doze nomes canônicos de mês, na ordem do calendário.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthNumber resolve um nome de mês para 1..12. Retorna 0 quando o texto
// não corresponde a nenhum mês conhecido (ex.: um ano ou token qualquer).
func MonthNumber(name string) int {
	for i, m := range MonthNames {
		if strings.EqualFold(m, name) {
			return i + 1
		}
	}
	return 0
}

// IsCatalogProduct informa se o valor, na forma canônica, pertence ao catálogo.
func IsCatalogProduct(product string) bool {
	for _, p := range CatalogProducts {
		if p == product {
			return true
		}
	}
	return false
}
