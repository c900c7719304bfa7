package reconciling

import (
	"regexp"
	"sort"

	"github.com/sirupsen/logrus"
)

// Nomes dos formatos conhecidos de número de ticket
const (
	PatternStandard         = "standard"           // 000T000000 — loja com três dígitos
	PatternSingleDigitStore = "single_digit_store" // 0T000000 — variante de loja com um ou dois dígitos
	PatternAlt1T            = "alt_1t"             // 1T00000000 — variante alternativa "1T" com sequência longa
	PatternDashSuffix       = "dash_suffix"        // 000T000000-0 — forma alternativa com sufixo de traço
	PatternNoPrefix         = "no_prefix"          // T000000 — sem prefixo de loja
	PatternNumericOnly      = "numeric_only"       // 00000000 — somente dígitos
	PatternAnomalous        = "anomalous"
)

type ticketPattern struct {
	name string
	re   *regexp.Regexp
}

// Formatos em ordem de precedência: o primeiro que casar vence.
// A variante alt_1t precisa vir antes da de loja curta porque "1T" com
// sequência longa também começa com um dígito.
var ticketPatterns = []ticketPattern{
	{name: PatternStandard, re: regexp.MustCompile(`^\d{3}T\d{4,6}$`)},
	{name: PatternAlt1T, re: regexp.MustCompile(`^1T\d{7,}$`)},
	{name: PatternSingleDigitStore, re: regexp.MustCompile(`^\d{1,2}T\d{4,6}$`)},
	{name: PatternDashSuffix, re: regexp.MustCompile(`^\d{1,3}T\d{4,6}-\d{1,2}$`)},
	{name: PatternNoPrefix, re: regexp.MustCompile(`^T\d{4,6}$`)},
	{name: PatternNumericOnly, re: regexp.MustCompile(`^\d{4,8}$`)},
}

// ClassifyTicketNumbers classifica cada número de ticket distinto contra os
// formatos conhecidos. Retorna o histograma por formato (incluindo o balde
// "anomalous") e a lista ordenada dos números anômalos. A soma das contagens
// do histograma é sempre o número de entradas distintas recebidas.
//
// Anomalias são sinal de qualidade de dados, nunca erro.
func ClassifyTicketNumbers(ticketNumbers []string) (map[string]int, []string) {
	histogram := make(map[string]int)
	anomalous := make([]string, 0)

	seen := make(map[string]bool, len(ticketNumbers))
	for _, ticketNumber := range ticketNumbers {
		if seen[ticketNumber] {
			continue
		}
		seen[ticketNumber] = true

		pattern := classify(ticketNumber)
		histogram[pattern]++

		if pattern == PatternAnomalous {
			anomalous = append(anomalous, ticketNumber)

			// Cada anomalia é logada individualmente para revisão do operador
			logrus.WithField("ticket_number", ticketNumber).
				Warn("Número de ticket fora de todos os formatos conhecidos")
		}
	}

	sort.Strings(anomalous)

	return histogram, anomalous
}

func classify(ticketNumber string) string {
	for _, pattern := range ticketPatterns {
		if pattern.re.MatchString(ticketNumber) {
			return pattern.name
		}
	}
	return PatternAnomalous
}
