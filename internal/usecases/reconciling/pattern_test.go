package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTicketNumbers(t *testing.T) {
	tests := []struct {
		name         string
		ticketNumber string
		expected     string
	}{
		{name: "Formato padrão de três dígitos", ticketNumber: "001T123456", expected: PatternStandard},
		{name: "Formato padrão com sequência curta", ticketNumber: "123T1234", expected: PatternStandard},
		{name: "Loja de um dígito", ticketNumber: "1T1234", expected: PatternSingleDigitStore},
		{name: "Loja de dois dígitos", ticketNumber: "12T123456", expected: PatternSingleDigitStore},
		{name: "Variante 1T com sequência longa", ticketNumber: "1T1234567", expected: PatternAlt1T},
		{name: "Variante 1T com sequência muito longa", ticketNumber: "1T123456789", expected: PatternAlt1T},
		{name: "Sufixo de traço", ticketNumber: "001T1234-1", expected: PatternDashSuffix},
		{name: "Sufixo de traço com dois dígitos", ticketNumber: "12T123456-12", expected: PatternDashSuffix},
		{name: "Sem prefixo de loja", ticketNumber: "T123456", expected: PatternNoPrefix},
		{name: "Somente dígitos", ticketNumber: "12345678", expected: PatternNumericOnly},
		{name: "Somente dígitos curto", ticketNumber: "1234", expected: PatternNumericOnly},
		{name: "Anômalo: letras no meio", ticketNumber: "ABC123", expected: PatternAnomalous},
		{name: "Anômalo: vazio", ticketNumber: "", expected: PatternAnomalous},
		{name: "Anômalo: sequência longa demais sem prefixo", ticketNumber: "123456789", expected: PatternAnomalous},
		{name: "Anômalo: dois traços", ticketNumber: "001T1234-1-2", expected: PatternAnomalous},
		{name: "Anômalo: T minúsculo", ticketNumber: "001t1234", expected: PatternAnomalous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			histogram, anomalous := ClassifyTicketNumbers([]string{tt.ticketNumber})

			assert.Equal(t, 1, histogram[tt.expected])
			if tt.expected == PatternAnomalous {
				assert.Equal(t, []string{tt.ticketNumber}, anomalous)
			} else {
				assert.Empty(t, anomalous)
			}
		})
	}
}

func TestClassifyTicketNumbers_SomaDoHistograma(t *testing.T) {
	ticketNumbers := []string{
		"001T123456",
		"001T123456", // Duplicado: conta uma vez
		"1T1234",
		"1T1234567",
		"001T1234-1",
		"T123456",
		"12345678",
		"garbage",
		"???",
	}

	histogram, anomalous := ClassifyTicketNumbers(ticketNumbers)

	distinct := 8

	sum := 0
	for _, count := range histogram {
		sum += count
	}

	assert.Equal(t, distinct, sum, "a soma do histograma deve ser o número de entradas distintas")
	assert.Equal(t, 2, histogram[PatternAnomalous])
	assert.Equal(t, []string{"???", "garbage"}, anomalous, "anômalos devem vir ordenados")
}

func TestClassifyTicketNumbers_EntradaVazia(t *testing.T) {
	histogram, anomalous := ClassifyTicketNumbers(nil)

	assert.Empty(t, histogram)
	assert.Empty(t, anomalous)
}
