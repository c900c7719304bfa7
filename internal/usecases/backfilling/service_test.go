package backfilling

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-reconciler-api/infrastructure/repository"
	"github.com/vfg2006/ticket-reconciler-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ticket-reconciler-api/internal/config"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Backfill: config.Backfill{BatchSize: 500},
	}
}

func TestService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackfillRepo := mocks.NewMockBackfillRepository(ctrl)
	service := NewService(testConfig(), mockBackfillRepo)

	t.Run("Todas as tabelas elegíveis recebem um lote", func(t *testing.T) {
		for _, table := range repository.BackfillTables {
			mockBackfillRepo.EXPECT().
				TagMissingOwner(table, "OWN001", 500).
				Return(int64(120), nil)
			mockBackfillRepo.EXPECT().
				CountMissingOwner(table).
				Return(int64(0), nil)
		}

		result, err := service.Run("OWN001")

		require.NoError(t, err)
		assert.NotEmpty(t, result.RunID)
		assert.Equal(t, "OWN001", result.OwnerID)
		require.Len(t, result.Tables, len(repository.BackfillTables))

		for _, tableResult := range result.Tables {
			assert.Equal(t, int64(120), tableResult.Updated)
			assert.False(t, tableResult.HasMore)
			assert.Empty(t, tableResult.Error)
		}
	})

	t.Run("Tabela com registros restantes marca has_more", func(t *testing.T) {
		for i, table := range repository.BackfillTables {
			mockBackfillRepo.EXPECT().
				TagMissingOwner(table, "OWN001", 500).
				Return(int64(500), nil)

			remaining := int64(0)
			if i == 0 {
				remaining = 250
			}
			mockBackfillRepo.EXPECT().
				CountMissingOwner(table).
				Return(remaining, nil)
		}

		result, err := service.Run("OWN001")

		require.NoError(t, err)
		assert.True(t, result.Tables[0].HasMore)
		for _, tableResult := range result.Tables[1:] {
			assert.False(t, tableResult.HasMore)
		}
	})

	t.Run("Falha em uma tabela não interrompe as demais", func(t *testing.T) {
		failing := repository.BackfillTables[0]

		mockBackfillRepo.EXPECT().
			TagMissingOwner(failing, "OWN001", 500).
			Return(int64(0), errors.New("deadlock detected"))

		for _, table := range repository.BackfillTables[1:] {
			mockBackfillRepo.EXPECT().
				TagMissingOwner(table, "OWN001", 500).
				Return(int64(10), nil)
			mockBackfillRepo.EXPECT().
				CountMissingOwner(table).
				Return(int64(0), nil)
		}

		result, err := service.Run("OWN001")

		require.NoError(t, err)
		require.Len(t, result.Tables, len(repository.BackfillTables))

		assert.Contains(t, result.Tables[0].Error, "deadlock")
		for _, tableResult := range result.Tables[1:] {
			assert.Empty(t, tableResult.Error)
			assert.Equal(t, int64(10), tableResult.Updated)
		}
	})
}

func TestService_Run_OwnerObrigatorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackfillRepo := mocks.NewMockBackfillRepository(ctrl)
	service := NewService(testConfig(), mockBackfillRepo)

	result, err := service.Run("")

	assert.Error(t, err)
	assert.Nil(t, result)
}
