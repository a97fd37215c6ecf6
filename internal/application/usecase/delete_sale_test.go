package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hscHeric/credigestor-api/internal/application/usecase"
	"github.com/hscHeric/credigestor-api/internal/domain/model"
)

func TestDeleteSale_Execute(t *testing.T) {
	t.Run("deletes the sale and publishes the deletion event", func(t *testing.T) {
		saleRepo := &mockSaleRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Sale, error) {
				return storedSale(), nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewDeleteSaleUseCase(saleRepo, publisher)

		err := uc.Execute(context.Background(), "sale-001")

		require.NoError(t, err)
		assert.Equal(t, []string{"sale-001"}, saleRepo.deletedIDs)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "credigestor.sale.deleted", publisher.publishedEvents[0].EventType())
		assert.Equal(t, "sale-001", publisher.publishedEvents[0].AggregateID())
	})

	t.Run("fails when sale does not exist", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		uc := usecase.NewDeleteSaleUseCase(&mockSaleRepository{}, publisher)

		err := uc.Execute(context.Background(), "missing")

		require.ErrorIs(t, err, model.ErrSaleNotFound)
		assert.Empty(t, publisher.publishedEvents)
	})
}
