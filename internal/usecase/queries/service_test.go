//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/usecase/queries"
	queriesmock "appointment-scheduler/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServiceCatalog_ListActive(t *testing.T) {
	t.Run("returns active services", func(t *testing.T) {
		store := queriesmock.NewMockServiceReadStore(gomock.NewController(t))
		want := []*queries.ServiceView{{ID: uuid.New(), Name: "Haircut", Icon: "✂️"}}
		store.EXPECT().FindActive(gomock.Any()).Return(want, nil)

		got, err := queries.NewServiceCatalog(store).ListActive(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty catalog is an empty list", func(t *testing.T) {
		store := queriesmock.NewMockServiceReadStore(gomock.NewController(t))
		store.EXPECT().FindActive(gomock.Any()).Return(nil, nil)

		got, err := queries.NewServiceCatalog(store).ListActive(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("store failure", func(t *testing.T) {
		store := queriesmock.NewMockServiceReadStore(gomock.NewController(t))
		store.EXPECT().FindActive(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := queries.NewServiceCatalog(store).ListActive(context.Background())

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
