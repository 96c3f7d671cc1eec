package tests

import (
	"bytes"
	"context"
	"testing"

	"campus-cafeteria/internal/domain"
	"campus-cafeteria/internal/mocks"
	"campus-cafeteria/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestTableService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		table         *domain.Table
		prepareMocks  func(repo *mocks.TableRepository)
		expectedError error
	}{
		{
			name:  "assigns_id_and_qr",
			table: &domain.Table{TableNumber: "A-1", Capacity: 4, RestaurantName: "학생식당"},
			prepareMocks: func(repo *mocks.TableRepository) {
				repo.On("CreateTable", ctx, mock.MatchedBy(func(tb *domain.Table) bool {
					return tb.ID != "" && tb.QRCode != "" && tb.IsAvailable
				})).Return(nil).Once()
			},
		},
		{
			name:  "keeps_given_qr",
			table: &domain.Table{TableNumber: "A-2", QRCode: "printed-code"},
			prepareMocks: func(repo *mocks.TableRepository) {
				repo.On("CreateTable", ctx, mock.MatchedBy(func(tb *domain.Table) bool {
					return tb.QRCode == "printed-code"
				})).Return(nil).Once()
			},
		},
		{
			name:          "blank_number",
			table:         &domain.Table{},
			prepareMocks:  func(repo *mocks.TableRepository) {},
			expectedError: domain.ErrInvalidState,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewTableRepository(t)
			testCase.prepareMocks(repo)

			err := service.NewTableService(repo, mocks.NewQRGenerator(t)).Create(ctx, testCase.table)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTableService_ReleaseByQRCode(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewTableRepository(t)
	svc := service.NewTableService(repo, mocks.NewQRGenerator(t))

	repo.On("GetTableByQRCode", ctx, "qr-1").Return(&domain.Table{ID: "t1", IsAvailable: false}, nil).Once()
	repo.On("SetTableAvailability", ctx, "t1", true).Return(&domain.Table{ID: "t1", IsAvailable: true}, nil).Once()
	repo.On("GetTableByQRCode", ctx, "qr-x").Return(nil, domain.NotFoundf("table not found")).Once()

	table, err := svc.ReleaseByQRCode(ctx, "qr-1")
	require.NoError(t, err)
	assert.True(t, table.IsAvailable)

	_, err = svc.ReleaseByQRCode(ctx, "qr-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTableService_QRCodePNG(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewTableRepository(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewTableService(repo, qr)

	repo.On("GetTable", ctx, "t1").Return(&domain.Table{ID: "t1", QRCode: "qr-1"}, nil).Once()
	qr.On("Generate", "qr-1").Return(pngMagic, nil).Once()

	png, err := svc.QRCodePNG(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png)
}

func TestDefaultQRGenerator(t *testing.T) {
	png, err := service.DefaultQRGenerator{BaseURL: "http://cafeteria.local/"}.Generate("qr-1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}
