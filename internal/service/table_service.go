package service

import (
	"context"
	"strings"

	"campus-cafeteria/internal/domain"

	"github.com/google/uuid"
)

type TableService struct {
	repo      TableRepository
	qrEncoder QRGenerator
}

func NewTableService(repo TableRepository, qr QRGenerator) *TableService {
	return &TableService{repo: repo, qrEncoder: qr}
}

func (s *TableService) Create(ctx context.Context, table *domain.Table) error {
	if strings.TrimSpace(table.TableNumber) == "" {
		return domain.InvalidStatef("table number is required")
	}
	table.ID = uuid.NewString()
	if table.QRCode == "" {
		table.QRCode = uuid.NewString()
	}
	table.IsAvailable = true
	return s.repo.CreateTable(ctx, table)
}

func (s *TableService) List(ctx context.Context) ([]domain.Table, error) {
	return s.repo.ListTables(ctx)
}

func (s *TableService) ListAvailable(ctx context.Context) ([]domain.Table, error) {
	return s.repo.ListAvailableTables(ctx)
}

func (s *TableService) Get(ctx context.Context, id string) (*domain.Table, error) {
	return s.repo.GetTable(ctx, id)
}

func (s *TableService) GetByQRCode(ctx context.Context, qrCode string) (*domain.Table, error) {
	return s.repo.GetTableByQRCode(ctx, qrCode)
}

func (s *TableService) Release(ctx context.Context, id string) (*domain.Table, error) {
	return s.repo.SetTableAvailability(ctx, id, true)
}

func (s *TableService) ReleaseByQRCode(ctx context.Context, qrCode string) (*domain.Table, error) {
	table, err := s.repo.GetTableByQRCode(ctx, qrCode)
	if err != nil {
		return nil, err
	}
	return s.repo.SetTableAvailability(ctx, table.ID, true)
}

func (s *TableService) QRCodePNG(ctx context.Context, id string) ([]byte, error) {
	table, err := s.repo.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(table.QRCode)
}

var _ TableServiceInterface = (*TableService)(nil)
