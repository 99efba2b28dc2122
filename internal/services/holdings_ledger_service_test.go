package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HoldingsLedgerServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockHoldingRepositoryInterface
	logger  *service_mocks.MockLedgerLoggerInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	service HoldingsLedgerServiceInterface
	ctx     context.Context
	ownerID string
}

func (s *HoldingsLedgerServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockHoldingRepositoryInterface(s.ctrl)
	s.logger = service_mocks.NewMockLedgerLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewHoldingsLedgerService(s.repo, s.logger, s.metrics)
	s.ctx = context.Background()
	s.ownerID = gofakeit.Username()

	s.logger.EXPECT().LogPersistenceFailure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.logger.EXPECT().LogEntriesFlushed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *HoldingsLedgerServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHoldingsLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(HoldingsLedgerServiceSuite))
}

func (s *HoldingsLedgerServiceSuite) TestRecordPurchase_ComputesTotalCost() {
	s.repo.EXPECT().LoadHoldings(gomock.Any(), s.ownerID).Return(nil, nil)
	s.repo.EXPECT().AppendHolding(gomock.Any(), gomock.Any()).Return(nil)
	s.logger.EXPECT().LogPurchaseRecorded(gomock.Any(), s.ownerID, "TSLA", int64(4), "1000").Times(1)

	holding, err := s.service.RecordPurchase(s.ctx, s.ownerID, "TSLA", decimal.RequireFromString("250.0"), 4)
	s.Require().NoError(err)
	s.Equal("TSLA", holding.Symbol)
	s.Equal(int64(4), holding.Quantity)
	s.Equal(int64(1), holding.Sequence)
	s.True(decimal.NewFromInt(1000).Equal(holding.TotalCost))
}

func (s *HoldingsLedgerServiceSuite) TestRecordPurchase_NormalizesSymbol() {
	s.repo.EXPECT().LoadHoldings(gomock.Any(), s.ownerID).Return(nil, nil)
	s.repo.EXPECT().AppendHolding(gomock.Any(), gomock.Any()).Return(nil)
	s.logger.EXPECT().LogPurchaseRecorded(gomock.Any(), s.ownerID, "AAPL", int64(1), gomock.Any())

	holding, err := s.service.RecordPurchase(s.ctx, s.ownerID, "  aapl ", decimal.NewFromInt(190), 1)
	s.Require().NoError(err)
	s.Equal("AAPL", holding.Symbol)
}

func (s *HoldingsLedgerServiceSuite) TestRecordPurchase_InvalidPurchaseRecordsNothing() {
	cases := []struct {
		name     string
		symbol   string
		price    decimal.Decimal
		quantity int64
	}{
		{"zero price", "TSLA", decimal.Zero, 4},
		{"negative price", "TSLA", decimal.NewFromInt(-1), 4},
		{"zero quantity", "TSLA", decimal.NewFromInt(250), 0},
		{"empty symbol", "   ", decimal.NewFromInt(250), 4},
		{"unit price beyond stored precision", "TSLA", decimal.RequireFromString("250.00001"), 4},
		{"total cost beyond column range", "TSLA", decimal.RequireFromString("99999999999"), 10000},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			holding, err := s.service.RecordPurchase(s.ctx, s.ownerID, tc.symbol, tc.price, tc.quantity)
			s.Nil(holding)
			s.ErrorIs(err, ErrInvalidPurchase)
		})
	}

	s.Equal(0, s.service.PendingCount(s.ownerID))
}

func (s *HoldingsLedgerServiceSuite) TestRecordPurchase_StoreFailureKeepsHoldingPending() {
	storeErr := fmt.Errorf("%w: failed to append holding: timeout", repositories.ErrPersistenceUnavailable)
	s.repo.EXPECT().LoadHoldings(gomock.Any(), s.ownerID).Return(nil, nil)
	s.logger.EXPECT().LogPurchaseRecorded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	gomock.InOrder(
		s.repo.EXPECT().AppendHolding(gomock.Any(), gomock.Any()).Return(storeErr),
		s.repo.EXPECT().AppendHolding(gomock.Any(), gomock.Any()).Return(nil),
	)

	holding, err := s.service.RecordPurchase(s.ctx, s.ownerID, "MSFT", decimal.NewFromInt(400), 2)
	s.True(errors.Is(err, ErrPersistenceUnavailable))
	s.Require().NotNil(holding)
	s.Equal(1, s.service.PendingCount(s.ownerID))

	flushed, err := s.service.Flush(s.ctx, s.ownerID)
	s.Require().NoError(err)
	s.Equal(1, flushed)
	s.Equal(0, s.service.PendingCount(s.ownerID))
}

func (s *HoldingsLedgerServiceSuite) TestSummary_AggregatesBySymbol() {
	tsla, err := models.NewStockHolding(s.ownerID, "TSLA", decimal.NewFromInt(250), 4)
	s.Require().NoError(err)
	tsla.Sequence = 1
	aapl, err := models.NewStockHolding(s.ownerID, "AAPL", decimal.NewFromInt(100), 2)
	s.Require().NoError(err)
	aapl.Sequence = 2
	tsla2, err := models.NewStockHolding(s.ownerID, "TSLA", decimal.NewFromInt(200), 1)
	s.Require().NoError(err)
	tsla2.Sequence = 3

	s.repo.EXPECT().LoadHoldings(gomock.Any(), s.ownerID).Return([]models.StockHolding{*tsla, *aapl, *tsla2}, nil)

	summary, err := s.service.Summary(s.ctx, s.ownerID)
	s.Require().NoError(err)
	s.Equal(int64(3), summary.PurchaseCount)
	s.True(decimal.NewFromInt(1400).Equal(summary.TotalInvestment))
	s.Require().Len(summary.Holdings, 2)
	s.Equal("TSLA", summary.Holdings[0].Symbol)
	s.Equal(int64(5), summary.Holdings[0].Quantity)
	s.True(decimal.NewFromInt(1200).Equal(summary.Holdings[0].TotalCost))
	s.True(decimal.NewFromInt(240).Equal(summary.Holdings[0].AverageUnitPrice))
}

func (s *HoldingsLedgerServiceSuite) TestList_LoadFailure() {
	s.repo.EXPECT().LoadHoldings(gomock.Any(), s.ownerID).
		Return(nil, fmt.Errorf("%w: failed to load holdings", repositories.ErrPersistenceUnavailable))

	holdings, err := s.service.List(s.ctx, s.ownerID)
	s.Nil(holdings)
	s.True(errors.Is(err, ErrPersistenceUnavailable))
}
