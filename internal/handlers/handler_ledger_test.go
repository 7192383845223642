package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finadmin/manual_ledger_app/internal/core/domain"
	"github.com/finadmin/manual_ledger_app/internal/core/services"
	"github.com/finadmin/manual_ledger_app/internal/dto"
	"github.com/finadmin/manual_ledger_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Submit(ctx context.Context, req dto.SubmitTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, limit int) []domain.Transaction {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Transaction)
}

func (m *MockLedgerService) Snapshot() []domain.Transaction {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Transaction)
}

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportCSV(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetStatistics(ctx context.Context) domain.Statistics {
	args := m.Called(ctx)
	return args.Get(0).(domain.Statistics)
}

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	ledgerSvc     *MockLedgerService
	exportSvc     *MockExportService
	reportingSvc  *MockReportingService
	ledgerHandler *handlers.LedgerHandler
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ledgerSvc = new(MockLedgerService)
	s.exportSvc = new(MockExportService)
	s.reportingSvc = new(MockReportingService)

	s.ledgerHandler = handlers.NewLedgerHandler(s.ledgerSvc)
	exportHandler := handlers.NewExportHandler(s.exportSvc)
	reportingHandler := handlers.NewReportingHandler(s.reportingSvc)

	s.router = gin.New()
	s.router.POST("/transactions", s.ledgerHandler.SubmitTransaction)
	s.router.GET("/transactions", s.ledgerHandler.ListTransactions)
	s.router.GET("/transactions/export", exportHandler.ExportTransactions)
	s.router.GET("/statistics", reportingHandler.GetStatistics)
}

func (s *LedgerHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *LedgerHandlerTestSuite) TestSubmitTransaction_Created() {
	txn := &domain.Transaction{
		TransactionID:   1741357805000,
		AccountID:       1,
		Username:        "john_doe",
		Amount:          decimal.NewFromInt(50),
		Kind:            domain.Deposit,
		Visibility:      domain.VisibilityDisplay,
		Remark:          "test",
		CreatedAt:       time.Now().UTC(),
		Status:          domain.StatusCompleted,
		PreviousBalance: decimal.NewFromInt(100),
		NewBalance:      decimal.NewFromInt(150),
	}
	s.ledgerSvc.On("Submit", mock.Anything, mock.Anything).Return(txn, nil).Once()

	w := s.postJSON("/transactions", dto.SubmitTransactionRequest{
		AccountID: 1, Kind: "deposit", Amount: "50", Visibility: "display", Remark: "test",
	})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(1741357805000), resp.TransactionID)
	s.Equal("john_doe", resp.Username)
	s.True(resp.NewBalance.Equal(decimal.NewFromInt(150)))
	s.ledgerSvc.AssertExpectations(s.T())
}

func (s *LedgerHandlerTestSuite) TestSubmitTransaction_ValidationRejected() {
	s.ledgerSvc.On("Submit", mock.Anything, mock.Anything).Return(nil, services.ErrInsufficientBalance).Once()

	w := s.postJSON("/transactions", dto.SubmitTransactionRequest{
		AccountID: 1, Kind: "withdraw", Amount: "150", Visibility: "display", Remark: "test",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "insufficient balance")
}

func (s *LedgerHandlerTestSuite) TestSubmitTransaction_AccountDisappeared() {
	s.ledgerSvc.On("Submit", mock.Anything, mock.Anything).Return(nil, services.ErrAccountDisappeared).Once()

	w := s.postJSON("/transactions", dto.SubmitTransactionRequest{
		AccountID: 7, Kind: "deposit", Amount: "5", Visibility: "display", Remark: "test",
	})

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *LedgerHandlerTestSuite) TestSubmitTransaction_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader([]byte(`{"accountID":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.ledgerSvc.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
}

func (s *LedgerHandlerTestSuite) TestListTransactions_DefaultLimit() {
	s.ledgerSvc.On("ListTransactions", mock.Anything, 50).Return([]domain.Transaction{}).Once()

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.ledgerSvc.AssertExpectations(s.T())
}

func (s *LedgerHandlerTestSuite) TestExportTransactions_EmptyLedgerWarns() {
	s.exportSvc.On("ExportCSV", mock.Anything).Return(nil, "", services.ErrEmptyLedger).Once()

	req := httptest.NewRequest(http.MethodGet, "/transactions/export", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusConflict, w.Code)
	s.Contains(w.Body.String(), "warning")
}

func (s *LedgerHandlerTestSuite) TestExportTransactions_StreamsAttachment() {
	doc := []byte("Transaction ID,Username\n1,john_doe\n")
	s.exportSvc.On("ExportCSV", mock.Anything).Return(doc, "manual-transactions-2025-03-07.csv", nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/transactions/export", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("text/csv", w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "manual-transactions-2025-03-07.csv")
	s.Equal(doc, w.Body.Bytes())
}

func (s *LedgerHandlerTestSuite) TestGetStatistics() {
	s.reportingSvc.On("GetStatistics", mock.Anything).Return(domain.Statistics{
		TotalTransactions: 2,
		TotalDeposits:     decimal.NewFromInt(110),
		TotalWithdrawals:  decimal.NewFromInt(25),
		NetFlow:           decimal.NewFromInt(85),
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/statistics", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.StatisticsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(2, resp.TotalTransactions)
	s.True(resp.NetFlow.Equal(decimal.NewFromInt(85)))
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
