package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/corefin/ledger_service/internal/apperrors"
	"github.com/corefin/ledger_service/internal/core/domain"
	portssvc "github.com/corefin/ledger_service/internal/core/ports/services"
	"github.com/corefin/ledger_service/internal/dto"
	"github.com/corefin/ledger_service/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type JournalHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockJournalService *MockJournalService
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAccountService = new(MockAccountService)
	suite.mockJournalService = new(MockJournalService)

	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
		Journal: suite.mockJournalService,
	})
}

func (suite *JournalHandlerTestSuite) postJSON(url string, body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *JournalHandlerTestSuite) validPostRequest() dto.PostJournalRequest {
	return dto.PostJournalRequest{
		ReferenceID: "INV-1001",
		Description: "Invoice 1001",
		Entries: []dto.EntryRequest{
			{AccountID: uuid.NewString(), EntryType: "DEBIT", Amount: decimal.NewFromInt(100), CurrencyCode: "USD"},
			{AccountID: uuid.NewString(), EntryType: "CREDIT", Amount: decimal.NewFromInt(100), CurrencyCode: "USD"},
		},
	}
}

// --- Test Cases ---

func (suite *JournalHandlerTestSuite) TestPostJournal_Success() {
	req := suite.validPostRequest()
	journal := &domain.Journal{
		JournalID:   uuid.NewString(),
		ReferenceID: req.ReferenceID,
		Description: req.Description,
		Status:      domain.Posted,
		PostedAt:    time.Now().UTC(),
	}
	suite.mockJournalService.On("PostJournal", mock.Anything, mock.MatchedBy(func(r dto.PostJournalRequest) bool {
		return r.ReferenceID == req.ReferenceID && len(r.Entries) == 2
	})).Return(journal, nil).Once()

	w := suite.postJSON("/api/v1/journals", req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.JournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(journal.JournalID, resp.JournalID)
	suite.Equal("POSTED", resp.Status)
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestPostJournal_BadEntryTypeRejectedByBinding() {
	req := suite.validPostRequest()
	req.Entries[0].EntryType = "WITHDRAW"

	w := suite.postJSON("/api/v1/journals", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "PostJournal", mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestPostJournal_ValidationErrorFromService() {
	req := suite.validPostRequest()
	suite.mockJournalService.On("PostJournal", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.postJSON("/api/v1/journals", req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *JournalHandlerTestSuite) TestPostJournal_DuplicateReference() {
	req := suite.validPostRequest()
	suite.mockJournalService.On("PostJournal", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.postJSON("/api/v1/journals", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *JournalHandlerTestSuite) TestPostJournal_TransientConflict() {
	req := suite.validPostRequest()
	suite.mockJournalService.On("PostJournal", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrRetryable).Once()

	w := suite.postJSON("/api/v1/journals", req)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *JournalHandlerTestSuite) TestGetJournal_Success() {
	journal := &domain.Journal{
		JournalID:   uuid.NewString(),
		ReferenceID: "INV-1001",
		Status:      domain.Posted,
		Entries: []domain.Entry{
			{EntryID: uuid.NewString(), EntryType: domain.Debit, Amount: decimal.NewFromInt(100), CurrencyCode: "USD"},
			{EntryID: uuid.NewString(), EntryType: domain.Credit, Amount: decimal.NewFromInt(100), CurrencyCode: "USD"},
		},
	}
	suite.mockJournalService.On("GetJournalByID", mock.Anything, journal.JournalID).
		Return(journal, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/journals/"+journal.JournalID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.JournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 2)
}

func (suite *JournalHandlerTestSuite) TestGetJournal_NotFound() {
	journalID := uuid.NewString()
	suite.mockJournalService.On("GetJournalByID", mock.Anything, journalID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/journals/"+journalID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestListJournals_PassesParams() {
	token := "b3BhcXVl"
	expected := &dto.ListJournalsResponse{Journals: []dto.JournalResponse{}}
	suite.mockJournalService.On("ListJournals", mock.Anything, mock.MatchedBy(func(p dto.ListJournalsParams) bool {
		return p.Limit == 10 && p.NextToken != nil && *p.NextToken == token && p.IncludeReversals
	})).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/journals?limit=10&nextToken="+token+"&includeReversals=true", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestReverseJournal_SuccessWithoutBody() {
	journalID := uuid.NewString()
	reversal := &domain.Journal{
		JournalID:           uuid.NewString(),
		ReferenceID:         "INV-1001-REV",
		Status:              domain.Posted,
		ReversalOfJournalID: &journalID,
	}
	suite.mockJournalService.On("ReverseJournal", mock.Anything, journalID, "").
		Return(reversal, nil).Once()

	// No body at all: the reason defaults server-side.
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/journals/"+journalID+"/reverse", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.JournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("INV-1001-REV", resp.ReferenceID)
	suite.Require().NotNil(resp.ReversalOfJournalID)
	suite.Equal(journalID, *resp.ReversalOfJournalID)
}

func (suite *JournalHandlerTestSuite) TestReverseJournal_AlreadyReversed() {
	journalID := uuid.NewString()
	suite.mockJournalService.On("ReverseJournal", mock.Anything, journalID, "dup").
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.postJSON("/api/v1/journals/"+journalID+"/reverse", dto.ReverseJournalRequest{Reason: "dup"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestJournalHandler(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
