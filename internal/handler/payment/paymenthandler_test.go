package paymenthandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/koyif/payments/internal/domain"
	"github.com/koyif/payments/pkg/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	got    []domain.MakePaymentRequest
	result domain.MakePaymentResult
}

func (s *stubService) MakePayment(request domain.MakePaymentRequest) domain.MakePaymentResult {
	s.got = append(s.got, request)
	return s.result
}

func TestPaymentHandler_MakePayment(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		result      domain.MakePaymentResult
		wantStatus  int
		wantCalls   int
		wantSuccess bool
	}{
		{
			name:        "Approved",
			body:        `{"debtor_account_number":"123","creditor_account_number":"456","amount":5.5,"scheme":"Chaps","payment_date":"2024-05-01T10:00:00Z"}`,
			result:      domain.MakePaymentResult{Success: true},
			wantStatus:  http.StatusOK,
			wantCalls:   1,
			wantSuccess: true,
		},
		{
			name:       "Denied",
			body:       `{"debtor_account_number":"","amount":"6.5","scheme":"FasterPayments"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCalls:  1,
		},
		{
			name:       "UnknownScheme",
			body:       `{"debtor_account_number":"123","amount":1,"scheme":"Swift"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MalformedJSON",
			body:       `{"debtor_account_number":`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := &stubService{result: tt.result}
			h := New(srv)

			req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.MakePayment(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.Len(t, srv.got, tt.wantCalls)
			if tt.wantCalls == 0 {
				return
			}

			var resp dto.PaymentResult
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.NotEmpty(t, resp.ID.String())
		})
	}
}

func TestPaymentHandler_MapsRequest(t *testing.T) {
	srv := &stubService{}
	h := New(srv)

	body := `{"debtor_account_number":"123","creditor_account_number":"456","amount":5.5,"scheme":"Bacs","payment_date":"2024-05-01T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
	h.MakePayment(httptest.NewRecorder(), req)

	require.Len(t, srv.got, 1)
	got := srv.got[0]
	assert.Equal(t, "123", got.DebtorAccountNumber)
	assert.Equal(t, "456", got.CreditorAccountNumber)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("5.5")))
	assert.Equal(t, domain.SchemeBacs, got.Scheme)
	assert.Equal(t, 2024, got.PaymentDate.Year())
}
