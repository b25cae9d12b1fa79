package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"github.com/vfg2006/marketing-warehouse-api/pkg/apiErrors"
)

func TestWriteWarehouseError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "not found keeps the domain message",
			err:         domain.NewWarehouseError("lookup calendar date", domain.ErrNotFound, ""),
			wantStatus:  http.StatusNotFound,
			wantCode:    apiErrors.ErrResourceNotFound,
			wantMessage: "lookup calendar date: entity not found",
		},
		{
			name:        "conflict keeps the domain message",
			err:         domain.NewWarehouseError("insert dma window", domain.ErrConflict, "window overlaps"),
			wantStatus:  http.StatusConflict,
			wantCode:    apiErrors.ErrResourceConflict,
			wantMessage: "insert dma window: conflict with existing data: window overlaps",
		},
		{
			name:        "validation keeps the domain message",
			err:         domain.NewWarehouseError("remap city", domain.ErrValidation, "effective date is required"),
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    apiErrors.ErrUnprocessableData,
			wantMessage: "remap city: validation failure: effective date is required",
		},
		{
			name: "referential integrity hides driver detail",
			err: domain.NewWarehouseError("append marketing fact", domain.ErrReferentialIntegrity,
				`pq: insert or update on table "fact_marketing_daily" violates foreign key constraint "fact_marketing_daily_date_id_fkey"`),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    apiErrors.ErrReferentialIntegrity,
			wantMessage: "unexpected error",
		},
		{
			name: "aborted transaction hides driver detail",
			err: domain.NewWarehouseError("reconcile batch", domain.ErrTransactionAborted,
				"pq: could not serialize access due to concurrent update"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    apiErrors.ErrTransactionAborted,
			wantMessage: "unexpected error",
		},
		{
			name:        "unknown database failure hides driver detail",
			err:         errors.New("pq: connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    apiErrors.ErrDatabaseOperation,
			wantMessage: "unexpected error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			writeWarehouseError(recorder, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var payload apiErrors.APIError
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&payload))
			assert.Equal(t, tt.wantCode, payload.Code)
			assert.Equal(t, tt.wantMessage, payload.Message)
			assert.NotContains(t, payload.Message, "pq:")
		})
	}
}
