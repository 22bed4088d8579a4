package repositories_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundlepay/internal/infra"
	"bundlepay/internal/models/record_models"
	"bundlepay/internal/repositories"
)

func storeConfig(baseURL string) *infra.Config {
	return &infra.Config{Records: infra.RecordStoreConfig{
		BaseURL: baseURL,
		Token:   "xc-test-token",
		TableID: "tbl123",
	}}
}

func TestCreate(t *testing.T) {
	var gotToken string
	var gotPath string
	var gotBody map[string]interface{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("xc-token")
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"Id": 42}`))
	}))
	defer upstream.Close()

	repo := repositories.NewTransactionRepository(storeConfig(upstream.URL))

	txn := &record_models.Transaction{
		OrderID:  "T123",
		Phone:    "0551234567",
		DataPlan: "1GB (Express)",
		Amount:   10,
		Status:   record_models.StatusInitiated,
	}
	require.NoError(t, repo.Create(context.Background(), txn))

	assert.Equal(t, int64(42), txn.RowID)
	assert.Equal(t, "xc-test-token", gotToken)
	assert.Equal(t, "/api/v2/tables/tbl123/records", gotPath)
	assert.Equal(t, "T123", gotBody["order_id"])
	assert.Equal(t, "Initiated", gotBody["status"])
}

func TestFindByOrderID(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "(order_id,eq,T123)", r.URL.Query().Get("where"))
		w.Write([]byte(`{"list":[{"Id":42,"order_id":"T123","phone":"0551234567","data_plan":"1GB (Express)","amount":10,"status":"Pending","sms_sent":true}]}`))
	}))
	defer upstream.Close()

	repo := repositories.NewTransactionRepository(storeConfig(upstream.URL))

	txn, err := repo.FindByOrderID(context.Background(), "T123")
	require.NoError(t, err)
	require.NotNil(t, txn)

	assert.Equal(t, int64(42), txn.RowID)
	assert.Equal(t, "T123", txn.OrderID)
	assert.Equal(t, record_models.StatusPending, txn.Status)
	assert.Equal(t, 10.0, txn.Amount)
	assert.True(t, txn.SMSSent)
}

func TestFindByOrderID_LabeledStatusOption(t *testing.T) {
	// Select columns come back as {"label": ...} on some table versions.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list":[{"Id":7,"order_id":"T9","status":{"label":"Pending","color":"#00ff00"}}]}`))
	}))
	defer upstream.Close()

	repo := repositories.NewTransactionRepository(storeConfig(upstream.URL))

	txn, err := repo.FindByOrderID(context.Background(), "T9")
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, record_models.StatusPending, txn.Status)
}

func TestFindByOrderID_NoMatch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list":[]}`))
	}))
	defer upstream.Close()

	repo := repositories.NewTransactionRepository(storeConfig(upstream.URL))

	txn, err := repo.FindByOrderID(context.Background(), "T404")
	require.NoError(t, err)
	assert.Nil(t, txn)
}

func TestUpdate(t *testing.T) {
	var gotMethod string
	var gotBody map[string]interface{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`[{"Id": 42}]`))
	}))
	defer upstream.Close()

	repo := repositories.NewTransactionRepository(storeConfig(upstream.URL))

	err := repo.Update(context.Background(), 42, map[string]interface{}{
		record_models.FieldStatus: record_models.StatusFailed,
		record_models.FieldNotes:  "Cancelled by user",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, 42.0, gotBody["Id"])
	assert.Equal(t, "Failed", gotBody["status"])
}

func TestUpdate_StoreError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"msg":"table not found"}`, http.StatusNotFound)
	}))
	defer upstream.Close()

	repo := repositories.NewTransactionRepository(storeConfig(upstream.URL))

	err := repo.Update(context.Background(), 1, map[string]interface{}{"status": "Failed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
