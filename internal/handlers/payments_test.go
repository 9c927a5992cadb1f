package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func paymentTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := setupTestDB(t)
	h := NewPaymentHandler(db)
	router := newTestRouter()
	router.POST("/payments", h.CreatePaymentEntry)
	router.GET("/patients/:id/ledger", h.GetPatientLedger)
	return router, db
}

func TestLedger_AppendAndDeriveBalance(t *testing.T) {
	router, db := paymentTestRouter(t)
	patient := createTestPatient(t, db, "Ledger Patient")

	entries := []gin.H{
		{"patientId": patient.ID, "entryType": "charge", "amount": 300.0, "entryDate": "2024-06-01", "description": "Crown"},
		{"patientId": patient.ID, "entryType": "payment", "amount": 100.0, "entryDate": "2024-06-05"},
		{"patientId": patient.ID, "entryType": "charge", "amount": 50.0, "entryDate": "2024-06-10", "description": "X-ray"},
	}
	for _, e := range entries {
		w := performJSON(t, router, http.MethodPost, "/payments", e)
		requireStatus(t, w, http.StatusCreated)
	}

	w := performJSON(t, router, http.MethodGet, "/patients/"+patient.ID+"/ledger", nil)
	requireStatus(t, w, http.StatusOK)

	var ledger PatientLedger
	decodeData(t, w, &ledger)
	require.Len(t, ledger.Entries, 3)
	assert.InDelta(t, 250.0, ledger.Balance, 0.001)
	// Entries come back in date order.
	assert.Equal(t, "2024-06-01", ledger.Entries[0].EntryDate)
	assert.Equal(t, "2024-06-10", ledger.Entries[2].EntryDate)
}

func TestCreatePaymentEntry_RejectsNonPositiveAmount(t *testing.T) {
	router, db := paymentTestRouter(t)
	patient := createTestPatient(t, db, "Zero Patient")

	w := performJSON(t, router, http.MethodPost, "/payments", gin.H{
		"patientId": patient.ID,
		"entryType": "charge",
		"amount":    0,
		"entryDate": "2024-06-01",
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestCreatePaymentEntry_RejectsUnknownType(t *testing.T) {
	router, db := paymentTestRouter(t)
	patient := createTestPatient(t, db, "Refund Patient")

	w := performJSON(t, router, http.MethodPost, "/payments", gin.H{
		"patientId": patient.ID,
		"entryType": "refund",
		"amount":    25.0,
		"entryDate": "2024-06-01",
	})
	requireStatus(t, w, http.StatusBadRequest)
}
