package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/documents"
	"dental-clinic-server/internal/models"
)

func prescriptionTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := setupTestDB(t)
	clinic := config.ClinicConfig{
		Name:          "Smile Dental Care",
		DoctorName:    "Dr. A. Molar",
		LicenseNumber: "DCL-12345",
	}
	h := NewPrescriptionHandler(db, clinic)
	router := newTestRouter()
	router.POST("/prescriptions", h.CreatePrescription)
	router.GET("/prescriptions", h.GetPrescriptions)
	router.GET("/prescriptions/:id", h.GetPrescriptionByID)
	router.GET("/prescriptions/:id/document", h.GetPrescriptionDocument)
	return router, db
}

func TestCreatePrescription(t *testing.T) {
	router, db := prescriptionTestRouter(t)
	patient := createTestPatient(t, db, "Rx Patient")

	w := performJSON(t, router, http.MethodPost, "/prescriptions", gin.H{
		"patientId": patient.ID,
		"diagnosis": "Acute pulpitis",
		"date":      "2024-06-15",
		"medicines": []gin.H{
			{"name": "Amoxicillin", "dosage": "500mg", "frequency": "three_times_daily", "duration": "5 days"},
		},
	})
	requireStatus(t, w, http.StatusCreated)

	var created models.Prescription
	decodeData(t, w, &created)
	require.Len(t, created.Medicines, 1)
	assert.Equal(t, models.FreqThreeTimesDaily, created.Medicines[0].Frequency)
}

func TestCreatePrescription_RejectsUnknownFrequency(t *testing.T) {
	router, db := prescriptionTestRouter(t)
	patient := createTestPatient(t, db, "Freq Patient")

	w := performJSON(t, router, http.MethodPost, "/prescriptions", gin.H{
		"patientId": patient.ID,
		"diagnosis": "Gingivitis",
		"date":      "2024-06-15",
		"medicines": []gin.H{
			{"name": "Chlorhexidine", "dosage": "10ml", "frequency": "hourly", "duration": "7 days"},
		},
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestCreatePrescription_RequiresMedicines(t *testing.T) {
	router, db := prescriptionTestRouter(t)
	patient := createTestPatient(t, db, "Empty Rx Patient")

	w := performJSON(t, router, http.MethodPost, "/prescriptions", gin.H{
		"patientId": patient.ID,
		"diagnosis": "Gingivitis",
		"date":      "2024-06-15",
		"medicines": []gin.H{},
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestGetPrescriptionDocument(t *testing.T) {
	router, db := prescriptionTestRouter(t)
	patient := createTestPatient(t, db, "Document Patient")

	prescription := models.Prescription{
		PatientID: patient.ID,
		Diagnosis: "Acute pulpitis",
		Date:      "2024-06-15",
		Medicines: []models.MedicineEntry{
			{Name: "Amoxicillin", Dosage: "500mg", Frequency: models.FreqThreeTimesDaily, Duration: "5 days"},
		},
	}
	require.NoError(t, db.Create(&prescription).Error)

	w := performJSON(t, router, http.MethodGet, "/prescriptions/"+prescription.ID+"/document", nil)
	requireStatus(t, w, http.StatusOK)

	var payload struct {
		Document documents.PrescriptionDocument `json:"document"`
		HTML     string                         `json:"html"`
	}
	decodeData(t, w, &payload)
	assert.Equal(t, "Smile Dental Care", payload.Document.Letterhead.ClinicName)
	assert.Equal(t, "Document Patient", payload.Document.PatientName)
	assert.Equal(t, patient.PatientCode, payload.Document.PatientCode)
	assert.Contains(t, payload.HTML, "Amoxicillin")
	assert.Contains(t, payload.HTML, "Smile Dental Care")
}
