package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/models"
)

func testClinic() config.ClinicConfig {
	return config.ClinicConfig{
		Name:          "Smile Dental Care",
		DoctorName:    "Dr. A. Molar",
		LicenseNumber: "DCL-12345",
		Address:       "12 Harbor Rd",
		Phone:         "+1 555 0100",
	}
}

func testPrescription() (models.Patient, models.Prescription) {
	patient := models.Patient{FullName: "Jane Roe"}
	patient.PatientCode = "PT-0007"
	prescription := models.Prescription{
		Diagnosis: "Acute pulpitis",
		Date:      "2024-06-15",
		Medicines: []models.MedicineEntry{
			{Name: "Amoxicillin", Dosage: "500mg", Frequency: models.FreqThreeTimesDaily, Duration: "5 days"},
			{Name: "Ibuprofen", Dosage: "400mg", Frequency: models.FreqAsNeeded, Duration: "3 days", Instructions: "After food"},
		},
	}
	return patient, prescription
}

func TestBuildPrescriptionDocument(t *testing.T) {
	patient, prescription := testPrescription()

	doc := BuildPrescriptionDocument(testClinic(), patient, prescription)

	assert.Equal(t, "Smile Dental Care", doc.Letterhead.ClinicName)
	assert.Equal(t, "DCL-12345", doc.Letterhead.LicenseNumber)
	assert.Equal(t, "Jane Roe", doc.PatientName)
	assert.Equal(t, "PT-0007", doc.PatientCode)
	require.Len(t, doc.Medicines, 2)
	assert.Equal(t, "Three times daily", doc.Medicines[0].Frequency)
	assert.Equal(t, "As needed", doc.Medicines[1].Frequency)
}

func TestFrequencyLabel_FallsBackToRawValue(t *testing.T) {
	assert.Equal(t, "weekly", FrequencyLabel(models.MedicineFrequency("weekly")))
}

func TestRenderPrintHTML(t *testing.T) {
	patient, prescription := testPrescription()
	doc := BuildPrescriptionDocument(testClinic(), patient, prescription)

	html, err := RenderPrintHTML(doc)
	require.NoError(t, err)
	assert.Contains(t, html, "Smile Dental Care")
	assert.Contains(t, html, "Jane Roe")
	assert.Contains(t, html, "Amoxicillin")
	assert.Contains(t, html, "Three times daily")
}
