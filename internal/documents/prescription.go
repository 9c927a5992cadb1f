// Package documents builds the payloads handed to the external document
// collaborators: the PDF generator receives PrescriptionDocument, the
// browser print collaborator receives the rendered HTML string.
package documents

import (
	"bytes"
	"html/template"

	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/models"
)

// Letterhead is the clinic block printed at the top of a prescription.
type Letterhead struct {
	ClinicName    string `json:"clinicName"`
	DoctorName    string `json:"doctorName"`
	LicenseNumber string `json:"licenseNumber"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
}

// MedicineLine is one formatted medicine row on the document.
type MedicineLine struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
}

// PrescriptionDocument is the structured payload for the PDF collaborator.
type PrescriptionDocument struct {
	Letterhead  Letterhead     `json:"letterhead"`
	PatientName string         `json:"patientName"`
	PatientCode string         `json:"patientCode"`
	Date        string         `json:"date"`
	Diagnosis   string         `json:"diagnosis"`
	Medicines   []MedicineLine `json:"medicines"`
	Notes       string         `json:"notes,omitempty"`
}

// frequencyLabels maps the stored frequency values to printable text.
var frequencyLabels = map[models.MedicineFrequency]string{
	models.FreqOnceDaily:       "Once daily",
	models.FreqTwiceDaily:      "Twice daily",
	models.FreqThreeTimesDaily: "Three times daily",
	models.FreqFourTimesDaily:  "Four times daily",
	models.FreqEverySixHours:   "Every 6 hours",
	models.FreqEveryEightHours: "Every 8 hours",
	models.FreqAsNeeded:        "As needed",
	models.FreqBeforeBed:       "Before bed",
}

// FrequencyLabel returns the printable form of a dosing frequency,
// falling back to the raw value for anything outside the fixed set.
func FrequencyLabel(f models.MedicineFrequency) string {
	if label, ok := frequencyLabels[f]; ok {
		return label
	}
	return string(f)
}

// BuildPrescriptionDocument assembles the export payload from the clinic
// configuration and the fetched prescription. The clinic details come in
// as an explicit parameter so rendering stays a pure function.
func BuildPrescriptionDocument(clinic config.ClinicConfig, patient models.Patient, prescription models.Prescription) PrescriptionDocument {
	doc := PrescriptionDocument{
		Letterhead: Letterhead{
			ClinicName:    clinic.Name,
			DoctorName:    clinic.DoctorName,
			LicenseNumber: clinic.LicenseNumber,
			Address:       clinic.Address,
			Phone:         clinic.Phone,
		},
		PatientName: patient.FullName,
		PatientCode: patient.PatientCode,
		Date:        prescription.Date,
		Diagnosis:   prescription.Diagnosis,
		Notes:       prescription.Notes,
	}
	for _, m := range prescription.Medicines {
		doc.Medicines = append(doc.Medicines, MedicineLine{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Frequency:    FrequencyLabel(m.Frequency),
			Duration:     m.Duration,
			Instructions: m.Instructions,
		})
	}
	return doc
}

var printTemplate = template.Must(template.New("prescription").Parse(`<!DOCTYPE html>
<html>
<head><title>Prescription - {{.PatientName}}</title></head>
<body>
<header>
  <h1>{{.Letterhead.ClinicName}}</h1>
  <p>{{.Letterhead.DoctorName}}{{if .Letterhead.LicenseNumber}} &mdash; License {{.Letterhead.LicenseNumber}}{{end}}</p>
  <p>{{.Letterhead.Address}} {{.Letterhead.Phone}}</p>
</header>
<section>
  <p><strong>Patient:</strong> {{.PatientName}} ({{.PatientCode}})</p>
  <p><strong>Date:</strong> {{.Date}}</p>
  <p><strong>Diagnosis:</strong> {{.Diagnosis}}</p>
</section>
<table border="1" cellpadding="4">
  <tr><th>Medicine</th><th>Dosage</th><th>Frequency</th><th>Duration</th><th>Instructions</th></tr>
  {{range .Medicines}}<tr><td>{{.Name}}</td><td>{{.Dosage}}</td><td>{{.Frequency}}</td><td>{{.Duration}}</td><td>{{.Instructions}}</td></tr>
  {{end}}
</table>
{{if .Notes}}<p>{{.Notes}}</p>{{end}}
</body>
</html>
`))

// RenderPrintHTML renders the document into the HTML string handed to the
// browser print collaborator.
func RenderPrintHTML(doc PrescriptionDocument) (string, error) {
	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
