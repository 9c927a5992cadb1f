package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"
	"dental-clinic-server/internal/views"
)

// PatientHandler handles patient registration and record requests.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// CreatePatientRequest represents the request body for registering a patient.
type CreatePatientRequest struct {
	FullName          string        `json:"fullName" binding:"required"`
	Nickname          string        `json:"nickname"`
	Gender            models.Gender `json:"gender" binding:"required,oneof=male female other"`
	DateOfBirth       string        `json:"dateOfBirth" binding:"required"`
	Address           string        `json:"address" binding:"required"`
	MobileNumber      string        `json:"mobileNumber" binding:"required"`
	Email             string        `json:"email"`
	BloodGroup        string        `json:"bloodGroup"`
	Allergies         string        `json:"allergies"`
	ChronicConditions string        `json:"chronicConditions"`
	EmergencyContact  string        `json:"emergencyContact"`
	InsuranceInfo     string        `json:"insuranceInfo"`
	ReferralSource    string        `json:"referralSource"`
}

// CreatePatient handles registering a new patient. The patient code is
// assigned here and never changes afterwards.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidDateString(req.DateOfBirth) {
		utils.BadRequest(c, "Invalid date of birth. Please use YYYY-MM-DD format")
		return
	}

	var count int64
	if err := h.DB.Model(&models.Patient{}).Count(&count).Error; err != nil {
		utils.InternalServerError(c, "Failed to generate patient code: "+err.Error())
		return
	}

	patient := models.Patient{
		FullName:          req.FullName,
		Nickname:          req.Nickname,
		Gender:            req.Gender,
		DateOfBirth:       req.DateOfBirth,
		Address:           req.Address,
		MobileNumber:      req.MobileNumber,
		Email:             req.Email,
		BloodGroup:        req.BloodGroup,
		Allergies:         req.Allergies,
		ChronicConditions: req.ChronicConditions,
		EmergencyContact:  req.EmergencyContact,
		InsuranceInfo:     req.InsuranceInfo,
		ReferralSource:    req.ReferralSource,
	}

	// A concurrent registration can claim the same code; the unique
	// index catches it and the next sequence value is tried.
	sequence := count + 1
	for attempt := 0; ; attempt++ {
		patient.PatientCode = models.NextPatientCode(sequence)
		err := h.DB.Create(&patient).Error
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < 3 {
			sequence++
			continue
		}
		utils.InternalServerError(c, "Failed to register patient: "+err.Error())
		return
	}

	utils.Created(c, "Patient registered successfully", patient)
}

// GetPatients handles fetching the full patient list, optionally narrowed
// by a substring search over name, patient code and mobile number.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	query := h.DB.Order("created_at desc")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"full_name LIKE ? OR patient_code LIKE ? OR mobile_number LIKE ?",
			like, like, like,
		)
	}

	var patients []models.Patient
	if err := query.Find(&patients).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	utils.Success(c, "Patients fetched successfully", patients)
}

// GetPatientByID handles fetching a single patient record.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Patient fetched successfully", patient)
}

// UpdatePatientRequest represents the request body for editing a patient
// record. The identifier and patient code are immutable and absent here.
type UpdatePatientRequest struct {
	FullName          string        `json:"fullName" binding:"required"`
	Nickname          string        `json:"nickname"`
	Gender            models.Gender `json:"gender" binding:"required,oneof=male female other"`
	DateOfBirth       string        `json:"dateOfBirth" binding:"required"`
	Address           string        `json:"address" binding:"required"`
	MobileNumber      string        `json:"mobileNumber" binding:"required"`
	Email             string        `json:"email"`
	BloodGroup        string        `json:"bloodGroup"`
	Allergies         string        `json:"allergies"`
	ChronicConditions string        `json:"chronicConditions"`
	EmergencyContact  string        `json:"emergencyContact"`
	InsuranceInfo     string        `json:"insuranceInfo"`
	ReferralSource    string        `json:"referralSource"`
}

// UpdatePatient handles editing an existing patient record.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var req UpdatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidDateString(req.DateOfBirth) {
		utils.BadRequest(c, "Invalid date of birth. Please use YYYY-MM-DD format")
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	patient.FullName = req.FullName
	patient.Nickname = req.Nickname
	patient.Gender = req.Gender
	patient.DateOfBirth = req.DateOfBirth
	patient.Address = req.Address
	patient.MobileNumber = req.MobileNumber
	patient.Email = req.Email
	patient.BloodGroup = req.BloodGroup
	patient.Allergies = req.Allergies
	patient.ChronicConditions = req.ChronicConditions
	patient.EmergencyContact = req.EmergencyContact
	patient.InsuranceInfo = req.InsuranceInfo
	patient.ReferralSource = req.ReferralSource

	if err := h.DB.Save(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to update patient: "+err.Error())
		return
	}

	utils.Success(c, "Patient updated successfully", patient)
}

// PatientSummary aggregates the derived views shown on a patient card.
type PatientSummary struct {
	Patient             models.Patient `json:"patient"`
	Age                 int            `json:"age"`
	CompletedVisitCount int            `json:"completedVisitCount"`
	LastVisitDate       string         `json:"lastVisitDate,omitempty"`
	Balance             float64        `json:"balance"`
}

// GetPatientSummary handles fetching a patient together with the computed
// visit statistics and ledger balance.
func (h *PatientHandler) GetPatientSummary(c *gin.Context) {
	patientID := c.Param("id")

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Where("patient_id = ?", patientID).
		Order("date asc, time asc").
		Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	var entries []models.PaymentEntry
	if err := h.DB.Where("patient_id = ?", patientID).Find(&entries).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch ledger entries: "+err.Error())
		return
	}

	now := time.Now()
	age, err := views.Age(patient.DateOfBirth, now)
	if err != nil {
		utils.InternalServerError(c, "Failed to compute age: "+err.Error())
		return
	}

	summary := PatientSummary{
		Patient:             patient,
		Age:                 age,
		CompletedVisitCount: views.CompletedVisitCount(appointments),
		Balance:             views.Balance(entries),
	}
	if last, ok := views.LastVisit(appointments); ok {
		summary.LastVisitDate = last.Date
	}

	utils.Success(c, "Patient summary fetched successfully", summary)
}
