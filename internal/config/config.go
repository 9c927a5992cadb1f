package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port            string
	Origin          string
	Environment     string
	LogLevel        string
	Database        DatabaseConfig
	Clinic          ClinicConfig
	MaxUploadSizeMB int64
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// ClinicConfig holds the clinic letterhead details used when rendering
// prescription documents. It is passed explicitly to the components that
// need it rather than read from shared state.
type ClinicConfig struct {
	Name          string
	DoctorName    string
	LicenseNumber string
	Address       string
	Phone         string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load database configuration
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "dental_clinic"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	// Load clinic letterhead configuration
	clinicConfig := ClinicConfig{
		Name:          getEnv("CLINIC_NAME", "Dental Clinic"),
		DoctorName:    getEnv("CLINIC_DOCTOR_NAME", ""),
		LicenseNumber: getEnv("CLINIC_LICENSE_NUMBER", ""),
		Address:       getEnv("CLINIC_ADDRESS", ""),
		Phone:         getEnv("CLINIC_PHONE", ""),
	}

	maxUploadMB, err := strconv.ParseInt(getEnv("MAX_UPLOAD_SIZE_MB", "50"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %w", err)
	}

	// Return complete configuration
	return &Config{
		Port:            getEnv("PORT", "3001"),
		Origin:          getEnv("ORIGIN", "http://localhost:4200"),
		Environment:     getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Database:        dbConfig,
		Clinic:          clinicConfig,
		MaxUploadSizeMB: maxUploadMB,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
