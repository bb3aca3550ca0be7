package dto

// CreateUserRequest creates a user of any role. The creator must outrank the
// target role and hold the matching CREATE_* permission; profile sections are
// required depending on the role.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=2"`
	RoleID   int    `json:"role_id" validate:"required,oneof=1 2 3 4"`

	// Role-specific profile payloads
	Patient *CreatePatientProfileRequest `json:"patient,omitempty"`
	Doctor  *CreateDoctorProfileRequest  `json:"doctor,omitempty"`
	Admin   *CreateAdminProfileRequest   `json:"admin,omitempty"`
}

type CreatePatientProfileRequest struct {
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Gender      string `json:"gender" validate:"required,oneof=M F"`
	BloodGroup  string `json:"blood_group" validate:"omitempty,max=5"`
	Address     string `json:"address" validate:"omitempty"`
}

type CreateDoctorProfileRequest struct {
	LicenseNumber  string `json:"license_number" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Biography      string `json:"biography" validate:"omitempty"`
}

type CreateAdminProfileRequest struct {
	Designation string `json:"designation" validate:"omitempty,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
}
