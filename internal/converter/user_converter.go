package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// UserToResponse converts a User entity (with any loaded profiles) to a UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      entity.RoleName(user.RoleID),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		resp.DoctorProfile = &dto.DoctorProfileResponse{
			LicenseNumber:  user.DoctorProfile.LicenseNumber,
			Specialization: user.DoctorProfile.Specialization,
			Biography:      user.DoctorProfile.Biography,
		}
	}
	if user.PatientProfile != nil {
		resp.PatientProfile = &dto.PatientProfileResponse{
			PhoneNumber: user.PatientProfile.PhoneNumber,
			DateOfBirth: user.PatientProfile.DateOfBirth,
			Gender:      user.PatientProfile.Gender,
			BloodGroup:  user.PatientProfile.BloodGroup,
			Address:     user.PatientProfile.Address,
		}
	}
	if user.AdminProfile != nil {
		resp.AdminProfile = &dto.AdminProfileResponse{
			Designation: user.AdminProfile.Designation,
			PhoneNumber: user.AdminProfile.PhoneNumber,
		}
	}

	return resp
}
