package http

import (
	"net/http"

	"go-hospital-management/internal/delivery/http/handler"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	patientHandler       *handler.PatientHandler
	doctorHandler        *handler.DoctorHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	masterHandler        *handler.MasterHandler
	systemHandler        *handler.SystemHandler
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	masterHandler *handler.MasterHandler,
	systemHandler *handler.SystemHandler,
	authMiddleware *middleware.AuthMiddleware,
	permissionMiddleware *middleware.PermissionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		userHandler:          userHandler,
		patientHandler:       patientHandler,
		doctorHandler:        doctorHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		masterHandler:        masterHandler,
		systemHandler:        systemHandler,
		authMiddleware:       authMiddleware,
		permissionMiddleware: permissionMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

// Role set shorthands for route policies.
var (
	adminRoles = []int{entity.RoleIDAdmin, entity.RoleIDSuperAdmin}
	staffRoles = []int{entity.RoleIDDoctor, entity.RoleIDAdmin, entity.RoleIDSuperAdmin}
	allRoles   = []int{entity.RoleIDPatient, entity.RoleIDDoctor, entity.RoleIDAdmin, entity.RoleIDSuperAdmin}
)

// Setup wires every route with its authorization policy. Policies are declared
// here, next to the route, so the full access map of the API is readable in
// one place.
func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below requires authentication plus a per-route policy
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	r.handle(protected, "/users", r.userHandler.CreateUser, http.MethodPost, middleware.Policy{
		AllowedRoles: staffRoles,
		Permissions: []string{
			entity.PermissionCreatePatient,
			entity.PermissionCreateDoctor,
			entity.PermissionCreateAdmin,
			entity.PermissionCreateSuperAdmin,
		},
	})
	r.handle(protected, "/users/{id}", r.userHandler.DeleteUser, http.MethodDelete, middleware.Policy{
		AllowedRoles: adminRoles,
		Permissions:  []string{entity.PermissionDeleteUsers},
	})

	managePatients := []string{entity.PermissionManageAllPatients, entity.PermissionManageAssignedPatients}
	r.handle(protected, "/patients", r.patientHandler.GetPatients, http.MethodGet, middleware.Policy{
		AllowedRoles: staffRoles,
		Permissions:  managePatients,
	})
	r.handle(protected, "/patients/me", r.patientHandler.UpdateSelfProfile, http.MethodPut, middleware.Policy{
		AllowedRoles: []int{entity.RoleIDPatient},
		Permissions:  []string{entity.PermissionManageOwnData},
	})
	r.handle(protected, "/patients/{id}", r.patientHandler.GetPatient, http.MethodGet, middleware.Policy{
		AllowedRoles: staffRoles,
		Permissions:  managePatients,
	})
	r.handle(protected, "/patients/{id}", r.patientHandler.UpdatePatient, http.MethodPut, middleware.Policy{
		AllowedRoles: staffRoles,
		Permissions:  managePatients,
	})
	r.handle(protected, "/patients/{id}", r.patientHandler.DeletePatient, http.MethodDelete, middleware.Policy{
		AllowedRoles: adminRoles,
		Permissions:  []string{entity.PermissionManageAllPatients},
	})

	r.handle(protected, "/doctors", r.doctorHandler.GetDoctors, http.MethodGet, middleware.Policy{
		AllowedRoles: allRoles,
	})
	r.handle(protected, "/doctors/me", r.doctorHandler.UpdateSelfProfile, http.MethodPut, middleware.Policy{
		AllowedRoles: []int{entity.RoleIDDoctor},
		Permissions:  []string{entity.PermissionManageOwnData},
	})
	r.handle(protected, "/doctors/{id}", r.doctorHandler.GetDoctor, http.MethodGet, middleware.Policy{
		AllowedRoles: allRoles,
	})
	r.handle(protected, "/doctors/{id}", r.doctorHandler.UpdateDoctor, http.MethodPut, middleware.Policy{
		AllowedRoles: adminRoles,
	})
	r.handle(protected, "/doctors/{id}", r.doctorHandler.DeleteDoctor, http.MethodDelete, middleware.Policy{
		AllowedRoles: adminRoles,
		Permissions:  []string{entity.PermissionDeleteUsers},
	})

	manageAppointments := []string{entity.PermissionManageAllAppointments, entity.PermissionManageAssignedAppointments}
	r.handle(protected, "/appointments", r.appointmentHandler.Book, http.MethodPost, middleware.Policy{
		AllowedRoles: []int{entity.RoleIDPatient},
		Permissions:  []string{entity.PermissionBookAppointments},
	})
	r.handle(protected, "/appointments", r.appointmentHandler.GetAppointments, http.MethodGet, middleware.Policy{
		AllowedRoles: allRoles,
		Permissions:  append([]string{entity.PermissionBookAppointments}, manageAppointments...),
	})
	r.handle(protected, "/appointments/{id}", r.appointmentHandler.GetAppointment, http.MethodGet, middleware.Policy{
		AllowedRoles: allRoles,
		Permissions:  append([]string{entity.PermissionBookAppointments}, manageAppointments...),
	})
	r.handle(protected, "/appointments/{id}/status", r.appointmentHandler.UpdateStatus, http.MethodPut, middleware.Policy{
		AllowedRoles: staffRoles,
		Permissions:  manageAppointments,
	})
	r.handle(protected, "/appointments/{id}", r.appointmentHandler.Cancel, http.MethodDelete, middleware.Policy{
		AllowedRoles: allRoles,
		Permissions:  append([]string{entity.PermissionBookAppointments}, manageAppointments...),
	})

	viewRecords := []string{
		entity.PermissionViewAllMedicalRecords,
		entity.PermissionViewAssignedMedicalRecords,
		entity.PermissionManageOwnData,
	}
	writeRecords := middleware.Policy{
		AllowedRoles: []int{entity.RoleIDDoctor},
		Permissions:  []string{entity.PermissionCreateMedicalRecords},
	}
	r.handle(protected, "/medical-records", r.medicalRecordHandler.Create, http.MethodPost, writeRecords)
	r.handle(protected, "/medical-records", r.medicalRecordHandler.GetRecords, http.MethodGet, middleware.Policy{
		AllowedRoles: allRoles,
		Permissions:  viewRecords,
	})
	r.handle(protected, "/medical-records/{id}", r.medicalRecordHandler.GetRecord, http.MethodGet, middleware.Policy{
		AllowedRoles: allRoles,
		Permissions:  viewRecords,
	})
	r.handle(protected, "/medical-records/{id}", r.medicalRecordHandler.Update, http.MethodPut, writeRecords)
	r.handle(protected, "/medical-records/{id}", r.medicalRecordHandler.Delete, http.MethodDelete, writeRecords)
	r.handle(protected, "/medical-records/{id}/prescriptions", r.medicalRecordHandler.AddPrescription, http.MethodPost, writeRecords)
	r.handle(protected, "/medical-records/{id}/prescriptions/{prescriptionId}", r.medicalRecordHandler.RemovePrescription, http.MethodDelete, writeRecords)
	r.handle(protected, "/medical-records/{id}/recommended-tests", r.medicalRecordHandler.AddRecommendedTest, http.MethodPost, writeRecords)
	r.handle(protected, "/medical-records/{id}/recommended-tests/{testId}", r.medicalRecordHandler.RemoveRecommendedTest, http.MethodDelete, writeRecords)

	// Master data: staff read, admin write
	masterRead := middleware.Policy{AllowedRoles: staffRoles}
	masterWrite := middleware.Policy{AllowedRoles: adminRoles}
	r.handle(protected, "/masters/tests", r.masterHandler.GetTests, http.MethodGet, masterRead)
	r.handle(protected, "/masters/tests", r.masterHandler.CreateTest, http.MethodPost, masterWrite)
	r.handle(protected, "/masters/tests/{id}", r.masterHandler.GetTest, http.MethodGet, masterRead)
	r.handle(protected, "/masters/tests/{id}", r.masterHandler.UpdateTest, http.MethodPut, masterWrite)
	r.handle(protected, "/masters/tests/{id}", r.masterHandler.DeleteTest, http.MethodDelete, masterWrite)
	r.handle(protected, "/masters/dosages", r.masterHandler.GetDosages, http.MethodGet, masterRead)
	r.handle(protected, "/masters/dosages", r.masterHandler.CreateDosage, http.MethodPost, masterWrite)
	r.handle(protected, "/masters/dosages/{id}", r.masterHandler.GetDosage, http.MethodGet, masterRead)
	r.handle(protected, "/masters/dosages/{id}", r.masterHandler.UpdateDosage, http.MethodPut, masterWrite)
	r.handle(protected, "/masters/dosages/{id}", r.masterHandler.DeleteDosage, http.MethodDelete, masterWrite)

	r.handle(protected, "/permissions", r.systemHandler.GetPermissionMatrix, http.MethodGet, middleware.Policy{
		AllowedRoles: adminRoles,
	})
	r.handle(protected, "/audit-logs", r.systemHandler.GetAuditLogs, http.MethodGet, middleware.Policy{
		AllowedRoles: adminRoles,
		Permissions:  []string{entity.PermissionViewSystemLogs},
	})
	r.handle(protected, "/audit-logs/{id}", r.systemHandler.GetAuditLog, http.MethodGet, middleware.Policy{
		AllowedRoles: adminRoles,
		Permissions:  []string{entity.PermissionViewSystemLogs},
	})

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// handle registers a route with its policy wrapped around the handler.
func (r *Router) handle(sub *mux.Router, path string, handlerFunc http.HandlerFunc, method string, policy middleware.Policy) {
	sub.Handle(path, r.permissionMiddleware.Require(policy)(handlerFunc)).Methods(method)
}
