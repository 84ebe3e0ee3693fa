// controllers/employee_controller.go
package controllers

import (
	"net/http"

	"pupinn-backend/services"
	"pupinn-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateEmployeeRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`
}

type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

// EmployeeController is the admin surface for staff account management.
type EmployeeController struct {
	EmpSvc *services.EmployeeService
}

func NewEmployeeController(empSvc *services.EmployeeService) *EmployeeController {
	return &EmployeeController{EmpSvc: empSvc}
}

// ListEmployees returns staff accounts. ?include_deactivated=true also
// shows switched-off accounts; ?role= and ?search= filter the list.
func (ctrl *EmployeeController) ListEmployees(c *gin.Context) {
	employees, err := ctrl.EmpSvc.ListEmployees(
		c.Query("role"),
		c.Query("search"),
		c.Query("include_deactivated") == "true",
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (ctrl *EmployeeController) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	employee, err := ctrl.EmpSvc.GetEmployee(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ctrl *EmployeeController) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "username, password and role are required")
		return
	}
	employee, err := ctrl.EmpSvc.CreateEmployee(req.Username, req.Password, req.FullName, req.Role, req.Phone)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (ctrl *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload")
		return
	}
	employee, err := ctrl.EmpSvc.UpdateEmployee(id, req.FullName, req.Phone, req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeactivateEmployee switches an account off. Admins cannot deactivate
// their own account; demoting or deactivating the last active admin is
// rejected in the service.
func (ctrl *EmployeeController) DeactivateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if actor, found := requireActor(c); !found {
		return
	} else if actor.UserID == id {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "you cannot deactivate your own account")
		return
	}

	employee, err := ctrl.EmpSvc.DeactivateEmployee(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ctrl *EmployeeController) ReactivateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	employee, err := ctrl.EmpSvc.ReactivateEmployee(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ctrl *EmployeeController) ResetPassword(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "new_password is required")
		return
	}
	if err := ctrl.EmpSvc.ResetPassword(id, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reset": true})
}
