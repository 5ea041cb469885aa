package handlers

import (
	"net/http"

	"artisanhub/middleware"
	"artisanhub/models"
	"artisanhub/services/student"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
)

// StudentHandler exposes student account management over HTTP.
type StudentHandler struct {
	Service student.StudentService
}

// NewStudentHandler creates a StudentHandler.
func NewStudentHandler(svc student.StudentService) *StudentHandler {
	return &StudentHandler{Service: svc}
}

// Register handles POST /api/students/register.
func (h *StudentHandler) Register(c *gin.Context) {
	var input models.Student
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Register(input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Student registered successfully", "student": resp, "token": resp.Token})
}

// Login handles POST /api/students/login.
func (h *StudentHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Login(input.Email, input.Password)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "student": resp, "token": resp.Token})
}

// GetByID handles GET /api/students/:id (student only).
func (h *StudentHandler) GetByID(c *gin.Context) {
	st, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// Update handles PUT /api/students/update (student only; updates own profile).
func (h *StudentHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var upd student.StudentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	st, err := h.Service.UpdateProfile(actor.ID, upd)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student updated successfully", "student": st})
}
