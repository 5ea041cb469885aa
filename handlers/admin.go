package handlers

import (
	"net/http"

	"artisanhub/services/admin"
	"artisanhub/services/artisan"
	"artisanhub/services/student"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the back-office endpoints: login, artisan approval,
// account listings and platform analytics.
type AdminHandler struct {
	Service  admin.AdminService
	Artisans artisan.ArtisanService
	Students student.StudentService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc admin.AdminService, artisans artisan.ArtisanService, students student.StudentService) *AdminHandler {
	return &AdminHandler{Service: svc, Artisans: artisans, Students: students}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "admin": resp, "token": resp.Token})
}

// ApproveArtisan handles PUT /api/admin/artisans/approve/:artisanId.
func (h *AdminHandler) ApproveArtisan(c *gin.Context) {
	a, err := h.Artisans.Approve(c.Param("artisanId"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artisan approved successfully", "artisan": a})
}

// RejectArtisan handles PUT /api/admin/artisans/reject/:artisanId.
func (h *AdminHandler) RejectArtisan(c *gin.Context) {
	a, err := h.Artisans.Reject(c.Param("artisanId"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artisan rejected", "artisan": a})
}

// ListArtisans handles GET /api/admin/artisans (all statuses).
func (h *AdminHandler) ListArtisans(c *gin.Context) {
	artisans, err := h.Artisans.GetForAdmin()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artisans)
}

// ListStudents handles GET /api/admin/students.
func (h *AdminHandler) ListStudents(c *gin.Context) {
	students, err := h.Students.GetAll()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// DeleteStudent handles DELETE /api/admin/students/:id.
func (h *AdminHandler) DeleteStudent(c *gin.Context) {
	if err := h.Students.Delete(c.Param("id")); err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

// Analytics handles GET /api/admin/analytics.
func (h *AdminHandler) Analytics(c *gin.Context) {
	stats, err := h.Service.Analytics()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
