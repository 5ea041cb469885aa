package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	artisanRepo "artisanhub/database/repository/artisan"
	"artisanhub/middleware"
	"artisanhub/models"
	"artisanhub/services/artisan"
	"artisanhub/services/storage"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	uploadFolder    = "artisanhub"
	searchCacheTTL  = time.Minute
	searchCacheRoot = "artisanSearch:"
)

// ArtisanHandler exposes artisan account management, discovery and the
// portfolio endpoints over HTTP.
type ArtisanHandler struct {
	Service artisan.ArtisanService
	Storage storage.StorageService
	Cache   *redis.Client
}

// NewArtisanHandler creates an ArtisanHandler.
func NewArtisanHandler(svc artisan.ArtisanService, store storage.StorageService, cache *redis.Client) *ArtisanHandler {
	return &ArtisanHandler{Service: svc, Storage: store, Cache: cache}
}

// uploadOne uploads a single multipart file and returns its public URL.
func (h *ArtisanHandler) uploadOne(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()
	return h.Storage.UploadFile(ctx, f, fh.Filename, uploadFolder)
}

// Register handles POST /api/artisans/register (multipart form with optional
// profilePhoto and verificationDocs files).
func (h *ArtisanHandler) Register(c *gin.Context) {
	years, _ := strconv.Atoi(c.PostForm("yearsOfExperience"))
	input := models.Artisan{
		FullName:          c.PostForm("fullName"),
		Description:       c.PostForm("description"),
		SkillCategory:     c.PostForm("skillCategory"),
		Location:          c.PostForm("location"),
		Phone:             c.PostForm("phone"),
		Email:             c.PostForm("email"),
		Password:          c.PostForm("password"),
		YearsOfExperience: years,
	}

	ctx := c.Request.Context()
	if fh, err := c.FormFile("profilePhoto"); err == nil {
		url, err := h.uploadOne(ctx, fh)
		if err != nil {
			utils.GetLogger().Error("Profile photo upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
			return
		}
		input.ProfilePhoto = url
	}
	if form, err := c.MultipartForm(); err == nil {
		for _, fh := range form.File["verificationDocs"] {
			url, err := h.uploadOne(ctx, fh)
			if err != nil {
				utils.GetLogger().Error("Verification doc upload failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
				return
			}
			input.VerificationDocs = append(input.VerificationDocs, url)
		}
	}

	resp, err := h.Service.Register(input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Artisan registered successfully. Awaiting approval.",
		"artisan": resp,
		"token":   resp.Token,
	})
}

// Login handles POST /api/artisans/login.
func (h *ArtisanHandler) Login(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "artisan": resp, "token": resp.Token})
}

// Update handles PUT /api/artisans/update (artisan only; multipart form).
func (h *ArtisanHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	upd := artisan.ArtisanUpdate{
		FullName:      c.PostForm("fullName"),
		Password:      c.PostForm("password"),
		Phone:         c.PostForm("phone"),
		SkillCategory: c.PostForm("skillCategory"),
		Location:      c.PostForm("location"),
		Description:   c.PostForm("description"),
		FCMToken:      c.PostForm("fcmToken"),
	}

	ctx := c.Request.Context()
	if fh, err := c.FormFile("profilePhoto"); err == nil {
		url, err := h.uploadOne(ctx, fh)
		if err != nil {
			utils.GetLogger().Error("Profile photo upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
			return
		}
		upd.ProfilePhoto = url
	}
	if form, err := c.MultipartForm(); err == nil {
		for _, fh := range form.File["verificationDocs"] {
			url, err := h.uploadOne(ctx, fh)
			if err != nil {
				utils.GetLogger().Error("Verification doc upload failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
				return
			}
			upd.VerificationDocs = append(upd.VerificationDocs, url)
		}
	}

	a, err := h.Service.UpdateProfile(actor.ID, upd)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artisan updated successfully", "artisan": a})
}

// Search handles GET /api/students/artisans (public discovery of approved
// artisans). Results are cached briefly in Redis keyed by the filter, since
// this is the hottest read path and tolerates slightly stale ratings.
func (h *ArtisanHandler) Search(c *gin.Context) {
	filter := artisanRepo.ArtisanFilter{
		SkillCategory: c.Query("category"),
		Name:          c.Query("name"),
		Location:      c.Query("location"),
	}

	cacheKey := searchCacheRoot + filter.SkillCategory + ":" + filter.Name + ":" + filter.Location
	ctx := c.Request.Context()
	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	artisans, err := h.Service.Search(filter)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	if artisans == nil {
		artisans = []models.Artisan{}
	}

	if h.Cache != nil {
		if data, err := json.Marshal(artisans); err == nil {
			if err := h.Cache.Set(ctx, cacheKey, data, searchCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache artisan search", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, artisans)
}

// GetByID handles GET /api/students/artisans/:id (public, approved only).
func (h *ArtisanHandler) GetByID(c *gin.Context) {
	a, err := h.Service.GetApprovedByID(c.Param("id"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// PublicPreviousWorks handles GET /api/students/artisans/:id/previous-works.
func (h *ArtisanHandler) PublicPreviousWorks(c *gin.Context) {
	works, err := h.Service.GetPublicPreviousWorks(c.Param("id"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, works)
}

// PublicPreviousWork handles GET /api/students/artisans/:id/previous-works/:workId.
func (h *ArtisanHandler) PublicPreviousWork(c *gin.Context) {
	work, err := h.Service.GetPublicPreviousWork(c.Param("id"), c.Param("workId"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, work)
}

// AddPreviousWork handles POST /api/artisans/previous-works (artisan only).
func (h *ArtisanHandler) AddPreviousWork(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	in := artisan.PreviousWorkInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if fh, err := c.FormFile("image"); err == nil {
		url, err := h.uploadOne(c.Request.Context(), fh)
		if err != nil {
			utils.GetLogger().Error("Portfolio image upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
			return
		}
		in.Image = url
	}

	work, err := h.Service.AddPreviousWork(actor.ID, in)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Previous work added successfully", "work": work})
}

// ListPreviousWorks handles GET /api/artisans/previous-works (artisan only).
func (h *ArtisanHandler) ListPreviousWorks(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	works, err := h.Service.GetPreviousWorks(actor.ID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, works)
}

// GetPreviousWork handles GET /api/artisans/previous-works/:workId (artisan only).
func (h *ArtisanHandler) GetPreviousWork(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	work, err := h.Service.GetPreviousWork(actor.ID, c.Param("workId"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, work)
}

// UpdatePreviousWork handles PUT /api/artisans/previous-works/:workId (artisan only).
func (h *ArtisanHandler) UpdatePreviousWork(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	in := artisan.PreviousWorkInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if fh, err := c.FormFile("image"); err == nil {
		url, err := h.uploadOne(c.Request.Context(), fh)
		if err != nil {
			utils.GetLogger().Error("Portfolio image upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
			return
		}
		in.Image = url
	}

	work, err := h.Service.UpdatePreviousWork(actor.ID, c.Param("workId"), in)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Previous work updated successfully", "work": work})
}

// DeletePreviousWork handles DELETE /api/artisans/previous-works/:workId (artisan only).
func (h *ArtisanHandler) DeletePreviousWork(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.DeletePreviousWork(actor.ID, c.Param("workId")); err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Previous work deleted successfully"})
}
