// controllers/job.go
package controllers

import (
	"errors"
	"net/http"

	"crickpro-backend/config"
	"crickpro-backend/models"
	"crickpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateJobInput defines the expected JSON structure for posting a job
type CreateJobInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"omitempty,oneof=coaching bowling umpiring analysis fitness"`
	Location    string  `json:"location"`
	Skills      string  `json:"skills"`
	BudgetMin   float64 `json:"budgetMin" binding:"min=0"`
	BudgetMax   float64 `json:"budgetMax" binding:"min=0"`
}

// UpdateJobInput defines the expected JSON structure for updating a job
type UpdateJobInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" binding:"omitempty,oneof=coaching bowling umpiring analysis fitness"`
	Location    *string  `json:"location"`
	Skills      *string  `json:"skills"`
	BudgetMin   *float64 `json:"budgetMin" binding:"omitempty,min=0"`
	BudgetMax   *float64 `json:"budgetMax" binding:"omitempty,min=0"`
	Status      *string  `json:"status" binding:"omitempty,oneof=open closed"`
}

// CreateJob posts a new job
func CreateJob(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.BudgetMax > 0 && input.BudgetMax < input.BudgetMin {
		utils.RespondWithError(c, http.StatusBadRequest, "budgetMax must be at least budgetMin")
		return
	}

	job := models.Job{
		PostedByID:  userUUID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Location:    input.Location,
		Skills:      input.Skills,
		BudgetMin:   input.BudgetMin,
		BudgetMax:   input.BudgetMax,
		Status:      models.JobOpen,
	}

	if err := config.DB.Create(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJobs lists jobs with ad-hoc filtering by category, location, skills and budget
func GetJobs(c *gin.Context) {
	query := config.DB.Model(&models.Job{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	} else {
		query = query.Where("status = ?", models.JobOpen)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}
	if skill := c.Query("skill"); skill != "" {
		query = query.Where("skills ILIKE ?", "%"+skill+"%")
	}
	if minBudget := c.Query("minBudget"); minBudget != "" {
		query = query.Where("budget_max >= ?", minBudget)
	}
	if maxBudget := c.Query("maxBudget"); maxBudget != "" {
		query = query.Where("budget_min <= ?", maxBudget)
	}

	var jobs []models.Job
	if err := query.Order("created_at desc").Find(&jobs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve jobs")
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJob retrieves a specific job by ID
func GetJob(c *gin.Context) {
	jobID := c.Param("id")
	jobUUID, err := uuid.Parse(jobID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var job models.Job
	if err := config.DB.First(&job, "id = ?", jobUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJob updates a job owned by the requester
func UpdateJob(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	jobID := c.Param("id")
	jobUUID, err := uuid.Parse(jobID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var input UpdateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var job models.Job
	if err := config.DB.First(&job, "id = ?", jobUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	role, _ := c.Get("role")
	if job.PostedByID.String() != userID.(string) && role != models.RoleAdmin {
		utils.RespondWithError(c, http.StatusForbidden, "Not the owner of this job")
		return
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Category != nil {
		job.Category = *input.Category
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.Skills != nil {
		job.Skills = *input.Skills
	}
	if input.BudgetMin != nil {
		job.BudgetMin = *input.BudgetMin
	}
	if input.BudgetMax != nil {
		job.BudgetMax = *input.BudgetMax
	}
	if input.Status != nil {
		job.Status = *input.Status
	}

	if err := config.DB.Save(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update job")
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob soft deletes a job owned by the requester
func DeleteJob(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	jobID := c.Param("id")
	jobUUID, err := uuid.Parse(jobID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var job models.Job
	if err := config.DB.First(&job, "id = ?", jobUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	role, _ := c.Get("role")
	if job.PostedByID.String() != userID.(string) && role != models.RoleAdmin {
		utils.RespondWithError(c, http.StatusForbidden, "Not the owner of this job")
		return
	}

	if err := config.DB.Delete(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
