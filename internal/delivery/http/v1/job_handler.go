package v1

import (
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	api.GET("/jobs", handler.List)
	api.POST("/jobs", handler.Create)
	api.GET("/employer/:id/jobs", handler.ListByEmployer)
}

// CreateJobRequest accepts salary as a number or a numeric string
type CreateJobRequest struct {
	EmployerID  int64                   `json:"employer_id" binding:"required"`
	JobTitle    string                  `json:"job_title" binding:"required"`
	Description string                  `json:"description" binding:"required"`
	Location    string                  `json:"location" binding:"required"`
	Salary      validation.NumberString `json:"salary" binding:"required,salary" swaggertype:"string"`
}

type CreateJobResponse struct {
	JobID   int64  `json:"job_id"`
	Message string `json:"message"`
}

// CreateJob godoc
// @Summary      Post a job
// @Description  Create a job posting for an existing employer
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  CreateJobResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(createJobBindError(err))
		return
	}

	salary, err := validation.ParseSalary(req.Salary.String())
	if err != nil {
		c.Error(apperror.BadRequest("Salary must be a valid number"))
		return
	}

	job := &domain.Job{
		EmployerID:  req.EmployerID,
		Title:       req.JobTitle,
		Description: req.Description,
		Location:    req.Location,
		Salary:      salary,
	}

	if err := h.jobUC.CreateJob(c, job); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, CreateJobResponse{JobID: job.ID, Message: "Job posted successfully"})
}

func createJobBindError(err error) error {
	if validation.IsValidationError(err) && !validation.HasTag(err, "required") {
		return apperror.BadRequest("Salary must be a valid number")
	}
	return apperror.BadRequestWrap("All fields are required", err)
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Every job with its employer's company name
// @Tags         jobs
// @Produce      json
// @Success      200  {array}   domain.JobWithCompany
// @Failure      500  {object}  response.ErrorResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, jobs)
}

// ListByEmployer godoc
// @Summary      List an employer's jobs
// @Description  Jobs posted by one employer; empty when the employer has none or does not exist
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Employer ID"
// @Success      200  {array}   domain.Job
// @Failure      400  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /employer/{id}/jobs [get]
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	employerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	jobs, err := h.jobUC.ListJobsByEmployer(c, employerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, jobs)
}
