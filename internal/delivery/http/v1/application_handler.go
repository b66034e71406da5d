package v1

import (
	"fmt"
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(api *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	api.POST("/applications", handler.Apply)
	api.PUT("/applications/:id", handler.UpdateStatus)
	api.GET("/jobs/:id/applications", handler.ListJobApplications)
	api.GET("/jobs/:id/applications/export", handler.ExportJobApplications)
}

// ApplyRequest is the request payload for applying to a job
type ApplyRequest struct {
	JobID       int64 `json:"job_id" binding:"required"`
	ApplicantID int64 `json:"applicant_id" binding:"required"`
}

// UpdateStatusRequest carries the new status. The value is stored as given.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application; a second application for the same job and applicant is rejected
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application data"
// @Success      200   {object}  response.MessageResponse
// @Failure      400   {object}  response.ErrorResponse
// @Failure      500   {object}  response.ErrorResponse
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequestWrap("job_id and applicant_id are required", err))
		return
	}

	if _, err := h.applicationUC.Apply(c, req.JobID, req.ApplicantID); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Application submitted")
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  Applications with the applicant's name, resume link and skills
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {array}   domain.ApplicationWithApplicant
// @Failure      400  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	applications, err := h.applicationUC.ListByJobID(c, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, applications)
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Description  Overwrite the status of an application (applied, reviewed, rejected, accepted)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Status update"
// @Success      200   {object}  response.MessageResponse
// @Failure      400   {object}  response.ErrorResponse
// @Failure      500   {object}  response.ErrorResponse
// @Router       /applications/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequestWrap("Invalid request body", err))
		return
	}

	if err := h.applicationUC.UpdateStatus(c, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Status updated")
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportJobApplications godoc
// @Summary      Export applications for a job
// @Description  Download the job's applications as an Excel workbook
// @Tags         applications
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path      int  true  "Job ID"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /jobs/{id}/applications/export [get]
func (h *ApplicationHandler) ExportJobApplications(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.applicationUC.ExportByJobID(c, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
