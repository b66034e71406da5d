package v1

import (
	"net/http"
	"slices"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(api *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
}

// RegisterRequest carries the common user fields plus the role-specific extras:
// resume_link/skills for applicants, company_name/website/location for employers.
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	UserType    string `json:"userType" binding:"required,user_type"`
	ResumeLink  string `json:"resume_link"`
	Skills      string `json:"skills"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	Location    string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType"`
}

type LoginResponse struct {
	User *domain.LoginUser `json:"user"`
}

// Register godoc
// @Summary      Register a user
// @Description  Create an applicant or employer account together with its role profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Registration data"
// @Success      200   {object}  response.MessageResponse
// @Failure      400   {object}  response.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(registerBindError(err))
		return
	}

	logger.Log.Info("register attempt", "email", req.Email, "user_type", req.UserType)

	err := h.authUC.Register(c, domain.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		UserType:    req.UserType,
		ResumeLink:  req.ResumeLink,
		Skills:      req.Skills,
		CompanyName: req.CompanyName,
		Website:     req.Website,
		Location:    req.Location,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Registered successfully")
}

func registerBindError(err error) error {
	if !validation.IsValidationError(err) {
		return apperror.BadRequestWrap("Email already exists or invalid data", err)
	}
	fields := validation.FailedFields(err)
	switch {
	case slices.Contains(fields, "Password"):
		return apperror.BadRequest("Password is required")
	case slices.Contains(fields, "Name"), slices.Contains(fields, "Email"):
		return apperror.BadRequest("Name, email and password are required")
	default:
		return apperror.BadRequest("Invalid user type")
	}
}

// Login godoc
// @Summary      Log in
// @Description  Check credentials against users (applicant/employer) or admins (userType=admin). No token is issued.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  LoginResponse
// @Failure      400   {object}  response.ErrorResponse
// @Failure      401   {object}  response.ErrorResponse
// @Failure      500   {object}  response.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequestWrap("Email and password are required", err))
		return
	}

	logger.Log.Info("login attempt", "email", req.Email, "user_type", req.UserType)

	user, err := h.authUC.Login(c, req.Email, req.Password, req.UserType)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, LoginResponse{User: user})
}
