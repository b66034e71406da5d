package v1

import (
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(api *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	api.GET("/users", handler.List)
}

// ListUsers godoc
// @Summary      List all users
// @Description  Every registered applicant and employer (admin dashboard). Not access controlled.
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.UserSummary
// @Failure      500  {object}  response.ErrorResponse
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUC.ListUsers(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}
