package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/A-Shalchian/api-key-vault/internal/dto"
	"github.com/A-Shalchian/api-key-vault/internal/service"
	"github.com/A-Shalchian/api-key-vault/internal/utils"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles POST /users, the identity provider's post-signup callback.
// The path is on the auth middleware's skip list: the caller holds no bearer
// token of its own at signup time.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", utils.FormatValidationError(err)))
		return
	}

	user, err := h.userService.CreateUser(req.ID, req.Email, req.FirstName, req.LastName)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, dto.CreateUserResponse{
		Message: "User created successfully",
		User:    *user,
	})
}

// GetUser handles GET /users/:user_uuid
func (h *UserHandler) GetUser(c *gin.Context) {
	uuid := c.Param("user_uuid")
	if uuid == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "User id is required"))
		return
	}

	user, err := h.userService.GetUserWithKeys(uuid)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	userGroup := r.Group("/users")
	{
		userGroup.POST("", h.CreateUser)
		userGroup.GET("/:user_uuid", h.GetUser)
	}
}
