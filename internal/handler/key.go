package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/A-Shalchian/api-key-vault/internal/dto"
	"github.com/A-Shalchian/api-key-vault/internal/middleware"
	"github.com/A-Shalchian/api-key-vault/internal/service"
	"github.com/A-Shalchian/api-key-vault/internal/utils"
)

type KeyHandler struct {
	vaultService *service.VaultService
}

func NewKeyHandler(vaultService *service.VaultService) *KeyHandler {
	return &KeyHandler{
		vaultService: vaultService,
	}
}

// StoreKey handles POST /keys
func (h *KeyHandler) StoreKey(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(401, "Unauthorized", "Authentication required"))
		return
	}

	var req dto.StoreKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", utils.FormatValidationError(err)))
		return
	}

	if err := h.vaultService.StoreKey(userID, req.Name, req.SecretValue); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, dto.StoreKeyResponse{Message: "API key stored successfully"})
}

// RetrieveKey handles GET /keys?name=<name>, falling through to ListKeys
// when no name is supplied
func (h *KeyHandler) RetrieveKey(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(401, "Unauthorized", "Authentication required"))
		return
	}

	name, hasName := c.GetQuery("name")
	if !hasName {
		h.listKeys(c, userID)
		return
	}

	secretValue, err := h.vaultService.RetrieveKey(userID, name)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, dto.RetrieveKeyResponse{SecretValue: secretValue})
}

func (h *KeyHandler) listKeys(c *gin.Context, userID string) {
	keys, err := h.vaultService.ListKeys(userID)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, dto.ListKeysResponse{Keys: keys})
}

// DeleteKey handles DELETE /keys/:key_uuid
func (h *KeyHandler) DeleteKey(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(401, "Unauthorized", "Authentication required"))
		return
	}

	keyID := c.Param("key_uuid")
	if keyID == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "Key id is required"))
		return
	}

	if err := h.vaultService.DeleteKey(userID, keyID); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "API key deleted successfully"})
}

func (h *KeyHandler) RegisterRoutes(r *gin.Engine) {
	keyGroup := r.Group("/keys")
	{
		keyGroup.POST("", h.StoreKey)
		keyGroup.GET("", h.RetrieveKey)
		keyGroup.DELETE("/:key_uuid", h.DeleteKey)
	}
}
