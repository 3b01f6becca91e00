// Package identity carries the operator authentication endpoints and the
// Bearer-token middleware protecting the API.
package identity

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/maze-engine/service"
	"github.com/beka-birhanu/maze-engine/service/i"
	"github.com/gin-gonic/gin"
)

// TokenRequest exchanges the operator key for a bearer token.
type TokenRequest struct {
	OperatorKey string `json:"operator_key" binding:"required"`
}

// TokenResponse carries the issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// KeyHashRequest asks for the storable hash of a new operator key.
type KeyHashRequest struct {
	Key string `json:"key" binding:"required"`
}

// KeyHashResponse carries the hash to place in the configuration.
type KeyHashResponse struct {
	Hash string `json:"hash"`
}

// IdentityController serves operator sign-in and key rotation.
type IdentityController struct {
	auth i.Authenticator
}

// NewIdentityController initializes an IdentityController.
func NewIdentityController(auth i.Authenticator) *IdentityController {
	return &IdentityController{auth: auth}
}

// RegisterPublic registers public routes.
func (ic *IdentityController) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/token", ic.token)
	}
}

// RegisterProtected registers protected routes.
func (ic *IdentityController) RegisterProtected(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/keyhash", ic.keyHash)
	}
}

// token handles operator sign-in.
func (ic *IdentityController) token(ctx *gin.Context) {
	var request TokenRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ic.auth.SignIn(request.OperatorKey)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid operator key"})
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// keyHash vets a candidate operator key and returns its hash for rotation.
func (ic *IdentityController) keyHash(ctx *gin.Context) {
	var request KeyHashRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := ic.auth.HashKey(request.Key)
	if err != nil {
		if errors.Is(err, service.ErrWeakOperatorKey) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while hashing key"})
		return
	}

	ctx.JSON(http.StatusOK, KeyHashResponse{Hash: hash})
}
