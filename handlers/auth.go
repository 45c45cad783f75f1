package handlers

import (
	"errors"
	"volley/auth"
	"volley/utils"

	"github.com/gin-gonic/gin"
)

func (api *API) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"err": err.Error()})
		return
	}

	result, err := api.Auth.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			utils.LogError("Login failed: %v", err)
		}
		c.JSON(400, gin.H{"err": "invalid credentials"})
		return
	}

	c.JSON(200, result)
}

func (api *API) Logout(c *gin.Context) {
	// Tokens are discarded client-side; nothing to invalidate here.
	c.Status(200)
}
