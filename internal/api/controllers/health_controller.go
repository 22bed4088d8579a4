package controllers

import (
	"github.com/gin-gonic/gin"

	"bundlepay/internal/infra"
	"bundlepay/pkg/utils"
)

type HealthController struct {
	cfg *infra.Config
}

func NewHealthController(cfg *infra.Config) *HealthController {
	return &HealthController{cfg: cfg}
}

// Test reports liveness plus which env credential groups loaded, values
// never included.
func (hc *HealthController) Test(c *gin.Context) {
	utils.RespondOK(c, gin.H{"env": hc.cfg.EnvFlags()}, "bundlepay relay is up")
}
