package webhook

import (
	"github-task-bridge/internal/translator"
	pkgLog "github-task-bridge/pkg/log"
)

type Handler struct {
	translatorUC translator.UseCase
	security     *SecurityValidator
	l            pkgLog.Logger
}

func NewHandler(
	translatorUC translator.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		translatorUC: translatorUC,
		security:     NewSecurityValidator(securityConfig),
		l:            l,
	}
}
