package webhook

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github-task-bridge/internal/model"
	"github-task-bridge/internal/translator"
	pkgResponse "github-task-bridge/pkg/response"
)

// HandleGitHubWebhook processes one GitHub delivery for the project named in
// the URL. Translation is synchronous: the provider gets "parsed" when an
// internal event was emitted, "ignored" for any no-op, both with HTTP 200.
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil || projectID <= 0 {
		pkgResponse.Error(c, errInvalidProjectID, nil)
		return
	}

	if err := h.security.ValidateToken(c.Param("token")); err != nil {
		h.l.Warnf(ctx, "webhook: token verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if err := h.security.CheckRateLimit("github"); err != nil {
		h.l.Warnf(ctx, "webhook: rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if h.security.SignatureRequired() {
		signature := c.GetHeader("X-Hub-Signature-256")
		if err := h.security.ValidateSignature(body, signature); err != nil {
			h.l.Warnf(ctx, "webhook: signature verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}

	eventType := c.GetHeader("X-GitHub-Event")

	out, err := h.translatorUC.Translate(ctx, model.Scope{UserID: "system_webhook"}, translator.TranslateInput{
		ProjectID: projectID,
		Event:     eventType,
		Payload:   body,
	})
	if err != nil {
		// Adapter fault: the provider should redeliver.
		h.l.Errorf(ctx, "webhook: translation failed for %s: %v", eventType, err)
		pkgResponse.InternalError(c, err)
		return
	}

	if out.Handled {
		h.l.Infof(ctx, "webhook: parsed %s for project %d (%d events)", eventType, projectID, out.Emitted)
		pkgResponse.OK(c, gin.H{"status": "parsed", "events": out.Emitted})
		return
	}

	h.l.Infof(ctx, "webhook: ignored %s for project %d", eventType, projectID)
	pkgResponse.OK(c, gin.H{"status": "ignored"})
}
