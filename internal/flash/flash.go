// Package flash carries one-time user-facing notices across a redirect. A
// notice is written to a short-lived cookie and consumed by the next render.
package flash

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const cookieName = "hp_flash"

// Notice kinds map directly to the rendered alert styles.
const (
	KindSuccess = "success"
	KindWarning = "warning"
	KindDanger  = "danger"
	KindInfo    = "info"
)

type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Set queues a notice for the next rendered response.
func Set(c *gin.Context, kind, message string) {
	payload, err := json.Marshal(Notice{Kind: kind, Message: message})
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(payload)
	c.SetCookie(cookieName, encoded, 300, "/", "", false, true)
}

// Take returns the pending notice, if any, and clears it. A notice is
// delivered at most once.
func Take(c *gin.Context) *Notice {
	encoded, err := c.Cookie(cookieName)
	if err != nil || encoded == "" {
		return nil
	}

	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var notice Notice
	if err := json.Unmarshal(payload, &notice); err != nil {
		return nil
	}
	return &notice
}
