package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash-lpa-frontend"

// FlashNotification is a one-shot banner shown on the next page.
type FlashNotification struct {
	Title       string `json:"name"`
	Description string `json:"description,omitempty"`
}

type flashStore struct {
	secure bool
}

func (f *flashStore) Set(c *gin.Context, notification FlashNotification) {
	str, err := json.Marshal(&notification)
	if err != nil {
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(str),
		HttpOnly: true,
		Path:     "/",
		Secure:   f.secure,
	})
}

// Get returns and clears the pending notification. A missing cookie is not
// an error.
func (f *flashStore) Get(c *gin.Context) (FlashNotification, error) {
	cookie, err := c.Request.Cookie(flashCookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return FlashNotification{}, nil
	}
	if err != nil {
		return FlashNotification{}, err
	}

	str, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return FlashNotification{}, err
	}

	var v FlashNotification
	if err := json.Unmarshal(str, &v); err != nil {
		return FlashNotification{}, err
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
		Secure:   f.secure,
	})

	return v, nil
}
