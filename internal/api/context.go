package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

// getContext carries the caller's Sirius session. GET requests read the
// XSRF token from its cookie; forms post it back as xsrfToken.
func getContext(c *gin.Context) sirius.Context {
	token := ""

	if c.Request.Method == http.MethodGet {
		if cookie, err := c.Request.Cookie("XSRF-TOKEN"); err == nil {
			token, _ = url.QueryUnescape(cookie.Value)
		}
	} else {
		token = c.PostForm("xsrfToken")
	}

	return sirius.Context{
		Context:   c.Request.Context(),
		Cookies:   c.Request.Cookies(),
		XSRFToken: token,
	}
}

func postFormString(c *gin.Context, name string) string {
	return strings.TrimSpace(c.PostForm(name))
}

func postFormInt(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(postFormString(c, name))
}

func postFormCheckboxChecked(c *gin.Context, name, value string) bool {
	for _, v := range c.PostFormArray(name) {
		if v == value {
			return true
		}
	}
	return false
}

func postFormDateString(c *gin.Context, name string) sirius.DateString {
	return sirius.DateString(postFormString(c, name))
}

// queryInt parses a required integer query parameter.
func queryInt(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0, badRequestError{err: err}
	}
	return v, nil
}

func sliceAtoi(values []string) ([]int, error) {
	ints := make([]int, 0, len(values))
	for _, v := range values {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		ints = append(ints, i)
	}
	return ints, nil
}

func removeDuplicateStr(values []string) []string {
	seen := map[string]bool{}
	var list []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			list = append(list, v)
		}
	}
	return list
}
