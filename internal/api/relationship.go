package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
	"github.com/gotrs-io/lpa-frontend/internal/telemetry"
)

type RelationshipClient interface {
	CreatePersonReference(ctx sirius.Context, personID int, referencedUID, reason string) error
	Person(ctx sirius.Context, id int) (sirius.Person, error)
}

// parsePersonChoice reads the "{uid}:{name}" value posted by the person
// autocomplete.
func parsePersonChoice(value string) (string, string) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

// Relationship links a person to another found through the person search.
func Relationship(client RelationshipClient, renderer Renderer) Handler {
	return func(c *gin.Context) error {
		personID, err := strconv.Atoi(c.Query("id"))
		if err != nil {
			return badRequestError{err: err}
		}

		ctx := getContext(c)

		person, err := client.Person(ctx, personID)
		if err != nil {
			return err
		}

		data := gin.H{
			"XSRFToken": ctx.XSRFToken,
			"PersonID":  personID,
			"Entity":    person.Summary(),
		}

		if c.Request.Method != http.MethodPost {
			return renderer.HTML(c, http.StatusOK, "relationship.html", data)
		}

		searchUID, searchName := parsePersonChoice(postFormString(c, "search"))
		reason := postFormString(c, "reason")
		data["SearchUID"] = searchUID
		data["SearchName"] = searchName
		data["Reason"] = reason

		err = client.CreatePersonReference(ctx, personID, searchUID, reason)
		if ve, ok := sirius.IsValidationError(err); ok {
			if errs, ok := ve.Field["referencedUid"]; ok {
				ve.Field["search"] = errs
				delete(ve.Field, "referencedUid")
			}
			data["Error"] = ve
			return renderer.HTML(c, http.StatusBadRequest, "relationship.html", data)
		} else if err != nil {
			return err
		}

		telemetry.LoggerFrom(c).Info("person reference created", "person", personID, "referenced", searchUID)

		data["Success"] = true
		return renderer.HTML(c, http.StatusOK, "relationship.html", data)
	}
}
