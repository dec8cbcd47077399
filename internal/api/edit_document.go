package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
	"github.com/gotrs-io/lpa-frontend/internal/utils"
)

type EditDocumentClient interface {
	Case(ctx sirius.Context, id int) (sirius.Case, error)
	DraftDocuments(ctx sirius.Context, caseID int) ([]sirius.Document, error)
	Document(ctx sirius.Context, id int) (sirius.Document, error)
	EditDocument(ctx sirius.Context, id int, content string) (sirius.Document, error)
}

var documentSanitizer = utils.NewHTMLSanitizer()

// EditDocument shows a case's draft letters in the rich text editor and
// saves edits back to Sirius after sanitising them.
func EditDocument(client EditDocumentClient, renderer Renderer) Handler {
	return func(c *gin.Context) error {
		caseID, err := strconv.Atoi(c.Query("id"))
		if err != nil {
			return badRequestError{err: err}
		}

		caseType, err := sirius.ParseCaseType(c.Query("case"))
		if err != nil {
			return badRequestError{err: err}
		}

		ctx := getContext(c)

		var (
			lpa    sirius.Case
			drafts []sirius.Document
		)

		group, groupCtx := errgroup.WithContext(ctx.Context)
		group.Go(func() (err error) {
			lpa, err = client.Case(ctx.With(groupCtx), caseID)
			return err
		})
		group.Go(func() (err error) {
			drafts, err = client.DraftDocuments(ctx.With(groupCtx), caseID)
			return err
		})
		if err := group.Wait(); err != nil {
			return err
		}

		data := gin.H{
			"XSRFToken": ctx.XSRFToken,
			"Case":      lpa,
			"CaseType":  caseType,
			"Documents": drafts,
		}

		if c.Request.Method == http.MethodPost {
			documentID, err := postFormInt(c, "documentId")
			if err != nil {
				return badRequestError{err: err}
			}

			content := documentSanitizer.Sanitize(c.PostForm("documentTextEditor"))

			document, err := client.EditDocument(ctx, documentID, content)
			if ve, ok := sirius.IsValidationError(err); ok {
				data["Error"] = ve
				data["Document"] = sirius.Document{ID: documentID, Content: content}
				return renderer.HTML(c, http.StatusBadRequest, "edit-document.html", data)
			} else if err != nil {
				return err
			}

			if document.ID == 0 {
				document.ID = documentID
			}
			document.Content = utils.NormaliseDocument(document.Content)

			data["Document"] = document
			data["Success"] = true

			return renderer.HTML(c, http.StatusOK, "edit-document.html", data)
		}

		if len(drafts) > 0 {
			documentID := drafts[0].ID
			if selected, err := strconv.Atoi(c.Query("document")); err == nil {
				documentID = selected
			}

			document, err := client.Document(ctx, documentID)
			if err != nil {
				return err
			}
			document.Content = utils.NormaliseDocument(document.Content)
			data["Document"] = document
		}

		return renderer.HTML(c, http.StatusOK, "edit-document.html", data)
	}
}
