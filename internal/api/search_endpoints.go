package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
)

type SearchPostcodeClient interface {
	PostcodeLookup(ctx sirius.Context, postcode string) ([]sirius.PostcodeLookupAddress, error)
}

type SearchPersonsClient interface {
	SearchPersons(ctx sirius.Context, term string) ([]sirius.Person, error)
}

type SearchUsersClient interface {
	SearchUsers(ctx sirius.Context, term string) ([]sirius.User, error)
}

// SearchPostcode backs the address finder. Errors come back as problem JSON
// so the finder can show its inline message.
func SearchPostcode(client SearchPostcodeClient) Handler {
	return func(c *gin.Context) error {
		addresses, err := client.PostcodeLookup(getContext(c), c.Query("postcode"))
		if err != nil {
			return err
		}

		if addresses == nil {
			addresses = []sirius.PostcodeLookupAddress{}
		}

		c.JSON(http.StatusOK, addresses)
		return nil
	}
}

func SearchPersons(client SearchPersonsClient) Handler {
	return func(c *gin.Context) error {
		people, err := client.SearchPersons(getContext(c), c.Query("q"))
		if err != nil {
			return err
		}

		if people == nil {
			people = []sirius.Person{}
		}

		c.JSON(http.StatusOK, people)
		return nil
	}
}

func SearchUsers(client SearchUsersClient) Handler {
	return func(c *gin.Context) error {
		users, err := client.SearchUsers(getContext(c), c.Query("q"))
		if err != nil {
			return err
		}

		if users == nil {
			users = []sirius.User{}
		}

		c.JSON(http.StatusOK, users)
		return nil
	}
}
