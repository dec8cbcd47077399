package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gotrs-io/lpa-frontend/internal/sirius"
	"github.com/gotrs-io/lpa-frontend/internal/telemetry"
)

type DonorClient interface {
	CreatePerson(ctx sirius.Context, person sirius.Person) (sirius.Person, error)
	EditPerson(ctx sirius.Context, id int, person sirius.Person) error
	Person(ctx sirius.Context, id int) (sirius.Person, error)
}

func donorFromForm(c *gin.Context) sirius.Person {
	return sirius.Person{
		Salutation:            postFormString(c, "salutation"),
		Firstname:             postFormString(c, "firstname"),
		Middlenames:           postFormString(c, "middlenames"),
		Surname:               postFormString(c, "surname"),
		DateOfBirth:           postFormDateString(c, "dob"),
		PreviouslyKnownAs:     postFormString(c, "previousNames"),
		AlsoKnownAs:           postFormString(c, "otherNames"),
		AddressLine1:          postFormString(c, "addressLine1"),
		AddressLine2:          postFormString(c, "addressLine2"),
		AddressLine3:          postFormString(c, "addressLine3"),
		Town:                  postFormString(c, "town"),
		County:                postFormString(c, "county"),
		Postcode:              postFormString(c, "postcode"),
		Country:               postFormString(c, "country"),
		IsAirmailRequired:     postFormString(c, "isAirmailRequired") == "Yes",
		PhoneNumber:           postFormString(c, "phoneNumber"),
		Email:                 postFormString(c, "email"),
		CorrespondenceByPost:  postFormCheckboxChecked(c, "correspondenceBy", "post"),
		CorrespondenceByEmail: postFormCheckboxChecked(c, "correspondenceBy", "email"),
		CorrespondenceByPhone: postFormCheckboxChecked(c, "correspondenceBy", "phone"),
		CorrespondenceByWelsh: postFormCheckboxChecked(c, "correspondenceBy", "welsh"),
		ResearchOptOut:        postFormString(c, "researchOptOut") == "Yes",
		PersonType:            string(sirius.PersonTypeDonor),
	}
}

func CreateDonor(client DonorClient, renderer Renderer) Handler {
	return func(c *gin.Context) error {
		ctx := getContext(c)

		data := gin.H{
			"XSRFToken": ctx.XSRFToken,
			"IsNew":     true,
			"Donor":     sirius.Person{},
		}

		if c.Request.Method != http.MethodPost {
			return renderer.HTML(c, http.StatusOK, "donor.html", data)
		}

		donor := donorFromForm(c)
		created, err := client.CreatePerson(ctx, donor)
		if ve, ok := sirius.IsValidationError(err); ok {
			data["Error"] = ve
			data["Donor"] = donor
			return renderer.HTML(c, http.StatusBadRequest, "donor.html", data)
		} else if err != nil {
			return err
		}

		telemetry.LoggerFrom(c).Info("donor created", "id", created.ID, "uid", created.UID)

		data["Success"] = true
		data["Donor"] = created
		return renderer.HTML(c, http.StatusOK, "donor.html", data)
	}
}

func EditDonor(client DonorClient, renderer Renderer) Handler {
	return func(c *gin.Context) error {
		id, err := strconv.Atoi(c.Query("id"))
		if err != nil {
			return badRequestError{err: err}
		}

		ctx := getContext(c)
		data := gin.H{"XSRFToken": ctx.XSRFToken}

		if c.Request.Method != http.MethodPost {
			donor, err := client.Person(ctx, id)
			if err != nil {
				return err
			}
			data["Donor"] = donor
			return renderer.HTML(c, http.StatusOK, "donor.html", data)
		}

		donor := donorFromForm(c)
		donor.ID = id

		err = client.EditPerson(ctx, id, donor)
		if ve, ok := sirius.IsValidationError(err); ok {
			data["Error"] = ve
			data["Donor"] = donor
			return renderer.HTML(c, http.StatusBadRequest, "donor.html", data)
		} else if err != nil {
			return err
		}

		data["Success"] = true
		data["Donor"] = donor
		return renderer.HTML(c, http.StatusOK, "donor.html", data)
	}
}
