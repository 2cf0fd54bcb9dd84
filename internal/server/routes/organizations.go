package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetOrganizationsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	organizations, err := q.ListOrganizations(ctx)
	if err != nil {
		return writeDBError(c, err, "No organizations found")
	}
	if organizations == nil {
		organizations = []pgdb.ListOrganizationsRow{}
	}

	return c.JSON(http.StatusOK, organizations)
}

func GetOrganizationHandler(c echo.Context) error {
	type getOrganizationParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	type getOrganizationResponse struct {
		Message      string                       `json:"message"`
		Organization *pgdb.Organization           `json:"organization,omitempty"`
		Members      []pgdb.OrganizationMemberRow `json:"members,omitempty"`
	}

	params := new(getOrganizationParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getOrganizationResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getOrganizationResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	organization, err := q.GetOrganizationByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Organization not found")
	}

	members, err := q.ListOrganizationMembers(ctx, organization.ID)
	if err != nil {
		return writeDBError(c, err, "Organization not found")
	}

	return c.JSON(http.StatusOK, getOrganizationResponse{
		Message:      "Organization found",
		Organization: &organization,
		Members:      members,
	})
}

func PostOrganizationHandler(c echo.Context) error {
	type postOrganizationBody struct {
		Name      string  `json:"name" validate:"required"`
		OrgType   *string `json:"org_type"`
		Territory *string `json:"territory"`
	}

	type postOrganizationResponse struct {
		Message      string             `json:"message"`
		Organization *pgdb.Organization `json:"organization,omitempty"`
	}

	body := new(postOrganizationBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postOrganizationResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postOrganizationResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	organization, err := q.CreateOrganization(ctx, pgdb.CreateOrganizationParams{
		Name:      body.Name,
		OrgType:   util.NullString(body.OrgType),
		Territory: util.NullString(body.Territory),
	})
	if err != nil {
		return writeDBError(c, err, "Organization not found")
	}

	publishAudit(c, "organization.created", "organization", organization.ID, organization)

	return c.JSON(http.StatusCreated, postOrganizationResponse{
		Message:      "Organization created",
		Organization: &organization,
	})
}

func PostOrganizationMemberHandler(c echo.Context) error {
	type postMemberBody struct {
		ID         int64   `param:"id" validate:"required,numeric"`
		CriminalID int64   `json:"criminal_id" validate:"required,numeric"`
		Role       *string `json:"role"`
	}

	body := new(postMemberBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	organization, err := q.GetOrganizationByID(ctx, body.ID)
	if err != nil {
		return writeDBError(c, err, "Organization not found")
	}
	if _, err := q.GetCriminalByID(ctx, body.CriminalID); err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	err = q.AddCriminalToOrganization(ctx, pgdb.AddCriminalToOrganizationParams{
		CriminalID:     body.CriminalID,
		OrganizationID: organization.ID,
		Role:           util.NullString(body.Role),
	})
	if err != nil {
		return writeDBError(c, err, "Organization not found")
	}

	publishAudit(c, "organization.member_added", "organization", organization.ID, map[string]int64{"criminal_id": body.CriminalID})

	return c.JSON(http.StatusOK, map[string]string{"message": "Member added"})
}
