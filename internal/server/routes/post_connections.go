package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func PostConnectionHandler(c echo.Context) error {
	type postConnectionBody struct {
		SourceID     int64  `json:"source_id" validate:"required,numeric"`
		TargetID     int64  `json:"target_id" validate:"required,numeric"`
		RelationType string `json:"relation_type" validate:"required"`
		Strength     int32  `json:"strength" validate:"required,min=1,max=10"`
	}

	type postConnectionResponse struct {
		Message      string             `json:"message"`
		Relationship *pgdb.Relationship `json:"relationship,omitempty"`
	}

	body := new(postConnectionBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postConnectionResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postConnectionResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	if _, err := q.GetCriminalByID(ctx, body.SourceID); err != nil {
		return writeDBError(c, err, "Source criminal not found")
	}
	if _, err := q.GetCriminalByID(ctx, body.TargetID); err != nil {
		return writeDBError(c, err, "Target criminal not found")
	}

	relationship, err := q.UpsertRelationship(ctx, pgdb.UpsertRelationshipParams{
		SourceID:     body.SourceID,
		TargetID:     body.TargetID,
		RelationType: body.RelationType,
		Strength:     body.Strength,
	})
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	publishAudit(c, "connection.upserted", "relationship", relationship.ID, relationship)

	return c.JSON(http.StatusCreated, postConnectionResponse{
		Message:      "Connection recorded",
		Relationship: &relationship,
	})
}

func GetConnectionsHandler(c echo.Context) error {
	type getConnectionsParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getConnectionsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	if _, err := q.GetCriminalByID(ctx, params.ID); err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	connections, err := q.GetCriminalRelationships(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}
	if connections == nil {
		connections = []pgdb.CriminalRelationshipRow{}
	}

	return c.JSON(http.StatusOK, connections)
}
