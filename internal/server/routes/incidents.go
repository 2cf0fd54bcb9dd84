package routes

import (
	"net/http"
	"time"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetIncidentsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	incidents, err := q.ListIncidents(ctx)
	if err != nil {
		return writeDBError(c, err, "No incidents found")
	}
	if incidents == nil {
		incidents = []pgdb.Incident{}
	}

	return c.JSON(http.StatusOK, incidents)
}

func PostIncidentHandler(c echo.Context) error {
	type postIncidentBody struct {
		Title        string  `json:"title" validate:"required"`
		Description  *string `json:"description"`
		IncidentType *string `json:"incident_type"`
		Location     *string `json:"location"`
		ThanaID      *int64  `json:"thana_id"`
		WarningLevel int32   `json:"warning_level" validate:"required,min=1,max=10"`
		OccurredAt   *string `json:"occurred_at"`
	}

	type postIncidentResponse struct {
		Message  string         `json:"message"`
		Incident *pgdb.Incident `json:"incident,omitempty"`
	}

	body := new(postIncidentBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postIncidentResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postIncidentResponse{Message: "Invalid request body"})
	}

	occurredAt := time.Now()
	if body.OccurredAt != nil && *body.OccurredAt != "" {
		parsed, err := time.Parse(time.RFC3339, *body.OccurredAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, postIncidentResponse{Message: "Invalid occurred_at, expected RFC 3339"})
		}
		occurredAt = parsed
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	// High warning levels fan out to alert subscribers through a
	// database trigger, so the insert alone is enough here.
	incident, err := q.CreateIncident(ctx, pgdb.CreateIncidentParams{
		Title:        body.Title,
		Description:  util.NullString(body.Description),
		IncidentType: util.NullString(body.IncidentType),
		Location:     util.NullString(body.Location),
		ThanaID:      util.NullInt64(body.ThanaID),
		WarningLevel: body.WarningLevel,
		OccurredAt:   occurredAt,
	})
	if err != nil {
		return writeDBError(c, err, "Incident not found")
	}

	publishAudit(c, "incident.created", "incident", incident.ID, incident)

	return c.JSON(http.StatusCreated, postIncidentResponse{
		Message:  "Incident recorded",
		Incident: &incident,
	})
}

func PostIncidentParticipantHandler(c echo.Context) error {
	type participantBody struct {
		ID         int64   `param:"id" validate:"required,numeric"`
		CriminalID int64   `json:"criminal_id" validate:"required,numeric"`
		Role       *string `json:"role"`
	}

	body := new(participantBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	if _, err := q.GetCriminalByID(ctx, body.CriminalID); err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	err := q.AddIncidentParticipant(ctx, pgdb.AddIncidentParticipantParams{
		IncidentID: body.ID,
		CriminalID: body.CriminalID,
		Role:       util.NullString(body.Role),
	})
	if err != nil {
		return writeDBError(c, err, "Incident not found")
	}

	publishAudit(c, "incident.participant_added", "incident", body.ID, map[string]int64{"criminal_id": body.CriminalID})

	return c.JSON(http.StatusOK, map[string]string{"message": "Participant added"})
}

func GetCriminalTimelineHandler(c echo.Context) error {
	type timelineParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(timelineParams)
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

	timeline, err := q.GetCriminalIncidentTimeline(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}
	if timeline == nil {
		timeline = []pgdb.CriminalIncidentTimelineRow{}
	}

	return c.JSON(http.StatusOK, timeline)
}
