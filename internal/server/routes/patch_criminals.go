package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func PatchCriminalHandler(c echo.Context) error {
	type patchCriminalBody struct {
		ID        int64   `param:"id" validate:"required,numeric"`
		Name      string  `json:"name" validate:"required"`
		Alias     *string `json:"alias"`
		Address   *string `json:"address"`
		RiskLevel int32   `json:"risk_level" validate:"min=0,max=10"`
		Status    string  `json:"status" validate:"required,oneof=wanted in_custody on_bail released escaped unknown"`
		ThanaID   *int64  `json:"thana_id"`
	}

	type patchCriminalResponse struct {
		Message  string         `json:"message"`
		Criminal *pgdb.Criminal `json:"criminal,omitempty"`
	}

	body := new(patchCriminalBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchCriminalResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchCriminalResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	criminal, err := q.UpdateCriminal(ctx, pgdb.UpdateCriminalParams{
		ID:        body.ID,
		Name:      body.Name,
		Alias:     util.NullString(body.Alias),
		Address:   util.NullString(body.Address),
		RiskLevel: body.RiskLevel,
		Status:    body.Status,
		ThanaID:   util.NullInt64(body.ThanaID),
	})
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	publishAudit(c, "criminal.updated", "criminal", criminal.ID, criminal)

	return c.JSON(http.StatusOK, patchCriminalResponse{
		Message:  "Criminal updated",
		Criminal: &criminal,
	})
}
