package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/storage"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func PostCriminalHandler(c echo.Context) error {
	type postCriminalBody struct {
		Name        string  `json:"name" validate:"required"`
		Alias       *string `json:"alias"`
		Nid         *string `json:"nid"`
		DateOfBirth *string `json:"date_of_birth"`
		Gender      *string `json:"gender"`
		Address     *string `json:"address"`
		RiskLevel   int32   `json:"risk_level" validate:"min=0,max=10"`
		Status      string  `json:"status" validate:"required,oneof=wanted in_custody on_bail released escaped unknown"`
		ThanaID     *int64  `json:"thana_id"`
	}

	type postCriminalResponse struct {
		Message  string         `json:"message"`
		Criminal *pgdb.Criminal `json:"criminal,omitempty"`
	}

	body := new(postCriminalBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postCriminalResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postCriminalResponse{Message: "Invalid request body"})
	}

	var dob *time.Time
	if body.DateOfBirth != nil && *body.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", *body.DateOfBirth)
		if err != nil {
			return c.JSON(http.StatusBadRequest, postCriminalResponse{Message: "Invalid date_of_birth, expected YYYY-MM-DD"})
		}
		dob = &parsed
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	criminal, err := q.CreateCriminal(ctx, pgdb.CreateCriminalParams{
		Name:        body.Name,
		Alias:       util.NullString(body.Alias),
		Nid:         util.NullString(body.Nid),
		DateOfBirth: util.NullTime(dob),
		Gender:      util.NullString(body.Gender),
		Address:     util.NullString(body.Address),
		RiskLevel:   body.RiskLevel,
		Status:      body.Status,
		ThanaID:     util.NullInt64(body.ThanaID),
	})
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	publishAudit(c, "criminal.created", "criminal", criminal.ID, criminal)

	return c.JSON(http.StatusCreated, postCriminalResponse{
		Message:  "Criminal created",
		Criminal: &criminal,
	})
}

func PostCriminalPhotoHandler(c echo.Context) error {
	type photoParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	type photoResponse struct {
		Message  string `json:"message"`
		PhotoKey string `json:"photo_key,omitempty"`
	}

	params := new(photoParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, photoResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, photoResponse{Message: "Invalid request params"})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, photoResponse{Message: "Missing photo file"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := pgdb.New(app.DBConn)

	criminal, err := q.GetCriminalByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, photoResponse{Message: "Could not read photo file"})
	}
	defer file.Close()

	key, err := storage.PutFile(ctx, app.S3, "criminals", fileHeader.Filename, fmt.Sprintf("%d", criminal.ID), file)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, photoResponse{Message: "Failed to store photo"})
	}

	err = q.UpdateCriminalPhotoKey(ctx, pgdb.UpdateCriminalPhotoKeyParams{
		ID:       criminal.ID,
		PhotoKey: util.NullString(&key),
	})
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	publishAudit(c, "criminal.photo_uploaded", "criminal", criminal.ID, map[string]string{"photo_key": key})

	return c.JSON(http.StatusOK, photoResponse{
		Message:  "Photo uploaded",
		PhotoKey: key,
	})
}

func GetCriminalPhotoLinkHandler(c echo.Context) error {
	type photoLinkParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	type photoLinkResponse struct {
		Message string `json:"message"`
		URL     string `json:"url,omitempty"`
	}

	params := new(photoLinkParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, photoLinkResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, photoLinkResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := pgdb.New(app.DBConn)

	criminal, err := q.GetCriminalByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}
	if !criminal.PhotoKey.Valid {
		return c.JSON(http.StatusNotFound, photoLinkResponse{Message: "Criminal has no photo"})
	}

	url, err := storage.GenerateDownloadLink(ctx, app.S3, criminal.PhotoKey.String)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, photoLinkResponse{Message: "Failed to generate download link"})
	}

	return c.JSON(http.StatusOK, photoLinkResponse{
		Message: "Download link generated",
		URL:     url,
	})
}
