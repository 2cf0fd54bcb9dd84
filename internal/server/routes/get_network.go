package routes

import (
	"errors"
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"
	"github.com/black-vein/oracle/backend/pkg/graph"
	graphpgx "github.com/black-vein/oracle/backend/pkg/graph/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetNetworkMapHandler(c echo.Context) error {
	type networkParams struct {
		ID          int64 `param:"id" validate:"required,numeric"`
		Depth       *int  `query:"depth"`
		IncludeSelf bool  `query:"include_self"`
	}

	type networkResponse struct {
		Message string                `json:"message"`
		RootID  int64                 `json:"root_id,omitempty"`
		Depth   int                   `json:"depth,omitempty"`
		Network []graph.ReachableNode `json:"network"`
	}

	params := new(networkParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, networkResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, networkResponse{Message: "Invalid request params"})
	}

	depth := graph.DefaultMaxDepth
	if params.Depth != nil {
		depth = *params.Depth
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	if _, err := q.GetCriminalByID(ctx, params.ID); err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	network, err := graph.FindNetwork(ctx, graphpgx.NewSource(conn), params.ID, graph.Options{
		MaxDepth:         depth,
		IncludeSelfLoops: params.IncludeSelf,
	})
	if err != nil {
		if errors.Is(err, graph.ErrStoreUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, networkResponse{Message: "Relationship store unavailable"})
		}
		return writeDBError(c, err, "Criminal not found")
	}

	return c.JSON(http.StatusOK, networkResponse{
		Message: "Network mapped",
		RootID:  params.ID,
		Depth:   depth,
		Network: network,
	})
}
