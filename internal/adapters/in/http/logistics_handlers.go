package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
)

// NewPackage is the request body for creating a box or a container.
type NewPackage struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateBox handles POST /api/v1/boxes.
func (s *Server) CreateBox(ctx echo.Context) error {
	var body NewPackage
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	boxID, err := kernel.NewID(body.ID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateBoxCommand(boxID, body.Name)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateBox.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// OrderAssignment is the request body for packing an order into a box.
type OrderAssignment struct {
	OrderID int64 `json:"orderId"`
}

// AssignOrderToBox handles POST /api/v1/boxes/:id/orders.
func (s *Server) AssignOrderToBox(ctx echo.Context) error {
	boxID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var body OrderAssignment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.NewID(body.OrderID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAssignOrderToBoxCommand(orderID, boxID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignOrderFromBox handles DELETE /api/v1/boxes/:id/orders/:orderId.
func (s *Server) UnassignOrderFromBox(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUnassignOrderFromBoxCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.UnassignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendBoxDirectly handles POST /api/v1/boxes/:id/send.
func (s *Server) SendBoxDirectly(ctx echo.Context) error {
	boxID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewSendBoxDirectlyCommand(boxID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.SendBox.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnpackBox handles POST /api/v1/boxes/:id/unpack.
func (s *Server) UnpackBox(ctx echo.Context) error {
	boxID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUnpackBoxCommand(boxID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.UnpackBox.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteBox handles DELETE /api/v1/boxes/:id.
func (s *Server) DeleteBox(ctx echo.Context) error {
	boxID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteBoxCommand(boxID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteBox.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BoxContent is one order inside a box.
type BoxContent struct {
	ID          int64  `json:"id"`
	ClientRef   string `json:"clientRef"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Status      int    `json:"status"`
	FreightMode string `json:"freightMode"`
	WeightKg    string `json:"weightKg"`
	VolumeM3    string `json:"volumeM3"`
}

// GetBoxContents handles GET /api/v1/boxes/:id/orders.
func (s *Server) GetBoxContents(ctx echo.Context) error {
	boxID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetBoxContentsQuery(boxID.Int64())
	if err != nil {
		return fail(ctx, err)
	}

	rows, err := s.handlers.BoxContents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]BoxContent, 0, len(rows))
	for _, row := range rows {
		response = append(response, BoxContent{
			ID:          row.ID.Int64(),
			ClientRef:   row.ClientRef,
			Description: row.Description,
			Quantity:    row.Quantity,
			Status:      row.Status,
			FreightMode: row.FreightMode,
			WeightKg:    row.WeightKg,
			VolumeM3:    row.VolumeM3,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateContainer handles POST /api/v1/containers.
func (s *Server) CreateContainer(ctx echo.Context) error {
	var body NewPackage
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	containerID, err := kernel.NewID(body.ID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateContainerCommand(containerID, body.Name)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateContainer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// BoxAssignment is the request body for consolidating a box into a container.
type BoxAssignment struct {
	BoxID int64 `json:"boxId"`
}

// AssignBoxToContainer handles POST /api/v1/containers/:id/boxes.
func (s *Server) AssignBoxToContainer(ctx echo.Context) error {
	containerID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var body BoxAssignment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	boxID, err := kernel.NewID(body.BoxID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAssignBoxToContainerCommand(boxID, containerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.AssignBox.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Shipment is the request body for sending a container. Tracking metadata is
// optional at send time; missing fields come back as warnings.
type Shipment struct {
	TrackingNumber string     `json:"trackingNumber"`
	Carrier        string     `json:"carrier"`
	TrackingLink   string     `json:"trackingLink"`
	ETA            *time.Time `json:"eta"`
}

// ShipmentResult reports the warnings raised while sending.
type ShipmentResult struct {
	Warnings []string `json:"warnings"`
}

// SendContainer handles POST /api/v1/containers/:id/send.
func (s *Server) SendContainer(ctx echo.Context) error {
	containerID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var body Shipment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSendContainerCommand(containerID,
		body.TrackingNumber, body.Carrier, body.TrackingLink, body.ETA)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	warnings, err := s.handlers.SendContainer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	result := ShipmentResult{Warnings: make([]string, 0, len(warnings))}
	for _, warning := range warnings {
		result.Warnings = append(result.Warnings, warning.String())
	}

	return ctx.JSON(http.StatusOK, result)
}

// DeleteContainer handles DELETE /api/v1/containers/:id.
func (s *Server) DeleteContainer(ctx echo.Context) error {
	containerID, err := pathID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteContainerCommand(containerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteContainer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShippedContainer is one row of the tracking dashboard.
type ShippedContainer struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	TrackingNumber string     `json:"trackingNumber"`
	Carrier        string     `json:"carrier"`
	TrackingLink   string     `json:"trackingLink"`
	ETA            *time.Time `json:"eta,omitempty"`
	ShippedAt      *time.Time `json:"shippedAt,omitempty"`
	Boxes          int        `json:"boxes"`
	Orders         int        `json:"orders"`
}

// GetShippedContainers handles GET /api/v1/containers/shipped.
func (s *Server) GetShippedContainers(ctx echo.Context) error {
	rows, err := s.handlers.ShippedContainers.Handle(ctx.Request().Context(), queries.NewGetShippedContainersQuery())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]ShippedContainer, 0, len(rows))
	for _, row := range rows {
		response = append(response, ShippedContainer{
			ID:             row.ID.Int64(),
			Name:           row.Name,
			TrackingNumber: row.TrackingNumber,
			Carrier:        row.Carrier,
			TrackingLink:   row.TrackingLink,
			ETA:            row.ETA,
			ShippedAt:      row.ShippedAt,
			Boxes:          row.Boxes,
			Orders:         row.Orders,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
