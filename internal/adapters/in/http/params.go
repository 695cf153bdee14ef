package http

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func bindID(c echo.Context) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(id[:])
}

// bindOrderSearch reads the optional status and memberName query parameters.
func bindOrderSearch(c echo.Context) (ports.OrderSearch, error) {
	params := c.QueryParams()

	var status *string
	if err := runtime.BindQueryParameter("form", true, false, "status", params, &status); err != nil {
		return ports.OrderSearch{}, err
	}
	var memberName *string
	if err := runtime.BindQueryParameter("form", true, false, "memberName", params, &memberName); err != nil {
		return ports.OrderSearch{}, err
	}

	var statusFilter *order.Status
	if status != nil {
		s, err := order.ParseStatus(*status)
		if err != nil {
			return ports.OrderSearch{}, err
		}
		statusFilter = &s
	}

	name := ""
	if memberName != nil {
		name = *memberName
	}

	return ports.NewOrderSearch(name, statusFilter)
}

// bindPage reads offset and limit. It returns nil when neither is given and
// defaultPage is false; missing values fall back to 0 and ports.DefaultPageLimit.
func bindPage(c echo.Context, defaultPage bool) (*ports.Page, error) {
	params := c.QueryParams()

	var offset, limit *int
	if err := runtime.BindQueryParameter("form", true, false, "offset", params, &offset); err != nil {
		return nil, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", params, &limit); err != nil {
		return nil, err
	}

	if offset == nil && limit == nil && !defaultPage {
		return nil, nil //nolint:nilnil // no page requested
	}

	page := ports.DefaultPage()
	if offset != nil {
		page.Offset = *offset
	}
	if limit != nil {
		page.Limit = *limit
	}

	p, err := ports.NewPage(page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
