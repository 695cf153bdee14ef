package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindPage(t *testing.T) {
	testCases := []struct {
		name        string
		target      string
		defaultPage bool
		want        *ports.Page
		wantErr     error
	}{
		{"no params", "/orders", false, nil, nil},
		{"no params with default", "/orders", true, &ports.Page{Offset: 0, Limit: 100}, nil},
		{"offset only", "/orders?offset=5", false, &ports.Page{Offset: 5, Limit: 100}, nil},
		{"both", "/orders?offset=1&limit=1", false, &ports.Page{Offset: 1, Limit: 1}, nil},
		{"limit too large", "/orders?limit=1001", false, nil, errs.ErrValueIsOutOfRange},
		{"negative offset", "/orders?offset=-1", false, nil, errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := bindPage(newContext(tc.target), tc.defaultPage)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, page)
		})
	}
}

func TestBindPage_NotANumber(t *testing.T) {
	_, err := bindPage(newContext("/orders?limit=ten"), false)

	assert.Error(t, err)
}

func TestBindOrderSearch(t *testing.T) {
	search, err := bindOrderSearch(newContext("/orders?status=CANCELED&memberName=user"))

	require.NoError(t, err)
	assert.Equal(t, "user", search.MemberName)
	status, ok := search.Status()
	require.True(t, ok)
	assert.Equal(t, order.Canceled, status)
}

func TestBindOrderSearch_Empty(t *testing.T) {
	search, err := bindOrderSearch(newContext("/orders"))

	require.NoError(t, err)
	assert.Empty(t, search.MemberName)
	_, ok := search.Status()
	assert.False(t, ok)
}

func TestBindOrderSearch_UnknownStatus(t *testing.T) {
	_, err := bindOrderSearch(newContext("/orders?status=SHIPPED"))

	assert.Error(t, err)
}

func TestBindID(t *testing.T) {
	c := newContext("/api/orders/x/cancel")
	c.SetParamNames("id")

	c.SetParamValues("9b2d5c1e-4f0a-4d8e-a7b3-2c1f0e9d8a76")
	id, err := bindID(c)
	require.NoError(t, err)
	assert.Equal(t, "9b2d5c1e-4f0a-4d8e-a7b3-2c1f0e9d8a76", id.String())

	c.SetParamValues("not-a-uuid")
	_, err = bindID(c)
	assert.Error(t, err)

	c.SetParamValues("00000000-0000-0000-0000-000000000000")
	_, err = bindID(c)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
