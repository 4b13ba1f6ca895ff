package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"mkt-merchant-api/internal/constant"
)

func TestHasAny(t *testing.T) {
	cases := []struct {
		name     string
		granted  []constant.Permission
		required []constant.Permission
		want     bool
	}{
		{
			name:     "intersection passes",
			granted:  []constant.Permission{constant.ReadOrder, constant.ReadProduct},
			required: []constant.Permission{constant.ReadProduct},
			want:     true,
		},
		{
			name:     "one of many required is enough",
			granted:  []constant.Permission{constant.UpdateOrder},
			required: []constant.Permission{constant.UpdateAdministrator, constant.UpdateOrder},
			want:     true,
		},
		{
			name:     "disjoint sets fail",
			granted:  []constant.Permission{constant.ReadOrder},
			required: []constant.Permission{constant.CreateChannel},
			want:     false,
		},
		{
			name:     "superadmin passes everything",
			granted:  []constant.Permission{constant.SuperAdmin},
			required: []constant.Permission{constant.DeleteChannel},
			want:     true,
		},
		{
			name:     "no grants fail",
			granted:  nil,
			required: []constant.Permission{constant.ReadOrder},
			want:     false,
		},
		{
			name:     "merchant grant set covers catalog reads",
			granted:  constant.MerchantPermissions,
			required: []constant.Permission{constant.ReadProduct},
			want:     true,
		},
		{
			name:     "merchant grant set cannot create channels",
			granted:  constant.MerchantPermissions,
			required: []constant.Permission{constant.CreateChannel},
			want:     false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HasAny(tc.granted, tc.required))
		})
	}
}

func TestAllowMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(granted []constant.Permission, required ...constant.Permission) *gin.Engine {
		r := gin.New()
		r.GET("/probe",
			func(c *gin.Context) {
				if granted != nil {
					c.Set(CtxPermissions, granted)
				}
			},
			Allow(required...),
			func(c *gin.Context) { c.JSON(200, gin.H{"code": constant.CodeSuccess}) },
		)
		return r
	}

	t.Run("granted caller passes through", func(t *testing.T) {
		r := newRouter([]constant.Permission{constant.ReadOrder}, constant.ReadOrder)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))
		assert.Equal(t, 200, w.Code)
	})

	t.Run("missing permission is rejected", func(t *testing.T) {
		r := newRouter([]constant.Permission{constant.ReadOrder}, constant.CreateChannel)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))
		assert.Equal(t, 403, w.Code)
	})

	t.Run("unauthenticated context is rejected", func(t *testing.T) {
		r := newRouter(nil, constant.ReadOrder)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))
		assert.Equal(t, 403, w.Code)
	})
}
