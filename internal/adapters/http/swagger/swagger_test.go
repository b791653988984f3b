package swagger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSwaggerRoutes(t *testing.T) {
	Convey("Given registered documentation routes", t, func() {
		mux := http.NewServeMux()
		Register(context.Background(), mux)

		Convey("When the OpenAPI document is requested", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

			Convey("Then the embedded YAML is served", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldContainSubstring, "yaml")
				So(rec.Body.String(), ShouldContainSubstring, "TalentScan API")
			})
		})

		Convey("When the docs page is requested", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-docs", nil))

			Convey("Then the ReDoc shell is served", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, "redoc")
			})
		})
	})
}
