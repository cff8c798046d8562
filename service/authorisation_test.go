package service

import (
	"context"
	"testing"

	"github.com/ONSdigital/dp-authorisation/auth"
	"github.com/ONSdigital/dp-sdmx-api/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGetAuthorisationHandler(t *testing.T) {
	Convey("Given permissions auth is disabled", t, func() {
		cfg := &config.Configuration{EnablePermissionsAuth: false}

		Convey("Then a nop handler is returned", func() {
			_, ok := getAuthorisationHandler(context.Background(), cfg).(*auth.NopHandler)
			So(ok, ShouldBeTrue)
		})
	})

	Convey("Given permissions auth is enabled", t, func() {
		cfg := &config.Configuration{EnablePermissionsAuth: true, ZebedeeURL: "http://localhost:8082"}

		Convey("Then a permissions checking handler is returned", func() {
			_, ok := getAuthorisationHandler(context.Background(), cfg).(*auth.Handler)
			So(ok, ShouldBeTrue)
		})
	})
}
