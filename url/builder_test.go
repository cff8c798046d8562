package url_test

import (
	"fmt"
	"testing"

	"github.com/ONSdigital/dp-sdmx-api/url"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	sdmxAPIURL = "http://localhost:28300"
	messageID  = "5e7a2f4c"
)

func TestBuilder(t *testing.T) {
	Convey("Given a URL builder", t, func() {
		urlBuilder := url.NewBuilder(sdmxAPIURL)

		Convey("When BuildMessageURL is called", func() {
			url := urlBuilder.BuildMessageURL(messageID)

			Convey("Then the expected URL is returned", func() {
				So(url, ShouldEqual, fmt.Sprintf("%s/messages/%s", sdmxAPIURL, messageID))
			})
		})

		Convey("When BuildMessageProjectionURL is called", func() {
			url := urlBuilder.BuildMessageProjectionURL(messageID, "dimensions")

			Convey("Then the expected URL is returned", func() {
				So(url, ShouldEqual, fmt.Sprintf("%s/messages/%s/dimensions", sdmxAPIURL, messageID))
			})
		})

		Convey("When BuildDataSetObservationsURL is called with a format", func() {
			url := urlBuilder.BuildDataSetObservationsURL(messageID, 2, "csv")

			Convey("Then the format is a query parameter", func() {
				So(url, ShouldEqual, fmt.Sprintf("%s/messages/%s/datasets/2/observations?format=csv", sdmxAPIURL, messageID))
			})
		})

		Convey("Then BuildMessagesURL returns the collection URL", func() {
			So(urlBuilder.BuildMessagesURL(), ShouldEqual, sdmxAPIURL+"/messages")
		})
	})

	Convey("Given a URL with a trailing slash", t, func() {
		urlBuilder := url.NewBuilder(sdmxAPIURL + "/")

		Convey("Then it is trimmed", func() {
			So(urlBuilder.GetSdmxAPIURL(), ShouldEqual, sdmxAPIURL)
			So(urlBuilder.BuildMessageURL(messageID), ShouldEqual, sdmxAPIURL+"/messages/"+messageID)
		})
	})
}
