package sdk

import (
	"errors"
	"net/http"
	"sort"
	"sync"
	"testing"

	"github.com/ONSdigital/dp-sdmx-api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestProcessInConcurrentBatches(t *testing.T) {
	Convey("Given 7 items fetched in batches of 2", t, func() {
		items := []int{0, 1, 2, 3, 4, 5, 6}
		var mu sync.Mutex
		var offsets []int

		getBatch := func(offset int) (interface{}, int, error) {
			mu.Lock()
			offsets = append(offsets, offset)
			mu.Unlock()
			end := offset + 2
			if end > len(items) {
				end = len(items)
			}
			return items[offset:end], len(items), nil
		}

		Convey("When every batch is processed", func() {
			var processed []int
			err := ProcessInConcurrentBatches(getBatch, func(b interface{}) (bool, error) {
				processed = append(processed, b.([]int)...)
				return false, nil
			}, 2, 3)

			Convey("Then all the items are processed once", func() {
				So(err, ShouldBeNil)
				sort.Ints(processed)
				So(processed, ShouldResemble, items)
				sort.Ints(offsets)
				So(offsets, ShouldResemble, []int{0, 2, 4, 6})
			})
		})

		Convey("When the first batch asks to abort", func() {
			err := ProcessInConcurrentBatches(getBatch, func(b interface{}) (bool, error) {
				return true, nil
			}, 2, 3)

			Convey("Then no further batch is fetched", func() {
				So(err, ShouldBeNil)
				So(offsets, ShouldResemble, []int{0})
			})
		})

		Convey("When a later batch fails", func() {
			errProcess := errors.New("process failed")
			err := ProcessInConcurrentBatches(getBatch, func(b interface{}) (bool, error) {
				if b.([]int)[0] == 4 {
					return false, errProcess
				}
				return false, nil
			}, 2, 1)

			Convey("Then the error is returned", func() {
				So(err, ShouldEqual, errProcess)
			})
		})
	})

	Convey("Given an empty collection", t, func() {
		calls := 0
		getBatch := func(offset int) (interface{}, int, error) {
			calls++
			return []int{}, 0, nil
		}

		Convey("Then only the first batch is fetched", func() {
			err := ProcessInConcurrentBatches(getBatch, func(b interface{}) (bool, error) { return false, nil }, 10, 2)
			So(err, ShouldBeNil)
			So(calls, ShouldEqual, 1)
		})
	})

	Convey("Given invalid parameters", t, func() {
		getBatch := func(offset int) (interface{}, int, error) { return nil, 0, nil }
		processBatch := func(b interface{}) (bool, error) { return false, nil }

		So(ProcessInConcurrentBatches(nil, processBatch, 1, 1), ShouldNotBeNil)
		So(ProcessInConcurrentBatches(getBatch, nil, 1, 1), ShouldNotBeNil)
		So(ProcessInConcurrentBatches(getBatch, processBatch, 0, 1), ShouldNotBeNil)
		So(ProcessInConcurrentBatches(getBatch, processBatch, 1, 0), ShouldNotBeNil)
	})
}

func TestGetMessagesInBatches(t *testing.T) {
	Convey("Given the API holds 3 messages served in pages of 2", t, func() {
		m1, m2, m3 := &models.Message{ID: "1"}, &models.Message{ID: "2"}, &models.Message{ID: "3"}
		httpClient := createHTTPClientMock(
			MockedHTTPResponse{StatusCode: http.StatusOK, Body: MessageList{Items: []*models.Message{m1, m2}, Count: 2, Limit: 2, TotalCount: 3}},
			MockedHTTPResponse{StatusCode: http.StatusOK, Body: MessageList{Items: []*models.Message{m3}, Count: 1, Offset: 2, Limit: 2, TotalCount: 3}},
		)
		client := newSDMXAPIHealthcheckClient(t, httpClient)

		Convey("Then GetMessagesInBatches returns all of them", func() {
			list, err := client.GetMessagesInBatches(ctx, headers, 2, 2)
			So(err, ShouldBeNil)
			So(list.TotalCount, ShouldEqual, 3)
			So(list.Count, ShouldEqual, 3)
			So(list.Items, ShouldHaveLength, 3)
			So(httpClient.DoCalls(), ShouldHaveLength, 2)
			So(httpClient.DoCalls()[1].Req.URL.Query().Get("offset"), ShouldEqual, "2")
		})
	})

	Convey("Given the second page fails", t, func() {
		httpClient := createHTTPClientMock(
			MockedHTTPResponse{StatusCode: http.StatusOK, Body: MessageList{Items: []*models.Message{{ID: "1"}}, Count: 1, Limit: 1, TotalCount: 2}},
			MockedHTTPResponse{StatusCode: http.StatusInternalServerError, Body: "internal error"},
		)
		client := newSDMXAPIHealthcheckClient(t, httpClient)

		Convey("Then the error is returned and no messages", func() {
			list, err := client.GetMessagesInBatches(ctx, headers, 1, 1)
			So(err, ShouldNotBeNil)
			So(list.Items, ShouldBeNil)
		})
	})
}
