package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ONSdigital/dp-sdmx-api/api/mock"
	"github.com/ONSdigital/dp-sdmx-api/apierrors"
	"github.com/ONSdigital/dp-sdmx-api/fetch"
	"github.com/ONSdigital/dp-sdmx-api/models"
	"github.com/ONSdigital/dp-sdmx-api/schema"
	storetest "github.com/ONSdigital/dp-sdmx-api/store/datastoretest"
	. "github.com/smartystreets/goconvey/convey"
)

func addMessageStore() *storetest.StorerMock {
	return &storetest.StorerMock{
		AddMessageFunc: func(ctx context.Context, message *models.Message) error {
			return nil
		},
	}
}

func TestAddMessage(t *testing.T) {
	t.Parallel()
	Convey("Given an api with a store that accepts messages", t, func() {
		mockedDataStore := addMessageStore()
		api := GetAPIWithMocks(testConfig(), mockedDataStore, &mock.FetcherMock{}, nil)

		Convey("When a valid message is posted", func() {
			r := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(testMessage))
			w := serve(api, r)

			Convey("Then the message is stored and its document returned", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)
				So(mockedDataStore.AddMessageCalls(), ShouldHaveLength, 1)

				stored := mockedDataStore.AddMessageCalls()[0].Message
				So(stored.Raw, ShouldEqual, testMessage)
				So(stored.MessageID, ShouldEqual, "IREF000001")
				So(stored.DataSets, ShouldEqual, 1)
				So(w.Header().Get("ETag"), ShouldEqual, models.ETag([]byte(testMessage)))
				So(w.Header().Get("Location"), ShouldEqual, fmt.Sprintf("%s/messages/%s", host, stored.ID))

				var doc models.Message
				So(json.Unmarshal(w.Body.Bytes(), &doc), ShouldBeNil)
				So(doc.ID, ShouldEqual, stored.ID)
				So(doc.Raw, ShouldBeEmpty)
			})
		})

		Convey("When an empty body is posted", func() {
			r := httptest.NewRequest(http.MethodPost, "/messages", http.NoBody)
			w := serve(api, r)

			Convey("Then a bad request is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(w.Body.String(), ShouldEqual, apierrors.ErrEmptyRequestBody.Error()+"\n")
				So(mockedDataStore.AddMessageCalls(), ShouldBeEmpty)
			})
		})

		Convey("When a message with both data and errors is posted", func() {
			body := `{"data": {"structure": {}}, "errors": []}`
			r := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
			w := serve(api, r)

			Convey("Then a bad request is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(mockedDataStore.AddMessageCalls(), ShouldBeEmpty)
			})
		})

		Convey("When a message that is not json is posted", func() {
			r := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader("not json"))
			w := serve(api, r)

			Convey("Then a bad request is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When a message larger than the maximum size is posted", func() {
			cfg := testConfig()
			cfg.MaxMessageSize = 10
			api := GetAPIWithMocks(cfg, mockedDataStore, &mock.FetcherMock{}, nil)
			r := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(testMessage))
			w := serve(api, r)

			Convey("Then request entity too large is returned", func() {
				So(w.Code, ShouldEqual, http.StatusRequestEntityTooLarge)
				So(mockedDataStore.AddMessageCalls(), ShouldBeEmpty)
			})
		})
	})

	Convey("Given an api with a failing store", t, func() {
		mockedDataStore := &storetest.StorerMock{
			AddMessageFunc: func(ctx context.Context, message *models.Message) error {
				return errors.New("connection refused")
			},
		}
		api := GetAPIWithMocks(testConfig(), mockedDataStore, &mock.FetcherMock{}, nil)

		Convey("When a valid message is posted", func() {
			r := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(testMessage))
			w := serve(api, r)

			Convey("Then an internal server error is returned", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(w.Body.String(), ShouldStartWith, apierrors.ErrInternalServer.Error())
			})
		})
	})
}

func TestAddMessageFromURL(t *testing.T) {
	t.Parallel()
	sourceURL := "http://example.org/data/CPI"

	Convey("Given a fetcher serving a message", t, func() {
		mockedDataStore := addMessageStore()
		fetcher := &mock.FetcherMock{
			GetFunc: func(ctx context.Context, url string) ([]byte, error) {
				return []byte(testMessage), nil
			},
		}
		api := GetAPIWithMocks(testConfig(), mockedDataStore, fetcher, nil)

		Convey("When a message is added by url", func() {
			r := httptest.NewRequest(http.MethodPost, "/messages?url="+sourceURL, http.NoBody)
			w := serve(api, r)

			Convey("Then the fetched message is stored with its source", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)
				So(fetcher.GetCalls(), ShouldHaveLength, 1)
				So(fetcher.GetCalls()[0].URL, ShouldEqual, sourceURL)
				So(mockedDataStore.AddMessageCalls()[0].Message.SourceURL, ShouldEqual, sourceURL)
			})
		})
	})

	Convey("Given a fetcher that fails", t, func() {
		tests := []struct {
			err    error
			status int
		}{
			{fetch.ErrMessageNotFound, http.StatusBadRequest},
			{fetch.ErrNotJSON, http.StatusBadRequest},
			{fetch.ErrTooLarge, http.StatusRequestEntityTooLarge},
			{fmt.Errorf("%w: %d", fetch.ErrUnexpectedStatus, 503), http.StatusBadGateway},
		}

		for _, tc := range tests {
			fetcher := &mock.FetcherMock{
				GetFunc: func(ctx context.Context, url string) ([]byte, error) {
					return nil, tc.err
				},
			}
			api := GetAPIWithMocks(testConfig(), addMessageStore(), fetcher, nil)
			r := httptest.NewRequest(http.MethodPost, "/messages?url="+sourceURL, http.NoBody)
			w := serve(api, r)

			So(w.Code, ShouldEqual, tc.status)
		}
	})
}

func TestAddMessageValidation(t *testing.T) {
	t.Parallel()
	Convey("Given an api with a validator that rejects messages", t, func() {
		mockedDataStore := addMessageStore()
		validator := &mock.ValidatorMock{
			ValidateFunc: func(ctx context.Context, raw []byte) error {
				return &schema.ValidationError{Schema: "https://example.org/schema.json", Err: errors.New("missing properties: 'data'")}
			},
		}
		api := GetAPIWithMocks(testConfig(), mockedDataStore, &mock.FetcherMock{}, validator)

		Convey("When a message is posted", func() {
			r := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(testMessage))
			w := serve(api, r)

			Convey("Then it is validated and rejected", func() {
				So(validator.ValidateCalls(), ShouldHaveLength, 1)
				So(string(validator.ValidateCalls()[0].Raw), ShouldEqual, testMessage)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(mockedDataStore.AddMessageCalls(), ShouldBeEmpty)
			})
		})
	})
}

func TestAddMessageSchemaErrors(t *testing.T) {
	t.Parallel()
	const schemaURL = "https://example.org/missing.json"

	testCases := []struct {
		name       string
		defaultURL string
		docs       map[string]string
		status     int
	}{
		{name: "the schema cannot be retrieved", defaultURL: schemaURL, status: http.StatusBadGateway},
		{name: "no schema is named or configured", status: http.StatusBadRequest},
		{name: "the named schema does not compile", docs: map[string]string{schemaURL: `{"type": 7}`}, status: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		Convey("Given a schema validator where "+tc.name, t, func() {
			loader := &mock.FetcherMock{
				GetFunc: func(ctx context.Context, url string) ([]byte, error) {
					if doc, ok := tc.docs[url]; ok {
						return []byte(doc), nil
					}
					return nil, fetch.ErrMessageNotFound
				},
			}
			validator, err := schema.NewValidator(loader, tc.defaultURL, 0)
			So(err, ShouldBeNil)
			mockedDataStore := addMessageStore()
			api := GetAPIWithMocks(testConfig(), mockedDataStore, &mock.FetcherMock{}, validator)

			body := testMessage
			if tc.docs != nil {
				body = strings.Replace(testMessage, `"meta": {"id": "IREF000001"}`, `"meta": {"id": "IREF000001", "schema": "`+schemaURL+`"}`, 1)
			}

			Convey("When a message is posted", func() {
				w := serve(api, httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body)))

				Convey("Then the expected status is returned and nothing is stored", func() {
					So(w.Code, ShouldEqual, tc.status)
					So(mockedDataStore.AddMessageCalls(), ShouldBeEmpty)
				})
			})
		})
	}
}

func TestGetMessage(t *testing.T) {
	t.Parallel()
	Convey("Given a stored message", t, func() {
		message := storedMessage(testMessage)
		api := GetAPIWithMocks(testConfig(), storeWith(message), nil, nil)

		Convey("When the message is requested", func() {
			r := httptest.NewRequest(http.MethodGet, "/messages/"+messageID, http.NoBody)
			w := serve(api, r)

			Convey("Then its document is returned with links and etag", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("ETag"), ShouldEqual, message.ETag)
				So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")

				var doc models.Message
				So(json.Unmarshal(w.Body.Bytes(), &doc), ShouldBeNil)
				So(doc.ID, ShouldEqual, messageID)
				So(doc.Links.Observations.HRef, ShouldEqual, host+"/messages/"+messageID+"/observations")
				So(w.Body.String(), ShouldNotContainSubstring, "dataSets")
			})
		})

		Convey("When the message is requested with a matching If-None-Match header", func() {
			r := httptest.NewRequest(http.MethodGet, "/messages/"+messageID, http.NoBody)
			r.Header.Set("If-None-Match", message.ETag)
			w := serve(api, r)

			Convey("Then not modified is returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotModified)
				So(w.Body.Len(), ShouldEqual, 0)
			})
		})

		Convey("When an unknown message is requested", func() {
			r := httptest.NewRequest(http.MethodGet, "/messages/unknown", http.NoBody)
			w := serve(api, r)

			Convey("Then not found is returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Body.String(), ShouldEqual, apierrors.ErrMessageNotFound.Error()+"\n")
			})
		})
	})
}

func TestGetMessages(t *testing.T) {
	t.Parallel()
	Convey("Given a store with messages", t, func() {
		mockedDataStore := &storetest.StorerMock{
			GetMessagesFunc: func(ctx context.Context, offset, limit int) ([]*models.Message, int, error) {
				return []*models.Message{{ID: "a"}, {ID: "b"}}, 5, nil
			},
		}
		api := GetAPIWithMocks(testConfig(), mockedDataStore, nil, nil)

		Convey("When a page of messages is requested", func() {
			r := httptest.NewRequest(http.MethodGet, "/messages?offset=2&limit=2", http.NoBody)
			w := serve(api, r)

			Convey("Then the page is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(mockedDataStore.GetMessagesCalls()[0].Offset, ShouldEqual, 2)
				So(mockedDataStore.GetMessagesCalls()[0].Limit, ShouldEqual, 2)

				var page struct {
					Items      []models.Message `json:"items"`
					Count      int              `json:"count"`
					TotalCount int              `json:"total_count"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &page), ShouldBeNil)
				So(page.Count, ShouldEqual, 2)
				So(page.TotalCount, ShouldEqual, 5)
				So(page.Items[1].Links.Self.HRef, ShouldEqual, host+"/messages/b")
			})
		})

		Convey("When a limit above the maximum is requested", func() {
			r := httptest.NewRequest(http.MethodGet, "/messages?limit=100000", http.NoBody)
			w := serve(api, r)

			Convey("Then a bad request is returned without querying the store", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(mockedDataStore.GetMessagesCalls(), ShouldBeEmpty)
			})
		})
	})
}

func TestDeleteMessage(t *testing.T) {
	t.Parallel()
	Convey("Given a store that deletes messages", t, func() {
		mockedDataStore := &storetest.StorerMock{
			DeleteMessageFunc: func(ctx context.Context, id string) error {
				if id != messageID {
					return apierrors.ErrMessageNotFound
				}
				return nil
			},
		}
		api := GetAPIWithMocks(testConfig(), mockedDataStore, nil, nil)

		Convey("When a stored message is deleted then no content is returned", func() {
			w := serve(api, httptest.NewRequest(http.MethodDelete, "/messages/"+messageID, http.NoBody))
			So(w.Code, ShouldEqual, http.StatusNoContent)
			So(mockedDataStore.DeleteMessageCalls()[0].ID, ShouldEqual, messageID)
		})

		Convey("When an unknown message is deleted then not found is returned", func() {
			w := serve(api, httptest.NewRequest(http.MethodDelete, "/messages/unknown", http.NoBody))
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}
