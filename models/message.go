package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ONSdigital/dp-sdmx-api/sdmx"
	"github.com/ONSdigital/dp-sdmx-api/url"
	"github.com/cespare/xxhash/v2"
	uuid "github.com/satori/go.uuid"
)

// Message is a stored SDMX-JSON message
type Message struct {
	ID          string        `bson:"_id"                  json:"id"`
	ETag        string        `bson:"e_tag"                json:"-"`
	MessageID   string        `bson:"message_id,omitempty" json:"message_id,omitempty"`
	Prepared    string        `bson:"prepared,omitempty"   json:"prepared,omitempty"`
	SourceURL   string        `bson:"source_url,omitempty" json:"source_url,omitempty"`
	DataSets    int           `bson:"data_sets"            json:"data_sets"`
	HasErrors   bool          `bson:"has_errors"           json:"has_errors"`
	Links       *MessageLinks `bson:"links,omitempty"      json:"links,omitempty"`
	LastUpdated time.Time     `bson:"last_updated"         json:"last_updated"`
	Raw         string        `bson:"raw,omitempty"        json:"-"`
}

// MessageLinks are the links to a message and its projections
type MessageLinks struct {
	Self         *LinkObject   `bson:"self,omitempty"         json:"self,omitempty"`
	Observations *LinkObject   `bson:"observations,omitempty" json:"observations,omitempty"`
	Dimensions   *LinkObject   `bson:"dimensions,omitempty"   json:"dimensions,omitempty"`
	Attributes   *LinkObject   `bson:"attributes,omitempty"   json:"attributes,omitempty"`
	DataSets     []*LinkObject `bson:"data_sets,omitempty"    json:"data_sets,omitempty"`
}

// LinkObject represents a generic structure for all links
type LinkObject struct {
	HRef string `bson:"href,omitempty" json:"href,omitempty"`
	ID   string `bson:"id,omitempty"   json:"id,omitempty"`
}

// NewMessage creates a message document for a parsed message, with a new id
func NewMessage(raw []byte, msg *sdmx.Message, sourceURL string, urlBuilder *url.Builder) (*Message, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	m := &Message{
		ID:          id.String(),
		ETag:        ETag(raw),
		SourceURL:   sourceURL,
		HasErrors:   msg.Data == nil,
		LastUpdated: time.Now().UTC(),
		Raw:         string(raw),
	}
	if msg.Meta != nil {
		m.MessageID = msg.Meta.ID
		m.Prepared = msg.Meta.Prepared
	}
	if msg.Data != nil {
		m.DataSets = len(msg.Data.DataSets)
	}
	m.Links = NewMessageLinks(urlBuilder, m)
	return m, nil
}

// NewMessageLinks returns the links of a message and its projections, with one
// observations download link per dataset
func NewMessageLinks(urlBuilder *url.Builder, m *Message) *MessageLinks {
	links := &MessageLinks{
		Self:         &LinkObject{HRef: urlBuilder.BuildMessageURL(m.ID), ID: m.ID},
		Observations: &LinkObject{HRef: urlBuilder.BuildMessageProjectionURL(m.ID, "observations")},
		Dimensions:   &LinkObject{HRef: urlBuilder.BuildMessageProjectionURL(m.ID, "dimensions")},
		Attributes:   &LinkObject{HRef: urlBuilder.BuildMessageProjectionURL(m.ID, "attributes")},
	}
	for i := 0; i < m.DataSets; i++ {
		links.DataSets = append(links.DataSets, &LinkObject{
			HRef: urlBuilder.BuildDataSetObservationsURL(m.ID, i, ""),
			ID:   strconv.Itoa(i),
		})
	}
	return links
}

// Parse parses the stored message
func (m *Message) Parse() (*sdmx.Message, error) {
	return sdmx.ParseMessage([]byte(m.Raw))
}

// ETag returns the entity tag of a raw message
func ETag(raw []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(raw))
}
